package engine

import (
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// Starting state handed to every new civilization.
const (
	startGold      = 500
	startFood      = 300
	startStone     = 100
	startWood      = 100
	startCitizens  = 100
	startHappiness = 50
	startEmployed  = 50
	startSoldiers  = 10
	startSpies     = 2
	startTech      = 1
	startLand      = 1000
)

// TechLevelCap is the maximum technology level.
const TechLevelCap = 10

// NewCivilization builds a fresh civilization with the standard
// starting stock. The caller persists it and generates the tech-1 card
// selection.
func NewCivilization(userID, name string, ideology game.Ideology) *game.Civilization {
	return &game.Civilization{
		UserID:   userID,
		Name:     name,
		Ideology: ideology,
		Resources: game.Resources{
			Gold:  startGold,
			Food:  startFood,
			Stone: startStone,
			Wood:  startWood,
		},
		Population: game.Population{
			Citizens:  startCitizens,
			Happiness: startHappiness,
			Hunger:    0,
			Employed:  startEmployed,
		},
		Military: game.Military{
			Soldiers:  startSoldiers,
			Spies:     startSpies,
			TechLevel: startTech,
		},
		Territory:     game.Territory{LandSize: startLand},
		HyperItems:    []string{},
		Bonuses:       game.Bonuses{},
		SelectedCards: []string{},
		LastIncomeAt:  time.Now().UTC(),
	}
}

// ApplyResources adds the delta to the stockpile, flooring every entry
// at zero.
func (e *Engine) ApplyResources(c *game.Civilization, d game.ResourceDelta) {
	c.Resources.Gold = maxInt(0, c.Resources.Gold+d.Gold)
	c.Resources.Food = maxInt(0, c.Resources.Food+d.Food)
	c.Resources.Stone = maxInt(0, c.Resources.Stone+d.Stone)
	c.Resources.Wood = maxInt(0, c.Resources.Wood+d.Wood)
}

// ApplyPopulation adds the delta while holding the invariants: citizens
// never negative, employed never above citizens, happiness and hunger
// within [0, 100].
func (e *Engine) ApplyPopulation(c *game.Civilization, d game.PopulationDelta) {
	c.Population.Citizens = maxInt(0, c.Population.Citizens+d.Citizens)
	c.Population.Happiness = clampInt(c.Population.Happiness+d.Happiness, 0, 100)
	c.Population.Hunger = clampInt(c.Population.Hunger+d.Hunger, 0, 100)
	c.Population.Employed = clampInt(c.Population.Employed, 0, c.Population.Citizens)
}

// ApplyMilitary adds the delta, flooring counts at zero and keeping the
// tech level within [1, TechLevelCap]. It reports whether tech strictly
// advanced after clamping, which is the trigger for a card selection.
func (e *Engine) ApplyMilitary(c *game.Civilization, d game.MilitaryDelta) (techAdvanced bool) {
	c.Military.Soldiers = maxInt(0, c.Military.Soldiers+d.Soldiers)
	c.Military.Spies = maxInt(0, c.Military.Spies+d.Spies)

	oldTech := c.Military.TechLevel
	c.Military.TechLevel = clampInt(oldTech+d.TechLevel, 1, TechLevelCap)
	return c.Military.TechLevel > oldTech
}

// ApplyTerritory adds the delta, flooring land at zero.
func (e *Engine) ApplyTerritory(c *game.Civilization, d game.TerritoryDelta) {
	c.Territory.LandSize = maxInt(0, c.Territory.LandSize+d.LandSize)
}

// eventTerritoryFloor is the smallest land area a random event can leave
// behind; combat can shrink territory further, events cannot.
const eventTerritoryFloor = 100

// ApplyEventTerritory is the territory path used by random events.
func (e *Engine) ApplyEventTerritory(c *game.Civilization, d game.TerritoryDelta) {
	c.Territory.LandSize = maxInt(eventTerritoryFloor, c.Territory.LandSize+d.LandSize)
}

// ApplyEffect routes each part of a typed effect through its clamped
// update and reports whether the military part advanced tech.
func (e *Engine) ApplyEffect(c *game.Civilization, eff game.Effect) (techAdvanced bool) {
	if eff.Resources != nil {
		e.ApplyResources(c, *eff.Resources)
	}
	if eff.Population != nil {
		e.ApplyPopulation(c, *eff.Population)
	}
	if eff.Military != nil {
		techAdvanced = e.ApplyMilitary(c, *eff.Military)
	}
	if eff.Territory != nil {
		e.ApplyTerritory(c, *eff.Territory)
	}
	if eff.Bonus != nil {
		c.AddBonus(eff.Bonus.Key, eff.Bonus.Points)
	}
	return techAdvanced
}

// UpdateEmployment shifts employed citizens, clamped to [0, citizens].
func (e *Engine) UpdateEmployment(c *game.Civilization, delta int) {
	c.Population.Employed = clampInt(c.Population.Employed+delta, 0, c.Population.Citizens)
}

// CanAfford reports whether the stockpile covers the cost.
func (e *Engine) CanAfford(c *game.Civilization, cost game.Resources) bool {
	return c.Resources.Gold >= cost.Gold &&
		c.Resources.Food >= cost.Food &&
		c.Resources.Stone >= cost.Stone &&
		c.Resources.Wood >= cost.Wood
}

// Spend deducts the cost when affordable and reports whether it did.
func (e *Engine) Spend(c *game.Civilization, cost game.Resources) bool {
	if !e.CanAfford(c, cost) {
		return false
	}
	c.Resources.Gold -= cost.Gold
	c.Resources.Food -= cost.Food
	c.Resources.Stone -= cost.Stone
	c.Resources.Wood -= cost.Wood
	return true
}

// PowerScore is the headline strength number shown in status output.
func (e *Engine) PowerScore(c *game.Civilization) int {
	base := c.Resources.Total()/10 +
		c.Population.Citizens*2 +
		c.Military.Soldiers*5 +
		c.Military.Spies*10 +
		c.Military.TechLevel*100 +
		c.Territory.LandSize/100 +
		c.Population.Happiness
	return int(float64(base) * (1 + defenseStrength(c)/100))
}

// LeaderboardScore ranks civilizations for the overall board.
func (e *Engine) LeaderboardScore(c *game.Civilization) int {
	return c.Military.Soldiers*10 +
		c.Military.Spies*5 +
		c.Military.TechLevel*50 +
		c.Resources.Total() +
		c.Territory.LandSize
}

// IncomeReport summarizes one income tick for logging.
type IncomeReport struct {
	Gold       int
	Food       int
	Stone      int
	Wood       int
	FoodUpkeep int
	GoldUpkeep int
}

// ProcessIncome runs one production-and-upkeep cycle: tax and harvest
// scaled by employment, land and tech, then army wages and citizen
// rations.
func (e *Engine) ProcessIncome(c *game.Civilization) IncomeReport {
	employment := c.Population.EmploymentRate()
	landFactor := float64(c.Territory.LandSize) / 1000.0

	gold := int(float64(c.Population.Citizens) * 0.1 * landFactor * employment)
	gold = int(float64(gold) * (1 + 0.5*float64(c.Military.TechLevel)))
	food := int(float64(c.Population.Citizens) * 0.2 * employment)
	stone := e.randInt(0, 5)
	wood := e.randInt(0, 5)

	mod := game.IdeologyModifier(c.Ideology, game.ModResources) *
		game.IdeologyModifier(c.Ideology, game.ModProductivity) *
		(1 + c.Bonus(game.BonusResourceProduction)/100)

	gold = fractionOf(gold, mod) + fractionOf(gold, c.Bonus(game.BonusTax)/100)
	food = fractionOf(food, mod*(1+c.Bonus(game.BonusFarm)/100))
	stone = fractionOf(stone, mod*(1+c.Bonus(game.BonusMine)/100))
	wood = fractionOf(wood, mod)

	foodUpkeep := int(float64(c.Population.Citizens) * 0.3)
	foodUpkeep = fractionOf(foodUpkeep, 1-c.Bonus(game.BonusFoodEfficiency)/100)
	goldUpkeep := fractionOf(c.Military.Soldiers*2, game.IdeologyModifier(c.Ideology, game.ModSoldierUpkeep)) +
		c.Military.Spies*5

	e.ApplyResources(c, game.ResourceDelta{
		Gold:  gold - goldUpkeep,
		Food:  food - foodUpkeep,
		Stone: stone,
		Wood:  wood,
	})
	c.LastIncomeAt = time.Now().UTC()

	return IncomeReport{
		Gold: gold, Food: food, Stone: stone, Wood: wood,
		FoodUpkeep: foodUpkeep, GoldUpkeep: goldUpkeep,
	}
}

// ProcessHappiness applies the morale extremes: very unhappy citizens
// may revolt, very happy ones may multiply.
func (e *Engine) ProcessHappiness(c *game.Civilization) (revolted, grew bool) {
	h := c.Population.Happiness
	if h < 20 {
		if e.chance(0.10) {
			loss := fractionOf(c.Population.Citizens, 0.05)
			e.ApplyPopulation(c, game.PopulationDelta{Citizens: -loss})
			return true, false
		}
		return false, false
	}
	if h > 80 {
		growthRate := c.Bonus(game.BonusPopulationGrowth) / 100
		p := 0.15 + growthRate
		if c.Ideology == game.IdeologyPacifist {
			p += 0.25
		}
		if e.chance(p) {
			gain := int(float64(c.Population.Citizens) * (0.03 + growthRate))
			e.ApplyPopulation(c, game.PopulationDelta{Citizens: gain})
			return false, true
		}
	}
	return false, false
}

// ProcessHunger feeds the population or lets hunger climb. Starvation
// kicks in above 80 hunger.
func (e *Engine) ProcessHunger(c *game.Civilization) (starved bool) {
	need := int(float64(c.Population.Citizens) * 0.2)
	if c.Resources.Food < need {
		deficit := need - c.Resources.Food
		e.ApplyPopulation(c, game.PopulationDelta{Hunger: minInt(20, deficit)})
		if c.Population.Hunger > 80 {
			dead := fractionOf(c.Population.Citizens, 0.02)
			e.ApplyPopulation(c, game.PopulationDelta{Citizens: -dead, Happiness: -10})
			return true
		}
		return false
	}
	e.ApplyResources(c, game.ResourceDelta{Food: -need})
	if c.Population.Hunger > 0 {
		e.ApplyPopulation(c, game.PopulationDelta{Hunger: -5})
	}
	return false
}

// CivilWarRisk returns the per-tick probability of a civil war.
func (e *Engine) CivilWarRisk(c *game.Civilization) float64 {
	h := c.Population.Happiness
	if h >= 50 {
		return 0
	}
	p := float64(50-h) * 0.008
	if c.Ideology == game.IdeologyAnarchy {
		p *= 1.3
	}
	return p
}

// CheckCivilWar rolls the civil-war chance and, on a hit, halves the
// stockpile and bleeds population, morale and soldiers.
func (e *Engine) CheckCivilWar(c *game.Civilization) bool {
	if !e.chance(e.CivilWarRisk(c)) {
		return false
	}
	c.Resources.Gold /= 2
	c.Resources.Food /= 2
	c.Resources.Stone /= 2
	c.Resources.Wood /= 2

	citizenLoss := maxInt(1, fractionOf(c.Population.Citizens, 0.05))
	soldierLoss := maxInt(1, fractionOf(c.Military.Soldiers, 0.10))
	e.ApplyPopulation(c, game.PopulationDelta{Citizens: -citizenLoss, Happiness: -15})
	e.ApplyMilitary(c, game.MilitaryDelta{Soldiers: -soldierLoss})
	return true
}
