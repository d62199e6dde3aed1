package engine

import (
	"fmt"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// CombatStrength is the army score used by attacks. Defensive bonuses
// harden it for both sides.
func (e *Engine) CombatStrength(c *game.Civilization) float64 {
	base := float64(c.Military.Soldiers*10+
		c.Military.Spies*5+
		c.Military.TechLevel*50) +
		float64(c.Territory.LandSize)/100
	base *= 1 + defenseStrength(c)/100
	return base
}

// BattleResult describes a resolved attack. Spoils and territory have
// already been transferred when it is returned.
type BattleResult struct {
	Victory         bool
	Upset           bool
	AttackerLosses  int
	DefenderLosses  int
	Spoils          game.Resources
	TerritoryGained int
	Summary         string
}

// battleRolls produces the two variance factors with every ideology
// tweak applied. Exposed as a method so tests can pin e.roll.
func (e *Engine) battleRolls(attacker, defender *game.Civilization) (attRoll, defRoll float64) {
	attRoll, defRoll = e.roll(), e.roll()

	if attacker.Ideology == game.IdeologyFascism {
		attRoll *= 1.1
	}
	if defender.Ideology == game.IdeologyFascism {
		defRoll *= 1.1
	}
	if attacker.Ideology == game.IdeologyDestruction {
		attRoll *= 1.15
		defRoll *= 0.9
	}
	if defender.Ideology == game.IdeologyPacifist {
		defRoll *= 0.85
	}
	return attRoll, defRoll
}

// underdogCorrection boosts the weaker defender's roll: a linear bonus
// of up to +40% as the strength ratio falls below one half, and below a
// quarter a 15% chance of a dramatic upset that multiplies the roll by
// 1.5.
func (e *Engine) underdogCorrection(ratio, defRoll float64) (float64, bool) {
	if ratio >= 0.5 {
		return defRoll, false
	}
	defRoll *= 1 + 0.4*(0.5-ratio)/0.5
	if ratio < 0.25 && e.chance(0.15) {
		return defRoll * 1.5, true
	}
	return defRoll, false
}

// AttackMinSoldiers is the army size required to launch an attack.
const AttackMinSoldiers = 10

// ResolveAttack fights one battle inside an ongoing war, mutating both
// civilizations. The caller holds both locks and persists afterwards.
// An army below AttackMinSoldiers is refused without effect.
func (e *Engine) ResolveAttack(attacker, defender *game.Civilization) (BattleResult, bool) {
	if attacker.Military.Soldiers < AttackMinSoldiers {
		return BattleResult{}, false
	}

	attStrength := e.CombatStrength(attacker)
	defStrength := e.CombatStrength(defender)

	attRoll, defRoll := e.battleRolls(attacker, defender)

	ratio := 1.0
	if attStrength > 0 {
		ratio = defStrength / attStrength
	}
	defRoll, upset := e.underdogCorrection(ratio, defRoll)

	attScore := attStrength * attRoll
	defScore := defStrength * defRoll

	res := BattleResult{Upset: upset}
	if attScore > defScore {
		res.Victory = true
		margin := 1.0
		if defScore > 0 {
			margin = attScore / defScore
		}

		attLosses := minInt(e.randInt(2, 8), attacker.Military.Soldiers)
		defLosses := minInt(int(float64(attLosses)*margin), defender.Military.Soldiers)
		e.ApplyMilitary(attacker, game.MilitaryDelta{Soldiers: -attLosses})
		e.ApplyMilitary(defender, game.MilitaryDelta{Soldiers: -defLosses})
		res.AttackerLosses, res.DefenderLosses = attLosses, defLosses

		spoils := game.Resources{
			Gold:  fractionOf(defender.Resources.Gold, 0.15),
			Food:  fractionOf(defender.Resources.Food, 0.10),
			Stone: fractionOf(defender.Resources.Stone, 0.10),
			Wood:  fractionOf(defender.Resources.Wood, 0.10),
		}
		if attacker.Ideology == game.IdeologyDestruction {
			burned := fractionOf(defender.Resources.Gold, 0.05)
			e.ApplyResources(defender, game.ResourceDelta{Gold: -burned})
		}
		e.ApplyResources(defender, game.ResourceDelta{
			Gold: -spoils.Gold, Food: -spoils.Food, Stone: -spoils.Stone, Wood: -spoils.Wood,
		})
		e.ApplyResources(attacker, game.ResourceDelta{
			Gold: spoils.Gold, Food: spoils.Food, Stone: spoils.Stone, Wood: spoils.Wood,
		})
		res.Spoils = spoils

		land := fractionOf(defender.Territory.LandSize, 0.05)
		e.ApplyTerritory(defender, game.TerritoryDelta{LandSize: -land})
		e.ApplyTerritory(attacker, game.TerritoryDelta{LandSize: land})
		res.TerritoryGained = land

		res.Summary = fmt.Sprintf("%s broke %s's lines, seizing %d km² and %d gold",
			attacker.Name, defender.Name, land, spoils.Gold)
		return res, true
	}

	margin := 1.0
	if attScore > 0 {
		margin = defScore / attScore
	}
	attLosses := minInt(int(float64(e.randInt(5, 15))*margin), attacker.Military.Soldiers)
	defLosses := minInt(e.randInt(2, 5), defender.Military.Soldiers)
	e.ApplyMilitary(attacker, game.MilitaryDelta{Soldiers: -attLosses})
	e.ApplyMilitary(defender, game.MilitaryDelta{Soldiers: -defLosses})
	e.ApplyPopulation(attacker, game.PopulationDelta{Happiness: -10})
	res.AttackerLosses, res.DefenderLosses = attLosses, defLosses

	// A small garrison that repulses a larger host earns reparations.
	if defender.Military.Soldiers < attacker.Military.Soldiers/2 {
		tribute := fractionOf(attacker.Resources.Gold, 0.10)
		e.ApplyResources(attacker, game.ResourceDelta{Gold: -tribute})
		e.ApplyResources(defender, game.ResourceDelta{Gold: tribute})
		e.ApplyPopulation(defender, game.PopulationDelta{Happiness: 20})
		res.Summary = fmt.Sprintf("%s's assault shattered against %s's outnumbered defenders, who claim %d gold in reparations",
			attacker.Name, defender.Name, tribute)
		return res, true
	}

	res.Summary = fmt.Sprintf("%s repelled %s's attack", defender.Name, attacker.Name)
	return res, true
}

// SiegeMinSoldiers is the army size required to mount a siege.
const SiegeMinSoldiers = 50

// SiegeResult describes one siege turn.
type SiegeResult struct {
	Effectiveness float64
	Drained       game.Resources
	Maintenance   game.Resources
	Summary       string
}

// ResolveSiege grinds a defender's economy. The attacker pays army
// maintenance up front and gains nothing directly; the drained stock
// is destroyed, not looted. An unaffordable siege is refused without
// effect.
func (e *Engine) ResolveSiege(attacker, defender *game.Civilization) (SiegeResult, bool) {
	if attacker.Military.Soldiers < SiegeMinSoldiers {
		return SiegeResult{}, false
	}

	maintenance := game.Resources{
		Gold: attacker.Military.Soldiers * 2,
		Food: attacker.Military.Soldiers * 3,
	}
	if !e.Spend(attacker, maintenance) {
		return SiegeResult{}, false
	}

	power := float64(attacker.Military.Soldiers + attacker.Military.TechLevel*10)
	resistance := float64(defender.Military.Soldiers) + float64(defender.Territory.LandSize)/100
	eff := power / (power + resistance)
	if defender.Military.Soldiers < attacker.Military.Soldiers/2 {
		eff *= 0.75
	}

	goldDrain, foodDrain := 0.10*eff, 0.20*eff
	// Scorched-earth doctrine burns a flat extra share regardless of
	// how well the siege bites.
	if attacker.Ideology == game.IdeologyDestruction {
		goldDrain += 0.05
		foodDrain += 0.05
	}
	drained := game.Resources{
		Gold:  fractionOf(defender.Resources.Gold, goldDrain),
		Food:  fractionOf(defender.Resources.Food, foodDrain),
		Wood:  fractionOf(defender.Resources.Wood, 0.15*eff),
		Stone: fractionOf(defender.Resources.Stone, 0.15*eff),
	}
	e.ApplyResources(defender, game.ResourceDelta{
		Gold: -drained.Gold, Food: -drained.Food, Wood: -drained.Wood, Stone: -drained.Stone,
	})
	e.ApplyPopulation(defender, game.PopulationDelta{Happiness: -15})
	e.ApplyPopulation(attacker, game.PopulationDelta{Happiness: -5})

	return SiegeResult{
		Effectiveness: eff,
		Drained:       drained,
		Maintenance:   maintenance,
		Summary: fmt.Sprintf("%s besieged %s, destroying %d gold and %d food of stores",
			attacker.Name, defender.Name, drained.Gold, drained.Food),
	}, true
}

// StealthMinSpies is the spy count needed to run a covert operation.
const StealthMinSpies = 3

// Stealth operation outcomes.
const (
	StealthSabotage = "sabotage"
	StealthTheft    = "theft"
	StealthIntel    = "intel"
)

// StealthResult describes one covert operation.
type StealthResult struct {
	Success    bool
	Outcome    string
	SpiesLost  int
	GoldStolen int
	TechGained bool
	Summary    string
}

// stealthChance computes the success probability with ideology and
// espionage bonuses applied, clamped to [0.2, 0.9].
func (e *Engine) stealthChance(attacker, defender *game.Civilization) float64 {
	attPower := float64(attacker.Military.Spies * attacker.Military.TechLevel)
	defPower := float64(defender.Military.Spies * defender.Military.TechLevel)

	p := 0.6 + (attPower-defPower)/100
	p *= game.IdeologyModifier(attacker.Ideology, game.ModSpy)
	if attacker.Ideology == game.IdeologyDestruction {
		p *= 1.2
		if e.chance(0.10) {
			p += 0.15
		}
	}
	if defender.Ideology == game.IdeologyFascism {
		p *= 0.9
	}
	if defender.Ideology == game.IdeologyPacifist {
		p *= 1.1
	}
	p *= 1 + spyEffectiveness(attacker)/100

	if p < 0.2 {
		return 0.2
	}
	if p > 0.9 {
		return 0.9
	}
	return p
}

// ResolveStealth runs a covert operation. No war is required, only a
// minimum spy corps.
func (e *Engine) ResolveStealth(attacker, defender *game.Civilization) (StealthResult, bool) {
	if attacker.Military.Spies < StealthMinSpies {
		return StealthResult{}, false
	}

	if !e.chance(e.stealthChance(attacker, defender)) {
		lost := minInt(e.randInt(1, 4), attacker.Military.Spies)
		e.ApplyMilitary(attacker, game.MilitaryDelta{Spies: -lost})
		return StealthResult{
			SpiesLost: lost,
			Summary:   fmt.Sprintf("%s's agents were caught inside %s", attacker.Name, defender.Name),
		}, true
	}

	res := StealthResult{Success: true}
	outcomes := []string{StealthSabotage, StealthTheft, StealthIntel}
	res.Outcome = outcomes[e.rand.Intn(len(outcomes))]

	switch res.Outcome {
	case StealthSabotage:
		drain := game.ResourceDelta{
			Stone: -e.randInt(50, 200),
			Wood:  -e.randInt(30, 150),
		}
		if attacker.Ideology == game.IdeologyDestruction {
			drain.Gold = -e.randInt(20, 100)
			drain.Food = -e.randInt(30, 120)
		}
		e.ApplyResources(defender, drain)
		res.Summary = fmt.Sprintf("%s's saboteurs wrecked %s's stockpiles", attacker.Name, defender.Name)
	case StealthTheft:
		stolen := fractionOf(defender.Resources.Gold, e.randFloat(0.05, 0.15))
		e.ApplyResources(defender, game.ResourceDelta{Gold: -stolen})
		e.ApplyResources(attacker, game.ResourceDelta{Gold: stolen})
		res.GoldStolen = stolen
		res.Summary = fmt.Sprintf("%s's agents lifted %d gold from %s's treasury", attacker.Name, stolen, defender.Name)
	case StealthIntel:
		if e.chance(0.30) {
			res.TechGained = e.ApplyMilitary(attacker, game.MilitaryDelta{TechLevel: 1})
		}
		res.Summary = fmt.Sprintf("%s's agents mapped %s's workshops", attacker.Name, defender.Name)
	}

	lost := minInt(e.randInt(0, 2), attacker.Military.Spies)
	e.ApplyMilitary(attacker, game.MilitaryDelta{Spies: -lost})
	res.SpiesLost = lost
	return res, true
}
