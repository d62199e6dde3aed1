package game

// CardKind separates permanent percentage bonuses from one-shot grants.
type CardKind string

const (
	CardBonus   CardKind = "bonus"
	CardOneTime CardKind = "one_time"
)

// Card is one entry of the advancement pool offered when a civilization
// reaches a new tech level.
type Card struct {
	Name        string   `json:"name"`
	Kind        CardKind `json:"kind"`
	Effect      Effect   `json:"effect"`
	Description string   `json:"description"`
}

// CardPool is the full advancement deck. Five cards are drawn from it
// without replacement for each selection.
var CardPool = []Card{
	{Name: "Resource Boost", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusResourceProduction, Points: 10}},
		Description: "+10% resource production"},
	{Name: "Military Training", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusSoldierTrainingSpeed, Points: 15}},
		Description: "+15% soldier training speed"},
	{Name: "Trade Advantage", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusTradeProfit, Points: 10}},
		Description: "+10% trade profit"},
	{Name: "Population Surge", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusPopulationGrowth, Points: 10}},
		Description: "+10% population growth"},
	{Name: "Tech Breakthrough", Kind: CardOneTime,
		Effect:      Effect{Military: &MilitaryDelta{TechLevel: 1}},
		Description: "Instantly gain 1 tech level"},
	{Name: "Gold Cache", Kind: CardOneTime,
		Effect:      Effect{Resources: &ResourceDelta{Gold: 500}},
		Description: "Gain 500 gold"},
	{Name: "Food Reserves", Kind: CardOneTime,
		Effect:      Effect{Resources: &ResourceDelta{Food: 300}},
		Description: "Gain 300 food"},
	{Name: "Mercenary Band", Kind: CardOneTime,
		Effect:      Effect{Military: &MilitaryDelta{Soldiers: 20}},
		Description: "Gain 20 soldiers"},
	{Name: "Spy Network", Kind: CardOneTime,
		Effect:      Effect{Military: &MilitaryDelta{Spies: 5}},
		Description: "Gain 5 spies"},
	{Name: "Fortification", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusDefenseStrength, Points: 15}},
		Description: "+15% defense strength"},
	{Name: "Stone Quarry", Kind: CardOneTime,
		Effect:      Effect{Resources: &ResourceDelta{Stone: 200}},
		Description: "Gain 200 stone"},
	{Name: "Lumber Mill", Kind: CardOneTime,
		Effect:      Effect{Resources: &ResourceDelta{Wood: 200}},
		Description: "Gain 200 wood"},
	{Name: "Intelligence Agency", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusSpyEffectiveness, Points: 20}},
		Description: "+20% spy effectiveness"},
	{Name: "Economic Boom", Kind: CardOneTime,
		Effect:      Effect{Resources: &ResourceDelta{Gold: 800}, Population: &PopulationDelta{Happiness: 10}},
		Description: "Gain 800 gold and +10 happiness"},
	{Name: "Military Academy", Kind: CardBonus,
		Effect:      Effect{Bonus: &BonusGrant{Key: BonusSoldierTrainingSpeed, Points: 25}},
		Description: "+25% soldier training speed"},
}

// CardByName resolves a pool card by its display name.
func CardByName(name string) (Card, bool) {
	for _, c := range CardPool {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}

// StoreUpgrade is a one-per-civilization structural purchase. Buying it
// records its bonus; a second purchase of the same upgrade is refused.
type StoreUpgrade struct {
	Name        string    `json:"name"`
	Cost        Resources `json:"cost"`
	Grants      []BonusGrant `json:"grants"`
	Description string    `json:"description"`
}

// StoreUpgrades lists the fixed upgrade shop.
var StoreUpgrades = []StoreUpgrade{
	{Name: "farm_upgrade", Cost: Resources{Gold: 500, Wood: 200},
		Grants:      []BonusGrant{{Key: BonusFarm, Points: 25}},
		Description: "Irrigated farms, +25% food output"},
	{Name: "mine_upgrade", Cost: Resources{Gold: 800, Stone: 150},
		Grants:      []BonusGrant{{Key: BonusMine, Points: 30}},
		Description: "Deep mines, +30% stone output"},
	{Name: "barracks", Cost: Resources{Gold: 1000, Stone: 300, Wood: 200},
		Grants:      []BonusGrant{{Key: BonusTrainingCostCut, Points: 20}},
		Description: "Barracks, -20% training cost"},
	{Name: "walls", Cost: Resources{Gold: 1500, Stone: 500},
		Grants:      []BonusGrant{{Key: BonusDefense, Points: 25}},
		Description: "City walls, +25% defense"},
	{Name: "marketplace", Cost: Resources{Gold: 2000, Wood: 400},
		Grants:      []BonusGrant{{Key: BonusTrade, Points: 15}, {Key: BonusTax, Points: 15}},
		Description: "Marketplace, +15% trade and tax income"},
	{Name: "library", Cost: Resources{Gold: 3000, Stone: 200, Wood: 300},
		Grants:      []BonusGrant{{Key: BonusTechSpeed, Points: 50}},
		Description: "Great library, +50% research speed"},
	{Name: "granary", Cost: Resources{Gold: 750, Wood: 350},
		Grants:      []BonusGrant{{Key: BonusFoodEfficiency, Points: 20}},
		Description: "Granary, -20% food waste"},
	{Name: "spy_network", Cost: Resources{Gold: 1200, Stone: 100},
		Grants:      []BonusGrant{{Key: BonusSpy, Points: 30}},
		Description: "Spy network, +30% espionage"},
}

// UpgradeByName resolves a store upgrade by its shop key.
func UpgradeByName(name string) (StoreUpgrade, bool) {
	for _, u := range StoreUpgrades {
		if u.Name == name {
			return u, true
		}
	}
	return StoreUpgrade{}, false
}
