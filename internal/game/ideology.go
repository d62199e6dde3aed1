package game

// Ideology modifier keys used by the engine.
const (
	ModTraining       = "training"
	ModDiplomacy      = "diplomacy"
	ModLuck           = "luck"
	ModHappiness      = "happiness"
	ModTrade          = "trade"
	ModProductivity   = "productivity"
	ModTech           = "tech"
	ModPropaganda     = "propaganda"
	ModEventFrequency = "event_freq"
	ModSoldierUpkeep  = "soldier_upkeep"
	ModSpy            = "spy"
	ModCombat         = "combat"
	ModResources      = "resources"
	ModPopGrowth      = "pop_growth"
)

// ideologyModifiers is the passive modifier table. Anything not listed
// for an ideology defaults to 1.0.
var ideologyModifiers = map[Ideology]map[string]float64{
	IdeologyFascism: {
		ModTraining:  1.25,
		ModDiplomacy: 0.85,
		ModLuck:      0.90,
	},
	IdeologyDemocracy: {
		ModHappiness: 1.20,
		ModTrade:     1.10,
		ModTraining:  0.85,
	},
	IdeologyCommunism: {
		ModProductivity: 1.10,
		ModTech:         0.90,
	},
	IdeologyTheocracy: {
		ModPropaganda: 1.15,
		ModHappiness:  1.05,
		ModTech:       0.90,
	},
	IdeologyAnarchy: {
		ModEventFrequency: 2.0,
		ModSoldierUpkeep:  0.0,
		ModSpy:            0.80,
	},
	IdeologyDestruction: {
		ModCombat:    1.35,
		ModResources: 0.75,
		ModTraining:  1.40,
		ModHappiness: 0.70,
		ModDiplomacy: 0.50,
	},
	IdeologyPacifist: {
		ModHappiness: 1.35,
		ModPopGrowth: 1.25,
		ModTrade:     1.20,
		ModTraining:  0.40,
		ModCombat:    0.60,
		ModDiplomacy: 1.25,
	},
}

// IdeologyModifier returns the passive multiplier a government applies
// to the given aspect, 1.0 when the ideology has no opinion on it.
func IdeologyModifier(ideology Ideology, key string) float64 {
	if mods, ok := ideologyModifiers[ideology]; ok {
		if v, ok := mods[key]; ok {
			return v
		}
	}
	return 1.0
}
