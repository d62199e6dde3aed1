package game

// GameEvent is one entry of the random event tables. Probability is the
// per-tick chance in [0, 1]; Global events hit every civilization when
// they fire, local ones hit a single random civilization.
type GameEvent struct {
	Name        string  `json:"name" yaml:"name"`
	Effect      Effect  `json:"effect" yaml:"effect"`
	Probability float64 `json:"probability" yaml:"probability"`
	Global      bool    `json:"global,omitempty" yaml:"global,omitempty"`
}

// GlobalEvents are evaluated in order each tick; the first probability
// hit wins the tick.
var GlobalEvents = []GameEvent{
	{Name: "Solar Flare", Effect: Effect{Military: &MilitaryDelta{TechLevel: -1}}, Probability: 0.05, Global: true},
	{Name: "Meteor Shower", Effect: Effect{Resources: &ResourceDelta{Stone: 500, Gold: 200}}, Probability: 0.03},
	{Name: "Divine Blessing", Effect: Effect{Population: &PopulationDelta{Happiness: 15}, Resources: &ResourceDelta{Food: 300}}, Probability: 0.02},
	{Name: "Pandemic Outbreak", Effect: Effect{Population: &PopulationDelta{Citizens: -50, Happiness: -20}}, Probability: 0.04, Global: true},
	{Name: "Golden Age", Effect: Effect{Resources: &ResourceDelta{Gold: 1000}, Population: &PopulationDelta{Happiness: 20, Citizens: 100}}, Probability: 0.01},
}

// LocalEvents are the weighted pool rolled per civilization.
var LocalEvents = []GameEvent{
	{Name: "Bandit Raid", Effect: Effect{Resources: &ResourceDelta{Gold: -200, Food: -100}, Military: &MilitaryDelta{Soldiers: -5}}, Probability: 0.08},
	{Name: "Merchant Caravan", Effect: Effect{Resources: &ResourceDelta{Gold: 300}, Population: &PopulationDelta{Happiness: 5}}, Probability: 0.10},
	{Name: "Natural Disaster", Effect: Effect{Resources: &ResourceDelta{Stone: -150, Wood: -100}, Population: &PopulationDelta{Citizens: -30}}, Probability: 0.06},
	{Name: "Population Boom", Effect: Effect{Population: &PopulationDelta{Citizens: 75, Happiness: 10}}, Probability: 0.07},
	{Name: "Technology Breakthrough", Effect: Effect{Military: &MilitaryDelta{TechLevel: 1}}, Probability: 0.05},
	{Name: "Spy Infiltration", Effect: Effect{Military: &MilitaryDelta{Spies: 3}, Population: &PopulationDelta{Happiness: -5}}, Probability: 0.06},
	{Name: "Harvest Festival", Effect: Effect{Resources: &ResourceDelta{Food: 400}, Population: &PopulationDelta{Happiness: 15}}, Probability: 0.09},
	{Name: "Royal Wedding", Effect: Effect{Population: &PopulationDelta{Happiness: 20}, Resources: &ResourceDelta{Gold: -100}}, Probability: 0.04},
	{Name: "Military Desertion", Effect: Effect{Military: &MilitaryDelta{Soldiers: -15}, Population: &PopulationDelta{Happiness: -10}}, Probability: 0.05},
	{Name: "Ancient Ruins Discovered", Effect: Effect{Resources: &ResourceDelta{Gold: 500, Stone: 200}, Military: &MilitaryDelta{TechLevel: 1}}, Probability: 0.03},
	{Name: "Forest Fire", Effect: Effect{Resources: &ResourceDelta{Wood: -300}, Population: &PopulationDelta{Happiness: -8}}, Probability: 0.06},
	{Name: "Trade Route Established", Effect: Effect{Resources: &ResourceDelta{Gold: 400, Food: 200}}, Probability: 0.08},
	{Name: "Plague of Locusts", Effect: Effect{Resources: &ResourceDelta{Food: -500}, Population: &PopulationDelta{Happiness: -15}}, Probability: 0.05},
	{Name: "Military Academy Founded", Effect: Effect{Military: &MilitaryDelta{Soldiers: 25}, Resources: &ResourceDelta{Gold: -200}}, Probability: 0.04},
	{Name: "Diplomatic Summit", Effect: Effect{Population: &PopulationDelta{Happiness: 12}, Resources: &ResourceDelta{Gold: 150}}, Probability: 0.06},
}

// IdeologyEvents are flavored pools mixed into the local roll for
// civilizations of the matching government.
var IdeologyEvents = map[Ideology][]GameEvent{
	IdeologyFascism: {
		{Name: "Military Parade", Effect: Effect{Population: &PopulationDelta{Happiness: 15}, Military: &MilitaryDelta{Soldiers: 20}}, Probability: 0.12},
		{Name: "Political Purge", Effect: Effect{Population: &PopulationDelta{Happiness: -10}, Military: &MilitaryDelta{Spies: 10}}, Probability: 0.08},
	},
	IdeologyDemocracy: {
		{Name: "Free Elections", Effect: Effect{Population: &PopulationDelta{Happiness: 20, Citizens: 50}}, Probability: 0.10},
		{Name: "Parliamentary Debate", Effect: Effect{Population: &PopulationDelta{Happiness: 5}, Resources: &ResourceDelta{Gold: -100}}, Probability: 0.09},
	},
	IdeologyCommunism: {
		{Name: "Worker's Revolution", Effect: Effect{Population: &PopulationDelta{Citizens: 100, Happiness: 10}}, Probability: 0.11},
		{Name: "Five Year Plan", Effect: Effect{Resources: &ResourceDelta{Stone: 300, Wood: 300, Food: 400}}, Probability: 0.08},
	},
	IdeologyTheocracy: {
		{Name: "Divine Revelation", Effect: Effect{Population: &PopulationDelta{Happiness: 25}, Military: &MilitaryDelta{TechLevel: 1}}, Probability: 0.09},
		{Name: "Religious Festival", Effect: Effect{Population: &PopulationDelta{Happiness: 18}, Resources: &ResourceDelta{Food: 200}}, Probability: 0.12},
	},
	IdeologyAnarchy: {
		{Name: "Chaos Erupts", Effect: Effect{Resources: &ResourceDelta{Gold: 300}, Population: &PopulationDelta{Happiness: -15}, Military: &MilitaryDelta{Soldiers: -10}}, Probability: 0.15},
		{Name: "Spontaneous Organization", Effect: Effect{Population: &PopulationDelta{Citizens: 60, Happiness: 12}}, Probability: 0.10},
	},
}
