package game

// ResourceDelta adjusts the stockpile. Negative values drain, and the
// engine floors every stockpile entry at zero when applying.
type ResourceDelta struct {
	Gold  int `json:"gold,omitempty" yaml:"gold,omitempty"`
	Food  int `json:"food,omitempty" yaml:"food,omitempty"`
	Stone int `json:"stone,omitempty" yaml:"stone,omitempty"`
	Wood  int `json:"wood,omitempty" yaml:"wood,omitempty"`
}

// PopulationDelta adjusts citizens and the morale meters.
type PopulationDelta struct {
	Citizens  int `json:"citizens,omitempty" yaml:"citizens,omitempty"`
	Happiness int `json:"happiness,omitempty" yaml:"happiness,omitempty"`
	Hunger    int `json:"hunger,omitempty" yaml:"hunger,omitempty"`
}

// MilitaryDelta adjusts army counts and the tech level.
type MilitaryDelta struct {
	Soldiers  int `json:"soldiers,omitempty" yaml:"soldiers,omitempty"`
	Spies     int `json:"spies,omitempty" yaml:"spies,omitempty"`
	TechLevel int `json:"tech_level,omitempty" yaml:"tech_level,omitempty"`
}

// TerritoryDelta adjusts land area.
type TerritoryDelta struct {
	LandSize int `json:"land_size,omitempty" yaml:"land_size,omitempty"`
}

// BonusGrant accumulates percent points under a bonus key.
type BonusGrant struct {
	Key    string  `json:"key" yaml:"key"`
	Points float64 `json:"points" yaml:"points"`
}

// Effect is a typed bundle of state changes. Each sub-delta is optional;
// the engine routes the non-nil parts through the matching clamped
// update, so a single effect cannot bypass the invariants.
type Effect struct {
	Resources  *ResourceDelta   `json:"resources,omitempty" yaml:"resources,omitempty"`
	Population *PopulationDelta `json:"population,omitempty" yaml:"population,omitempty"`
	Military   *MilitaryDelta   `json:"military,omitempty" yaml:"military,omitempty"`
	Territory  *TerritoryDelta  `json:"territory,omitempty" yaml:"territory,omitempty"`
	Bonus      *BonusGrant      `json:"bonus,omitempty" yaml:"bonus,omitempty"`
}

// Empty reports whether the effect carries no change at all.
func (e Effect) Empty() bool {
	return e.Resources == nil && e.Population == nil && e.Military == nil &&
		e.Territory == nil && e.Bonus == nil
}
