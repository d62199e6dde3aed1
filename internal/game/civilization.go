package game

import (
	"time"

	"gorm.io/gorm"
)

// Ideology is the government type a civilization adopts. It drives
// passive modifiers and which flavored events can fire. A nation may
// start unaligned and commit to exactly one ideology later.
type Ideology string

const (
	// IdeologyNone is the unaligned default; every modifier stays 1.0.
	IdeologyNone Ideology = ""

	IdeologyFascism     Ideology = "fascism"
	IdeologyDemocracy   Ideology = "democracy"
	IdeologyCommunism   Ideology = "communism"
	IdeologyTheocracy   Ideology = "theocracy"
	IdeologyAnarchy     Ideology = "anarchy"
	IdeologyDestruction Ideology = "destruction"
	IdeologyPacifist    Ideology = "pacifist"
)

// Valid reports whether the ideology is one of the playable set.
func (i Ideology) Valid() bool {
	switch i {
	case IdeologyFascism, IdeologyDemocracy, IdeologyCommunism,
		IdeologyTheocracy, IdeologyAnarchy, IdeologyDestruction, IdeologyPacifist:
		return true
	}
	return false
}

// Resources is the stockpile sub-document. Persisted as a JSON column.
type Resources struct {
	Gold  int `json:"gold"`
	Food  int `json:"food"`
	Stone int `json:"stone"`
	Wood  int `json:"wood"`
}

// Total sums every stockpile entry.
func (r Resources) Total() int { return r.Gold + r.Food + r.Stone + r.Wood }

// Population tracks citizens and the two bounded morale meters.
// Happiness and Hunger are always kept within [0, 100]; Employed never
// exceeds Citizens.
type Population struct {
	Citizens  int `json:"citizens"`
	Happiness int `json:"happiness"`
	Hunger    int `json:"hunger"`
	Employed  int `json:"employed"`
}

// EmploymentRate returns the employed fraction in [0, 1].
func (p Population) EmploymentRate() float64 {
	if p.Citizens <= 0 {
		return 0
	}
	return float64(p.Employed) / float64(p.Citizens)
}

// Military holds army counts and the tech level, capped at 10.
type Military struct {
	Soldiers  int `json:"soldiers"`
	Spies     int `json:"spies"`
	TechLevel int `json:"tech_level"`
}

// Territory is land area in square kilometers.
type Territory struct {
	LandSize int `json:"land_size"`
}

// Bonuses is an open-ended map of percentage modifiers accumulated from
// cards, store upgrades and items. Values are percent points; a value of
// 15 under "trade_profit" means +15%.
type Bonuses map[string]float64

// Bonus keys written by cards, upgrades and items.
const (
	BonusResourceProduction   = "resource_production"
	BonusSoldierTrainingSpeed = "soldier_training_speed"
	BonusTradeProfit          = "trade_profit"
	BonusPopulationGrowth     = "population_growth"
	BonusDefenseStrength      = "defense_strength"
	BonusSpyEffectiveness     = "spy_effectiveness"
	BonusFarm                 = "farm_bonus"
	BonusMine                 = "mine_bonus"
	BonusTrainingCostCut      = "training_cost_reduction"
	BonusDefense              = "defense_bonus"
	BonusTrade                = "trade_bonus"
	BonusTax                  = "tax_bonus"
	BonusTechSpeed            = "tech_speed"
	BonusFoodEfficiency       = "food_efficiency"
	BonusSpy                  = "spy_bonus"
	BonusNextActionCritical   = "next_action_critical"
)

// Civilization is the root aggregate. The game-state sub-documents are
// stored as JSON columns so the schema stays stable while the simulation
// evolves, mirroring the original store layout.
type Civilization struct {
	gorm.Model
	UserID   string   `json:"user_id" gorm:"uniqueIndex;size:64"`
	Name     string   `json:"name" gorm:"size:64"`
	Ideology Ideology `json:"ideology" gorm:"size:16"`

	Resources  Resources  `json:"resources" gorm:"serializer:json"`
	Population Population `json:"population" gorm:"serializer:json"`
	Military   Military   `json:"military" gorm:"serializer:json"`
	Territory  Territory  `json:"territory" gorm:"serializer:json"`

	HyperItems    []string `json:"hyper_items" gorm:"serializer:json"`
	Bonuses       Bonuses  `json:"bonuses" gorm:"serializer:json"`
	SelectedCards []string `json:"selected_cards" gorm:"serializer:json"`

	LastIncomeAt time.Time `json:"last_income_at"`
}

func (Civilization) TableName() string { return "civilizations" }

// HasItem reports whether the inventory contains the given item name.
func (c *Civilization) HasItem(name string) bool {
	for _, it := range c.HyperItems {
		if it == name {
			return true
		}
	}
	return false
}

// RemoveItem removes one copy of the named item from the inventory and
// reports whether anything was removed.
func (c *Civilization) RemoveItem(name string) bool {
	for i, it := range c.HyperItems {
		if it == name {
			c.HyperItems = append(c.HyperItems[:i], c.HyperItems[i+1:]...)
			return true
		}
	}
	return false
}

// Bonus returns the stored percent value for a key, zero when absent.
func (c *Civilization) Bonus(key string) float64 {
	if c.Bonuses == nil {
		return 0
	}
	return c.Bonuses[key]
}

// AddBonus accumulates percent points under a key.
func (c *Civilization) AddBonus(key string, points float64) {
	if c.Bonuses == nil {
		c.Bonuses = Bonuses{}
	}
	c.Bonuses[key] += points
}

// WarStatus describes a war row's lifecycle.
type WarStatus string

const (
	WarOngoing WarStatus = "ongoing"
	WarPeace   WarStatus = "peace"
	WarEnded   WarStatus = "ended"
)

// War is a directed conflict record between two civilizations.
type War struct {
	gorm.Model
	AttackerID uint      `json:"attacker_id" gorm:"index"`
	DefenderID uint      `json:"defender_id" gorm:"index"`
	Status     WarStatus `json:"status" gorm:"size:16;default:ongoing"`
}

func (War) TableName() string { return "wars" }

// OfferStatus is shared by peace offers, trades and alliance invites.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
	OfferExpired  OfferStatus = "expired"
)

// PeaceOffer is a pending proposal to end an ongoing war.
type PeaceOffer struct {
	gorm.Model
	WarID      uint        `json:"war_id" gorm:"index"`
	OffererID  uint        `json:"offerer_id" gorm:"index"`
	ReceiverID uint        `json:"receiver_id" gorm:"index"`
	Status     OfferStatus `json:"status" gorm:"size:16;default:pending"`
}

func (PeaceOffer) TableName() string { return "peace_offers" }

// Alliance is a named pact. The founder leads it; outsiders file a join
// request that only the leader may approve.
type Alliance struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:64;uniqueIndex"`
	LeaderID     uint   `json:"leader_id" gorm:"index"`
	Members      []uint `json:"members" gorm:"serializer:json"`
	JoinRequests []uint `json:"join_requests" gorm:"serializer:json"`
}

func (Alliance) TableName() string { return "alliances" }

// HasMember reports whether the civilization belongs to the alliance.
func (a *Alliance) HasMember(civID uint) bool {
	for _, id := range a.Members {
		if id == civID {
			return true
		}
	}
	return false
}

// HasJoinRequest reports whether the civilization has a pending request.
func (a *Alliance) HasJoinRequest(civID uint) bool {
	for _, id := range a.JoinRequests {
		if id == civID {
			return true
		}
	}
	return false
}

// RemoveJoinRequest drops the civilization's pending request and reports
// whether one existed.
func (a *Alliance) RemoveJoinRequest(civID uint) bool {
	for i, id := range a.JoinRequests {
		if id == civID {
			a.JoinRequests = append(a.JoinRequests[:i], a.JoinRequests[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMember drops the civilization from the member list and reports
// whether it was present.
func (a *Alliance) RemoveMember(civID uint) bool {
	for i, id := range a.Members {
		if id == civID {
			a.Members = append(a.Members[:i], a.Members[i+1:]...)
			return true
		}
	}
	return false
}

// TradeRequest offers a one-shot resource swap to another civilization.
type TradeRequest struct {
	gorm.Model
	SenderID   uint        `json:"sender_id" gorm:"index"`
	ReceiverID uint        `json:"receiver_id" gorm:"index"`
	Offer      Resources   `json:"offer" gorm:"serializer:json"`
	Request    Resources   `json:"request" gorm:"serializer:json"`
	Status     OfferStatus `json:"status" gorm:"size:16;default:pending"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

func (TradeRequest) TableName() string { return "trade_requests" }

// CardSelection holds the five candidate cards generated when a
// civilization's tech level strictly increases. Exactly one may be chosen.
type CardSelection struct {
	gorm.Model
	CivilizationID uint        `json:"civilization_id" gorm:"index"`
	TechLevel      int         `json:"tech_level"`
	Cards          []string    `json:"cards" gorm:"serializer:json"`
	Chosen         string      `json:"chosen"`
	Status         OfferStatus `json:"status" gorm:"size:16;default:pending"`
}

func (CardSelection) TableName() string { return "card_selections" }

// EventRecord is the append-only activity log shown in history queries
// and streamed on the live feed. Effects carries the structured state
// change when the entry came from a game event.
type EventRecord struct {
	gorm.Model
	CivilizationID uint    `json:"civilization_id" gorm:"index"`
	Kind           string  `json:"kind" gorm:"size:32;index"`
	Title          string  `json:"title" gorm:"size:128"`
	Description    string  `json:"description" gorm:"size:512"`
	Effects        *Effect `json:"effects,omitempty" gorm:"serializer:json"`
}

func (EventRecord) TableName() string { return "event_records" }

// Cooldown blocks a command for one civilization until ExpiresAt.
type Cooldown struct {
	gorm.Model
	CivilizationID uint      `json:"civilization_id" gorm:"index:idx_cooldown_cmd"`
	Command        string    `json:"command" gorm:"size:32;index:idx_cooldown_cmd"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (Cooldown) TableName() string { return "cooldowns" }
