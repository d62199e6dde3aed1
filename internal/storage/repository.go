package storage

import (
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

type Repository interface {
	CreateCivilization(c *game.Civilization) error
	GetCivilizationByID(id uint) (*game.Civilization, error)
	GetCivilizationByUser(userID string) (*game.Civilization, error)
	UpdateCivilization(c *game.Civilization) error
	DeleteCivilization(id uint) error
	ListCivilizations() ([]game.Civilization, error)

	CreateWar(w *game.War) error
	UpdateWar(w *game.War) error
	// FindOngoingWar returns the ongoing war between the two
	// civilizations in either direction, nil when none exists.
	FindOngoingWar(a, b uint) (*game.War, error)
	ListOngoingWars(civID uint) ([]game.War, error)

	CreatePeaceOffer(o *game.PeaceOffer) error
	UpdatePeaceOffer(o *game.PeaceOffer) error
	// FindPendingPeaceOffer returns the pending offer addressed to the
	// receiver for the given war, nil when none exists.
	FindPendingPeaceOffer(warID, receiverID uint) (*game.PeaceOffer, error)

	CreateAlliance(a *game.Alliance) error
	UpdateAlliance(a *game.Alliance) error
	DeleteAlliance(id uint) error
	// GetAllianceByName returns the alliance with that name, nil when
	// none exists.
	GetAllianceByName(name string) (*game.Alliance, error)
	// FindAllianceOf returns the alliance the civilization belongs to,
	// nil when it is unaligned.
	FindAllianceOf(civID uint) (*game.Alliance, error)

	CreateTrade(t *game.TradeRequest) error
	GetTradeByID(id uint) (*game.TradeRequest, error)
	UpdateTrade(t *game.TradeRequest) error
	// ExpirePendingTrades marks every pending trade past its deadline
	// as expired and returns how many rows changed.
	ExpirePendingTrades(now time.Time) (int64, error)

	CreateCardSelection(s *game.CardSelection) error
	UpdateCardSelection(s *game.CardSelection) error
	// FindPendingCardSelection returns the civilization's open
	// selection, nil when none is pending.
	FindPendingCardSelection(civID uint) (*game.CardSelection, error)

	GetCooldown(civID uint, command string) (*game.Cooldown, error)
	SetCooldown(civID uint, command string, expiresAt time.Time) error
	PurgeExpiredCooldowns(now time.Time) (int64, error)

	LogEvent(civID uint, kind, title, description string, effects *game.Effect) error
	RecentEvents(limit int) ([]game.EventRecord, error)
	EventsForCivilization(civID uint, limit int) ([]game.EventRecord, error)
}
