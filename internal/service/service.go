package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/unkownPen/nationbotg-sub000/internal/config"
	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
	"github.com/unkownPen/nationbotg-sub000/internal/storage"
)

// Publisher receives every logged event for live delivery. The websocket
// hub implements it; tests use a nil-safe no-op.
type Publisher interface {
	Publish(ev game.EventRecord)
}

// Service ties the engine, the repository and the per-civilization
// locks together. All command entry points live on it.
type Service struct {
	repo   storage.Repository
	eng    *engine.Engine
	locks  *engine.CivLocks
	cfg    *config.LoadedConfig
	tables engine.EventTables
	pub    Publisher

	sacrifices *sacrificeBroker
}

func New(repo storage.Repository, eng *engine.Engine, cfg *config.LoadedConfig, pub Publisher) *Service {
	tables := engine.DefaultEventTables()
	if cfg.CatalogPath != "" {
		if cat, err := config.LoadCatalog(cfg.CatalogPath); err != nil {
			logging.Error("failed to load catalog, using built-in tables", err, logging.Fields{
				constants.LogFieldSource: cfg.CatalogPath,
			})
		} else {
			if len(cat.GlobalEvents) > 0 {
				tables.Global = cat.GlobalEvents
			}
			if len(cat.LocalEvents) > 0 {
				tables.Local = cat.LocalEvents
			}
			if pools := cat.IdeologyPools(); pools != nil {
				tables.Ideology = pools
			}
		}
	}
	return &Service{
		repo:       repo,
		eng:        eng,
		locks:      engine.NewCivLocks(),
		cfg:        cfg,
		tables:     tables,
		pub:        pub,
		sacrifices: newSacrificeBroker(time.Duration(cfg.SacrificeWindowSeconds) * time.Second),
	}
}

// Engine exposes the engine for read-only score computations.
func (s *Service) Engine() *engine.Engine { return s.eng }

func (s *Service) loadCiv(id uint) (*game.Civilization, error) {
	c, err := s.repo.GetCivilizationByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCivNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) loadTarget(id uint) (*game.Civilization, error) {
	c, err := s.repo.GetCivilizationByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// checkCooldown refuses a command still cooling down. It never writes;
// the cooldown is committed only after the command succeeds.
func (s *Service) checkCooldown(civID uint, command string) error {
	cd, err := s.repo.GetCooldown(civID, command)
	if err != nil {
		return err
	}
	if cd != nil && cd.ExpiresAt.After(time.Now()) {
		return fmt.Errorf("%w: %s ready in %s", ErrOnCooldown, command,
			time.Until(cd.ExpiresAt).Round(time.Second))
	}
	return nil
}

// commitCooldown arms the command's cooldown after successful execution.
func (s *Service) commitCooldown(civID uint, command string) {
	secs, ok := s.cfg.CooldownSeconds[command]
	if !ok || secs <= 0 {
		return
	}
	expires := time.Now().Add(time.Duration(secs) * time.Second)
	if err := s.repo.SetCooldown(civID, command, expires); err != nil {
		logging.Error("failed to store cooldown", err, logging.Fields{
			constants.LogFieldCivID:   civID,
			constants.LogFieldCommand: command,
		})
	}
}

// record logs an event row and feeds it to the live publisher.
func (s *Service) record(civID uint, kind, title, description string) {
	s.recordEvent(civID, kind, title, description, nil)
}

// recordEvent is record with the structured effects a game event
// carries.
func (s *Service) recordEvent(civID uint, kind, title, description string, effects *game.Effect) {
	if err := s.repo.LogEvent(civID, kind, title, description, effects); err != nil {
		logging.Error("failed to log event", err, logging.Fields{
			constants.LogFieldCivID: civID,
			constants.LogFieldEvent: kind,
		})
		return
	}
	if s.pub != nil {
		s.pub.Publish(game.EventRecord{
			CivilizationID: civID,
			Kind:           kind,
			Title:          title,
			Description:    description,
			Effects:        effects,
		})
	}
}

// maybeOfferCards opens a card selection when a command advanced the
// tech level. An already-pending selection is left alone.
func (s *Service) maybeOfferCards(c *game.Civilization, techAdvanced bool) {
	if !techAdvanced {
		return
	}
	pending, err := s.repo.FindPendingCardSelection(c.ID)
	if err != nil || pending != nil {
		return
	}
	sel := s.eng.GenerateCardSelection(c.ID, c.Military.TechLevel)
	if err := s.repo.CreateCardSelection(sel); err != nil {
		logging.Error("failed to create card selection", err, logging.Fields{
			constants.LogFieldCivID: c.ID,
		})
		return
	}
	s.record(c.ID, "card_offer", "Advancement Available",
		fmt.Sprintf("%s reached tech level %d and may choose an advancement card", c.Name, c.Military.TechLevel))
}
