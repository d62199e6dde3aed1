package service

import (
	"context"
	"fmt"
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
)

// StartScheduler launches the background simulation loops: the world
// event tick, the passive income tick and the cleanup sweep. Each loop
// stops when the context is cancelled.
func (s *Service) StartScheduler(ctx context.Context) {
	go s.loop(ctx, time.Duration(s.cfg.EventTickMinutes)*time.Minute, s.runEventTick)
	go s.loop(ctx, time.Duration(s.cfg.IncomeTickMinutes)*time.Minute, s.runIncomeTick)
	go s.loop(ctx, time.Duration(s.cfg.CleanupTickMinutes)*time.Minute, s.runCleanup)
}

func (s *Service) loop(ctx context.Context, every time.Duration, tick func()) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// runEventTick rolls the random event tables, then applies each planned
// event under that civilization's lock, reloading the row first so a
// concurrent command is never overwritten.
func (s *Service) runEventTick() {
	civs, err := s.repo.ListCivilizations()
	if err != nil {
		logging.Error("event tick: failed to list civilizations", err, nil)
		return
	}

	for _, p := range s.eng.SelectEvents(s.tables, civs) {
		ev := p.Event
		unlock := s.locks.Lock(p.CivilizationID)
		c, err := s.repo.GetCivilizationByID(p.CivilizationID)
		if err != nil {
			unlock()
			continue
		}
		applied := s.eng.ApplyGameEvent(c, ev)
		if err := s.repo.UpdateCivilization(c); err != nil {
			logging.Error("event tick: failed to persist civilization", err, logging.Fields{
				constants.LogFieldCivID: c.ID,
			})
			unlock()
			continue
		}
		unlock()

		s.recordEvent(c.ID, "event", ev.Name,
			fmt.Sprintf("%s struck %s", ev.Name, c.Name), &ev.Effect)
		s.maybeOfferCards(c, applied.TechAdvanced)
	}
}

// runIncomeTick processes passive income, hunger, morale and civil-war
// risk for every civilization whose last income run is at least one
// interval old.
func (s *Service) runIncomeTick() {
	civs, err := s.repo.ListCivilizations()
	if err != nil {
		logging.Error("income tick: failed to list civilizations", err, nil)
		return
	}
	interval := time.Duration(s.cfg.IncomeTickMinutes) * time.Minute
	for i := range civs {
		id := civs[i].ID
		unlock := s.locks.Lock(id)

		c, err := s.repo.GetCivilizationByID(id)
		if err != nil {
			unlock()
			continue
		}
		if time.Since(c.LastIncomeAt) < interval {
			unlock()
			continue
		}

		s.eng.ProcessIncome(c)
		s.eng.ProcessHunger(c)
		revolted, grew := s.eng.ProcessHappiness(c)
		civilWar := s.eng.CheckCivilWar(c)

		if err := s.repo.UpdateCivilization(c); err != nil {
			logging.Error("income tick: failed to persist civilization", err, logging.Fields{
				constants.LogFieldCivID: c.ID,
			})
			unlock()
			continue
		}
		unlock()

		if revolted {
			s.record(c.ID, "revolt", "Revolt",
				fmt.Sprintf("unrest in %s: citizens abandoned the nation", c.Name))
		}
		if grew {
			s.record(c.ID, "growth", "Population Growth",
				fmt.Sprintf("%s is flourishing and its population grows", c.Name))
		}
		if civilWar {
			s.record(c.ID, "civil_war", "Civil War",
				fmt.Sprintf("civil war tore through %s", c.Name))
		}
	}
}

// runCleanup expires stale trades, drops finished cooldown rows and
// sweeps abandoned sacrifice confirmations.
func (s *Service) runCleanup() {
	now := time.Now()
	if n, err := s.repo.ExpirePendingTrades(now); err != nil {
		logging.Error("cleanup: failed to expire trades", err, nil)
	} else if n > 0 {
		logging.Info("cleanup: expired stale trades", logging.Fields{constants.LogFieldAmount: n})
	}
	if _, err := s.repo.PurgeExpiredCooldowns(now); err != nil {
		logging.Error("cleanup: failed to purge cooldowns", err, nil)
	}
	s.sacrifices.sweep()
}

// RecentEvents exposes the activity log.
func (s *Service) RecentEvents(limit int) ([]game.EventRecord, error) {
	return s.repo.RecentEvents(limit)
}

// EventsFor exposes one civilization's activity log.
func (s *Service) EventsFor(civID uint, limit int) ([]game.EventRecord, error) {
	if _, err := s.loadCiv(civID); err != nil {
		return nil, err
	}
	return s.repo.EventsForCivilization(civID, limit)
}
