package engine

import (
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// localEventBaseChance is the per-tick probability that a civilization
// suffers a local event at all, before the ideology frequency modifier.
const localEventBaseChance = 0.15

// AppliedEvent pairs an event with the civilization it hit; TechAdvanced
// tells the caller to generate a card selection.
type AppliedEvent struct {
	CivilizationID uint
	Event          game.GameEvent
	TechAdvanced   bool
}

// EventTables carries the pools an event tick rolls against. Config can
// override the compiled-in defaults.
type EventTables struct {
	Global   []game.GameEvent
	Local    []game.GameEvent
	Ideology map[game.Ideology][]game.GameEvent
}

// DefaultEventTables returns the built-in pools.
func DefaultEventTables() EventTables {
	return EventTables{
		Global:   game.GlobalEvents,
		Local:    game.LocalEvents,
		Ideology: game.IdeologyEvents,
	}
}

// PlannedEvent names an event destined for one civilization. It carries
// no state change of its own; the caller applies it with ApplyGameEvent
// under that civilization's lock.
type PlannedEvent struct {
	CivilizationID uint
	Event          game.GameEvent
}

// SelectEvents rolls one world tick: at most one entry of the global
// table fires (the first probability hit wins), striking every
// civilization when flagged global and a single random one otherwise.
// Each civilization then rolls its own local pool. Nothing is mutated;
// the returned plan is applied per civilization.
func (e *Engine) SelectEvents(tables EventTables, civs []game.Civilization) []PlannedEvent {
	var planned []PlannedEvent
	if len(civs) == 0 {
		return planned
	}

	for _, ev := range tables.Global {
		if !e.chance(ev.Probability) {
			continue
		}
		if ev.Global {
			for i := range civs {
				planned = append(planned, PlannedEvent{CivilizationID: civs[i].ID, Event: ev})
			}
		} else {
			c := civs[e.rand.Intn(len(civs))]
			planned = append(planned, PlannedEvent{CivilizationID: c.ID, Event: ev})
		}
		break
	}

	for i := range civs {
		c := &civs[i]
		p := localEventBaseChance * game.IdeologyModifier(c.Ideology, game.ModEventFrequency)
		if !e.chance(p) {
			continue
		}
		pool := append([]game.GameEvent{}, tables.Local...)
		pool = append(pool, tables.Ideology[c.Ideology]...)
		if ev, ok := e.pickWeighted(pool); ok {
			planned = append(planned, PlannedEvent{CivilizationID: c.ID, Event: ev})
		}
	}

	return planned
}

// pickWeighted selects from the pool with weight proportional to each
// event's probability.
func (e *Engine) pickWeighted(pool []game.GameEvent) (game.GameEvent, bool) {
	total := 0
	for _, ev := range pool {
		total += int(ev.Probability * 1000)
	}
	if total <= 0 {
		return game.GameEvent{}, false
	}
	pick := e.rand.Intn(total)
	for _, ev := range pool {
		pick -= int(ev.Probability * 1000)
		if pick < 0 {
			return ev, true
		}
	}
	return game.GameEvent{}, false
}

// ApplyGameEvent routes the event's effect through the clamped updates,
// sending territory changes through the event floor.
func (e *Engine) ApplyGameEvent(c *game.Civilization, ev game.GameEvent) AppliedEvent {
	eff := ev.Effect
	territory := eff.Territory
	eff.Territory = nil

	techAdvanced := e.ApplyEffect(c, eff)
	if territory != nil {
		e.ApplyEventTerritory(c, *territory)
	}
	return AppliedEvent{CivilizationID: c.ID, Event: ev, TechAdvanced: techAdvanced}
}
