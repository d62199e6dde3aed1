package service

import (
	"sync"
	"time"
)

// sacrificeBroker keeps the armed-but-unconfirmed sacrifices. State is
// process-local on purpose; a restart simply forgets unconfirmed
// rituals.
type sacrificeBroker struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[uint]pendingSacrifice
}

type pendingSacrifice struct {
	targetID uint
	armedAt  time.Time
}

func newSacrificeBroker(window time.Duration) *sacrificeBroker {
	return &sacrificeBroker{
		window:  window,
		pending: make(map[uint]pendingSacrifice),
	}
}

// arm opens (or re-opens) the confirmation window for an owner.
func (b *sacrificeBroker) arm(ownerID, targetID uint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[ownerID] = pendingSacrifice{targetID: targetID, armedAt: time.Now()}
}

// confirm consumes the pending entry when still inside the window and
// returns the armed target.
func (b *sacrificeBroker) confirm(ownerID uint) (uint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pending[ownerID]
	if !ok {
		return 0, false
	}
	delete(b.pending, ownerID)
	if time.Since(p.armedAt) > b.window {
		return 0, false
	}
	return p.targetID, true
}

// sweep drops expired entries so the map does not grow unbounded.
func (b *sacrificeBroker) sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	for id, p := range b.pending {
		if now.Sub(p.armedAt) > b.window {
			delete(b.pending, id)
		}
	}
}
