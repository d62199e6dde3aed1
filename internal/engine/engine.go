package engine

import (
	"math/rand"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// Engine evaluates every game-state transition. It owns its random
// source; tests construct it with a fixed seed or override roll to make
// battle outcomes deterministic.
type Engine struct {
	rand *rand.Rand
	// roll produces the battle variance factor in [0.8, 1.2].
	roll func() float64
	// chanceFn, when set, replaces the probability roll. Test hook.
	chanceFn func(p float64) bool
}

func New(seed int64) *Engine {
	r := rand.New(rand.NewSource(seed))
	e := &Engine{rand: r}
	e.roll = func() float64 { return 0.8 + r.Float64()*0.4 }
	return e
}

// SetRoll replaces the battle variance source.
func (e *Engine) SetRoll(f func() float64) { e.roll = f }

// randInt returns a uniform integer in [lo, hi].
func (e *Engine) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rand.Intn(hi-lo+1)
}

// randFloat returns a uniform float in [lo, hi).
func (e *Engine) randFloat(lo, hi float64) float64 {
	return lo + e.rand.Float64()*(hi-lo)
}

func (e *Engine) chance(p float64) bool {
	if e.chanceFn != nil {
		return e.chanceFn(p)
	}
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return e.rand.Float64() < p
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fractionOf truncates n*f toward zero, never below zero.
func fractionOf(n int, f float64) int {
	v := int(float64(n) * f)
	if v < 0 {
		return 0
	}
	return v
}

// defenseStrength sums the permanent defensive bonuses in percent
// points. Fortification cards write defense_strength, the walls upgrade
// writes defense_bonus; both harden the same thing.
func defenseStrength(c *game.Civilization) float64 {
	return c.Bonus(game.BonusDefenseStrength) + c.Bonus(game.BonusDefense)
}

func spyEffectiveness(c *game.Civilization) float64 {
	return c.Bonus(game.BonusSpyEffectiveness) + c.Bonus(game.BonusSpy)
}
