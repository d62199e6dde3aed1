package engine

import (
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// Unit prices before the barracks discount.
const (
	soldierGoldCost = 50
	soldierFoodCost = 10
	spyGoldCost     = 100
	spyFoodCost     = 5
)

// TrainingResult reports a completed training order.
type TrainingResult struct {
	Requested int
	Trained   int
	Cost      game.Resources
	Critical  bool
}

// TrainingCost prices an order of n soldiers or spies, applying the
// barracks discount.
func (e *Engine) TrainingCost(c *game.Civilization, n int, spies bool) game.Resources {
	goldEach, foodEach := soldierGoldCost, soldierFoodCost
	if spies {
		goldEach, foodEach = spyGoldCost, spyFoodCost
	}
	discount := 1 - c.Bonus(game.BonusTrainingCostCut)/100
	return game.Resources{
		Gold: fractionOf(n*goldEach, discount),
		Food: fractionOf(n*foodEach, discount),
	}
}

// trainingModifier stacks the accumulated training-speed bonus on top
// of the ideology multiplier. Bonus points add to the table value, they
// do not compound it.
func trainingModifier(c *game.Civilization) float64 {
	return game.IdeologyModifier(c.Ideology, game.ModTraining) +
		c.Bonus(game.BonusSoldierTrainingSpeed)/100
}

// TrainSoldiers converts gold and food into soldiers. A strong training
// tradition sometimes yields extra recruits; a weak one sometimes loses
// some, but an order always produces at least one.
func (e *Engine) TrainSoldiers(c *game.Civilization, n int) (TrainingResult, bool) {
	return e.train(c, n, false)
}

// TrainSpies converts gold and food into spies under the same rules.
func (e *Engine) TrainSpies(c *game.Civilization, n int) (TrainingResult, bool) {
	return e.train(c, n, true)
}

func (e *Engine) train(c *game.Civilization, n int, spies bool) (TrainingResult, bool) {
	if n <= 0 {
		return TrainingResult{}, false
	}
	cost := e.TrainingCost(c, n, spies)
	if !e.Spend(c, cost) {
		return TrainingResult{}, false
	}

	trained := n
	critical := false
	mod := trainingModifier(c)
	swing := maxInt(1, n/10)
	switch {
	case mod > 1:
		if e.chance((mod - 1) * 0.5) {
			trained += swing
			critical = true
		}
	case mod < 1:
		if e.chance((1 - mod) * 0.5) {
			trained = maxInt(1, trained-swing)
		}
	}

	if spies {
		e.ApplyMilitary(c, game.MilitaryDelta{Spies: trained})
	} else {
		e.ApplyMilitary(c, game.MilitaryDelta{Soldiers: trained})
	}
	return TrainingResult{Requested: n, Trained: trained, Cost: cost, Critical: critical}, true
}
