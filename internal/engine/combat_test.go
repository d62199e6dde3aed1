package engine

import (
	"testing"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

func TestCombatStrengthFormula(t *testing.T) {
	e := New(1)
	c := newTestCiv()
	c.Ideology = game.IdeologyDestruction
	c.Military.Soldiers = 100
	c.Military.Spies = 10
	c.Military.TechLevel = 5
	c.Territory.LandSize = 1000

	// soldiers*10 + spies*5 + tech*50 + land/100, untouched by
	// ideology. Battle variance applies ideology at roll time instead.
	if got := e.CombatStrength(c); got != 1310 {
		t.Fatalf("expected strength 1310, got %f", got)
	}

	c.AddBonus(game.BonusDefense, 25)
	if got := e.CombatStrength(c); got != 1310*1.25 {
		t.Fatalf("expected defense to scale strength to %f, got %f", 1310*1.25, got)
	}
}

func TestResolveAttackNeedsSoldiers(t *testing.T) {
	e := New(1)
	attacker := newTestCiv()
	attacker.Military.Soldiers = 9
	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2

	before := defender.Resources
	if _, ok := e.ResolveAttack(attacker, defender); ok {
		t.Fatal("expected attack refused below ten soldiers")
	}
	if defender.Resources != before {
		t.Fatal("refused attack must not move resources")
	}
}

func TestResolveAttackVictory(t *testing.T) {
	e := New(1)
	e.SetRoll(func() float64 { return 1.0 })

	attacker := newTestCiv()
	attacker.Military.Soldiers = 200
	attacker.Military.TechLevel = 5

	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2
	defender.Military.Soldiers = 80
	defender.Resources = game.Resources{Gold: 1000, Food: 1000, Stone: 1000, Wood: 1000}
	defender.Territory.LandSize = 2000

	wantSpoilsGold := 150 // 15% of 1000
	wantLand := 100       // 5% of 2000
	attGoldBefore := attacker.Resources.Gold
	attLandBefore := attacker.Territory.LandSize

	res, ok := e.ResolveAttack(attacker, defender)
	if !ok {
		t.Fatal("expected the attack to proceed")
	}

	if !res.Victory {
		t.Fatalf("expected the stronger attacker to win: %+v", res)
	}
	if res.Spoils.Gold != wantSpoilsGold {
		t.Fatalf("expected %d gold spoils, got %d", wantSpoilsGold, res.Spoils.Gold)
	}
	if res.TerritoryGained != wantLand {
		t.Fatalf("expected %d km² gained, got %d", wantLand, res.TerritoryGained)
	}
	if attacker.Resources.Gold != attGoldBefore+wantSpoilsGold {
		t.Fatalf("spoils not credited: gold=%d", attacker.Resources.Gold)
	}
	if attacker.Territory.LandSize != attLandBefore+wantLand {
		t.Fatalf("territory not transferred: land=%d", attacker.Territory.LandSize)
	}
	if defender.Territory.LandSize != 1900 {
		t.Fatalf("expected defender land 1900, got %d", defender.Territory.LandSize)
	}
	if res.AttackerLosses < 2 || res.AttackerLosses > 8 {
		t.Fatalf("attacker losses out of range: %d", res.AttackerLosses)
	}
	if res.DefenderLosses < res.AttackerLosses {
		t.Fatalf("defender of a lost battle should bleed at least the victor's losses, got %d vs %d",
			res.DefenderLosses, res.AttackerLosses)
	}
}

func TestResolveAttackDefeatCostsHappiness(t *testing.T) {
	e := New(1)
	e.SetRoll(func() float64 { return 1.0 })

	attacker := newTestCiv()
	attacker.Military.Soldiers = 20

	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2
	defender.Military.Soldiers = 300
	defender.Military.TechLevel = 5

	before := attacker.Population.Happiness
	res, ok := e.ResolveAttack(attacker, defender)
	if !ok {
		t.Fatal("expected the attack to proceed")
	}

	if res.Victory {
		t.Fatalf("expected the weaker attacker to lose: %+v", res)
	}
	if attacker.Population.Happiness != before-10 {
		t.Fatalf("expected -10 happiness on defeat, got %d", attacker.Population.Happiness)
	}
}

func TestUnderdogCorrection(t *testing.T) {
	e := New(1)

	// At or above half strength, nothing changes.
	if roll, upset := e.underdogCorrection(0.5, 1.0); roll != 1.0 || upset {
		t.Fatalf("expected no correction at ratio 0.5, got %f upset=%v", roll, upset)
	}

	// Halfway down the ramp: +20%.
	roll, _ := e.underdogCorrection(0.25, 1.0)
	if roll < 1.199 || roll > 1.201 {
		t.Fatalf("expected about 1.2 at ratio 0.25, got %f", roll)
	}

	// At zero ratio the ramp tops out at +40% before any upset bonus.
	noUpset := New(1)
	noUpset.chanceOverride(false)
	roll, upset := noUpset.underdogCorrection(0.0, 1.0)
	if upset {
		t.Fatal("upset forced off")
	}
	if roll < 1.399 || roll > 1.401 {
		t.Fatalf("expected 1.4 at ratio 0, got %f", roll)
	}

	forced := New(1)
	forced.chanceOverride(true)
	roll, upset = forced.underdogCorrection(0.1, 1.0)
	if !upset {
		t.Fatal("expected forced dramatic upset below ratio 0.25")
	}
	want := (1 + 0.4*(0.5-0.1)/0.5) * 1.5
	if roll < want-1e-9 || roll > want+1e-9 {
		t.Fatalf("expected upset roll %f, got %f", want, roll)
	}
}

func TestResolveSiegeRequirements(t *testing.T) {
	e := New(1)
	attacker := newTestCiv()
	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2

	// Too few soldiers.
	attacker.Military.Soldiers = 49
	if _, ok := e.ResolveSiege(attacker, defender); ok {
		t.Fatal("expected siege refused below the soldier minimum")
	}

	// Unaffordable maintenance aborts without any effect.
	attacker.Military.Soldiers = 100
	attacker.Resources = game.Resources{Gold: 100, Food: 100}
	defGold := defender.Resources.Gold
	if _, ok := e.ResolveSiege(attacker, defender); ok {
		t.Fatal("expected siege refused when maintenance is unaffordable")
	}
	if attacker.Resources.Gold != 100 || defender.Resources.Gold != defGold {
		t.Fatal("refused siege must not move any resources")
	}

	// Affordable siege drains the defender and pays maintenance.
	attacker.Resources = game.Resources{Gold: 1000, Food: 1000}
	defender.Resources = game.Resources{Gold: 1000, Food: 1000, Stone: 500, Wood: 500}
	res, ok := e.ResolveSiege(attacker, defender)
	if !ok {
		t.Fatal("expected siege to proceed")
	}
	if res.Maintenance.Gold != 200 || res.Maintenance.Food != 300 {
		t.Fatalf("unexpected maintenance: %+v", res.Maintenance)
	}
	if defender.Resources.Gold >= 1000 {
		t.Fatal("expected the defender's gold to be drained")
	}
	// The besieger only pays: maintenance out, nothing looted in.
	if attacker.Resources.Gold != 1000-res.Maintenance.Gold {
		t.Fatalf("a siege must not credit the attacker, gold=%d", attacker.Resources.Gold)
	}
	if attacker.Resources.Food != 1000-res.Maintenance.Food {
		t.Fatalf("a siege must not credit the attacker, food=%d", attacker.Resources.Food)
	}
	if defender.Population.Happiness != 35 {
		t.Fatalf("expected defender at 35 happiness, got %d", defender.Population.Happiness)
	}
}

func TestResolveStealthNeedsSpies(t *testing.T) {
	e := New(1)
	attacker := newTestCiv()
	attacker.Military.Spies = 2
	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2

	if _, ok := e.ResolveStealth(attacker, defender); ok {
		t.Fatal("expected stealth refused below three spies")
	}
}

func TestStealthChanceClamped(t *testing.T) {
	e := New(1)
	attacker := newTestCiv()
	attacker.Military.Spies = 100
	attacker.Military.TechLevel = 10
	defender := NewCivilization("u2", "Borealis", game.IdeologyDemocracy)
	defender.ID = 2

	if p := e.stealthChance(attacker, defender); p != 0.9 {
		t.Fatalf("expected chance capped at 0.9, got %f", p)
	}

	attacker.Military.Spies = 3
	attacker.Military.TechLevel = 1
	defender.Military.Spies = 100
	defender.Military.TechLevel = 10
	if p := e.stealthChance(attacker, defender); p != 0.2 {
		t.Fatalf("expected chance floored at 0.2, got %f", p)
	}
}
