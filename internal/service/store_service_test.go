package service

import (
	"errors"
	"testing"
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"gorm.io/gorm"
)

func grantItem(t *testing.T, r *memRepo, civID uint, item string) {
	t.Helper()
	c, err := r.GetCivilizationByID(civID)
	if err != nil {
		t.Fatalf("GetCivilizationByID: %v", err)
	}
	c.HyperItems = append(c.HyperItems, item)
	if err := r.UpdateCivilization(c); err != nil {
		t.Fatalf("UpdateCivilization: %v", err)
	}
}

func grantGold(t *testing.T, r *memRepo, civID uint, gold int) {
	t.Helper()
	c, err := r.GetCivilizationByID(civID)
	if err != nil {
		t.Fatalf("GetCivilizationByID: %v", err)
	}
	c.Resources.Gold = gold
	if err := r.UpdateCivilization(c); err != nil {
		t.Fatalf("UpdateCivilization: %v", err)
	}
}

func TestBuyUpgradeValidation(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	c := mustCreateCiv(t, s, "u1", "Avalon")

	if _, err := s.BuyUpgrade(c.ID, "palace"); !errors.Is(err, ErrUpgradeUnknown) {
		t.Fatalf("expected ErrUpgradeUnknown, got %v", err)
	}
	// walls cost 1500 gold and 500 stone; a fresh nation has neither.
	if _, err := s.BuyUpgrade(c.ID, "walls"); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}

	cc, _ := r.GetCivilizationByID(c.ID)
	cc.Resources = game.Resources{Gold: 5000, Stone: 2000, Wood: 2000}
	_ = r.UpdateCivilization(cc)

	up, err := s.BuyUpgrade(c.ID, "walls")
	if err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	if up.Name != "walls" {
		t.Fatalf("bought %q", up.Name)
	}
	cc, _ = r.GetCivilizationByID(c.ID)
	if cc.Resources.Gold != 3500 || cc.Resources.Stone != 1500 {
		t.Fatalf("upgrade cost not charged: %+v", cc.Resources)
	}
	if cc.Bonus(game.BonusDefense) != 25 {
		t.Fatalf("defense bonus = %.0f, want 25", cc.Bonus(game.BonusDefense))
	}

	// A second set of walls is refused even with the treasury full.
	if _, err := s.BuyUpgrade(c.ID, "walls"); !errors.Is(err, ErrUpgradeOwned) {
		t.Fatalf("expected ErrUpgradeOwned, got %v", err)
	}
}

func TestVisitBlackMarketChargesFee(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	c := mustCreateCiv(t, s, "u1", "Avalon")

	// 500 starting gold cannot cover the 1000 gold door fee.
	if _, err := s.VisitBlackMarket(c.ID); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}

	grantGold(t, r, c.ID, 3000)
	item, err := s.VisitBlackMarket(c.ID)
	if err != nil {
		t.Fatalf("VisitBlackMarket: %v", err)
	}
	cc, _ := r.GetCivilizationByID(c.ID)
	if cc.Resources.Gold != 2000 {
		t.Fatalf("gold after the visit = %d, want 2000", cc.Resources.Gold)
	}
	if !cc.HasItem(item.Name) {
		t.Fatalf("rolled %q but it is not in the inventory", item.Name)
	}
	if item.Rarity == "" {
		t.Fatalf("every black market item carries a rarity tier: %+v", item)
	}
}

func TestBlackMarketPoolRarityMatchesWeight(t *testing.T) {
	want := map[int]string{
		35: game.RarityCommon,
		30: game.RarityCommon,
		20: game.RarityUncommon,
		8:  game.RarityRare,
		2:  game.RarityLegendary,
		1:  game.RarityLegendary,
	}
	for _, it := range game.BlackMarketPool {
		if it.Rarity != want[it.Weight] {
			t.Fatalf("%s: weight %d should be %s, got %s", it.Name, it.Weight, want[it.Weight], it.Rarity)
		}
	}
}

func TestUseItemValidation(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	a := mustCreateCiv(t, s, "u1", "Avalon")
	b := mustCreateCiv(t, s, "u2", "Borealis")

	if _, err := s.UseItem(a.ID, "Nuclear Warhead", b.ID); !errors.Is(err, ErrItemNotOwned) {
		t.Fatalf("expected ErrItemNotOwned, got %v", err)
	}

	grantItem(t, r, a.ID, "Nuclear Warhead")
	if _, err := s.UseItem(a.ID, "Nuclear Warhead", 0); !errors.Is(err, ErrItemNeedsTarget) {
		t.Fatalf("expected ErrItemNeedsTarget, got %v", err)
	}
	if _, err := s.UseItem(a.ID, "Nuclear Warhead", a.ID); !errors.Is(err, ErrSelfTarget) {
		t.Fatalf("expected ErrSelfTarget, got %v", err)
	}

	res, err := s.UseItem(a.ID, "Nuclear Warhead", b.ID)
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if !res.Success {
		t.Fatalf("strike failed: %+v", res)
	}
	ac, _ := r.GetCivilizationByID(a.ID)
	if ac.HasItem("Nuclear Warhead") {
		t.Fatal("the warhead must be consumed")
	}
	bc, _ := r.GetCivilizationByID(b.ID)
	if bc.Military.Soldiers >= 10 {
		t.Fatalf("defender soldiers untouched: %d", bc.Military.Soldiers)
	}
}

func TestSacrificeNeedsConfirmation(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	a := mustCreateCiv(t, s, "u1", "Avalon")
	b := mustCreateCiv(t, s, "u2", "Borealis")

	if _, err := s.ConfirmSacrifice(a.ID); !errors.Is(err, ErrSacrificeNotPending) {
		t.Fatalf("expected ErrSacrificeNotPending, got %v", err)
	}

	grantItem(t, r, a.ID, game.ItemAltar)
	res, err := s.UseItem(a.ID, game.ItemAltar, b.ID)
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if res.Command != game.ItemCmdSacrifice {
		t.Fatalf("unexpected result %+v", res)
	}
	// Arming must not consume the altar.
	ac, _ := r.GetCivilizationByID(a.ID)
	if !ac.HasItem(game.ItemAltar) {
		t.Fatal("the altar must survive until confirmation")
	}

	res, err = s.ConfirmSacrifice(a.ID)
	if err != nil {
		t.Fatalf("ConfirmSacrifice: %v", err)
	}
	if len(res.Obliterated) != 2 {
		t.Fatalf("obliterated %v, want both nations", res.Obliterated)
	}
	if _, err := r.GetCivilizationByID(a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("expected the owner's row deleted")
	}
	if _, err := r.GetCivilizationByID(b.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("expected the target's row deleted")
	}

	// The window is single use.
	if _, err := s.ConfirmSacrifice(a.ID); !errors.Is(err, ErrSacrificeNotPending) {
		t.Fatalf("expected ErrSacrificeNotPending after the ritual, got %v", err)
	}
}

func TestSacrificeReflectedByMirrorSparesTarget(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	a := mustCreateCiv(t, s, "u1", "Avalon")
	b := mustCreateCiv(t, s, "u2", "Borealis")

	grantItem(t, r, a.ID, game.ItemAltar)
	grantItem(t, r, b.ID, game.ItemMirror)
	if _, err := s.UseItem(a.ID, game.ItemAltar, b.ID); err != nil {
		t.Fatalf("UseItem: %v", err)
	}

	res, err := s.ConfirmSacrifice(a.ID)
	if err != nil {
		t.Fatalf("ConfirmSacrifice: %v", err)
	}
	if !res.Reflected {
		t.Fatalf("expected the mirror to reflect: %+v", res)
	}
	// The ritual consumes only the one who lit the altar.
	if _, err := r.GetCivilizationByID(a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("expected the owner's row deleted")
	}
	bc, err := r.GetCivilizationByID(b.ID)
	if err != nil {
		t.Fatal("the mirror holder must survive")
	}
	if bc.HasItem(game.ItemMirror) {
		t.Fatal("the mirror must be consumed")
	}
}

func TestSacrificeWindowExpires(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	a := mustCreateCiv(t, s, "u1", "Avalon")
	b := mustCreateCiv(t, s, "u2", "Borealis")

	grantItem(t, r, a.ID, game.ItemAltar)
	if _, err := s.UseItem(a.ID, game.ItemAltar, b.ID); err != nil {
		t.Fatalf("UseItem: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)
	if _, err := s.ConfirmSacrifice(a.ID); !errors.Is(err, ErrSacrificeNotPending) {
		t.Fatalf("expected the lapsed window refused, got %v", err)
	}
	ac, _ := r.GetCivilizationByID(a.ID)
	if !ac.HasItem(game.ItemAltar) {
		t.Fatal("a lapsed ritual must not consume the altar")
	}
}

func TestShieldBlocksIncomingStrike(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	a := mustCreateCiv(t, s, "u1", "Avalon")
	b := mustCreateCiv(t, s, "u2", "Borealis")

	grantItem(t, r, a.ID, "Missiles")
	grantItem(t, r, b.ID, "Anti-Nuke Shield")

	res, err := s.UseItem(a.ID, "Missiles", b.ID)
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if !res.Blocked {
		t.Fatalf("expected the shield to fire: %+v", res)
	}
	bc, _ := r.GetCivilizationByID(b.ID)
	if bc.HasItem("Anti-Nuke Shield") {
		t.Fatal("the shield must be consumed by the block")
	}
	if bc.Population.Happiness != 50 || bc.Military.Soldiers != 10 {
		t.Fatalf("blocked strike still landed: %+v", bc)
	}
	ac, _ := r.GetCivilizationByID(a.ID)
	if ac.HasItem("Missiles") {
		t.Fatal("the missiles are spent even when blocked")
	}
}
