package service

import (
	"testing"
	"time"
)

func TestIncomeTickSkipsRecentlyPaid(t *testing.T) {
	r := newMemRepo()
	s := newTestService(r)
	c := mustCreateCiv(t, s, "u1", "Avalon")

	// A fresh nation was just stamped; the tick leaves it alone.
	before, _ := r.GetCivilizationByID(c.ID)
	s.runIncomeTick()
	after, _ := r.GetCivilizationByID(c.ID)
	if before.Resources != after.Resources {
		t.Fatal("expected no income inside the interval")
	}

	// Backdate the stamp past one interval and tick again.
	after.LastIncomeAt = time.Now().Add(-time.Duration(s.cfg.IncomeTickMinutes+1) * time.Minute)
	_ = r.UpdateCivilization(after)

	s.runIncomeTick()
	paid, _ := r.GetCivilizationByID(c.ID)
	if paid.Resources == after.Resources {
		t.Fatal("expected the income cycle to run once the interval passed")
	}
	if !paid.LastIncomeAt.After(after.LastIncomeAt) {
		t.Fatal("expected the income stamp refreshed")
	}
}
