package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

func writeTempCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeTempCatalog(t, `
global_events:
  - name: Comet Sighting
    probability: 0.02
    global: true
    effect:
      population:
        happiness: 5
local_events:
  - name: Bandit Raid
    probability: 0.10
    effect:
      resources:
        gold: -100
ideology_events:
  fascism:
    - name: Military Parade
      probability: 0.12
      effect:
        military:
          soldiers: 10
`))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.GlobalEvents) != 1 || cat.GlobalEvents[0].Name != "Comet Sighting" {
		t.Fatalf("global events = %+v", cat.GlobalEvents)
	}
	if !cat.GlobalEvents[0].Global {
		t.Error("expected the comet marked global")
	}
	if cat.GlobalEvents[0].Effect.Population == nil || cat.GlobalEvents[0].Effect.Population.Happiness != 5 {
		t.Fatalf("comet effect = %+v", cat.GlobalEvents[0].Effect)
	}
	if len(cat.LocalEvents) != 1 || cat.LocalEvents[0].Effect.Resources.Gold != -100 {
		t.Fatalf("local events = %+v", cat.LocalEvents)
	}

	pools := cat.IdeologyPools()
	events, ok := pools[game.IdeologyFascism]
	if !ok || len(events) != 1 || events[0].Effect.Military.Soldiers != 10 {
		t.Fatalf("ideology pools = %+v", pools)
	}
}

func TestLoadCatalogRejectsUnknownIdeology(t *testing.T) {
	_, err := LoadCatalog(writeTempCatalog(t, `
ideology_events:
  monarchy:
    - name: Coronation
      probability: 0.05
`))
	if err == nil || !strings.Contains(err.Error(), "unknown ideology") {
		t.Fatalf("expected an unknown ideology error, got %v", err)
	}
}

func TestLoadCatalogRejectsBadProbability(t *testing.T) {
	_, err := LoadCatalog(writeTempCatalog(t, `
local_events:
  - name: Jackpot
    probability: 1.5
`))
	if err == nil || !strings.Contains(err.Error(), "probability") {
		t.Fatalf("expected a probability error, got %v", err)
	}
}

func TestLoadCatalogRejectsNamelessEvent(t *testing.T) {
	_, err := LoadCatalog(writeTempCatalog(t, `
local_events:
  - probability: 0.1
`))
	if err == nil || !strings.Contains(err.Error(), "missing 'name'") {
		t.Fatalf("expected a missing name error, got %v", err)
	}
}

func TestIdeologyPoolsEmpty(t *testing.T) {
	cat := &Catalog{}
	if pools := cat.IdeologyPools(); pools != nil {
		t.Fatalf("expected nil pools, got %v", pools)
	}
}
