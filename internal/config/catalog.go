package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// Catalog overrides the built-in event tables from a YAML file. Any
// section left empty keeps the compiled-in pool.
type Catalog struct {
	GlobalEvents   []game.GameEvent            `yaml:"global_events"`
	LocalEvents    []game.GameEvent            `yaml:"local_events"`
	IdeologyEvents map[string][]game.GameEvent `yaml:"ideology_events"`
}

// LoadCatalog parses the YAML catalog at path and validates the
// ideology keys and probabilities.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for key := range cat.IdeologyEvents {
		if !game.Ideology(key).Valid() {
			return nil, fmt.Errorf("catalog file %s: unknown ideology %q", path, key)
		}
	}
	check := func(section string, events []game.GameEvent) error {
		for _, ev := range events {
			if ev.Name == "" {
				return fmt.Errorf("catalog file %s: %s entry missing 'name'", path, section)
			}
			if ev.Probability < 0 || ev.Probability > 1 {
				return fmt.Errorf("catalog file %s: event %q probability out of [0,1]", path, ev.Name)
			}
		}
		return nil
	}
	if err := check("global_events", cat.GlobalEvents); err != nil {
		return nil, err
	}
	if err := check("local_events", cat.LocalEvents); err != nil {
		return nil, err
	}
	for key, events := range cat.IdeologyEvents {
		if err := check("ideology_events."+key, events); err != nil {
			return nil, err
		}
	}

	return &cat, nil
}

// IdeologyPools converts the string-keyed YAML map to typed ideologies.
func (c *Catalog) IdeologyPools() map[game.Ideology][]game.GameEvent {
	if len(c.IdeologyEvents) == 0 {
		return nil
	}
	out := make(map[game.Ideology][]game.GameEvent, len(c.IdeologyEvents))
	for key, events := range c.IdeologyEvents {
		out[game.Ideology(key)] = events
	}
	return out
}
