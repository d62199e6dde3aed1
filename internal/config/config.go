package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	Ticks *struct {
		EventMinutes   int `json:"event_minutes"`
		IncomeMinutes  int `json:"income_minutes"`
		CleanupMinutes int `json:"cleanup_minutes"`
	} `json:"ticks"`
	Cooldowns map[string]int `json:"cooldown_seconds"`
	Trades    *struct {
		TTLMinutes int `json:"ttl_minutes"`
	} `json:"trades"`
	Sacrifice *struct {
		WindowSeconds int `json:"window_seconds"`
	} `json:"sacrifice"`
	// Optional YAML catalog overriding the built-in event tables.
	CatalogPath string `json:"catalog_path"`
}

// LoadedConfig is the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string

	EventTickMinutes   int
	IncomeTickMinutes  int
	CleanupTickMinutes int

	// CooldownSeconds maps a command name to its cooldown length.
	CooldownSeconds map[string]int

	TradeTTLMinutes        int
	SacrificeWindowSeconds int

	CatalogPath string
}

// Default cooldowns applied when the config file does not override a
// command.
var defaultCooldownSeconds = map[string]int{
	"harvest": 300,
	"attack":  600,
	"siege":   900,
	"stealth": 450,
	"train":   120,
}

// LoadConfig reads the JSON configuration at path. Every section is
// optional; missing values fall back to defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress:          ":8080",
		DatabasePath:           constants.DefaultDBPath,
		EventTickMinutes:       30,
		IncomeTickMinutes:      10,
		CleanupTickMinutes:     5,
		CooldownSeconds:        map[string]int{},
		TradeTTLMinutes:        60,
		SacrificeWindowSeconds: 30,
		CatalogPath:            rc.CatalogPath,
	}
	for k, v := range defaultCooldownSeconds {
		out.CooldownSeconds[k] = v
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	if rc.Ticks != nil {
		if rc.Ticks.EventMinutes > 0 {
			out.EventTickMinutes = rc.Ticks.EventMinutes
		}
		if rc.Ticks.IncomeMinutes > 0 {
			out.IncomeTickMinutes = rc.Ticks.IncomeMinutes
		}
		if rc.Ticks.CleanupMinutes > 0 {
			out.CleanupTickMinutes = rc.Ticks.CleanupMinutes
		}
	}
	for cmd, secs := range rc.Cooldowns {
		if secs < 0 {
			return nil, fmt.Errorf("config file %s: negative cooldown for %q", path, cmd)
		}
		out.CooldownSeconds[cmd] = secs
	}
	if rc.Trades != nil && rc.Trades.TTLMinutes > 0 {
		out.TradeTTLMinutes = rc.Trades.TTLMinutes
	}
	if rc.Sacrifice != nil && rc.Sacrifice.WindowSeconds > 0 {
		out.SacrificeWindowSeconds = rc.Sacrifice.WindowSeconds
	}

	return out, nil
}
