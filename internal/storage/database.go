package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// OpenAndMigrate opens the SQLite database at dsn and migrates every
// persisted model. The returned handle is shared by all repositories.
func OpenAndMigrate(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}

	if err := db.AutoMigrate(
		&game.Civilization{},
		&game.War{},
		&game.PeaceOffer{},
		&game.Alliance{},
		&game.TradeRequest{},
		&game.CardSelection{},
		&game.EventRecord{},
		&game.Cooldown{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
