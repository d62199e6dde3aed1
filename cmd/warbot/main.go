package main

import (
	"context"
	"os"
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/api"
	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
	"github.com/unkownPen/nationbotg-sub000/internal/service"
)

func main() {
	// Path may be provided via WARBOT_CONFIG or defaults to
	// ./warbot_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via WARBOT_DB.
	if dbPath := os.Getenv(constants.EnvDatabaseDSN); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if addr := os.Getenv(constants.EnvListenAddr); addr != "" {
		cfg.ServerAddress = addr
	}

	repo := createRepositoryOrExit(cfg.DatabasePath)
	eng := engine.New(time.Now().UnixNano())
	hub := api.NewFeedHub()
	svc := service.New(repo, eng, cfg, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.StartScheduler(ctx)

	router := api.SetupRouter(svc, hub)
	logging.Info("server listening", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("server exited", err, nil)
	}
}
