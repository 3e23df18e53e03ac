package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gamenft/asset-portal/internal/config"
	"github.com/gamenft/asset-portal/internal/logger"
	"github.com/gamenft/asset-portal/internal/store"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

var (
	configFile      = flag.String("config", "", "Path to configuration file")
	envPath         = flag.String("env", "config/", "Path to environment files")
	gameName        = flag.String("game", "Minecraft", "Name of the demo game")
	collectionName  = flag.String("collection", "Minecraft Private Property NFT", "Name of the demo collection")
	contractAddress = flag.String("contract", "", "Contract address of the demo collection")
)

// Seeds a demo game with one collection and creates the schema tables
// if they do not exist yet.
func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "seed",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&schema.Game{},
		&schema.Collection{},
		&schema.Player{},
		&schema.Item{},
		&schema.MetadataAttribute{},
	); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	ctx := context.Background()
	dataStore := store.NewPGStore(db)

	game, err := dataStore.CreateGame(ctx, *gameName)
	if err != nil {
		logger.Fatal("Failed to create game", zap.Error(err))
	}
	logger.Info("Created game", zap.Int64("game_id", game.ID), zap.String("name", game.Name))

	collection, err := dataStore.CreateCollection(ctx, game.ID, *collectionName, *contractAddress)
	if err != nil {
		logger.Fatal("Failed to create collection", zap.Error(err))
	}
	logger.Info("Created collection",
		zap.Int64("collection_id", collection.ID),
		zap.String("name", collection.Name),
		zap.String("contract", collection.ContractAddress))
}
