package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gamenft/asset-portal/internal/adapter"
	"github.com/gamenft/asset-portal/internal/block"
	"github.com/gamenft/asset-portal/internal/config"
	"github.com/gamenft/asset-portal/internal/gameserver"
	"github.com/gamenft/asset-portal/internal/logger"
	"github.com/gamenft/asset-portal/internal/providers/ethereum"
	"github.com/gamenft/asset-portal/internal/reconciler"
	"github.com/gamenft/asset-portal/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ownership reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Dial the Ethereum node
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.Fatal("Failed to connect to Ethereum node", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum node", zap.Uint64("chain_id", cfg.Ethereum.ChainID))

	clock := adapter.NewClock()

	// Chain client and cached block head provider
	chain := ethereum.NewChainClient(ethClient, cfg.Ethereum.RequestTimeout)
	blocks := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(ethClient),
		block.Config{
			TTL:         cfg.Ethereum.BlockHeadTTL,
			StaleWindow: cfg.Ethereum.BlockHeadStaleWindow,
		},
		clock,
	)

	// Game server notifier
	httpClient := adapter.NewHTTPClient(cfg.GameServer.Timeout)
	notifier := gameserver.NewNotifier(gameserver.Config{
		URL:             cfg.GameServer.URL,
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, httpClient)
	defer notifier.Stop()

	rec := reconciler.New(
		reconciler.Config{PollInterval: cfg.Reconciler.PollInterval},
		dataStore,
		chain,
		blocks,
		notifier,
		clock,
	)

	// Run the reconciler in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- rec.Run(ctx)
	}()

	// Wait for interrupt signal or startup failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		// Wait for the collection loops to drain
		if err := <-errCh; err != nil {
			logger.Error(err, zap.String("component", "reconciler"))
		}
	case err := <-errCh:
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "reconciler"))
		}
		cancel()
	}

	logger.Info("Reconciler stopped")
}
