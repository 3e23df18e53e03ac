package gameserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/gamenft/asset-portal/internal/adapter"
	"github.com/gamenft/asset-portal/internal/logger"
)

// ownerChange is the payload posted to the game server when an item
// with a uuid attribute changes owner on chain
type ownerChange struct {
	UUID     string  `json:"uuid"`
	NewOwner *string `json:"newOwner"`
}

// Config holds game server notifier configuration
type Config struct {
	// URL is the base URL of the game server
	URL string

	// WorkerPoolSize is the number of concurrent notification workers
	WorkerPoolSize int

	// WorkerQueueSize is the size of the notification queue
	WorkerQueueSize int
}

// Notifier delivers ownership change notifications to the game server.
// Delivery is best effort: failures are logged and never block reconciliation.
//
//go:generate mockgen -source=notifier.go -destination=../mocks/gameserver_notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// NotifyOwnerChange enqueues an ownership change notification
	NotifyOwnerChange(ctx context.Context, uuid string, newOwner *string)

	// Stop drains the queue and stops the workers
	Stop()
}

type notifier struct {
	url    string
	client adapter.HTTPClient
	pool   pond.Pool
}

func NewNotifier(cfg Config, client adapter.HTTPClient) Notifier {
	return &notifier{
		url:    cfg.URL,
		client: client,
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.WorkerQueueSize),
		),
	}
}

// NotifyOwnerChange enqueues an ownership change notification
func (n *notifier) NotifyOwnerChange(ctx context.Context, uuid string, newOwner *string) {
	if n.url == "" {
		logger.DebugCtx(ctx, "Game server URL not configured, skipping notification",
			zap.String("uuid", uuid))
		return
	}

	change := ownerChange{UUID: uuid, NewOwner: newOwner}
	n.pool.Go(func() {
		if err := n.post(ctx, change); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to notify game server: %w", err),
				zap.String("uuid", uuid))
		}
	})
}

func (n *notifier) post(ctx context.Context, change ownerChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal owner change: %w", err)
	}

	resp, err := n.client.Post(ctx, n.url+"/change-owner", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Game server notified",
		zap.String("uuid", change.UUID),
		zap.ByteString("response", resp))
	return nil
}

// Stop drains the queue and stops the workers
func (n *notifier) Stop() {
	n.pool.StopAndWait()
}
