package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gamenft/asset-portal/internal/adapter"
	"github.com/gamenft/asset-portal/internal/block"
	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/gameserver"
	"github.com/gamenft/asset-portal/internal/logger"
	"github.com/gamenft/asset-portal/internal/providers/ethereum"
	"github.com/gamenft/asset-portal/internal/store"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

// Config holds reconciler configuration
type Config struct {
	// PollInterval is how long each collection loop sleeps between cycles
	PollInterval time.Duration
}

// Reconciler folds on-chain ERC-721 transfer events into the store,
// one polling loop per collection. Event application is idempotent so
// a crash between applying a batch and advancing the cursor only
// causes a harmless replay.
type Reconciler struct {
	config   Config
	store    store.Store
	chain    ethereum.ChainClient
	blocks   block.BlockProvider
	notifier gameserver.Notifier
	clock    adapter.Clock

	wg sync.WaitGroup
}

func New(
	config Config,
	s store.Store,
	chain ethereum.ChainClient,
	blocks block.BlockProvider,
	notifier gameserver.Notifier,
	clock adapter.Clock,
) *Reconciler {
	return &Reconciler{
		config:   config,
		store:    s,
		chain:    chain,
		blocks:   blocks,
		notifier: notifier,
		clock:    clock,
	}
}

// Run starts one watch loop per collection and blocks until ctx is
// cancelled. Collections created after startup are not picked up.
func (r *Reconciler) Run(ctx context.Context) error {
	collections, err := r.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	logger.InfoCtx(ctx, "Starting ownership reconciler",
		zap.Int("collections", len(collections)),
		zap.Duration("poll_interval", r.config.PollInterval))

	for _, col := range collections {
		if col.ContractAddress == "" {
			logger.WarnCtx(ctx, "Collection has no contract address, skipping",
				zap.Int64("collection_id", col.ID),
				zap.String("collection", col.Name))
			continue
		}

		r.wg.Add(1)
		go func(col schema.Collection) {
			defer r.wg.Done()
			r.watchCollection(ctx, col)
		}(col)
	}

	r.wg.Wait()
	return nil
}

// watchCollection polls one collection until ctx is cancelled. Cycle
// errors are logged and the loop reschedules.
func (r *Reconciler) watchCollection(ctx context.Context, col schema.Collection) {
	logger.InfoCtx(ctx, "Watching collection",
		zap.Int64("collection_id", col.ID),
		zap.String("contract", col.ContractAddress))

	for {
		if err := r.runCycle(ctx, col.ID); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("reconcile cycle failed: %w", err),
				zap.Int64("collection_id", col.ID),
				zap.String("contract", col.ContractAddress))
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stopped watching collection",
				zap.Int64("collection_id", col.ID))
			return
		case <-r.clock.After(r.config.PollInterval):
		}
	}
}

// runCycle performs a single poll cycle for a collection
func (r *Reconciler) runCycle(ctx context.Context, collectionID int64) error {
	// Re-read the collection so the cursor survives restarts and
	// out-of-band updates
	col, err := r.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}

	head, err := r.blocks.GetLatestBlock(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	var cursor uint64
	if col.LastProcessedBlock != nil {
		cursor = *col.LastProcessedBlock
	}

	if cursor >= head {
		logger.DebugCtx(ctx, "No new blocks",
			zap.Int64("collection_id", col.ID),
			zap.Uint64("cursor", cursor),
			zap.Uint64("head", head))
		return nil
	}

	events, err := r.chain.GetTransferLogs(ctx, col.ContractAddress, cursor+1, head)
	if err != nil {
		return fmt.Errorf("failed to fetch transfer logs: %w", err)
	}

	if len(events) > 0 {
		logger.InfoCtx(ctx, "Applying transfer events",
			zap.Int64("collection_id", col.ID),
			zap.Int("events", len(events)),
			zap.Uint64("from_block", cursor+1),
			zap.Uint64("to_block", head))
	}

	for _, event := range events {
		r.applyEvent(ctx, col, event)
	}

	// Advance the cursor only after the whole batch applied
	if err := r.store.SetCollectionCursor(ctx, col.ID, head); err != nil {
		return fmt.Errorf("failed to advance cursor: %w", err)
	}

	return nil
}

// applyEvent folds a single transfer event into the store. Per-event
// failures are absorbed so one bad event never blocks the batch.
func (r *Reconciler) applyEvent(ctx context.Context, col *schema.Collection, event domain.TransferEvent) {
	fields := []zap.Field{
		zap.Int64("collection_id", col.ID),
		zap.Uint64("token_id", event.TokenID),
		zap.String("tx_hash", event.TxHash),
	}

	item, err := r.store.GetItemByTokenID(ctx, col.ID, event.TokenID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			logger.WarnCtx(ctx, "Transfer for unknown item, skipping", fields...)
			return
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to look up item: %w", err), fields...)
		return
	}

	receiver, err := r.store.UpsertPlayerByAddress(ctx, col.GameID, event.To)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to upsert receiver: %w", err), fields...)
		return
	}

	switch event.Type() {
	case domain.EventTypeMint:
		r.applyMint(ctx, item, fields)
	default:
		r.applyTransfer(ctx, col, item, receiver, event, fields)
	}
}

// applyMint marks an item minted. Replays and already-minted items are
// warnings, not errors.
func (r *Reconciler) applyMint(ctx context.Context, item *schema.Item, fields []zap.Field) {
	if item.Minted {
		logger.WarnCtx(ctx, "Item is already minted", fields...)
		return
	}

	if err := r.store.MarkItemMinted(ctx, item.PK); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark item minted: %w", err), fields...)
		return
	}

	logger.InfoCtx(ctx, "Item marked as minted", fields...)
}

// applyTransfer reassigns an item to the receiver. Transfers from an
// address the store has never seen are skipped.
func (r *Reconciler) applyTransfer(ctx context.Context, col *schema.Collection, item *schema.Item, receiver *schema.Player, event domain.TransferEvent, fields []zap.Field) {
	_, err := r.store.GetPlayerByAddress(ctx, col.GameID, event.From)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			logger.WarnCtx(ctx, "Sender not found, skipping reassignment",
				append(fields, zap.String("from", event.From))...)
			return
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to look up sender: %w", err), fields...)
		return
	}

	if err := r.store.ReassignItem(ctx, item.PK, receiver.PK); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reassign item: %w", err), fields...)
		return
	}

	logger.InfoCtx(ctx, "Item reassigned",
		append(fields, zap.String("from", event.From), zap.String("to", event.To))...)

	if uuid := itemUUID(item); uuid != "" {
		r.notifier.NotifyOwnerChange(ctx, uuid, receiver.PlayerID)
	} else {
		logger.WarnCtx(ctx, "Item has no uuid attribute", fields...)
	}
}

// itemUUID returns the value of the item's uuid attribute, if any
func itemUUID(item *schema.Item) string {
	for _, attr := range item.Attributes {
		if attr.TraitType == domain.UUIDTraitType {
			return attr.Value
		}
	}
	return ""
}
