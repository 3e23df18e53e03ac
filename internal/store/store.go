package store

import (
	"context"

	"github.com/gamenft/asset-portal/internal/store/schema"
)

// LinkStatus is the outcome of a player link operation
type LinkStatus string

const (
	LinkStatusCreated     LinkStatus = "created"
	LinkStatusUpdated     LinkStatus = "updated"
	LinkStatusMerged      LinkStatus = "merged"
	LinkStatusNotModified LinkStatus = "not_modified"
)

// LinkResult is the tagged outcome of LinkPlayer. ChangedItems lists the
// items whose effective owner identity changed, attributes preloaded, so
// the caller can notify the game server for items carrying a uuid trait.
type LinkResult struct {
	Status       LinkStatus
	Player       *schema.Player
	ChangedItems []schema.Item
}

// AttributeInput is a single metadata attribute supplied at item creation
type AttributeInput struct {
	TraitType string
	Value     string
}

// CreateItemInput holds everything needed to create an item. Exactly one
// of PlayerID/PlayerAddress may be nil.
type CreateItemInput struct {
	GameID        int64
	CollectionID  int64
	PlayerID      *string
	PlayerAddress *string
	Name          string
	Description   string
	Image         string
	ExternalURL   *string
	Attributes    []AttributeInput
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetGameByID retrieves a game by its ID
	GetGameByID(ctx context.Context, id int64) (*schema.Game, error)
	// CreateGame creates a new game
	CreateGame(ctx context.Context, name string) (*schema.Game, error)

	// GetCollectionByID retrieves a collection by its ID
	GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error)
	// ListCollections retrieves all collections
	ListCollections(ctx context.Context) ([]schema.Collection, error)
	// CreateCollection creates a new collection for a game
	CreateCollection(ctx context.Context, gameID int64, name string, contractAddress string) (*schema.Collection, error)
	// SetCollectionCursor advances the last processed block for a collection.
	// The cursor never moves backwards; a smaller value is a no-op.
	SetCollectionCursor(ctx context.Context, collectionID int64, blockNumber uint64) error

	// CreateItem creates an item with its attributes, assigning the next
	// token ID in the collection
	CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error)
	// GetItemByPK retrieves an item with its attributes
	GetItemByPK(ctx context.Context, pk int64) (*schema.Item, error)
	// GetItemByTokenID retrieves an item by its on-chain token number
	GetItemByTokenID(ctx context.Context, collectionID int64, tokenID uint64) (*schema.Item, error)
	// GetItemsByPlayer retrieves all items owned by a player, attributes included
	GetItemsByPlayer(ctx context.Context, playerPK int64) ([]schema.Item, error)
	// MarkItemMinted flips the minted flag on an item
	MarkItemMinted(ctx context.Context, itemPK int64) error
	// ReassignItem points an item at a new owner
	ReassignItem(ctx context.Context, itemPK int64, newPlayerPK int64) error

	// GetPlayerByPK retrieves a player by primary key
	GetPlayerByPK(ctx context.Context, pk int64) (*schema.Player, error)
	// GetPlayerByAddress retrieves a player by wallet address within a game
	GetPlayerByAddress(ctx context.Context, gameID int64, address string) (*schema.Player, error)
	// FindOrCreatePlayer returns the player matching the supplied
	// identifiers, creating one when no match exists
	FindOrCreatePlayer(ctx context.Context, gameID int64, playerID *string, playerAddress *string) (*schema.Player, error)
	// UpsertPlayerByAddress returns the player for an address, creating a
	// half-linked row (nil player ID) when the address is unseen
	UpsertPlayerByAddress(ctx context.Context, gameID int64, address string) (*schema.Player, error)
	// LinkPlayer links a game identity with a wallet address, merging the
	// two half-identities when both already exist
	LinkPlayer(ctx context.Context, gameID int64, playerID string, address string) (*LinkResult, error)
}
