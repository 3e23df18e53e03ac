package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetGameByID retrieves a game by its ID
func (s *pgStore) GetGameByID(ctx context.Context, id int64) (*schema.Game, error) {
	var game schema.Game
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// CreateGame creates a new game
func (s *pgStore) CreateGame(ctx context.Context, name string) (*schema.Game, error) {
	game := schema.Game{Name: name}
	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// GetCollectionByID retrieves a collection by its ID
func (s *pgStore) GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// ListCollections retrieves all collections
func (s *pgStore) ListCollections(ctx context.Context) ([]schema.Collection, error) {
	var collections []schema.Collection
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// CreateCollection creates a new collection for a game
func (s *pgStore) CreateCollection(ctx context.Context, gameID int64, name string, contractAddress string) (*schema.Collection, error) {
	collection := schema.Collection{
		GameID:          gameID,
		Name:            name,
		ContractAddress: domain.NormalizeAddress(contractAddress),
	}
	if err := s.db.WithContext(ctx).Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return &collection, nil
}

// SetCollectionCursor advances the last processed block for a collection.
// The guarded update keeps the cursor monotonically non-decreasing: an
// attempt to rewind matches no row and is dropped.
func (s *pgStore) SetCollectionCursor(ctx context.Context, collectionID int64, blockNumber uint64) error {
	result := s.db.WithContext(ctx).Model(&schema.Collection{}).
		Where("id = ? AND (last_processed_block IS NULL OR last_processed_block <= ?)", collectionID, blockNumber).
		Update("last_processed_block", blockNumber)
	if result.Error != nil {
		return fmt.Errorf("failed to set collection cursor: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the collection is gone or the stored cursor is ahead.
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.Collection{}).
			Where("id = ?", collectionID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check collection: %w", err)
		}
		if count == 0 {
			return domain.ErrCollectionNotFound
		}
	}

	return nil
}

// CreateItem creates an item with its attributes. The collection row is
// locked for the duration of the transaction so that concurrent creations
// cannot observe the same max token ID.
func (s *pgStore) CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error) {
	var created schema.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collection schema.Collection
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND game_id = ?", input.CollectionID, input.GameID).
			First(&collection).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCollectionNotFound
			}
			return fmt.Errorf("failed to lock collection: %w", err)
		}

		player, err := findOrCreatePlayer(tx, input.GameID, input.PlayerID, input.PlayerAddress)
		if err != nil {
			return err
		}

		var maxTokenID uint64
		err = tx.Model(&schema.Item{}).
			Where("collection_id = ?", input.CollectionID).
			Select("COALESCE(MAX(token_id), 0)").
			Scan(&maxTokenID).Error
		if err != nil {
			return fmt.Errorf("failed to get max token id: %w", err)
		}

		attributes := make([]schema.MetadataAttribute, len(input.Attributes))
		for i, attr := range input.Attributes {
			attributes[i] = schema.MetadataAttribute{
				TraitType: attr.TraitType,
				Value:     attr.Value,
			}
		}

		created = schema.Item{
			PlayerPK:     player.PK,
			CollectionID: input.CollectionID,
			Name:         input.Name,
			Description:  input.Description,
			Image:        input.Image,
			ExternalURL:  input.ExternalURL,
			TokenID:      maxTokenID + 1,
			Attributes:   attributes,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetItemByPK retrieves an item with its attributes
func (s *pgStore) GetItemByPK(ctx context.Context, pk int64) (*schema.Item, error) {
	var item schema.Item
	err := s.db.WithContext(ctx).
		Preload("Attributes").
		Where("pk = ?", pk).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// GetItemByTokenID retrieves an item by its on-chain token number
func (s *pgStore) GetItemByTokenID(ctx context.Context, collectionID int64, tokenID uint64) (*schema.Item, error) {
	var item schema.Item
	err := s.db.WithContext(ctx).
		Preload("Attributes").
		Where("collection_id = ? AND token_id = ?", collectionID, tokenID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// GetItemsByPlayer retrieves all items owned by a player
func (s *pgStore) GetItemsByPlayer(ctx context.Context, playerPK int64) ([]schema.Item, error) {
	var items []schema.Item
	err := s.db.WithContext(ctx).
		Preload("Attributes").
		Where("player_pk = ?", playerPK).
		Order("pk ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items by player: %w", err)
	}
	return items, nil
}

// MarkItemMinted flips the minted flag on an item
func (s *pgStore) MarkItemMinted(ctx context.Context, itemPK int64) error {
	result := s.db.WithContext(ctx).Model(&schema.Item{}).
		Where("pk = ?", itemPK).
		Updates(map[string]interface{}{"minted": true, "updated_at": gorm.Expr("now()")})
	if result.Error != nil {
		return fmt.Errorf("failed to mark item minted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ReassignItem points an item at a new owner
func (s *pgStore) ReassignItem(ctx context.Context, itemPK int64, newPlayerPK int64) error {
	result := s.db.WithContext(ctx).Model(&schema.Item{}).
		Where("pk = ?", itemPK).
		Updates(map[string]interface{}{"player_pk": newPlayerPK, "updated_at": gorm.Expr("now()")})
	if result.Error != nil {
		return fmt.Errorf("failed to reassign item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// GetPlayerByPK retrieves a player by primary key
func (s *pgStore) GetPlayerByPK(ctx context.Context, pk int64) (*schema.Player, error) {
	var player schema.Player
	err := s.db.WithContext(ctx).Where("pk = ?", pk).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

// GetPlayerByAddress retrieves a player by wallet address within a game
func (s *pgStore) GetPlayerByAddress(ctx context.Context, gameID int64, address string) (*schema.Player, error) {
	var player schema.Player
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND player_address = ?", gameID, domain.NormalizeAddress(address)).
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

// FindOrCreatePlayer returns the player matching the supplied identifiers,
// creating one when no match exists
func (s *pgStore) FindOrCreatePlayer(ctx context.Context, gameID int64, playerID *string, playerAddress *string) (*schema.Player, error) {
	var player *schema.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		player, err = findOrCreatePlayer(tx, gameID, playerID, playerAddress)
		return err
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// UpsertPlayerByAddress returns the player for an address, creating a
// half-linked row when the address is unseen
func (s *pgStore) UpsertPlayerByAddress(ctx context.Context, gameID int64, address string) (*schema.Player, error) {
	return s.FindOrCreatePlayer(ctx, gameID, nil, &address)
}

// findOrCreatePlayer looks a player up by player ID first, then by
// address, creating a new row when neither matches. Runs inside the
// caller's transaction.
func findOrCreatePlayer(tx *gorm.DB, gameID int64, playerID *string, playerAddress *string) (*schema.Player, error) {
	if playerID == nil && playerAddress == nil {
		return nil, domain.ErrPlayerNotFound
	}

	var normalized *string
	if playerAddress != nil {
		addr := domain.NormalizeAddress(*playerAddress)
		normalized = &addr
	}

	var player schema.Player
	if playerID != nil {
		err := tx.Where("game_id = ? AND player_id = ?", gameID, *playerID).First(&player).Error
		if err == nil {
			return &player, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find player by id: %w", err)
		}
	}

	if normalized != nil {
		err := tx.Where("game_id = ? AND player_address = ?", gameID, *normalized).First(&player).Error
		if err == nil {
			return &player, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find player by address: %w", err)
		}
	}

	player = schema.Player{
		GameID:        gameID,
		PlayerID:      playerID,
		PlayerAddress: normalized,
	}
	if err := tx.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &player, nil
}

// LinkPlayer links a game identity with a wallet address. The decision
// table is evaluated in order inside one transaction; the merge branch
// reassigns items, deletes the address row and completes the identity row
// atomically so a failure cannot orphan items.
func (s *pgStore) LinkPlayer(ctx context.Context, gameID int64, playerID string, address string) (*LinkResult, error) {
	address = domain.NormalizeAddress(address)

	var result LinkResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var byID, byAddress *schema.Player

		var p schema.Player
		err := tx.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&p).Error
		if err == nil {
			byID = &p
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find player by id: %w", err)
		}

		var q schema.Player
		err = tx.Where("game_id = ? AND player_address = ?", gameID, address).First(&q).Error
		if err == nil {
			byAddress = &q
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find player by address: %w", err)
		}

		switch {
		case byID != nil && byAddress != nil && byID.PK == byAddress.PK:
			result = LinkResult{Status: LinkStatusNotModified, Player: byID}
			return nil

		case byID != nil && byAddress != nil:
			// Two half-identities: fold the address row into the id row.
			if err := tx.Model(&schema.Item{}).
				Where("player_pk = ?", byAddress.PK).
				Updates(map[string]interface{}{"player_pk": byID.PK, "updated_at": gorm.Expr("now()")}).Error; err != nil {
				return fmt.Errorf("failed to reassign items: %w", err)
			}
			if err := tx.Delete(&schema.Player{}, "pk = ?", byAddress.PK).Error; err != nil {
				return fmt.Errorf("failed to delete player: %w", err)
			}
			byID.PlayerAddress = &address
			if err := tx.Save(byID).Error; err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
			result = LinkResult{Status: LinkStatusMerged, Player: byID}
			return nil

		case byID != nil:
			if byID.PlayerAddress != nil {
				return domain.ErrAddressConflict
			}
			byID.PlayerAddress = &address
			if err := tx.Save(byID).Error; err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
			result = LinkResult{Status: LinkStatusUpdated, Player: byID}
			return nil

		case byAddress != nil:
			if byAddress.PlayerID != nil {
				return domain.ErrPlayerIDConflict
			}
			byAddress.PlayerID = &playerID
			if err := tx.Save(byAddress).Error; err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
			// Items previously held by the bare address now belong to a
			// named identity; the caller propagates the change downstream.
			var items []schema.Item
			if err := tx.Preload("Attributes").
				Where("player_pk = ?", byAddress.PK).
				Find(&items).Error; err != nil {
				return fmt.Errorf("failed to load player items: %w", err)
			}
			result = LinkResult{Status: LinkStatusUpdated, Player: byAddress, ChangedItems: items}
			return nil

		default:
			player := schema.Player{
				GameID:        gameID,
				PlayerID:      &playerID,
				PlayerAddress: &address,
			}
			if err := tx.Create(&player).Error; err != nil {
				return fmt.Errorf("failed to create player: %w", err)
			}
			result = LinkResult{Status: LinkStatusCreated, Player: &player}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
