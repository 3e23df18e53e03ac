package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testContractAddress = "0x588758D8A0Ad1162a6294F3c274753137e664AE0"
	testWalletAddress   = "0x1234567890123456789012345678901234567890"
	otherWalletAddress  = "0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD"
)

func strPtr(s string) *string {
	return &s
}

// buildTestGame creates a game and a collection to hang items off
func buildTestGame(t *testing.T, s Store) (*schema.Game, *schema.Collection) {
	ctx := context.Background()

	game, err := s.CreateGame(ctx, "Minecraft")
	require.NoError(t, err)

	collection, err := s.CreateCollection(ctx, game.ID, "Minecraft Private Property NFT", testContractAddress)
	require.NoError(t, err)

	return game, collection
}

// buildTestItemInput creates a create item input owned by the named player
func buildTestItemInput(gameID, collectionID int64, playerID string) CreateItemInput {
	return CreateItemInput{
		GameID:       gameID,
		CollectionID: collectionID,
		PlayerID:     strPtr(playerID),
		Name:         "Diamond Sword",
		Description:  "A very sharp sword",
		Image:        "https://example.com/sword.png",
		Attributes: []AttributeInput{
			{TraitType: "uuid", Value: "c0ffee-1234"},
			{TraitType: "rarity", Value: "legendary"},
		},
	}
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("Games", func(t *testing.T) { runGameTests(t, initDB) })
	t.Run("Collections", func(t *testing.T) { runCollectionTests(t, initDB) })
	t.Run("CollectionCursor", func(t *testing.T) { runCursorTests(t, initDB) })
	t.Run("Items", func(t *testing.T) { runItemTests(t, initDB) })
	t.Run("Players", func(t *testing.T) { runPlayerTests(t, initDB) })
	t.Run("LinkPlayer", func(t *testing.T) { runLinkPlayerTests(t, initDB) })
}

// =============================================================================
// Game Tests
// =============================================================================

func runGameTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("create and get game", func(t *testing.T) {
		s := initDB(t)

		game, err := s.CreateGame(ctx, "Minecraft")
		require.NoError(t, err)
		assert.NotZero(t, game.ID)
		assert.Equal(t, "Minecraft", game.Name)

		got, err := s.GetGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.ID, got.ID)
		assert.Equal(t, "Minecraft", got.Name)
	})

	t.Run("get non-existent game returns sentinel error", func(t *testing.T) {
		s := initDB(t)

		_, err := s.GetGameByID(ctx, 424242)
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
	})
}

// =============================================================================
// Collection Tests
// =============================================================================

func runCollectionTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("create collection normalizes contract address", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		collection, err := s.CreateCollection(ctx, game.ID, "Second Collection", "0xAbCd567890123456789012345678901234567890")
		require.NoError(t, err)
		assert.Equal(t, "0xabcd567890123456789012345678901234567890", collection.ContractAddress)
		assert.Nil(t, collection.LastProcessedBlock)
	})

	t.Run("get non-existent collection returns sentinel error", func(t *testing.T) {
		s := initDB(t)

		_, err := s.GetCollectionByID(ctx, 424242)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("list collections returns all in id order", func(t *testing.T) {
		s := initDB(t)
		game, first := buildTestGame(t, s)

		second, err := s.CreateCollection(ctx, game.ID, "Second Collection", "0x1111567890123456789012345678901234567890")
		require.NoError(t, err)

		collections, err := s.ListCollections(ctx)
		require.NoError(t, err)
		require.Len(t, collections, 2)
		assert.Equal(t, first.ID, collections[0].ID)
		assert.Equal(t, second.ID, collections[1].ID)
	})
}

// =============================================================================
// Collection Cursor Tests
// =============================================================================

func runCursorTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("cursor starts nil and advances", func(t *testing.T) {
		s := initDB(t)
		_, collection := buildTestGame(t, s)

		require.Nil(t, collection.LastProcessedBlock)

		require.NoError(t, s.SetCollectionCursor(ctx, collection.ID, 100))

		got, err := s.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastProcessedBlock)
		assert.Equal(t, uint64(100), *got.LastProcessedBlock)
	})

	t.Run("cursor never moves backwards", func(t *testing.T) {
		s := initDB(t)
		_, collection := buildTestGame(t, s)

		require.NoError(t, s.SetCollectionCursor(ctx, collection.ID, 100))
		require.NoError(t, s.SetCollectionCursor(ctx, collection.ID, 50))

		got, err := s.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastProcessedBlock)
		assert.Equal(t, uint64(100), *got.LastProcessedBlock)
	})

	t.Run("setting the same cursor twice is a no-op", func(t *testing.T) {
		s := initDB(t)
		_, collection := buildTestGame(t, s)

		require.NoError(t, s.SetCollectionCursor(ctx, collection.ID, 100))
		require.NoError(t, s.SetCollectionCursor(ctx, collection.ID, 100))

		got, err := s.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), *got.LastProcessedBlock)
	})

	t.Run("cursor on non-existent collection returns sentinel error", func(t *testing.T) {
		s := initDB(t)

		err := s.SetCollectionCursor(ctx, 424242, 100)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})
}

// =============================================================================
// Item Tests
// =============================================================================

func runItemTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("create item assigns sequential token ids from 1", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		for i := 1; i <= 3; i++ {
			input := buildTestItemInput(game.ID, collection.ID, "steve")
			input.Name = fmt.Sprintf("Item %d", i)
			item, err := s.CreateItem(ctx, input)
			require.NoError(t, err)
			assert.Equal(t, uint64(i), item.TokenID)
			assert.False(t, item.Minted)
		}
	})

	t.Run("create item stores attributes", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		item, err := s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)

		got, err := s.GetItemByPK(ctx, item.PK)
		require.NoError(t, err)
		require.Len(t, got.Attributes, 2)
		assert.Equal(t, "uuid", got.Attributes[0].TraitType)
		assert.Equal(t, "c0ffee-1234", got.Attributes[0].Value)
	})

	t.Run("create item by player address creates half-linked player", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		input := buildTestItemInput(game.ID, collection.ID, "")
		input.PlayerID = nil
		input.PlayerAddress = strPtr(testWalletAddress)

		item, err := s.CreateItem(ctx, input)
		require.NoError(t, err)

		owner, err := s.GetPlayerByPK(ctx, item.PlayerPK)
		require.NoError(t, err)
		assert.Nil(t, owner.PlayerID)
		require.NotNil(t, owner.PlayerAddress)
		assert.Equal(t, domain.NormalizeAddress(testWalletAddress), *owner.PlayerAddress)
	})

	t.Run("create item in unknown collection returns sentinel error", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		_, err := s.CreateItem(ctx, buildTestItemInput(game.ID, 424242, "steve"))
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("create item in collection of another game returns sentinel error", func(t *testing.T) {
		s := initDB(t)
		_, collection := buildTestGame(t, s)

		otherGame, err := s.CreateGame(ctx, "Other Game")
		require.NoError(t, err)

		_, err = s.CreateItem(ctx, buildTestItemInput(otherGame.ID, collection.ID, "steve"))
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("get item by token id", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		item, err := s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)

		got, err := s.GetItemByTokenID(ctx, collection.ID, item.TokenID)
		require.NoError(t, err)
		assert.Equal(t, item.PK, got.PK)
		assert.Len(t, got.Attributes, 2)

		_, err = s.GetItemByTokenID(ctx, collection.ID, 999)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("mark item minted flips the flag", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		item, err := s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)
		require.False(t, item.Minted)

		require.NoError(t, s.MarkItemMinted(ctx, item.PK))

		got, err := s.GetItemByPK(ctx, item.PK)
		require.NoError(t, err)
		assert.True(t, got.Minted)

		assert.ErrorIs(t, s.MarkItemMinted(ctx, 424242), domain.ErrItemNotFound)
	})

	t.Run("reassign item changes the owner", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		item, err := s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)

		newOwner, err := s.UpsertPlayerByAddress(ctx, game.ID, otherWalletAddress)
		require.NoError(t, err)

		require.NoError(t, s.ReassignItem(ctx, item.PK, newOwner.PK))

		got, err := s.GetItemByPK(ctx, item.PK)
		require.NoError(t, err)
		assert.Equal(t, newOwner.PK, got.PlayerPK)

		assert.ErrorIs(t, s.ReassignItem(ctx, 424242, newOwner.PK), domain.ErrItemNotFound)
	})

	t.Run("get items by player returns attributes", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		first, err := s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)
		_, err = s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "steve"))
		require.NoError(t, err)
		_, err = s.CreateItem(ctx, buildTestItemInput(game.ID, collection.ID, "alex"))
		require.NoError(t, err)

		items, err := s.GetItemsByPlayer(ctx, first.PlayerPK)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Len(t, items[0].Attributes, 2)
	})
}

// =============================================================================
// Player Tests
// =============================================================================

func runPlayerTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("find or create by player id", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		player, err := s.FindOrCreatePlayer(ctx, game.ID, strPtr("steve"), nil)
		require.NoError(t, err)
		require.NotNil(t, player.PlayerID)
		assert.Equal(t, "steve", *player.PlayerID)
		assert.Nil(t, player.PlayerAddress)

		again, err := s.FindOrCreatePlayer(ctx, game.ID, strPtr("steve"), nil)
		require.NoError(t, err)
		assert.Equal(t, player.PK, again.PK)
	})

	t.Run("find or create by address normalizes case", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		player, err := s.FindOrCreatePlayer(ctx, game.ID, nil, strPtr("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"))
		require.NoError(t, err)

		mixed, err := s.FindOrCreatePlayer(ctx, game.ID, nil, strPtr("0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD"))
		require.NoError(t, err)
		assert.Equal(t, player.PK, mixed.PK)
	})

	t.Run("find or create with neither identifier fails", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		_, err := s.FindOrCreatePlayer(ctx, game.ID, nil, nil)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("players are scoped per game", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		otherGame, err := s.CreateGame(ctx, "Other Game")
		require.NoError(t, err)

		first, err := s.FindOrCreatePlayer(ctx, game.ID, strPtr("steve"), nil)
		require.NoError(t, err)
		second, err := s.FindOrCreatePlayer(ctx, otherGame.ID, strPtr("steve"), nil)
		require.NoError(t, err)
		assert.NotEqual(t, first.PK, second.PK)
	})

	t.Run("upsert player by address creates half-linked row", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		player, err := s.UpsertPlayerByAddress(ctx, game.ID, testWalletAddress)
		require.NoError(t, err)
		assert.Nil(t, player.PlayerID)
		require.NotNil(t, player.PlayerAddress)
		assert.Equal(t, domain.NormalizeAddress(testWalletAddress), *player.PlayerAddress)

		again, err := s.UpsertPlayerByAddress(ctx, game.ID, testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, player.PK, again.PK)
	})

	t.Run("get player by address", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		created, err := s.UpsertPlayerByAddress(ctx, game.ID, testWalletAddress)
		require.NoError(t, err)

		got, err := s.GetPlayerByAddress(ctx, game.ID, testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, created.PK, got.PK)

		_, err = s.GetPlayerByAddress(ctx, game.ID, otherWalletAddress)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

// =============================================================================
// LinkPlayer Tests
// =============================================================================

func runLinkPlayerTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("neither player nor address exists creates fully linked row", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		result, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, LinkStatusCreated, result.Status)
		require.NotNil(t, result.Player.PlayerID)
		assert.Equal(t, "steve", *result.Player.PlayerID)
		require.NotNil(t, result.Player.PlayerAddress)
		assert.Equal(t, domain.NormalizeAddress(testWalletAddress), *result.Player.PlayerAddress)
	})

	t.Run("player without address gains the address", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		player, err := s.FindOrCreatePlayer(ctx, game.ID, strPtr("steve"), nil)
		require.NoError(t, err)

		result, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, LinkStatusUpdated, result.Status)
		assert.Equal(t, player.PK, result.Player.PK)
		assert.Empty(t, result.ChangedItems)
	})

	t.Run("bare address row gains the player id and reports changed items", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		input := buildTestItemInput(game.ID, collection.ID, "")
		input.PlayerID = nil
		input.PlayerAddress = strPtr(testWalletAddress)
		item, err := s.CreateItem(ctx, input)
		require.NoError(t, err)

		result, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, LinkStatusUpdated, result.Status)
		require.NotNil(t, result.Player.PlayerID)
		assert.Equal(t, "steve", *result.Player.PlayerID)

		// Items under the bare address now belong to a named identity
		require.Len(t, result.ChangedItems, 1)
		assert.Equal(t, item.PK, result.ChangedItems[0].PK)
		assert.NotEmpty(t, result.ChangedItems[0].Attributes)
	})

	t.Run("two half-identities merge into the id row", func(t *testing.T) {
		s := initDB(t)
		game, collection := buildTestGame(t, s)

		idPlayer, err := s.FindOrCreatePlayer(ctx, game.ID, strPtr("steve"), nil)
		require.NoError(t, err)

		input := buildTestItemInput(game.ID, collection.ID, "")
		input.PlayerID = nil
		input.PlayerAddress = strPtr(testWalletAddress)
		item, err := s.CreateItem(ctx, input)
		require.NoError(t, err)

		result, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, LinkStatusMerged, result.Status)
		assert.Equal(t, idPlayer.PK, result.Player.PK)
		require.NotNil(t, result.Player.PlayerAddress)
		assert.Equal(t, domain.NormalizeAddress(testWalletAddress), *result.Player.PlayerAddress)

		// The address row is gone and its items moved to the surviving row
		got, err := s.GetItemByPK(ctx, item.PK)
		require.NoError(t, err)
		assert.Equal(t, idPlayer.PK, got.PlayerPK)

		items, err := s.GetItemsByPlayer(ctx, idPlayer.PK)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("already linked pair is not modified", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		_, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)

		result, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)
		assert.Equal(t, LinkStatusNotModified, result.Status)
	})

	t.Run("player already linked to another address conflicts", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		_, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)

		_, err = s.LinkPlayer(ctx, game.ID, "steve", otherWalletAddress)
		assert.ErrorIs(t, err, domain.ErrAddressConflict)
	})

	t.Run("address already linked to another player conflicts", func(t *testing.T) {
		s := initDB(t)
		game, _ := buildTestGame(t, s)

		_, err := s.LinkPlayer(ctx, game.ID, "steve", testWalletAddress)
		require.NoError(t, err)

		_, err = s.LinkPlayer(ctx, game.ID, "alex", testWalletAddress)
		assert.ErrorIs(t, err, domain.ErrPlayerIDConflict)
	})
}
