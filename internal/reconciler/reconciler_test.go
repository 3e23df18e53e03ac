package reconciler_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/logger"
	"github.com/gamenft/asset-portal/internal/mocks"
	"github.com/gamenft/asset-portal/internal/reconciler"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	testContract = "0x588758d8a0ad1162a6294f3c274753137e664ae0"
	testSender   = "0x1111111111111111111111111111111111111111"
	testReceiver = "0x2222222222222222222222222222222222222222"

	pollInterval = 30 * time.Second
)

type testReconcilerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	chain    *mocks.MockChainClient
	blocks   *mocks.MockBlockProvider
	notifier *mocks.MockNotifier
	clock    *mocks.MockClock
}

func setupTest(t *testing.T) (*reconciler.Reconciler, *testReconcilerMocks) {
	ctrl := gomock.NewController(t)
	m := &testReconcilerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		chain:    mocks.NewMockChainClient(ctrl),
		blocks:   mocks.NewMockBlockProvider(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	rec := reconciler.New(
		reconciler.Config{PollInterval: pollInterval},
		m.store, m.chain, m.blocks, m.notifier, m.clock,
	)
	return rec, m
}

func tearDownTest(m *testReconcilerMocks) {
	m.ctrl.Finish()
}

func testCollection(cursor uint64) *schema.Collection {
	return &schema.Collection{
		ID:                 1,
		GameID:             1,
		Name:               "Minecraft Private Property NFT",
		ContractAddress:    testContract,
		LastProcessedBlock: &cursor,
	}
}

func testItem(tokenID uint64, minted bool, attributes ...schema.MetadataAttribute) *schema.Item {
	return &schema.Item{
		PK:           42,
		PlayerPK:     7,
		CollectionID: 1,
		TokenID:      tokenID,
		Minted:       minted,
		Attributes:   attributes,
	}
}

// stopAfterOneCycle arranges the clock so the first poll sleep cancels
// the context, running exactly one cycle per collection.
func stopAfterOneCycle(m *testReconcilerMocks, cancel context.CancelFunc) {
	m.clock.EXPECT().After(pollInterval).DoAndReturn(func(time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	})
}

func TestRun_NoCollections(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{}, nil)

	err := rec.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_ListCollectionsError(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().ListCollections(gomock.Any()).Return(nil, errors.New("db down"))

	err := rec.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list collections")
}

func TestRun_SkipsCollectionWithoutContract(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{
		{ID: 1, GameID: 1, Name: "unconfigured"},
	}, nil)

	err := rec.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_NoNewBlocks(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(105)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_MintAdvancesCursor(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: domain.ETHEREUM_ZERO_ADDRESS, To: testReceiver, TokenID: 3, BlockNumber: 103, TxHash: "0xabc"},
	}, nil)
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(3)).Return(testItem(3, false), nil)
	m.store.EXPECT().UpsertPlayerByAddress(gomock.Any(), int64(1), testReceiver).Return(&schema.Player{PK: 9, GameID: 1}, nil)
	m.store.EXPECT().MarkItemMinted(gomock.Any(), int64(42)).Return(nil)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_MintReplayIsIdempotent(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: domain.ETHEREUM_ZERO_ADDRESS, To: testReceiver, TokenID: 3, BlockNumber: 103, TxHash: "0xabc"},
	}, nil)
	// Item already minted: no MarkItemMinted call, cursor still advances
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(3)).Return(testItem(3, true), nil)
	m.store.EXPECT().UpsertPlayerByAddress(gomock.Any(), int64(1), testReceiver).Return(&schema.Player{PK: 9, GameID: 1}, nil)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_UnknownItemSkipped(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: domain.ETHEREUM_ZERO_ADDRESS, To: testReceiver, TokenID: 99, BlockNumber: 103, TxHash: "0xabc"},
	}, nil)
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(99)).Return(nil, domain.ErrItemNotFound)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_TransferNotifiesGameServer(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	receiverID := "receiver-player"
	receiver := &schema.Player{PK: 9, GameID: 1, PlayerID: &receiverID}
	item := testItem(3, true, schema.MetadataAttribute{TraitType: "uuid", Value: "c0ffee"})

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: testSender, To: testReceiver, TokenID: 3, BlockNumber: 104, TxHash: "0xdef"},
	}, nil)
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(3)).Return(item, nil)
	m.store.EXPECT().UpsertPlayerByAddress(gomock.Any(), int64(1), testReceiver).Return(receiver, nil)
	m.store.EXPECT().GetPlayerByAddress(gomock.Any(), int64(1), testSender).Return(&schema.Player{PK: 7, GameID: 1}, nil)
	m.store.EXPECT().ReassignItem(gomock.Any(), int64(42), int64(9)).Return(nil)
	m.notifier.EXPECT().NotifyOwnerChange(gomock.Any(), "c0ffee", receiver.PlayerID)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_UnknownSenderSkipsReassignment(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: testSender, To: testReceiver, TokenID: 3, BlockNumber: 104, TxHash: "0xdef"},
	}, nil)
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(3)).Return(testItem(3, true), nil)
	// Receiver is still upserted even though the reassignment is skipped
	m.store.EXPECT().UpsertPlayerByAddress(gomock.Any(), int64(1), testReceiver).Return(&schema.Player{PK: 9, GameID: 1}, nil)
	m.store.EXPECT().GetPlayerByAddress(gomock.Any(), int64(1), testSender).Return(nil, domain.ErrPlayerNotFound)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_TransferWithoutUUIDSkipsNotification(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return([]domain.TransferEvent{
		{From: testSender, To: testReceiver, TokenID: 3, BlockNumber: 104, TxHash: "0xdef"},
	}, nil)
	m.store.EXPECT().GetItemByTokenID(gomock.Any(), int64(1), uint64(3)).Return(testItem(3, true), nil)
	m.store.EXPECT().UpsertPlayerByAddress(gomock.Any(), int64(1), testReceiver).Return(&schema.Player{PK: 9, GameID: 1}, nil)
	m.store.EXPECT().GetPlayerByAddress(gomock.Any(), int64(1), testSender).Return(&schema.Player{PK: 7, GameID: 1}, nil)
	m.store.EXPECT().ReassignItem(gomock.Any(), int64(42), int64(9)).Return(nil)
	m.store.EXPECT().SetCollectionCursor(gomock.Any(), int64(1), uint64(105)).Return(nil)
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_CycleErrorDoesNotStopLoop(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(105)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)

	// First cycle fails, second succeeds
	gomock.InOrder(
		m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(nil, errors.New("db down")),
		m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil),
	)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)

	fired := make(chan time.Time, 1)
	fired <- time.Now()
	gomock.InOrder(
		m.clock.EXPECT().After(pollInterval).Return(fired),
		m.clock.EXPECT().After(pollInterval).DoAndReturn(func(time.Duration) <-chan time.Time {
			cancel()
			return make(chan time.Time)
		}),
	)

	err := rec.Run(ctx)
	require.NoError(t, err)
}

func TestRun_FetchLogsErrorLeavesCursor(t *testing.T) {
	rec, m := setupTest(t)
	defer tearDownTest(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := testCollection(100)
	m.store.EXPECT().ListCollections(gomock.Any()).Return([]schema.Collection{*col}, nil)
	m.store.EXPECT().GetCollectionByID(gomock.Any(), int64(1)).Return(col, nil)
	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	m.chain.EXPECT().GetTransferLogs(gomock.Any(), testContract, uint64(101), uint64(105)).Return(nil, errors.New("rpc timeout"))
	// No SetCollectionCursor call: the batch failed
	stopAfterOneCycle(m, cancel)

	err := rec.Run(ctx)
	require.NoError(t, err)
}
