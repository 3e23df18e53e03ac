package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/gamenft/asset-portal/internal/adapter"
	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/logger"
)

// transferEventSignature is the keccak256 hash of Transfer(address,address,uint256),
// shared by ERC-721 and ERC-20 transfer events
var transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// ChainClient fetches ERC-721 transfer events from an Ethereum node
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// GetTransferLogs fetches all ERC-721 Transfer events for a contract
	// within the inclusive block range, ordered by block number then log index
	GetTransferLogs(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.TransferEvent, error)

	// Close closes the connection
	Close()
}

type chainClient struct {
	client         adapter.EthClient
	requestTimeout time.Duration
}

func NewChainClient(client adapter.EthClient, requestTimeout time.Duration) ChainClient {
	return &chainClient{client: client, requestTimeout: requestTimeout}
}

// GetTransferLogs fetches ERC-721 Transfer events for a contract within a block range
func (c *chainClient) GetTransferLogs(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.TransferEvent, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("invalid block range: %d-%d", fromBlock, toBlock)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{common.HexToAddress(contractAddress)},
		Topics:    [][]common.Hash{{transferEventSignature}},
	}

	logs, err := c.filterLogsWithPagination(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfer logs for %s: %w", contractAddress, err)
	}

	events := make([]domain.TransferEvent, 0, len(logs))
	for _, vLog := range logs {
		event, err := parseTransferLog(vLog)
		if err != nil {
			logger.DebugCtx(ctx, "Skipping non-ERC721 transfer log",
				zap.String("contract", contractAddress),
				zap.String("tx_hash", vLog.TxHash.Hex()),
				zap.Error(err))
			continue
		}
		events = append(events, *event)
	}

	// Node responses are ordered per chunk; make the full batch deterministic
	sort.Slice(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber < events[j].BlockNumber
		}
		return events[i].LogIndex < events[j].LogIndex
	})

	return events, nil
}

// parseTransferLog decodes an ERC-721 Transfer log into a TransferEvent.
// ERC-721 transfers carry 4 topics (signature, from, to, tokenId); ERC-20
// transfers share the signature but carry only 3 topics and are rejected.
func parseTransferLog(vLog types.Log) (*domain.TransferEvent, error) {
	if len(vLog.Topics) != 4 {
		return nil, fmt.Errorf("expected 4 topics, got %d", len(vLog.Topics))
	}

	tokenID := new(big.Int).SetBytes(vLog.Topics[3].Bytes())
	if !tokenID.IsUint64() {
		return nil, fmt.Errorf("token id out of range: %s", tokenID.String())
	}

	return &domain.TransferEvent{
		From:        domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()),
		To:          domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()),
		TokenID:     tokenID.Uint64(),
		BlockNumber: vLog.BlockNumber,
		TxHash:      vLog.TxHash.Hex(),
		LogIndex:    vLog.Index,
	}, nil
}

// filterLogsWithPagination handles pagination for FilterLogs to work around
// node provider log limits
func (c *chainClient) filterLogsWithPagination(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)
	stepSize := uint64(1000000) // 1M blocks

	for currentFrom.Cmp(query.ToBlock) <= 0 {
		// Calculate current range
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(stepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		// Create query for current range
		rangeQuery := query
		rangeQuery.FromBlock = new(big.Int).Set(currentFrom)
		rangeQuery.ToBlock = new(big.Int).Set(currentTo)

		// Try to get logs for current range with retry logic
		logs, err := c.getLogsWithRetry(timeoutCtx, rangeQuery, stepSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom.Uint64(), currentTo.Uint64(), err)
		}

		allLogs = append(allLogs, logs...)

		// Move to next range - use the actual end of the processed range
		currentFrom.SetUint64(currentTo.Uint64() + 1)
	}

	return allLogs, nil
}

// getLogsWithRetry attempts to get logs with retry logic and step size reduction.
// It processes the entire range from query.FromBlock to query.ToBlock in chunks.
func (c *chainClient) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	// Process the entire range in chunks
	for currentFrom.Cmp(query.ToBlock) <= 0 {
		// Calculate current range based on current step size
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		// Create query for current chunk
		queryCopy := query
		queryCopy.FromBlock = new(big.Int).Set(currentFrom)
		queryCopy.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, queryCopy)
		if err == nil {
			// Success - accumulate logs and move to next chunk
			allLogs = append(allLogs, logs...)

			// Move to next chunk using the full step size
			currentFrom.SetUint64(currentTo.Uint64() + 1)
			continue
		}

		// If other errors than too many results, return error
		if !isTooManyResultsError(err) {
			return nil, err
		}

		// If too many results, divide the step by 2 and try again
		if currentStepSize <= 1 {
			return nil, fmt.Errorf("range %d-%d still too large at minimum step size: %w", currentFrom.Uint64(), currentTo.Uint64(), err)
		}
		currentStepSize = currentStepSize / 2

		logger.Warn("Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Check for common "too many results" error messages
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// Close closes the underlying connection
func (c *chainClient) Close() {
	c.client.Close()
}
