package domain

import (
	"regexp"
	"strings"
)

// EventType represents the type of on-chain event observed by the reconciler
type EventType string

const (
	EventTypeTransfer EventType = "transfer"
	EventTypeMint     EventType = "mint"
	EventTypeBurn     EventType = "burn"
)

// TransferEvent is a normalized ERC-721 Transfer log.
// Addresses are lowercase hex; ordering follows the log order on chain.
type TransferEvent struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TokenID     uint64 `json:"token_id"`
	BlockNumber uint64 `json:"block_number"`
	TxHash      string `json:"tx_hash"`
	LogIndex    uint   `json:"log_index"`
}

// Type classifies the event by its endpoints. A transfer from the zero
// address is a mint, to the zero address a burn.
func (e *TransferEvent) Type() EventType {
	return TransferEventType(e.From, e.To)
}

// TransferEventType determines the event type based on from/to addresses
func TransferEventType(from, to string) EventType {
	if from == "" || NormalizeAddress(from) == ETHEREUM_ZERO_ADDRESS {
		return EventTypeMint
	}
	if to == "" || NormalizeAddress(to) == ETHEREUM_ZERO_ADDRESS {
		return EventTypeBurn
	}
	return EventTypeTransfer
}

var ethereumAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidAddress reports whether address is a 0x-prefixed 20-byte hex string.
func IsValidAddress(address string) bool {
	return ethereumAddressPattern.MatchString(address)
}

// NormalizeAddress lowercases an address so that wallet and contract
// addresses compare and store case-insensitively.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
