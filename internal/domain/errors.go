package domain

import "errors"

var (
	// ErrGameNotFound is returned when a game does not exist
	ErrGameNotFound = errors.New("game not found")

	// ErrCollectionNotFound is returned when a collection does not exist
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrItemNotFound is returned when an item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrPlayerNotFound is returned when a player does not exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrAddressConflict is returned when a player identity is already
	// linked to a different wallet address
	ErrAddressConflict = errors.New("player already linked to different address")

	// ErrPlayerIDConflict is returned when a wallet address is already
	// linked to a different player identity
	ErrPlayerIDConflict = errors.New("address already linked to different player ID")

	// ErrNoContractAddress is returned when permit issuance is requested for
	// a collection without a deployed contract
	ErrNoContractAddress = errors.New("collection has no contract address")

	// ErrNoPlayerAddress is returned when permit issuance is requested for
	// an item whose owner has no wallet address on file
	ErrNoPlayerAddress = errors.New("player has no wallet address")
)
