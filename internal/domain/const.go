package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// UUIDTraitType is the attribute trait that joins an item to the
	// external game server's object identifier.
	UUIDTraitType = "uuid"
)
