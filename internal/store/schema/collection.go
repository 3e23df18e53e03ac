package schema

import "time"

// Collection represents the collections table - one row per NFT contract
// tracked by the ownership reconciler.
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// GameID is the owning game
	GameID int64 `gorm:"column:game_id;not null;index"`
	// Name is the display name of the collection
	Name string `gorm:"column:name;not null;type:text"`
	// ContractAddress is the on-chain contract address, lowercase hex.
	// It is the join key between chain events and this row.
	ContractAddress string `gorm:"column:contract_address;not null;uniqueIndex;type:text"`
	// LastProcessedBlock is the reconciler cursor: the last block fully
	// folded into the store. Monotonically non-decreasing; nil means no
	// block has been processed yet (scan from genesis).
	LastProcessedBlock *uint64 `gorm:"column:last_processed_block"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Items []Item `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
