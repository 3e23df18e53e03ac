package schema

import "time"

// Item represents the items table - one row per in-game asset. TokenID is
// assigned at creation (highest existing in the collection + 1); Minted
// flips false to true exactly once, driven only by the on-chain mint
// transfer observed by the reconciler.
type Item struct {
	// PK is the internal database primary key
	PK int64 `gorm:"column:pk;primaryKey;autoIncrement"`
	// PlayerPK is the current owner
	PlayerPK int64 `gorm:"column:player_pk;not null;index"`
	// CollectionID is the owning collection
	CollectionID int64 `gorm:"column:collection_id;not null;uniqueIndex:idx_items_collection_token_id"`
	// Name is the item display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the item description
	Description string `gorm:"column:description;not null;type:text"`
	// Image is the item image URL
	Image string `gorm:"column:image;not null;type:text"`
	// ExternalURL is an optional external link
	ExternalURL *string `gorm:"column:external_url;type:text"`
	// TokenID is the on-chain token number, unique per collection
	TokenID uint64 `gorm:"column:token_id;not null;uniqueIndex:idx_items_collection_token_id"`
	// Minted indicates the zero-address mint transfer has been observed
	Minted bool `gorm:"column:minted;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Attributes []MetadataAttribute `gorm:"foreignKey:ItemPK;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
