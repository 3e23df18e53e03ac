package schema

// MetadataAttribute represents the metadata_attributes table - immutable
// trait rows attached to an item. The "uuid" trait joins an item to its
// object on the external game server.
type MetadataAttribute struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ItemPK is the owning item
	ItemPK int64 `gorm:"column:item_pk;not null;index"`
	// TraitType is the attribute name
	TraitType string `gorm:"column:trait_type;not null;type:text"`
	// Value is the attribute value, stored as text
	Value string `gorm:"column:value;not null;type:text"`
}

// TableName specifies the table name for the MetadataAttribute model
func (MetadataAttribute) TableName() string {
	return "metadata_attributes"
}
