package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gamenft/asset-portal/internal/store/schema"
)

// AttributeValue accepts a JSON string or number and carries it as a string
type AttributeValue string

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AttributeValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("attribute value must be a string or number")
	}
	*v = AttributeValue(n.String())
	return nil
}

// Attribute is a single metadata attribute in OpenSea form
type Attribute struct {
	TraitType string         `json:"trait_type"`
	Value     AttributeValue `json:"value"`
}

// ItemMetadata is the metadata block supplied when creating an item
type ItemMetadata struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Image       string      `json:"image" binding:"required"`
	ExternalURL *string     `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// CreateItemRequest is the body of POST /items
type CreateItemRequest struct {
	GameID        int64        `json:"gameId" binding:"required"`
	CollectionID  int64        `json:"collectionId" binding:"required"`
	PlayerID      *string      `json:"playerId,omitempty"`
	PlayerAddress *string      `json:"playerAddress,omitempty"`
	Metadata      ItemMetadata `json:"metadata" binding:"required"`
}

// ItemResponse is an item with its attributes
type ItemResponse struct {
	PK           int64       `json:"pk"`
	PlayerPK     int64       `json:"playerPk"`
	CollectionID int64       `json:"collectionId"`
	TokenID      uint64      `json:"tokenId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Image        string      `json:"image"`
	ExternalURL  *string     `json:"externalUrl"`
	Minted       bool        `json:"minted"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Attributes   []Attribute `json:"attributes"`
}

// OpenSeaMetadata is the public token metadata document served to
// marketplaces
type OpenSeaMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	ExternalURL *string     `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// MapAttributes converts schema attributes to their OpenSea form
func MapAttributes(attrs []schema.MetadataAttribute) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, Attribute{TraitType: attr.TraitType, Value: AttributeValue(attr.Value)})
	}
	return out
}

// MapItem converts a schema item to its response form
func MapItem(item *schema.Item) ItemResponse {
	return ItemResponse{
		PK:           item.PK,
		PlayerPK:     item.PlayerPK,
		CollectionID: item.CollectionID,
		TokenID:      item.TokenID,
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		ExternalURL:  item.ExternalURL,
		Minted:       item.Minted,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		Attributes:   MapAttributes(item.Attributes),
	}
}

// MapItems converts a slice of schema items to their response form
func MapItems(items []schema.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, MapItem(&items[i]))
	}
	return out
}

// MapOpenSeaMetadata converts an item to its public metadata document
func MapOpenSeaMetadata(item *schema.Item) OpenSeaMetadata {
	return OpenSeaMetadata{
		Name:        item.Name,
		Description: item.Description,
		Image:       item.Image,
		ExternalURL: item.ExternalURL,
		Attributes:  MapAttributes(item.Attributes),
	}
}
