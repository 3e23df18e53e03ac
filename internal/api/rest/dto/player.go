package dto

import (
	"time"

	"github.com/gamenft/asset-portal/internal/store/schema"
)

// LinkPlayerRequest is the body of POST /game/:gameId/player
type LinkPlayerRequest struct {
	PlayerID      string `json:"playerId" binding:"required"`
	PlayerAddress string `json:"playerAddress" binding:"required"`
}

// PlayerResponse is a player with their items
type PlayerResponse struct {
	PK            int64          `json:"pk"`
	GameID        int64          `json:"gameId"`
	PlayerID      *string        `json:"playerId"`
	PlayerAddress *string        `json:"playerAddress"`
	CreatedAt     time.Time      `json:"createdAt"`
	Items         []ItemResponse `json:"items"`
	Message       string         `json:"message,omitempty"`
}

// MapPlayer converts a schema player to its response form
func MapPlayer(player *schema.Player, items []schema.Item) PlayerResponse {
	return PlayerResponse{
		PK:            player.PK,
		GameID:        player.GameID,
		PlayerID:      player.PlayerID,
		PlayerAddress: player.PlayerAddress,
		CreatedAt:     player.CreatedAt,
		Items:         MapItems(items),
	}
}
