package schema

import "time"

// Player represents the players table - an identity within a game, known
// by an in-game player ID, a wallet address, or both. Either field may be
// nil for a half-linked identity; the linker merges the halves.
type Player struct {
	// PK is the internal database primary key
	PK int64 `gorm:"column:pk;primaryKey;autoIncrement"`
	// GameID is the owning game
	GameID int64 `gorm:"column:game_id;not null;uniqueIndex:idx_players_game_player_id;uniqueIndex:idx_players_game_address"`
	// PlayerID is the game-assigned identity, unique per game
	PlayerID *string `gorm:"column:player_id;type:text;uniqueIndex:idx_players_game_player_id"`
	// PlayerAddress is the wallet address, lowercase hex, unique per game
	PlayerAddress *string `gorm:"column:player_address;type:text;uniqueIndex:idx_players_game_address"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Items []Item `gorm:"foreignKey:PlayerPK;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Player model
func (Player) TableName() string {
	return "players"
}
