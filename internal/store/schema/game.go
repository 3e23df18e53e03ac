package schema

import "time"

// Game represents the games table - the root namespace for players,
// collections and items. Created once, immutable thereafter.
type Game struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the game
	Name string `gorm:"column:name;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Collections []Collection `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Players     []Player     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Game model
func (Game) TableName() string {
	return "games"
}
