package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultWatchlistName is applied when a watchlist is created without a name.
const DefaultWatchlistName = "My Watchlist"

type Watchlist struct {
	ID        uuid.UUID `gorm:"column:watchlist_id;type:uuid;primaryKey" json:"watchlist_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null;default:'My Watchlist'" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Association
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

// BeforeCreate sets the UUID and falls back to the default name.
// The name default is applied in the write path as well as in the column
// definition so the in-memory struct matches what the row will hold.
func (watchlist *Watchlist) BeforeCreate(tx *gorm.DB) (err error) {
	if watchlist.ID == uuid.Nil {
		watchlist.ID = uuid.New()
	}
	if watchlist.Name == "" {
		watchlist.Name = DefaultWatchlistName
	}
	return
}

func (Watchlist) TableName() string {
	return "watchlist"
}
