package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchlistItem struct {
	ID           uuid.UUID `gorm:"column:watchlist_item_id;type:uuid;primaryKey" json:"watchlist_item_id"`
	WatchlistID  uuid.UUID `gorm:"column:watchlist_id;type:uuid;not null;index" json:"watchlist_id"`
	AnimeID      uuid.UUID `gorm:"column:anime_id;type:uuid;not null;index" json:"anime_id"`
	PriorityRank *int      `json:"priority_rank,omitempty"`
	AddedAt      time.Time `gorm:"autoCreateTime" json:"added_at"`
	Completed    bool      `gorm:"default:false" json:"completed"`
	RewatchCount int       `gorm:"default:0" json:"rewatch_count"`

	// Associations
	Watchlist *Watchlist `gorm:"foreignKey:WatchlistID;references:ID;constraint:OnDelete:CASCADE;" json:"watchlist,omitempty"`
	Anime     *Anime     `gorm:"foreignKey:AnimeID;references:ID;constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
}

func (item *WatchlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}

func (WatchlistItem) TableName() string {
	return "watchlist_item"
}
