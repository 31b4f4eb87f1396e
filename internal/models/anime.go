package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Anime struct {
	ID              uuid.UUID                   `gorm:"column:anime_id;type:uuid;primaryKey" json:"anime_id"`
	Title           string                      `gorm:"size:255;not null;index" json:"title"`
	Synopsis        *string                     `gorm:"type:text" json:"synopsis,omitempty"`
	ReleaseYear     *int                        `json:"release_year,omitempty"`
	Episodes        *int                        `json:"episodes,omitempty"`
	PopularityScore float64                     `gorm:"default:0" json:"popularity_score"`
	AverageRating   float64                     `gorm:"default:0" json:"average_rating"`
	Genres          datatypes.JSONSlice[string] `json:"genres,omitempty"`
	Studios         datatypes.JSONSlice[string] `json:"studios,omitempty"`
	Themes          datatypes.JSONSlice[string] `json:"themes,omitempty"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating an Anime
func (anime *Anime) BeforeCreate(tx *gorm.DB) (err error) {
	if anime.ID == uuid.Nil {
		anime.ID = uuid.New()
	}
	return
}

func (Anime) TableName() string {
	return "anime"
}
