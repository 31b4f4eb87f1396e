package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID      uuid.UUID `gorm:"column:rating_id;type:uuid;primaryKey" json:"rating_id"`
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	AnimeID uuid.UUID `gorm:"column:anime_id;type:uuid;not null;index" json:"anime_id"`
	// Score stays an unconstrained integer so it can carry both a 1-10 scale
	// and a binary thumbs up/down. The range is a service-layer contract.
	Score      int       `gorm:"not null" json:"score"`
	ReviewText *string   `gorm:"type:text" json:"review_text,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Anime *Anime `gorm:"foreignKey:AnimeID;references:ID;constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
}

func (rating *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	return
}

func (Rating) TableName() string {
	return "rating"
}
