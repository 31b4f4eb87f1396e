package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a private note a user keeps about an anime. It is never visible
// to other users.
type Note struct {
	ID          uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey" json:"note_id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	AnimeID     uuid.UUID `gorm:"column:anime_id;type:uuid;not null;index" json:"anime_id"`
	PrivateNote *string   `gorm:"type:text" json:"private_note,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Anime *Anime `gorm:"foreignKey:AnimeID;references:ID;constraint:OnDelete:CASCADE;" json:"anime,omitempty"`
}

func (note *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	return
}

func (Note) TableName() string {
	return "note"
}
