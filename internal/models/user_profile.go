package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserProfile holds the per-user preference data shown on the profile page.
// Its primary key doubles as the foreign key to the owning user, so a user
// can never have more than one profile.
type UserProfile struct {
	UserID           uuid.UUID                   `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Age              *int                        `json:"age,omitempty"`
	Region           *string                     `gorm:"size:255" json:"region,omitempty"`
	Bio              *string                     `gorm:"type:text" json:"bio,omitempty"`
	PreferredGenres  datatypes.JSONSlice[string] `json:"preferred_genres,omitempty"`
	PreferredStudios datatypes.JSONSlice[string] `json:"preferred_studios,omitempty"`
	PreferredThemes  datatypes.JSONSlice[string] `json:"preferred_themes,omitempty"`
	HideProfile      bool                        `gorm:"default:false" json:"hide_profile"`
	FilterSettings   datatypes.JSONMap           `json:"filter_settings,omitempty"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	// Association
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}
