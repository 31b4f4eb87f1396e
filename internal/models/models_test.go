package models_test

import (
	"testing"

	"aniflow/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreate_GeneratesID(t *testing.T) {
	user := &models.User{Username: "yuki"}
	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)

	anime := &models.Anime{Title: "Cowboy Bebop"}
	require.NoError(t, anime.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, anime.ID)
}

func TestBeforeCreate_KeepsPresetID(t *testing.T) {
	id := uuid.New()
	user := &models.User{ID: id, Username: "yuki"}
	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, id, user.ID)
}

func TestWatchlist_BeforeCreateAppliesDefaultName(t *testing.T) {
	watchlist := &models.Watchlist{UserID: uuid.New()}
	require.NoError(t, watchlist.BeforeCreate(nil))
	assert.Equal(t, models.DefaultWatchlistName, watchlist.Name)

	named := &models.Watchlist{UserID: uuid.New(), Name: "Backlog"}
	require.NoError(t, named.BeforeCreate(nil))
	assert.Equal(t, "Backlog", named.Name)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "user", models.User{}.TableName())
	assert.Equal(t, "user_profile", models.UserProfile{}.TableName())
	assert.Equal(t, "anime", models.Anime{}.TableName())
	assert.Equal(t, "rating", models.Rating{}.TableName())
	assert.Equal(t, "note", models.Note{}.TableName())
	assert.Equal(t, "watchlist", models.Watchlist{}.TableName())
	assert.Equal(t, "watchlist_item", models.WatchlistItem{}.TableName())
}
