package auth_test

import (
	"testing"

	"aniflow/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, auth.VerifyPassword(hash, "correct horse battery staple"))
	assert.Error(t, auth.VerifyPassword(hash, "wrong password"))
}
