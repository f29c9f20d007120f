package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, ComparePassword("password123", hash))
	assert.False(t, ComparePassword("wrong", hash))
	assert.False(t, ComparePassword("password123", "not-a-hash"))
}
