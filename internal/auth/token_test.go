package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyToken_Failures(t *testing.T) {
	valid, err := SignToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)

	expired, err := SignToken(testSecret, "user-123", -time.Minute)
	require.NoError(t, err)

	forged, err := SignToken("other-secret", "user-123", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", forged},
		{"malformed", "not.a.token"},
		{"empty", ""},
		{"truncated", valid[:len(valid)-5]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := VerifyToken(testSecret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}
