package security_test

import (
	"testing"

	"toolrent-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60)

	token, err := tokens.GenerateAccessToken(7, "ana", "ADMIN")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60)
	other := security.NewTokenManager("another-secret-another-secret-another-s", 60)

	token, err := tokens.GenerateAccessToken(7, "ana", "EMPLOYEE")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60)

	_, err := tokens.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
