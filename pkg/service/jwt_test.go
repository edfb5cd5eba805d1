package service

import (
	"testing"
	"time"

	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Hour, zap.NewNop())

	token, err := issuer.GenerateToken(uuid.New(), "member")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, zap.NewNop())

	token, err := svc.GenerateToken(uuid.New(), "member")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
