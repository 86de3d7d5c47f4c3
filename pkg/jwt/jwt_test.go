package jwt

import (
	"testing"
	"time"

	"clinic-report-service/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: expiry, RefreshExpiry: time.Hour})
}

func TestGenerateAndValidate(t *testing.T) {
	s := newService(time.Minute)
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "admin@clinica.bo", 1)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, 1, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, "access_token:"+userID.String()+":"+tokenID, claims.SessionKey())

	refresh, refreshID, err := s.GenerateRefreshToken(userID, "admin@clinica.bo", 1)
	require.NoError(t, err)
	claims, err = s.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh_token:"+userID.String()+":"+refreshID, claims.SessionKey())
}

func TestValidateToken_Rejects(t *testing.T) {
	s := newService(time.Minute)

	expired, _, err := newService(-time.Minute).GenerateAccessToken(uuid.New(), "a@clinica.bo", 2)
	require.NoError(t, err)
	_, err = s.ValidateToken(expired)
	assert.Error(t, err)

	foreign, _, err := NewJWTService(config.JWTConfig{Secret: "other", AccessExpiry: time.Minute}).GenerateAccessToken(uuid.New(), "a@clinica.bo", 2)
	require.NoError(t, err)
	_, err = s.ValidateToken(foreign)
	assert.Error(t, err)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: uuid.New(), TokenID: "x"}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ValidateToken(none)
	assert.Error(t, err)
}
