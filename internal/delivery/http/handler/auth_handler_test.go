package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-report-service/config"
	"clinic-report-service/internal/delivery/dto"
	"clinic-report-service/internal/delivery/http/middleware"
	"clinic-report-service/internal/usecase"
	"clinic-report-service/pkg/jwt"
	"clinic-report-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	err error

	logoutUser    uuid.UUID
	logoutAccess  string
	logoutRefresh string
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	f.logoutUser, f.logoutAccess, f.logoutRefresh = userID, accessTokenID, refreshTokenID
	return f.err
}

func (f *fakeAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TokenResponse{AccessToken: "a2", RefreshToken: "r2", ExpiresIn: 900}, nil
}

func (f *fakeAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.UserResponse{ID: userID, Role: "dentist"}, nil
}

func testJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"ok", `{"email":"dentista@clinica.bo","password":"s3creta"}`, nil, http.StatusOK},
		{"bad email", `{"email":"dentista","password":"s3creta"}`, nil, http.StatusBadRequest},
		{"malformed", `{"email":`, nil, http.StatusBadRequest},
		{"wrong password", `{"email":"dentista@clinica.bo","password":"x"}`, usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", `{"email":"dentista@clinica.bo","password":"x"}`, usecase.ErrUserInactive, http.StatusForbidden},
		{"failure", `{"email":"dentista@clinica.bo","password":"x"}`, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthUsecase{err: tt.err}, validator.NewValidator(), testJWT())
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{err: usecase.ErrTokenRevoked}, validator.NewValidator(), testJWT())
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", strings.NewReader(`{"refresh_token":"r"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, usecase.ErrTokenRevoked.Error(), decodeEnvelope(t, rec).Message)
}

func TestAuthHandler_Logout(t *testing.T) {
	jwtService := testJWT()
	userID := uuid.New()

	refresh, refreshID, err := jwtService.GenerateRefreshToken(userID, "dentista@clinica.bo", 2)
	require.NoError(t, err)
	foreign, _, err := jwtService.GenerateRefreshToken(uuid.New(), "otro@clinica.bo", 2)
	require.NoError(t, err)
	access, _, err := jwtService.GenerateAccessToken(userID, "dentista@clinica.bo", 2)
	require.NoError(t, err)

	tests := []struct {
		name        string
		refresh     string
		wantRefresh string
	}{
		{"own refresh token", refresh, refreshID},
		{"someone else's refresh token", foreign, ""},
		{"access token sent as refresh", access, ""},
		{"no body", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeAuthUsecase{}
			h := NewAuthHandler(uc, validator.NewValidator(), jwtService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(`{"refresh_token":"`+tt.refresh+`"}`))
			ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
			ctx = context.WithValue(ctx, middleware.TokenIDKey, "access-id")

			rec := httptest.NewRecorder()
			h.Logout(rec, req.WithContext(ctx))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, userID, uc.logoutUser)
			assert.Equal(t, "access-id", uc.logoutAccess)
			assert.Equal(t, tt.wantRefresh, uc.logoutRefresh)
		})
	}

	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator(), jwtService)
	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{err: usecase.ErrUserNotFound}, validator.NewValidator(), testJWT())

	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), uuid.New()))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
