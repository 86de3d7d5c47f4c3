package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-report-service/config"
	"clinic-report-service/internal/delivery/http/handler"
	"clinic-report-service/internal/delivery/http/middleware"
	"clinic-report-service/internal/domain/entity"
	"clinic-report-service/pkg/jwt"
	"clinic-report-service/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router *mux.Router
	jwt    *jwt.JWTService
	redis  *miniredis.Miniredis
}

// Usecases stay nil: every request below is answered before reaching them.
func newRouterFixture(t *testing.T) *routerFixture {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	v := validator.NewValidator()

	r := NewRouter(
		handler.NewAuthHandler(nil, v, jwtService),
		handler.NewVoiceReportHandler(nil, v),
		handler.NewAuditLogHandler(nil, v),
		middleware.NewAuthMiddleware(jwtService, client),
		middleware.NewCORSMiddleware(""),
	)
	return &routerFixture{router: r.Setup(), jwt: jwtService, redis: mr}
}

func (f *routerFixture) token(t *testing.T, roleID int) string {
	userID := uuid.New()
	token, tokenID, err := f.jwt.GenerateAccessToken(userID, "usuario@clinica.bo", roleID)
	require.NoError(t, err)
	require.NoError(t, f.redis.Set("access_token:"+userID.String()+":"+tokenID, "valid"))
	return token
}

func (f *routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ReportAccess(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		roleID int
		want   int
	}{
		{"voice query without token", http.MethodPost, "/api/v1/reports/voice-query", 0, http.StatusUnauthorized},
		{"voice query as patient", http.MethodPost, "/api/v1/reports/voice-query", entity.RoleIDPatient, http.StatusForbidden},
		{"voice query as dentist", http.MethodPost, "/api/v1/reports/voice-query", entity.RoleIDDentist, http.StatusBadRequest},
		{"voice interpret as admin", http.MethodPost, "/api/v1/reports/voice-interpret", entity.RoleIDAdmin, http.StatusBadRequest},
		{"audit logs as dentist", http.MethodGet, "/api/v1/admin/audit-logs", entity.RoleIDDentist, http.StatusForbidden},
		{"cache flush as dentist", http.MethodDelete, "/api/v1/admin/report-cache", entity.RoleIDDentist, http.StatusForbidden},
		{"audit log with bad id", http.MethodGet, "/api/v1/admin/audit-logs/abc", entity.RoleIDAdmin, http.StatusNotFound},
		{"voice query with GET", http.MethodGet, "/api/v1/reports/voice-query", entity.RoleIDDentist, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ""
			if tt.roleID != 0 {
				token = f.token(t, tt.roleID)
			}
			// Malformed body: authorized requests stop at decoding
			rec := f.do(tt.method, tt.path, token, `{"texto":`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
