package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/kleandaily/klean-daily-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, subject, role string, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		Email: "asesor@klean.co",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-User", claims.UserID())
		w.Header().Set("X-Role", claims.Role)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "Token válido",
			path:           "/v1/commissions/summary",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "asesor-01", domain.RoleSeller, future),
			expectedStatus: http.StatusOK,
			expectedUser:   "asesor-01",
		},
		{
			name:           "Rota pública não exige token",
			path:           "/healthcheck",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Sem cabeçalho",
			path:           "/v1/commissions/summary",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Sem prefixo Bearer",
			path:           "/v1/commissions/summary",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token expirado",
			path:           "/v1/commissions/summary",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "asesor-01", domain.RoleSeller, time.Now().Add(-time.Hour)),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Segredo diferente",
			path:           "/v1/commissions/summary",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("outro"), "asesor-01", domain.RoleSeller, future),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Algoritmo diferente de HS256",
			path:           "/v1/commissions/summary",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), "asesor-01", domain.RoleSeller, future),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token sem subject",
			path:           "/v1/commissions/summary",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "", domain.RoleSeller, future),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	handler := AuthMiddleware(testSecret, "/healthcheck")(echoUser())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, rec.Header().Get("X-User"))
		})
	}
}

func TestParseToken_ExpiredError(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "asesor-01", domain.RoleSeller, time.Now().Add(-time.Minute))

	_, err := ParseToken(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRoleMiddleware(t *testing.T) {
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{name: "Admin acessa", role: domain.RoleAdmin, expectedStatus: http.StatusOK},
		{name: "Supervisor acessa", role: domain.RoleSupervisor, expectedStatus: http.StatusOK},
		{name: "Asesor é bloqueado", role: domain.RoleSeller, expectedStatus: http.StatusForbidden},
		{name: "Veterinário é bloqueado", role: domain.RoleVet, expectedStatus: http.StatusForbidden},
	}

	handler := AuthMiddleware(testSecret)(AdminOrSupervisor()(echoUser()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/commissions/ranking", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "u1", tt.role, future))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()

	AdminOnly()(echoUser()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, apiErrors.StatusFor(apiErrors.ErrInvalidToken), rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(HeaderCorrelationID, incoming)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get(HeaderCorrelationID))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "20 ms", formatDuration(20*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
