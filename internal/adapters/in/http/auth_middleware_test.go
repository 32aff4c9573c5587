package http_test

import (
	netHttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	foodsharehttp "foodshare/internal/adapters/in/http"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func signedToken(t *testing.T, subject string, role string, secret []byte) string {
	t.Helper()

	claims := foodsharehttp.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func protectedEcho() *echo.Echo {
	e := echo.New()
	mw := foodsharehttp.NewAuthMiddleware(testSecret)
	e.GET("/api/ping", func(c echo.Context) error {
		return c.NoContent(netHttp.StatusOK)
	}, mw.Authenticate)
	return e
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := protectedEcho()
	token := signedToken(t, kernel.NewUUID().String(), "donor", testSecret)

	req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, netHttp.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := protectedEcho()

	req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, netHttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing token")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	e := protectedEcho()
	token := signedToken(t, kernel.NewUUID().String(), "donor", testSecret)

	req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, netHttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token format")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := protectedEcho()
	token := signedToken(t, kernel.NewUUID().String(), "donor", []byte("other-secret"))

	req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, netHttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := protectedEcho()
	claims := foodsharehttp.Claims{
		Role: "donor",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, netHttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BadClaims(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		role    string
	}{
		{"unparseable_subject", "not-a-uuid", "donor"},
		{"unknown_role", kernel.NewUUID().String(), "admin"},
		{"empty_role", kernel.NewUUID().String(), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := protectedEcho()
			token := signedToken(t, tc.subject, tc.role, testSecret)

			req := httptest.NewRequest(netHttp.MethodGet, "/api/ping", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, netHttp.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid token claims")
		})
	}
}
