package http

import (
	"net/http"
	"strings"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the middleware stores the
// authenticated actor under.
const actorContextKey = "foodshare.actor"

// Claims is the JWT payload the service trusts: the subject is the actor's
// id, the role claim its capability.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware authenticates requests via a Bearer token and resolves the
// token into an actor for the handlers. Tokens are symmetric HMAC; identity
// issuing lives outside this service.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a middleware validating tokens against the given
// signing secret.
func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Authenticate parses the Authorization header and stores the resulting
// actor in the request context. Requests without a valid token get 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing token",
			})
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token format",
			})
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token",
			})
		}

		requester, err := actorFromClaims(claims)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token claims",
			})
		}

		c.Set(actorContextKey, requester)
		return next(c)
	}
}

func actorFromClaims(claims *Claims) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}
	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}
	return actor.NewActor(id, role)
}

// requestActor returns the actor the middleware authenticated for this
// request.
func requestActor(c echo.Context) (actor.Actor, bool) {
	requester, ok := c.Get(actorContextKey).(actor.Actor)
	return requester, ok
}
