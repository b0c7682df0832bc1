// Package auth verifies the bearer credential attached to each request and
// resolves it to the calling user's id. Tokens are HS256 JWTs minted by the
// identity service with a shared signing secret; the subject claim carries
// the user id.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const UserIDKey contextKey = "user_id"

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

type Config struct {
	SigningSecret []byte
	Issuer        string
}

// unauthorized is the envelope returned for any credential failure. The
// caller never learns which check failed.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"error":   "Unauthorized",
	})
}

// Middleware validates the Authorization header and places the resolved user
// id on the request context. Requests without a valid bearer token are
// rejected before any handler runs.
func Middleware(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c)
			}

			claims := &Claims{}
			opts := []jwt.ParserOption{
				jwt.WithValidMethods([]string{"HS256"}),
			}
			if cfg.Issuer != "" {
				opts = append(opts, jwt.WithIssuer(cfg.Issuer))
			}

			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.SigningSecret, nil
			}, opts...)
			if err != nil || !token.Valid {
				return unauthorized(c)
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return unauthorized(c)
			}

			ctx := context.WithValue(c.Request().Context(), UserIDKey, userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's id, or uuid.Nil when the
// request did not pass through Middleware.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	uid, _ := ctx.Value(UserIDKey).(uuid.UUID)
	return uid
}
