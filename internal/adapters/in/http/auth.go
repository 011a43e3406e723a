package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const userIDKey = "user_id"

// AuthConfig configures bearer token verification. Tokens are HS256 signed and carry
// the user id in the sub claim. An empty Secret makes every protected route answer 503.
type AuthConfig struct {
	Secret   string
	Audience string
	Skipper  middleware.Skipper
}

// Authenticate verifies the bearer token of each request not skipped by the config and
// stores the caller's user id in the echo context.
func Authenticate(cfg AuthConfig) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(ctx) {
				return next(ctx)
			}
			if cfg.Secret == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication is not configured")
			}

			raw, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			var claims jwt.RegisteredClaims
			_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return key, nil
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").SetInternal(err)
			}

			subject := strings.TrimSpace(claims.Subject)
			if subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
			}

			ctx.Set(userIDKey, subject)
			return next(ctx)
		}
	}
}

// UserID returns the authenticated caller, or "" on public routes.
func UserID(ctx echo.Context) string {
	id, _ := ctx.Get(userIDKey).(string)
	return id
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
