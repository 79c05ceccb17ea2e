package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinicadmin/inventory-api/internal/api/metrics"
	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

const identityKey = "identity"

// Authenticate resolves the bearer token once per request and stores the
// resulting user in the context. Requests without a usable token continue
// anonymously; only a store failure aborts the request.
func Authenticate(resolver ports.TokenResolver, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

			user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				m.TokenResolutionsTotal.WithLabelValues(metrics.ResolutionError).Inc()
				return err
			}

			if user == nil {
				m.TokenResolutionsTotal.WithLabelValues(metrics.ResolutionAnonymous).Inc()
			} else {
				m.TokenResolutionsTotal.WithLabelValues(metrics.ResolutionIdentified).Inc()
				c.Set(identityKey, user)
			}
			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Any other value yields "".
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Identity returns the user resolved by Authenticate, or nil.
func Identity(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
