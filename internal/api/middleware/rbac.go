package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/clinicadmin/inventory-api/internal/api/metrics"
	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// RequireRole enforces role-based access control using the access gate.
// Must run after Authenticate.
func RequireRole(gate ports.AccessGate, role domain.Role, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !gate.Authorize(Identity(c), role) {
				m.AccessDecisionsTotal.WithLabelValues(string(role), metrics.DecisionDenied).Inc()
				return domain.NewUnauthorized("")
			}
			m.AccessDecisionsTotal.WithLabelValues(string(role), metrics.DecisionAllowed).Inc()
			return next(c)
		}
	}
}
