package service

import (
	"github.com/rs/zerolog"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

// AccessGate makes role-based access decisions. It fails closed: a missing
// user or any internal fault yields a denial.
type AccessGate struct {
	logger zerolog.Logger
}

func NewAccessGate(logger zerolog.Logger) *AccessGate {
	return &AccessGate{logger: logger}
}

// Authorize reports whether user holds exactly the required role.
func (g *AccessGate) Authorize(user *domain.User, required domain.Role) (allowed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			g.logger.Error().Interface("panic", rec).Str("required_role", string(required)).Msg("access check failed, denying")
			allowed = false
		}
	}()

	if user == nil {
		return false
	}
	if !user.Role.Valid() {
		g.logger.Warn().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user has unknown role")
	}
	return user.Role == required
}
