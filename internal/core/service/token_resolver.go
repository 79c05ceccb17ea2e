package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// userIDTokenPrefix marks tokens of the form "user:<id>". The suffix must be
// a plain base-10 integer; "user:12abc" and "user: 12" resolve to nobody.
const userIDTokenPrefix = "user:"

// TokenResolver resolves opaque bearer tokens against the user store.
// A token is either "user:<id>" or a username.
type TokenResolver struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTokenResolver(users ports.UserRepository, logger zerolog.Logger) *TokenResolver {
	return &TokenResolver{users: users, logger: logger}
}

// Resolve returns the user identified by token, or nil when the token is
// empty, malformed or names nobody. Only store failures are returned as errors.
// Each call performs at most one store read.
func (r *TokenResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	var (
		user *domain.User
		err  error
	)
	if idPart, ok := strings.CutPrefix(token, userIDTokenPrefix); ok {
		id, perr := strconv.ParseInt(idPart, 10, 64)
		if perr != nil {
			r.logger.Debug().Str("token_kind", "user_id").Msg("malformed user id token")
			return nil, nil
		}
		user, err = r.users.FindByID(ctx, id)
	} else {
		user, err = r.users.FindByUsername(ctx, token)
	}

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.logger.Debug().Msg("token did not match any user")
			return nil, nil
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	return user, nil
}
