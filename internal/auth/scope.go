package auth

import (
	"context"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

// Scope is the tenant context of an authenticated request. Every tenant-scoped
// manager call takes one and filters by CompanyID.
type Scope struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      model.Role
	Email     string
}

type contextKey struct{}

// WithScope stores s in ctx.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// ScopeFrom extracts the scope set by Authenticate.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(contextKey{}).(Scope)
	return s, ok
}

// ScopeForUser derives the tenant scope of u. Users without a company have no
// tenant and are refused on tenant-scoped routes.
func ScopeForUser(u *model.User) (Scope, error) {
	if u.CompanyID == nil || *u.CompanyID == uuid.Nil {
		return Scope{}, apperr.Wrap(apperr.ErrInsufficientPermissions, "User is not attached to a company")
	}
	return Scope{
		UserID:    u.ID,
		CompanyID: *u.CompanyID,
		Role:      u.Role,
		Email:     u.Email,
	}, nil
}

func tokenInvalid(cause error) error {
	e := *apperr.ErrTokenInvalid
	e.Err = cause
	return &e
}
