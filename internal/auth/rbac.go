package auth

import (
	"net/http"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

// Operation names a guarded action.
type Operation string

const (
	OpCompanyRead   Operation = "company:read"
	OpCompanyUpdate Operation = "company:update"
	OpCompanyLogo   Operation = "company:logo"
	OpTeamRead      Operation = "company:team:read"
	OpTeamInvite    Operation = "company:team:invite"

	OpClientRead   Operation = "client:read"
	OpClientCreate Operation = "client:create"
	OpClientUpdate Operation = "client:update"
	OpClientDelete Operation = "client:delete"

	OpPropertyRead   Operation = "property:read"
	OpPropertyCreate Operation = "property:create"
	OpPropertyUpdate Operation = "property:update"
	OpPropertyZones  Operation = "property:zones"
	OpPropertyImage  Operation = "property:image"
	OpPropertyDelete Operation = "property:delete"

	OpJobRead   Operation = "job:read"
	OpJobCreate Operation = "job:create"
	OpJobUpdate Operation = "job:update"
	OpJobDelete Operation = "job:delete"
	OpJobStatus Operation = "job:status"
	OpJobPhotos Operation = "job:photos"
)

var (
	everyone     = roleSet(model.RoleAdmin, model.RoleManager, model.RoleCrew, model.RoleClient)
	staff        = roleSet(model.RoleAdmin, model.RoleManager, model.RoleCrew)
	managers     = roleSet(model.RoleAdmin, model.RoleManager)
	adminsOnly   = roleSet(model.RoleAdmin)
	capabilities = map[Operation]map[model.Role]bool{
		OpCompanyRead:   everyone,
		OpCompanyUpdate: managers,
		OpCompanyLogo:   adminsOnly,
		OpTeamRead:      everyone,
		OpTeamInvite:    adminsOnly,

		OpClientRead:   everyone,
		OpClientCreate: managers,
		OpClientUpdate: managers,
		OpClientDelete: adminsOnly,

		OpPropertyRead:   everyone,
		OpPropertyCreate: managers,
		OpPropertyUpdate: managers,
		OpPropertyZones:  managers,
		OpPropertyImage:  managers,
		OpPropertyDelete: adminsOnly,

		OpJobRead:   everyone,
		OpJobCreate: managers,
		OpJobUpdate: managers,
		OpJobDelete: adminsOnly,
		OpJobStatus: staff,
		OpJobPhotos: staff,
	}
)

// Operations lists every guarded operation in declaration order.
var Operations = []Operation{
	OpCompanyRead, OpCompanyUpdate, OpCompanyLogo, OpTeamRead, OpTeamInvite,
	OpClientRead, OpClientCreate, OpClientUpdate, OpClientDelete,
	OpPropertyRead, OpPropertyCreate, OpPropertyUpdate, OpPropertyZones, OpPropertyImage, OpPropertyDelete,
	OpJobRead, OpJobCreate, OpJobUpdate, OpJobDelete, OpJobStatus, OpJobPhotos,
}

func roleSet(roles ...model.Role) map[model.Role]bool {
	set := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// Authorize returns ErrInsufficientPermissions unless role may perform op.
// Operations missing from the table are denied.
func Authorize(op Operation, role model.Role) error {
	if capabilities[op][role] {
		return nil
	}
	return apperr.ErrInsufficientPermissions
}

// AllowedRoles returns the roles permitted for op.
func AllowedRoles(op Operation) []model.Role {
	var out []model.Role
	for _, r := range model.Roles {
		if capabilities[op][r] {
			out = append(out, r)
		}
	}
	return out
}

// Require guards a route with the capability table. It must run after
// Authenticator.Middleware.
func Require(op Operation, writeErr ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := ScopeFrom(r.Context())
			if !ok {
				writeErr(w, r, apperr.Wrap(apperr.ErrTokenInvalid, "User not authenticated"))
				return
			}
			if err := Authorize(op, s.Role); err != nil {
				writeErr(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
