package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

func TestCapabilityTableCoversEveryOperation(t *testing.T) {
	assert.Len(t, capabilities, len(Operations))
	for _, op := range Operations {
		roles, ok := capabilities[op]
		assert.True(t, ok, "operation %s has no entry", op)
		assert.NotEmpty(t, roles, "operation %s allows nobody", op)
		assert.True(t, roles[model.RoleAdmin], "admin must be allowed %s", op)
	}
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		op   Operation
		role model.Role
		ok   bool
	}{
		{OpCompanyUpdate, model.RoleManager, true},
		{OpCompanyUpdate, model.RoleCrew, false},
		{OpCompanyLogo, model.RoleManager, false},
		{OpCompanyLogo, model.RoleAdmin, true},
		{OpJobStatus, model.RoleCrew, true},
		{OpJobStatus, model.RoleClient, false},
		{OpJobDelete, model.RoleManager, false},
		{OpClientRead, model.RoleClient, true},
		{Operation("unknown:op"), model.RoleAdmin, false},
	}
	for _, tc := range cases {
		err := Authorize(tc.op, tc.role)
		if tc.ok {
			assert.NoError(t, err, "%s as %s", tc.op, tc.role)
		} else {
			assert.True(t, errors.Is(err, apperr.ErrInsufficientPermissions), "%s as %s", tc.op, tc.role)
		}
	}
}

func TestAllowedRoles(t *testing.T) {
	assert.Equal(t, []model.Role{model.RoleAdmin, model.RoleManager, model.RoleCrew}, AllowedRoles(OpJobPhotos))
	assert.Empty(t, AllowedRoles(Operation("nope")))
}

func statusWriter(w http.ResponseWriter, _ *http.Request, err error) {
	w.WriteHeader(apperr.From(err).Kind.Status())
}

func TestRequire(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := Require(OpJobDelete, statusWriter)(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/jobs/1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/jobs/1", nil)
	req = req.WithContext(WithScope(req.Context(), Scope{Role: model.RoleCrew}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/jobs/1", nil)
	req = req.WithContext(WithScope(req.Context(), Scope{Role: model.RoleAdmin}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
