package manager

import (
	"context"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/model"
)

// Resolver loads entities inside the caller's tenant. An entity that is
// missing, soft-deleted or owned by another company yields the same NotFound.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) ResolveClient(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Client, error) {
	return r.store.GetClient(ctx, s.CompanyID, id)
}

func (r *Resolver) ResolveProperty(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Property, error) {
	return r.store.GetProperty(ctx, s.CompanyID, id)
}

func (r *Resolver) ResolveJob(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Job, error) {
	return r.store.GetJob(ctx, s.CompanyID, id)
}

// ResolveJobRefs checks that the property and client of a job are both in the
// tenant and that the property belongs to that client.
func (r *Resolver) ResolveJobRefs(ctx context.Context, s auth.Scope, propertyID, clientID uuid.UUID) (*model.Property, *model.Client, error) {
	p, err := r.ResolveProperty(ctx, s, propertyID)
	if err != nil {
		return nil, nil, err
	}
	c, err := r.ResolveClient(ctx, s, clientID)
	if err != nil {
		return nil, nil, err
	}
	if p.ClientID != c.ID {
		return nil, nil, apperr.ErrPropertyClientMismatch
	}
	return p, c, nil
}

// ValidateAssignees requires every id to be a user of the caller's company.
func (r *Resolver) ValidateAssignees(ctx context.Context, s auth.Scope, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	n, err := r.store.CountCompanyUsers(ctx, s.CompanyID, ids)
	if err != nil {
		return err
	}
	if n != len(unique) {
		return apperr.Validation("Validation failed", map[string]string{
			"assignedTo": "All assigned users must belong to your company",
		})
	}
	return nil
}
