package manager

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/messaging"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

type ClientManager struct {
	deps     Deps
	resolver *Resolver
}

func NewClientManager(deps Deps, resolver *Resolver) *ClientManager {
	return &ClientManager{deps: deps.withDefaults(), resolver: resolver}
}

type ClientInput struct {
	FirstName        string                 `json:"firstName"`
	LastName         string                 `json:"lastName"`
	Email            string                 `json:"email"`
	PhoneNumber      string                 `json:"phoneNumber"`
	Address          string                 `json:"address"`
	City             string                 `json:"city"`
	State            string                 `json:"state"`
	ZipCode          string                 `json:"zipCode"`
	Notes            string                 `json:"notes"`
	BillingFrequency model.BillingFrequency `json:"billingFrequency"`
	ClientSince      *time.Time             `json:"clientSince"`
}

// ClientUpdate is a partial update; nil fields are left alone.
type ClientUpdate struct {
	FirstName        *string                 `json:"firstName"`
	LastName         *string                 `json:"lastName"`
	Email            *string                 `json:"email"`
	PhoneNumber      *string                 `json:"phoneNumber"`
	Address          *string                 `json:"address"`
	City             *string                 `json:"city"`
	State            *string                 `json:"state"`
	ZipCode          *string                 `json:"zipCode"`
	Notes            *string                 `json:"notes"`
	BillingFrequency *model.BillingFrequency `json:"billingFrequency"`
	IsActive         *bool                   `json:"isActive"`
}

// validEmail accepts a bare address only; display-name forms are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (in ClientInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if in.Email != "" && !validEmail(in.Email) {
		fields["email"] = "Invalid email"
	}
	if in.BillingFrequency != "" && !in.BillingFrequency.Valid() {
		fields["billingFrequency"] = "Invalid billing frequency"
	}
	if len(fields) > 0 {
		return apperr.Validation("Validation failed", fields)
	}
	return nil
}

func (m *ClientManager) List(ctx context.Context, s auth.Scope, f storage.ClientFilter) (Page[model.Client], error) {
	f.Page = f.Page.Normalize()
	items, total, err := m.deps.Store.ListClients(ctx, s.CompanyID, f)
	if err != nil {
		return Page[model.Client]{}, err
	}
	return newPage(items, total, f.Page.Page, f.Page.Limit), nil
}

func (m *ClientManager) Get(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Client, error) {
	return m.resolver.ResolveClient(ctx, s, id)
}

func (m *ClientManager) Create(ctx context.Context, s auth.Scope, in ClientInput) (*model.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := m.deps.Now().UTC()
	c := &model.Client{
		ID:               uuid.New(),
		CompanyID:        s.CompanyID,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            in.Email,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		City:             in.City,
		State:            in.State,
		ZipCode:          in.ZipCode,
		Notes:            in.Notes,
		BillingFrequency: in.BillingFrequency,
		IsActive:         true,
		ClientSince:      now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if c.BillingFrequency == "" {
		c.BillingFrequency = model.BillingMonthly
	}
	if in.ClientSince != nil {
		c.ClientSince = in.ClientSince.UTC()
	}

	if err := m.deps.Store.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *ClientManager) Update(ctx context.Context, s auth.Scope, id uuid.UUID, in ClientUpdate) (*model.Client, error) {
	c, err := m.resolver.ResolveClient(ctx, s, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		fields["firstName"] = "First name cannot be empty"
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		fields["lastName"] = "Last name cannot be empty"
	}
	if in.Email != nil && *in.Email != "" && !validEmail(*in.Email) {
		fields["email"] = "Invalid email"
	}
	if in.BillingFrequency != nil && !in.BillingFrequency.Valid() {
		fields["billingFrequency"] = "Invalid billing frequency"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("Validation failed", fields)
	}

	setString(&c.FirstName, in.FirstName)
	setString(&c.LastName, in.LastName)
	setString(&c.Email, in.Email)
	setString(&c.PhoneNumber, in.PhoneNumber)
	setString(&c.Address, in.Address)
	setString(&c.City, in.City)
	setString(&c.State, in.State)
	setString(&c.ZipCode, in.ZipCode)
	setString(&c.Notes, in.Notes)
	if in.BillingFrequency != nil {
		c.BillingFrequency = *in.BillingFrequency
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = m.deps.Now().UTC()

	// the store rejects an email already used by another client of the company
	if err := m.deps.Store.UpdateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteResult tells the caller whether the client was removed or only deactivated.
type DeleteResult struct {
	Deactivated bool   `json:"deactivated"`
	Message     string `json:"message"`
}

// Delete soft-deletes a client, or deactivates it when it still has properties.
func (m *ClientManager) Delete(ctx context.Context, s auth.Scope, id uuid.UUID) (*DeleteResult, error) {
	c, err := m.resolver.ResolveClient(ctx, s, id)
	if err != nil {
		return nil, err
	}

	n, err := m.deps.Store.CountLiveProperties(ctx, s.CompanyID, c.ID)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		c.IsActive = false
		c.UpdatedAt = m.deps.Now().UTC()
		if err := m.deps.Store.UpdateClient(ctx, c); err != nil {
			return nil, err
		}
		m.deps.log(ctx).Info("Client deactivated instead of deleted",
			zap.String("client_id", c.ID.String()), zap.Int("properties", n))
		m.deps.emit(ctx, messaging.NewEvent(messaging.EventClientDeactivated, s.CompanyID, c.ID,
			map[string]any{"properties": n}))
		return &DeleteResult{
			Deactivated: true,
			Message:     "Client has active properties and has been deactivated instead of deleted",
		}, nil
	}

	if err := m.deps.Store.SoftDeleteClient(ctx, s.CompanyID, c.ID, m.deps.Now().UTC()); err != nil {
		return nil, err
	}
	m.deps.emit(ctx, messaging.NewEvent(messaging.EventClientDeleted, s.CompanyID, c.ID, nil))
	return &DeleteResult{Message: "Client deleted successfully"}, nil
}

// Properties lists the live properties of one client.
func (m *ClientManager) Properties(ctx context.Context, s auth.Scope, id uuid.UUID) ([]model.Property, error) {
	c, err := m.resolver.ResolveClient(ctx, s, id)
	if err != nil {
		return nil, err
	}
	props, _, err := m.deps.Store.ListProperties(ctx, s.CompanyID, storage.PropertyFilter{
		ClientID: &c.ID,
		Page:     storage.Page{Limit: storage.MaxLimit, SortBy: "name", SortOrder: "asc"},
	})
	return props, err
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
