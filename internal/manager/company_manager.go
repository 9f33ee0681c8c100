package manager

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/messaging"
	"landscapehub/internal/model"
)

// CompanyManager serves the caller's own company and its team.
type CompanyManager struct {
	deps Deps
}

func NewCompanyManager(deps Deps) *CompanyManager {
	return &CompanyManager{deps: deps.withDefaults()}
}

func (m *CompanyManager) Get(ctx context.Context, s auth.Scope) (*model.Company, error) {
	return m.deps.Store.GetCompany(ctx, s.CompanyID)
}

// CompanyUpdate is a partial update. Blank fields keep their current value.
type CompanyUpdate struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

func keep(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func (m *CompanyManager) Update(ctx context.Context, s auth.Scope, in CompanyUpdate) (*model.Company, error) {
	c, err := m.deps.Store.GetCompany(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}
	if in.Email != "" {
		if !validEmail(in.Email) {
			return nil, apperr.Validation("Validation failed", map[string]string{"email": "Invalid email"})
		}
	}

	keep(&c.Name, in.Name)
	keep(&c.Address, in.Address)
	keep(&c.City, in.City)
	keep(&c.State, in.State)
	keep(&c.ZipCode, in.ZipCode)
	keep(&c.PhoneNumber, in.PhoneNumber)
	keep(&c.Email, in.Email)
	keep(&c.Website, in.Website)
	keep(&c.Description, in.Description)
	c.UpdatedAt = m.deps.Now().UTC()

	if err := m.deps.Store.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UploadLogo stores the file under companies/{id}/logo and records its URL.
func (m *CompanyManager) UploadLogo(ctx context.Context, s auth.Scope, u Upload) (*model.Company, error) {
	c, err := m.deps.Store.GetCompany(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}
	url, err := m.deps.upload(ctx, "companies", c.ID.String(), "logo", u)
	if err != nil {
		return nil, apperr.Internal(err, "upload logo")
	}
	c.LogoURL = url
	c.UpdatedAt = m.deps.Now().UTC()
	if err := m.deps.Store.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *CompanyManager) Team(ctx context.Context, s auth.Scope) ([]model.User, error) {
	return m.deps.Store.ListTeam(ctx, s.CompanyID)
}

type InviteInput struct {
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        model.Role `json:"role"`
	PhoneNumber string     `json:"phoneNumber"`
}

// Invitation carries the generated password. It is only ever returned once.
type Invitation struct {
	User              *model.User `json:"user"`
	TemporaryPassword string      `json:"temporaryPassword"`
}

func (m *CompanyManager) Invite(ctx context.Context, s auth.Scope, in InviteInput) (*Invitation, error) {
	fields := map[string]string{}
	if !validEmail(in.Email) {
		fields["email"] = "Valid email is required"
	}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if !in.Role.Valid() {
		fields["role"] = "Role must be one of admin, manager, crew, client"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("Validation failed", fields)
	}

	temp, err := temporaryPassword()
	if err != nil {
		return nil, apperr.Internal(err, "generate password")
	}
	hash, err := auth.HashPassword(temp)
	if err != nil {
		return nil, apperr.Internal(err, "hash password")
	}

	now := m.deps.Now().UTC()
	companyID := s.CompanyID
	u := &model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
		CompanyID:    &companyID,
		PhoneNumber:  in.PhoneNumber,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.deps.Store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	m.deps.log(ctx).Info("User invited",
		zap.String("company_id", companyID.String()),
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)))
	m.deps.emit(ctx, messaging.NewEvent(messaging.EventUserInvited, companyID, u.ID, map[string]any{
		"email":     u.Email,
		"role":      u.Role,
		"invitedBy": s.UserID,
	}))
	return &Invitation{User: u, TemporaryPassword: temp}, nil
}

func temporaryPassword() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
