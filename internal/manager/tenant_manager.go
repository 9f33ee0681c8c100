// internal/manager/tenant_manager.go
package manager

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/model"
)

// TenantManager registers companies and keeps their event queues declared.
type TenantManager struct {
	deps   Deps
	tokens *auth.TokenIssuer

	mu        sync.RWMutex
	companies map[uuid.UUID]struct{}
}

func NewTenantManager(deps Deps, tokens *auth.TokenIssuer) *TenantManager {
	return &TenantManager{
		deps:      deps.withDefaults(),
		tokens:    tokens,
		companies: make(map[uuid.UUID]struct{}),
	}
}

// RegisterInput creates a company together with its first admin.
type RegisterInput struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
}

func (in RegisterInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.CompanyName) == "" {
		fields["companyName"] = "Company name is required"
	}
	if !validEmail(in.Email) {
		fields["email"] = "Valid email is required"
	}
	if len(in.Password) < auth.MinPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if len(fields) > 0 {
		return apperr.Validation("Validation failed", fields)
	}
	return nil
}

// Session is returned by register and login.
type Session struct {
	Token   string         `json:"token"`
	User    *model.User    `json:"user"`
	Company *model.Company `json:"company,omitempty"`
}

// RegisterCompany creates the company and admin in one transaction, declares the
// company's event queues and returns a session for the new admin.
func (tm *TenantManager) RegisterCompany(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err, "hash password")
	}

	now := tm.deps.Now().UTC()
	trialEnds := now.AddDate(0, 0, 14)
	company := &model.Company{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(in.CompanyName),
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		ZipCode:            in.ZipCode,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		IsActive:           true,
		SubscriptionTier:   model.TierBasic,
		SubscriptionStatus: model.SubscriptionTrial,
		TrialEndsAt:        &trialEnds,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	admin := &model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         model.RoleAdmin,
		CompanyID:    &company.ID,
		PhoneNumber:  in.PhoneNumber,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := tm.deps.Store.CreateCompanyWithAdmin(ctx, company, admin); err != nil {
		return nil, err
	}

	if err := tm.AddCompany(company.ID); err != nil {
		tm.deps.log(ctx).Warn("Failed to declare event queues",
			zap.String("company_id", company.ID.String()), zap.Error(err))
	}

	token, err := tm.tokens.Issue(admin)
	if err != nil {
		return nil, apperr.Internal(err, "issue token")
	}

	tm.deps.log(ctx).Info("Company registered",
		zap.String("company_id", company.ID.String()),
		zap.String("admin_id", admin.ID.String()))
	return &Session{Token: token, User: admin, Company: company}, nil
}

// AddCompany declares the company's event queues and tracks it for
// queue-depth reporting.
func (tm *TenantManager) AddCompany(companyID uuid.UUID) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, exists := tm.companies[companyID]; exists {
		return nil
	}
	if err := tm.deps.Publisher.DeclareQueue(companyID); err != nil {
		return err
	}
	tm.companies[companyID] = struct{}{}
	return nil
}

// RestoreCompanies re-declares the queues of every stored company. It runs once
// at startup.
func (tm *TenantManager) RestoreCompanies(ctx context.Context) error {
	ids, err := tm.deps.Store.ListCompanyIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := tm.AddCompany(id); err != nil {
			tm.deps.Logger.Warn("Failed to restore company queues",
				zap.String("company_id", id.String()), zap.Error(err))
		}
	}
	tm.deps.Logger.Info("Restored company event queues", zap.Int("companies", len(ids)))
	return nil
}

// CompanyIDs returns the companies whose queues are declared.
func (tm *TenantManager) CompanyIDs() []uuid.UUID {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(tm.companies))
	for id := range tm.companies {
		ids = append(ids, id)
	}
	return ids
}

// RefreshQueueDepths updates the queue-depth gauge for every known company.
func (tm *TenantManager) RefreshQueueDepths() {
	for _, id := range tm.CompanyIDs() {
		tm.deps.Publisher.UpdateQueueDepth(id)
	}
}
