package manager

import (
	"context"

	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/model"
)

// AuthManager verifies credentials and manages the caller's own account.
type AuthManager struct {
	deps   Deps
	tokens *auth.TokenIssuer
}

func NewAuthManager(deps Deps, tokens *auth.TokenIssuer) *AuthManager {
	return &AuthManager{deps: deps.withDefaults(), tokens: tokens}
}

// Login checks email and password. Unknown email and wrong password fail the
// same way; an inactive account with the right password gets AccountDisabled.
func (m *AuthManager) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password are required", nil)
	}

	u, err := m.deps.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.From(err).Kind != apperr.KindNotFound {
			return nil, err
		}
		auth.BurnPasswordCheck(password)
		m.deps.Metrics.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return nil, apperr.ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		m.deps.Metrics.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return nil, apperr.ErrInvalidCredentials
	}
	if !u.IsActive {
		m.deps.Metrics.AuthFailures.WithLabelValues("account_disabled").Inc()
		return nil, apperr.ErrAccountDisabled
	}

	now := m.deps.Now().UTC()
	if err := m.deps.Store.UpdateLastLogin(ctx, u.ID, now); err != nil {
		m.deps.log(ctx).Warn("Failed to record last login", zap.String("user_id", u.ID.String()), zap.Error(err))
	} else {
		u.LastLogin = &now
	}

	token, err := m.tokens.Issue(u)
	if err != nil {
		return nil, apperr.Internal(err, "issue token")
	}

	var company *model.Company
	if u.CompanyID != nil {
		company, err = m.deps.Store.GetCompany(ctx, *u.CompanyID)
		if err != nil && apperr.From(err).Kind != apperr.KindNotFound {
			return nil, err
		}
	}
	return &Session{Token: token, User: u, Company: company}, nil
}

// Profile is the caller's user record with their company.
type Profile struct {
	User    *model.User    `json:"user"`
	Company *model.Company `json:"company"`
}

func (m *AuthManager) Profile(ctx context.Context, s auth.Scope) (*Profile, error) {
	u, err := m.deps.Store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	c, err := m.deps.Store.GetCompany(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: u, Company: c}, nil
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (m *AuthManager) ChangePassword(ctx context.Context, s auth.Scope, in ChangePasswordInput) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return apperr.Validation("Current password and new password are required", nil)
	}
	if len(in.NewPassword) < auth.MinPasswordLength {
		return apperr.Validation("Validation failed", map[string]string{
			"newPassword": "Password must be at least 8 characters",
		})
	}

	u, err := m.deps.Store.GetUserByID(ctx, s.UserID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, in.CurrentPassword) {
		return apperr.Wrap(apperr.ErrInvalidCredentials, "Current password is incorrect")
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return apperr.Internal(err, "hash password")
	}
	return m.deps.Store.UpdatePasswordHash(ctx, u.ID, hash)
}
