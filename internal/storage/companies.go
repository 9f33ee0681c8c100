package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"landscapehub/internal/model"
)

const companyColumns = `id, name, address, city, state, zip_code, phone_number, email, website,
	logo_url, description, is_active, subscription_tier, subscription_status, trial_ends_at,
	created_at, updated_at`

func scanCompany(row interface{ Scan(...any) error }) (*model.Company, error) {
	var c model.Company
	var trial sql.NullTime
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.ZipCode, &c.PhoneNumber,
		&c.Email, &c.Website, &c.LogoURL, &c.Description, &c.IsActive, &c.SubscriptionTier,
		&c.SubscriptionStatus, &trial, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.TrialEndsAt = timePtr(trial)
	return &c, nil
}

// CreateCompanyWithAdmin inserts a company and its first admin in one transaction.
func (s *Storage) CreateCompanyWithAdmin(ctx context.Context, c *model.Company, admin *model.User) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO companies (id, name, address, city, state, zip_code, phone_number, email, website,
			logo_url, description, is_active, subscription_tier, subscription_status, trial_ends_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)`,
		c.ID, c.Name, c.Address, c.City, c.State, c.ZipCode, c.PhoneNumber, c.Email, c.Website,
		c.LogoURL, c.Description, c.IsActive, c.SubscriptionTier, c.SubscriptionStatus,
		nullTime(c.TrialEndsAt), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}

	if err := insertUser(ctx, tx, admin); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Storage) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1 AND deleted_at IS NULL`, id)
	c, err := scanCompany(row)
	if err != nil {
		return nil, notFoundOr(err, "Company")
	}
	return c, nil
}

func (s *Storage) UpdateCompany(ctx context.Context, c *model.Company) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE companies
		SET name = $2, address = $3, city = $4, state = $5, zip_code = $6, phone_number = $7,
			email = $8, website = $9, logo_url = $10, description = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`,
		c.ID, c.Name, c.Address, c.City, c.State, c.ZipCode, c.PhoneNumber, c.Email, c.Website,
		c.LogoURL, c.Description, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return expectOne(res, "Company")
}

// ListCompanyIDs returns every live company, used to restore event queues at startup.
func (s *Storage) ListCompanyIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id FROM companies WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
