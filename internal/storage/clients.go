package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

var errClientEmailTaken = apperr.Conflict("Client with this email already exists")

type ClientFilter struct {
	Active *bool
	Search string
	Page
}

var clientSort = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"createdAt":   "created_at",
	"clientSince": "client_since",
}

const clientColumns = `id, company_id, first_name, last_name, COALESCE(email, ''), phone_number,
	address, city, state, zip_code, notes, billing_frequency, is_active, client_since,
	created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(&c.ID, &c.CompanyID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
		&c.Address, &c.City, &c.State, &c.ZipCode, &c.Notes, &c.BillingFrequency, &c.IsActive,
		&c.ClientSince, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateClient(ctx context.Context, c *model.Client) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO clients (id, company_id, first_name, last_name, email, phone_number, address,
			city, state, zip_code, notes, billing_frequency, is_active, client_since, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`,
		c.ID, c.CompanyID, c.FirstName, c.LastName, nullString(c.Email), c.PhoneNumber, c.Address,
		c.City, c.State, c.ZipCode, c.Notes, c.BillingFrequency, c.IsActive, c.ClientSince, c.CreatedAt)
	if isUniqueViolation(err) {
		return errClientEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetClient returns the client only if it belongs to companyID and is not deleted.
func (s *Storage) GetClient(ctx context.Context, companyID, id uuid.UUID) (*model.Client, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`, id, companyID)
	c, err := scanClient(row)
	if err != nil {
		return nil, notFoundOr(err, "Client")
	}
	return c, nil
}

func (s *Storage) UpdateClient(ctx context.Context, c *model.Client) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE clients
		SET first_name = $3, last_name = $4, email = $5, phone_number = $6, address = $7, city = $8,
			state = $9, zip_code = $10, notes = $11, billing_frequency = $12, is_active = $13,
			updated_at = $14
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		c.ID, c.CompanyID, c.FirstName, c.LastName, nullString(c.Email), c.PhoneNumber, c.Address,
		c.City, c.State, c.ZipCode, c.Notes, c.BillingFrequency, c.IsActive, c.UpdatedAt)
	if isUniqueViolation(err) {
		return errClientEmailTaken
	}
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return expectOne(res, "Client")
}

func (s *Storage) ListClients(ctx context.Context, companyID uuid.UUID, f ClientFilter) ([]model.Client, int, error) {
	f.Page = f.Page.Normalize()

	w := &whereBuilder{}
	w.add("company_id = ?", companyID)
	w.add("deleted_at IS NULL")
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.Search != "" {
		w.add("(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)",
			likePattern(f.Search), likePattern(f.Search), likePattern(f.Search))
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := `SELECT ` + clientColumns + ` FROM clients` + w.sql() +
		orderBy(clientSort, f.SortBy, "lastName", f.Descending(false)) + w.limit(f.Page)
	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []model.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, *c)
	}
	return clients, total, rows.Err()
}

// CountLiveProperties counts non-deleted properties of the client.
func (s *Storage) CountLiveProperties(ctx context.Context, companyID, clientID uuid.UUID) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM properties p
		JOIN clients c ON c.id = p.client_id AND c.company_id = $2
		WHERE p.client_id = $1 AND p.deleted_at IS NULL`, clientID, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

func (s *Storage) SoftDeleteClient(ctx context.Context, companyID, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, s.DB, "clients", "Client", companyID, id, at)
}

func softDelete(ctx context.Context, db *sql.DB, table, entity string, companyID, id uuid.UUID, at time.Time) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %s SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`, table),
		id, companyID, at)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return expectOne(res, entity)
}
