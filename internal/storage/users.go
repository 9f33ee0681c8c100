package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

var errUserEmailTaken = apperr.Conflict("User with this email already exists")

const userColumns = `id, email, password_hash, first_name, last_name, role, company_id,
	phone_number, is_active, last_login, created_at, updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var company uuid.NullUUID
	var lastLogin sql.NullTime
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role,
		&company, &u.PhoneNumber, &u.IsActive, &lastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if company.Valid {
		id := company.UUID
		u.CompanyID = &id
	}
	u.LastLogin = timePtr(lastLogin)
	return &u, nil
}

func insertUser(ctx context.Context, db execer, u *model.User) error {
	var company any
	if u.CompanyID != nil {
		company = *u.CompanyID
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, company_id,
			phone_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, company,
		u.PhoneNumber, u.IsActive, u.CreatedAt)
	if isUniqueViolation(err) {
		return errUserEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) CreateUser(ctx context.Context, u *model.User) error {
	return insertUser(ctx, s.DB, u)
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND deleted_at IS NULL`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}
	return u, nil
}

// GetUserByEmail matches the email exactly.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND deleted_at IS NULL`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}
	return u, nil
}

func (s *Storage) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE users SET last_login = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	return err
}

func (s *Storage) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`,
		id, hash, s.now())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return expectOne(res, "User")
}

// ListTeam returns the company's users ordered by last name, first name.
func (s *Storage) ListTeam(ctx context.Context, companyID uuid.UUID) ([]model.User, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY last_name ASC, first_name ASC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// CountCompanyUsers counts how many of ids are live users of the company.
func (s *Storage) CountCompanyUsers(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(DISTINCT id) FROM users
		WHERE company_id = $1 AND id = ANY($2::uuid[]) AND deleted_at IS NULL`,
		companyID, pq.Array(strs)).Scan(&n)
	return n, err
}
