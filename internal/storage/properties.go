package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"landscapehub/internal/model"
)

// PropertyFilter narrows a property listing. A property's company is its
// client's company, so every query joins clients.
type PropertyFilter struct {
	ClientID     *uuid.UUID
	PropertyType model.PropertyType
	Active       *bool
	Search       string
	Page
}

var propertySort = map[string]string{
	"name":      "p.name",
	"address":   "p.address",
	"city":      "p.city",
	"createdAt": "p.created_at",
}

const propertyColumns = `p.id, p.client_id, c.company_id, p.name, p.address, p.city, p.state,
	p.zip_code, p.property_type, p.lot_size, p.lawn_area, p.latitude, p.longitude, p.notes,
	p.is_active, p.satellite_image_url, p.features, p.zones, p.created_at, p.updated_at`

const propertyFrom = ` FROM properties p JOIN clients c ON c.id = p.client_id`

func scanProperty(row interface{ Scan(...any) error }) (*model.Property, error) {
	var p model.Property
	var lot, lawn, lat, lng sql.NullFloat64
	var features, zones []byte
	if err := row.Scan(&p.ID, &p.ClientID, &p.CompanyID, &p.Name, &p.Address, &p.City, &p.State,
		&p.ZipCode, &p.PropertyType, &lot, &lawn, &lat, &lng, &p.Notes, &p.IsActive,
		&p.SatelliteImageURL, &features, &zones, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.LotSize, p.LawnArea = floatPtr(lot), floatPtr(lawn)
	p.Latitude, p.Longitude = floatPtr(lat), floatPtr(lng)
	p.Features, p.Zones = rawJSON(features), rawJSON(zones)
	return &p, nil
}

func jsonObject(raw []byte) any {
	if v := nullJSON(raw); v != nil {
		return v
	}
	return "{}"
}

func (s *Storage) CreateProperty(ctx context.Context, p *model.Property) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO properties (id, client_id, name, address, city, state, zip_code, property_type,
			lot_size, lawn_area, latitude, longitude, notes, is_active, satellite_image_url,
			features, zones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16::jsonb, $17::jsonb, $18, $18)`,
		p.ID, p.ClientID, p.Name, p.Address, p.City, p.State, p.ZipCode, p.PropertyType,
		nullFloat(p.LotSize), nullFloat(p.LawnArea), nullFloat(p.Latitude), nullFloat(p.Longitude),
		p.Notes, p.IsActive, p.SatelliteImageURL, jsonObject(p.Features), jsonObject(p.Zones), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (s *Storage) GetProperty(ctx context.Context, companyID, id uuid.UUID) (*model.Property, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+propertyColumns+propertyFrom+`
		WHERE p.id = $1 AND c.company_id = $2 AND p.deleted_at IS NULL`, id, companyID)
	p, err := scanProperty(row)
	if err != nil {
		return nil, notFoundOr(err, "Property")
	}
	return p, nil
}

// UpdateProperty writes every mutable column, including client_id. The target
// client must be live and belong to the same company.
func (s *Storage) UpdateProperty(ctx context.Context, p *model.Property) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE properties p
		SET name = $3, address = $4, city = $5, state = $6, zip_code = $7, property_type = $8,
			lot_size = $9, lawn_area = $10, latitude = $11, longitude = $12, notes = $13,
			is_active = $14, satellite_image_url = $15, features = $16::jsonb, zones = $17::jsonb,
			updated_at = $18, client_id = $19
		FROM clients c
		WHERE c.id = p.client_id AND p.id = $1 AND c.company_id = $2 AND p.deleted_at IS NULL
			AND EXISTS (SELECT 1 FROM clients nc
				WHERE nc.id = $19 AND nc.company_id = $2 AND nc.deleted_at IS NULL)`,
		p.ID, p.CompanyID, p.Name, p.Address, p.City, p.State, p.ZipCode, p.PropertyType,
		nullFloat(p.LotSize), nullFloat(p.LawnArea), nullFloat(p.Latitude), nullFloat(p.Longitude),
		p.Notes, p.IsActive, p.SatelliteImageURL, jsonObject(p.Features), jsonObject(p.Zones), p.UpdatedAt,
		p.ClientID)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return expectOne(res, "Property")
}

func (s *Storage) ListProperties(ctx context.Context, companyID uuid.UUID, f PropertyFilter) ([]model.Property, int, error) {
	f.Page = f.Page.Normalize()

	w := &whereBuilder{}
	w.add("c.company_id = ?", companyID)
	w.add("p.deleted_at IS NULL")
	if f.ClientID != nil {
		w.add("p.client_id = ?", *f.ClientID)
	}
	if f.PropertyType != "" {
		w.add("p.property_type = ?", f.PropertyType)
	}
	if f.Active != nil {
		w.add("p.is_active = ?", *f.Active)
	}
	if f.Search != "" {
		w.add("(p.name ILIKE ? OR p.address ILIKE ? OR p.city ILIKE ?)",
			likePattern(f.Search), likePattern(f.Search), likePattern(f.Search))
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+propertyFrom+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	query := `SELECT ` + propertyColumns + propertyFrom + w.sql() +
		orderBy(propertySort, f.SortBy, "createdAt", f.Descending(true)) + w.limit(f.Page)
	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	props := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		props = append(props, *p)
	}
	return props, total, rows.Err()
}

func (s *Storage) SoftDeleteProperty(ctx context.Context, companyID, id uuid.UUID, at time.Time) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE properties p SET deleted_at = $3, updated_at = $3
		FROM clients c
		WHERE c.id = p.client_id AND p.id = $1 AND c.company_id = $2 AND p.deleted_at IS NULL`,
		id, companyID, at)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return expectOne(res, "Property")
}
