package manager

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

type PropertyManager struct {
	deps     Deps
	resolver *Resolver
}

func NewPropertyManager(deps Deps, resolver *Resolver) *PropertyManager {
	return &PropertyManager{deps: deps.withDefaults(), resolver: resolver}
}

type PropertyInput struct {
	ClientID     uuid.UUID          `json:"clientId"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	ZipCode      string             `json:"zipCode"`
	PropertyType model.PropertyType `json:"propertyType"`
	LotSize      *float64           `json:"lotSize"`
	LawnArea     *float64           `json:"lawnArea"`
	Latitude     *float64           `json:"latitude"`
	Longitude    *float64           `json:"longitude"`
	Notes        string             `json:"notes"`
	Features     json.RawMessage    `json:"features"`
	Zones        json.RawMessage    `json:"zones"`
}

type PropertyUpdate struct {
	ClientID     *uuid.UUID          `json:"clientId"`
	Name         *string             `json:"name"`
	Address      *string             `json:"address"`
	City         *string             `json:"city"`
	State        *string             `json:"state"`
	ZipCode      *string             `json:"zipCode"`
	PropertyType *model.PropertyType `json:"propertyType"`
	LotSize      *float64            `json:"lotSize"`
	LawnArea     *float64            `json:"lawnArea"`
	Latitude     *float64            `json:"latitude"`
	Longitude    *float64            `json:"longitude"`
	Notes        *string             `json:"notes"`
	IsActive     *bool               `json:"isActive"`
	Features     json.RawMessage     `json:"features"`
}

// isJSONObject accepts only a JSON object.
func isJSONObject(raw json.RawMessage) bool {
	var obj map[string]any
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

func checkCoordinates(fields map[string]string, lat, lng *float64) {
	if lat != nil && (*lat < -90 || *lat > 90) {
		fields["latitude"] = "Latitude must be between -90 and 90"
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		fields["longitude"] = "Longitude must be between -180 and 180"
	}
}

func (in PropertyInput) validate() error {
	fields := map[string]string{}
	if in.ClientID == uuid.Nil {
		fields["clientId"] = "Client ID is required"
	}
	for name, v := range map[string]string{
		"address": in.Address, "city": in.City, "state": in.State, "zipCode": in.ZipCode,
	} {
		if strings.TrimSpace(v) == "" {
			fields[name] = "Required"
		}
	}
	if in.PropertyType != "" && !in.PropertyType.Valid() {
		fields["propertyType"] = "Invalid property type"
	}
	if len(in.Features) > 0 && !isJSONObject(in.Features) {
		fields["features"] = "Features must be a JSON object"
	}
	if len(in.Zones) > 0 && !isJSONObject(in.Zones) {
		fields["zones"] = "Zones must be a JSON object"
	}
	checkCoordinates(fields, in.Latitude, in.Longitude)
	if len(fields) > 0 {
		return apperr.Validation("Validation failed", fields)
	}
	return nil
}

func (m *PropertyManager) List(ctx context.Context, s auth.Scope, f storage.PropertyFilter) (Page[model.Property], error) {
	f.Page = f.Page.Normalize()
	items, total, err := m.deps.Store.ListProperties(ctx, s.CompanyID, f)
	if err != nil {
		return Page[model.Property]{}, err
	}
	return newPage(items, total, f.Page.Page, f.Page.Limit), nil
}

func (m *PropertyManager) Get(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Property, error) {
	return m.resolver.ResolveProperty(ctx, s, id)
}

func (m *PropertyManager) Create(ctx context.Context, s auth.Scope, in PropertyInput) (*model.Property, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	client, err := m.resolver.ResolveClient(ctx, s, in.ClientID)
	if err != nil {
		return nil, err
	}

	now := m.deps.Now().UTC()
	p := &model.Property{
		ID:           uuid.New(),
		ClientID:     client.ID,
		CompanyID:    client.CompanyID,
		Name:         in.Name,
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		ZipCode:      strings.TrimSpace(in.ZipCode),
		PropertyType: in.PropertyType,
		LotSize:      in.LotSize,
		LawnArea:     in.LawnArea,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Notes:        in.Notes,
		IsActive:     true,
		Features:     in.Features,
		Zones:        in.Zones,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.PropertyType == "" {
		p.PropertyType = model.PropertyResidential
	}
	if len(p.Features) == 0 {
		p.Features = json.RawMessage(`{}`)
	}
	if len(p.Zones) == 0 {
		p.Zones = json.RawMessage(`{}`)
	}

	if err := m.deps.Store.CreateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *PropertyManager) Update(ctx context.Context, s auth.Scope, id uuid.UUID, in PropertyUpdate) (*model.Property, error) {
	p, err := m.resolver.ResolveProperty(ctx, s, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	for name, v := range map[string]*string{
		"address": in.Address, "city": in.City, "state": in.State, "zipCode": in.ZipCode,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields[name] = "Cannot be empty"
		}
	}
	if in.PropertyType != nil && !in.PropertyType.Valid() {
		fields["propertyType"] = "Invalid property type"
	}
	if len(in.Features) > 0 && !isJSONObject(in.Features) {
		fields["features"] = "Features must be a JSON object"
	}
	checkCoordinates(fields, in.Latitude, in.Longitude)
	if len(fields) > 0 {
		return nil, apperr.Validation("Validation failed", fields)
	}

	if in.ClientID != nil && *in.ClientID != p.ClientID {
		client, err := m.resolver.ResolveClient(ctx, s, *in.ClientID)
		if err != nil {
			return nil, err
		}
		// jobs carry the client too; moving would split the chain
		jobs, err := m.deps.Store.CountLiveJobsForProperty(ctx, s.CompanyID, p.ID)
		if err != nil {
			return nil, err
		}
		if jobs > 0 {
			return nil, apperr.ErrPropertyHasJobs
		}
		p.ClientID = client.ID
	}
	setString(&p.Name, in.Name)
	setString(&p.Address, in.Address)
	setString(&p.City, in.City)
	setString(&p.State, in.State)
	setString(&p.ZipCode, in.ZipCode)
	setString(&p.Notes, in.Notes)
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.LotSize != nil {
		p.LotSize = in.LotSize
	}
	if in.LawnArea != nil {
		p.LawnArea = in.LawnArea
	}
	if in.Latitude != nil {
		p.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		p.Longitude = in.Longitude
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if len(in.Features) > 0 {
		p.Features = in.Features
	}
	p.UpdatedAt = m.deps.Now().UTC()

	if err := m.deps.Store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateZones replaces the zones document.
func (m *PropertyManager) UpdateZones(ctx context.Context, s auth.Scope, id uuid.UUID, zones json.RawMessage) (*model.Property, error) {
	if len(zones) == 0 || !isJSONObject(zones) {
		return nil, apperr.Validation("Validation failed", map[string]string{"zones": "Zones data is required"})
	}
	p, err := m.resolver.ResolveProperty(ctx, s, id)
	if err != nil {
		return nil, err
	}
	p.Zones = zones
	p.UpdatedAt = m.deps.Now().UTC()
	if err := m.deps.Store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *PropertyManager) UploadSatelliteImage(ctx context.Context, s auth.Scope, id uuid.UUID, u Upload) (*model.Property, error) {
	p, err := m.resolver.ResolveProperty(ctx, s, id)
	if err != nil {
		return nil, err
	}
	url, err := m.deps.upload(ctx, "properties", p.ID.String(), "satellite", u)
	if err != nil {
		return nil, apperr.Internal(err, "upload satellite image")
	}
	p.SatelliteImageURL = url
	p.UpdatedAt = m.deps.Now().UTC()
	if err := m.deps.Store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *PropertyManager) Delete(ctx context.Context, s auth.Scope, id uuid.UUID) error {
	p, err := m.resolver.ResolveProperty(ctx, s, id)
	if err != nil {
		return err
	}
	return m.deps.Store.SoftDeleteProperty(ctx, s.CompanyID, p.ID, m.deps.Now().UTC())
}
