// internal/model/property.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyResidential   PropertyType = "residential"
	PropertyCommercial    PropertyType = "commercial"
	PropertyIndustrial    PropertyType = "industrial"
	PropertyInstitutional PropertyType = "institutional"
	PropertyOther         PropertyType = "other"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyResidential, PropertyCommercial, PropertyIndustrial, PropertyInstitutional, PropertyOther:
		return true
	}
	return false
}

// Property belongs to a client; its company is the client's company.
type Property struct {
	ID                uuid.UUID       `json:"id"`
	ClientID          uuid.UUID       `json:"clientId"`
	CompanyID         uuid.UUID       `json:"companyId"`
	Name              string          `json:"name,omitempty"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	ZipCode           string          `json:"zipCode"`
	PropertyType      PropertyType    `json:"propertyType"`
	LotSize           *float64        `json:"lotSize,omitempty"`
	LawnArea          *float64        `json:"lawnArea,omitempty"`
	Latitude          *float64        `json:"latitude,omitempty"`
	Longitude         *float64        `json:"longitude,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	IsActive          bool            `json:"isActive"`
	SatelliteImageURL string          `json:"satelliteImageUrl,omitempty"`
	Features          json.RawMessage `json:"features"`
	Zones             json.RawMessage `json:"zones"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
