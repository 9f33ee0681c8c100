// internal/model/client.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type BillingFrequency string

const (
	BillingWeekly    BillingFrequency = "weekly"
	BillingBiweekly  BillingFrequency = "biweekly"
	BillingMonthly   BillingFrequency = "monthly"
	BillingQuarterly BillingFrequency = "quarterly"
	BillingAnnually  BillingFrequency = "annually"
)

func (b BillingFrequency) Valid() bool {
	switch b {
	case BillingWeekly, BillingBiweekly, BillingMonthly, BillingQuarterly, BillingAnnually:
		return true
	}
	return false
}

type Client struct {
	ID               uuid.UUID        `json:"id"`
	CompanyID        uuid.UUID        `json:"companyId"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email,omitempty"`
	PhoneNumber      string           `json:"phoneNumber,omitempty"`
	Address          string           `json:"address,omitempty"`
	City             string           `json:"city,omitempty"`
	State            string           `json:"state,omitempty"`
	ZipCode          string           `json:"zipCode,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	BillingFrequency BillingFrequency `json:"billingFrequency"`
	IsActive         bool             `json:"isActive"`
	ClientSince      time.Time        `json:"clientSince"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
