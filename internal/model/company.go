// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierFree         SubscriptionTier = "free"
	TierBasic        SubscriptionTier = "basic"
	TierProfessional SubscriptionTier = "professional"
	TierEnterprise   SubscriptionTier = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Company is the tenant root.
type Company struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Address            string             `json:"address,omitempty"`
	City               string             `json:"city,omitempty"`
	State              string             `json:"state,omitempty"`
	ZipCode            string             `json:"zipCode,omitempty"`
	PhoneNumber        string             `json:"phoneNumber,omitempty"`
	Email              string             `json:"email,omitempty"`
	Website            string             `json:"website,omitempty"`
	LogoURL            string             `json:"logoUrl,omitempty"`
	Description        string             `json:"description,omitempty"`
	IsActive           bool               `json:"isActive"`
	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	TrialEndsAt        *time.Time         `json:"trialEndsAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}
