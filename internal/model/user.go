// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCrew    Role = "crew"
	RoleClient  Role = "client"
)

// Roles lists every role in privilege order.
var Roles = []Role{RoleAdmin, RoleManager, RoleCrew, RoleClient}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCrew, RoleClient:
		return true
	}
	return false
}

// User belongs to at most one company. PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         Role       `json:"role"`
	CompanyID    *uuid.UUID `json:"companyId"`
	PhoneNumber  string     `json:"phoneNumber,omitempty"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
