// internal/model/job.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobMaintenance JobType = "maintenance"
	JobLandscaping JobType = "landscaping"
	JobHardscaping JobType = "hardscaping"
	JobIrrigation  JobType = "irrigation"
	JobPlanting    JobType = "planting"
	JobCleanup     JobType = "cleanup"
	JobOther       JobType = "other"
)

func (t JobType) Valid() bool {
	switch t {
	case JobMaintenance, JobLandscaping, JobHardscaping, JobIrrigation, JobPlanting, JobCleanup, JobOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Rank is p's position in Priorities, or -1.
func (p Priority) Rank() int {
	return rank(Priorities, p)
}

func rank[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

const (
	// DateLayout is the wire format of Job.ScheduledDate.
	DateLayout = "2006-01-02"
	// ClockLayout and ClockLayoutSeconds are accepted for scheduled start/end times.
	ClockLayout        = "15:04"
	ClockLayoutSeconds = "15:04:05"
)

type Job struct {
	ID                 uuid.UUID       `json:"id"`
	CompanyID          uuid.UUID       `json:"companyId"`
	PropertyID         uuid.UUID       `json:"propertyId"`
	ClientID           uuid.UUID       `json:"clientId"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Status             JobStatus       `json:"status"`
	JobType            JobType         `json:"jobType"`
	ScheduledDate      string          `json:"scheduledDate,omitempty"`
	ScheduledStartTime string          `json:"scheduledStartTime,omitempty"`
	ScheduledEndTime   string          `json:"scheduledEndTime,omitempty"`
	ActualStartTime    *time.Time      `json:"actualStartTime,omitempty"`
	ActualEndTime      *time.Time      `json:"actualEndTime,omitempty"`
	EstimatedDuration  *int            `json:"estimatedDuration,omitempty"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringPattern   json.RawMessage `json:"recurringPattern,omitempty"`
	Priority           Priority        `json:"priority"`
	AssignedTo         []uuid.UUID     `json:"assignedTo"`
	Notes              string          `json:"notes,omitempty"`
	EstimatedCost      *float64        `json:"estimatedCost,omitempty"`
	ActualCost         *float64        `json:"actualCost,omitempty"`
	WeatherConditions  json.RawMessage `json:"weatherConditions,omitempty"`
	ServiceItems       json.RawMessage `json:"serviceItems,omitempty"`
	CompletionNotes    string          `json:"completionNotes,omitempty"`
	ClientSignature    string          `json:"clientSignature,omitempty"`
	CompletionPhotos   []string        `json:"completionPhotos"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
