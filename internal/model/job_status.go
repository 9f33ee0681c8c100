// internal/model/job_status.go
package model

import (
	"time"
)

type JobStatus string

const (
	StatusDraft      JobStatus = "draft"
	StatusScheduled  JobStatus = "scheduled"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusCancelled  JobStatus = "cancelled"
	StatusOnHold     JobStatus = "on_hold"
)

// transitions lists the statuses reachable from each status.
// Terminal statuses have no entry.
var transitions = map[JobStatus][]JobStatus{
	StatusDraft:      {StatusScheduled, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusOnHold, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusOnHold, StatusCancelled},
	StatusOnHold:     {StatusScheduled, StatusInProgress, StatusCancelled},
}

// JobStatuses lists every status in lifecycle order.
var JobStatuses = []JobStatus{
	StatusDraft, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusOnHold,
}

func (s JobStatus) Rank() int {
	return rank(JobStatuses, s)
}

func (s JobStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusOnHold:
		return true
	}
	return false
}

func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// NextStatuses returns the statuses s may move to.
func (s JobStatus) NextStatuses() []JobStatus {
	next := transitions[s]
	out := make([]JobStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is in the table. Staying in the
// same status is always allowed and is a no-op.
func CanTransition(from, to JobStatus) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StatusChange is a requested status update with optional overrides.
type StatusChange struct {
	Status          JobStatus
	ActualStartTime *time.Time
	ActualEndTime   *time.Time
	CompletionNotes *string
}

// ApplyStatusChange moves job to change.Status and derives the timestamps.
// It does not check the transition table; callers decide with CanTransition.
// It reports whether the status actually changed.
func ApplyStatusChange(job *Job, change StatusChange, now time.Time) bool {
	changed := job.Status != change.Status

	switch change.Status {
	case StatusInProgress:
		if job.ActualStartTime == nil {
			t := now
			if change.ActualStartTime != nil {
				t = *change.ActualStartTime
			}
			job.ActualStartTime = &t
		}
	case StatusCompleted:
		if changed || job.ActualEndTime == nil {
			t := now
			if change.ActualEndTime != nil {
				t = *change.ActualEndTime
			}
			job.ActualEndTime = &t
		}
		if change.CompletionNotes != nil {
			job.CompletionNotes = *change.CompletionNotes
		}
	}

	job.Status = change.Status
	return changed
}
