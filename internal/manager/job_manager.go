package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/messaging"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

// MaxPhotosPerUpload caps one completion-photo upload.
const MaxPhotosPerUpload = 10

type JobManager struct {
	deps               Deps
	resolver           *Resolver
	enforceTransitions bool
}

func NewJobManager(deps Deps, resolver *Resolver, enforceTransitions bool) *JobManager {
	return &JobManager{deps: deps.withDefaults(), resolver: resolver, enforceTransitions: enforceTransitions}
}

type JobInput struct {
	PropertyID         uuid.UUID       `json:"propertyId"`
	ClientID           uuid.UUID       `json:"clientId"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Status             model.JobStatus `json:"status"`
	JobType            model.JobType   `json:"jobType"`
	ScheduledDate      string          `json:"scheduledDate"`
	ScheduledStartTime string          `json:"scheduledStartTime"`
	ScheduledEndTime   string          `json:"scheduledEndTime"`
	EstimatedDuration  *int            `json:"estimatedDuration"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringPattern   json.RawMessage `json:"recurringPattern"`
	Priority           model.Priority  `json:"priority"`
	AssignedTo         []uuid.UUID     `json:"assignedTo"`
	Notes              string          `json:"notes"`
	EstimatedCost      *float64        `json:"estimatedCost"`
	WeatherConditions  json.RawMessage `json:"weatherConditions"`
	ServiceItems       json.RawMessage `json:"serviceItems"`
}

// JobUpdate is a partial update. Status is accepted only when it equals the
// current status; transitions go through UpdateStatus.
type JobUpdate struct {
	PropertyID         *uuid.UUID       `json:"propertyId"`
	ClientID           *uuid.UUID       `json:"clientId"`
	Title              *string          `json:"title"`
	Description        *string          `json:"description"`
	Status             *model.JobStatus `json:"status"`
	JobType            *model.JobType   `json:"jobType"`
	ScheduledDate      *string          `json:"scheduledDate"`
	ScheduledStartTime *string          `json:"scheduledStartTime"`
	ScheduledEndTime   *string          `json:"scheduledEndTime"`
	EstimatedDuration  *int             `json:"estimatedDuration"`
	IsRecurring        *bool            `json:"isRecurring"`
	RecurringPattern   json.RawMessage  `json:"recurringPattern"`
	Priority           *model.Priority  `json:"priority"`
	AssignedTo         *[]uuid.UUID     `json:"assignedTo"`
	Notes              *string          `json:"notes"`
	EstimatedCost      *float64         `json:"estimatedCost"`
	ActualCost         *float64         `json:"actualCost"`
	WeatherConditions  json.RawMessage  `json:"weatherConditions"`
	ServiceItems       json.RawMessage  `json:"serviceItems"`
	CompletionNotes    *string          `json:"completionNotes"`
	ClientSignature    *string          `json:"clientSignature"`
}

type StatusInput struct {
	Status          string     `json:"status"`
	ActualStartTime *time.Time `json:"actualStartTime"`
	ActualEndTime   *time.Time `json:"actualEndTime"`
	CompletionNotes *string    `json:"completionNotes"`
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

func validClock(s string) bool {
	if _, err := time.Parse(model.ClockLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(model.ClockLayoutSeconds, s)
	return err == nil
}

// initialStatus reports whether a job may be created in s. Later statuses
// are reached through UpdateStatus.
func initialStatus(s model.JobStatus) bool {
	return s == model.StatusDraft || s == model.StatusScheduled
}

func (in JobInput) validate() error {
	fields := map[string]string{}
	if in.PropertyID == uuid.Nil {
		fields["propertyId"] = "Property ID is required"
	}
	if in.ClientID == uuid.Nil {
		fields["clientId"] = "Client ID is required"
	}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "Title is required"
	}
	if !in.JobType.Valid() {
		fields["jobType"] = "Valid job type is required"
	}
	if !validDate(in.ScheduledDate) {
		fields["scheduledDate"] = "Scheduled date must be YYYY-MM-DD"
	}
	if in.ScheduledStartTime != "" && !validClock(in.ScheduledStartTime) {
		fields["scheduledStartTime"] = "Time must be HH:MM or HH:MM:SS"
	}
	if in.ScheduledEndTime != "" && !validClock(in.ScheduledEndTime) {
		fields["scheduledEndTime"] = "Time must be HH:MM or HH:MM:SS"
	}
	if in.Status != "" && !initialStatus(in.Status) {
		fields["status"] = "A new job must start as draft or scheduled"
	}
	if in.Priority != "" && !in.Priority.Valid() {
		fields["priority"] = "Invalid priority"
	}
	if in.EstimatedDuration != nil && *in.EstimatedDuration < 0 {
		fields["estimatedDuration"] = "Estimated duration cannot be negative"
	}
	if len(fields) > 0 {
		return apperr.Validation("Validation failed", fields)
	}
	return nil
}

func (m *JobManager) List(ctx context.Context, s auth.Scope, f storage.JobFilter) (Page[model.Job], error) {
	if f.Status != "" && !f.Status.Valid() {
		return Page[model.Job]{}, apperr.ErrInvalidStatus
	}
	if (f.StartDate != "" && !validDate(f.StartDate)) || (f.EndDate != "" && !validDate(f.EndDate)) {
		return Page[model.Job]{}, apperr.Validation("Dates must be YYYY-MM-DD", nil)
	}
	f.Page = f.Page.Normalize()
	items, total, err := m.deps.Store.ListJobs(ctx, s.CompanyID, f)
	if err != nil {
		return Page[model.Job]{}, err
	}
	return newPage(items, total, f.Page.Page, f.Page.Limit), nil
}

func (m *JobManager) Get(ctx context.Context, s auth.Scope, id uuid.UUID) (*model.Job, error) {
	return m.resolver.ResolveJob(ctx, s, id)
}

func (m *JobManager) Create(ctx context.Context, s auth.Scope, in JobInput) (*model.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, _, err := m.resolver.ResolveJobRefs(ctx, s, in.PropertyID, in.ClientID); err != nil {
		return nil, err
	}
	if err := m.resolver.ValidateAssignees(ctx, s, in.AssignedTo); err != nil {
		return nil, err
	}

	now := m.deps.Now().UTC()
	j := &model.Job{
		ID:                 uuid.New(),
		CompanyID:          s.CompanyID,
		PropertyID:         in.PropertyID,
		ClientID:           in.ClientID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Status:             in.Status,
		JobType:            in.JobType,
		ScheduledDate:      in.ScheduledDate,
		ScheduledStartTime: in.ScheduledStartTime,
		ScheduledEndTime:   in.ScheduledEndTime,
		EstimatedDuration:  in.EstimatedDuration,
		IsRecurring:        in.IsRecurring,
		RecurringPattern:   in.RecurringPattern,
		Priority:           in.Priority,
		AssignedTo:         in.AssignedTo,
		Notes:              in.Notes,
		EstimatedCost:      in.EstimatedCost,
		WeatherConditions:  in.WeatherConditions,
		ServiceItems:       in.ServiceItems,
		CompletionPhotos:   []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if j.Status == "" {
		j.Status = model.StatusDraft
	}
	if j.Priority == "" {
		j.Priority = model.PriorityMedium
	}
	if j.AssignedTo == nil {
		j.AssignedTo = []uuid.UUID{}
	}

	if err := m.deps.Store.CreateJob(ctx, j); err != nil {
		return nil, err
	}
	m.deps.emit(ctx, messaging.NewEvent(messaging.EventJobCreated, s.CompanyID, j.ID, map[string]any{
		"status":        j.Status,
		"scheduledDate": j.ScheduledDate,
		"assignedTo":    j.AssignedTo,
	}))
	return j, nil
}

func (m *JobManager) Update(ctx context.Context, s auth.Scope, id uuid.UUID, in JobUpdate) (*model.Job, error) {
	j, err := m.resolver.ResolveJob(ctx, s, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && *in.Status != j.Status {
		return nil, apperr.Validation("Use the status endpoint to change job status", map[string]string{
			"status": "Status cannot be changed here",
		})
	}

	fields := map[string]string{}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		fields["title"] = "Title cannot be empty"
	}
	if in.JobType != nil && !in.JobType.Valid() {
		fields["jobType"] = "Invalid job type"
	}
	if in.Priority != nil && !in.Priority.Valid() {
		fields["priority"] = "Invalid priority"
	}
	if in.ScheduledDate != nil && !validDate(*in.ScheduledDate) {
		fields["scheduledDate"] = "Scheduled date must be YYYY-MM-DD"
	}
	if in.ScheduledStartTime != nil && *in.ScheduledStartTime != "" && !validClock(*in.ScheduledStartTime) {
		fields["scheduledStartTime"] = "Time must be HH:MM or HH:MM:SS"
	}
	if in.ScheduledEndTime != nil && *in.ScheduledEndTime != "" && !validClock(*in.ScheduledEndTime) {
		fields["scheduledEndTime"] = "Time must be HH:MM or HH:MM:SS"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("Validation failed", fields)
	}

	if in.PropertyID != nil || in.ClientID != nil {
		propertyID, clientID := j.PropertyID, j.ClientID
		if in.PropertyID != nil {
			propertyID = *in.PropertyID
		}
		if in.ClientID != nil {
			clientID = *in.ClientID
		}
		if _, _, err := m.resolver.ResolveJobRefs(ctx, s, propertyID, clientID); err != nil {
			return nil, err
		}
		j.PropertyID, j.ClientID = propertyID, clientID
	}
	if in.AssignedTo != nil {
		if err := m.resolver.ValidateAssignees(ctx, s, *in.AssignedTo); err != nil {
			return nil, err
		}
		j.AssignedTo = append([]uuid.UUID{}, *in.AssignedTo...)
	}

	setString(&j.Title, in.Title)
	setString(&j.Description, in.Description)
	setString(&j.ScheduledDate, in.ScheduledDate)
	setString(&j.ScheduledStartTime, in.ScheduledStartTime)
	setString(&j.ScheduledEndTime, in.ScheduledEndTime)
	setString(&j.Notes, in.Notes)
	setString(&j.CompletionNotes, in.CompletionNotes)
	setString(&j.ClientSignature, in.ClientSignature)
	if in.JobType != nil {
		j.JobType = *in.JobType
	}
	if in.Priority != nil {
		j.Priority = *in.Priority
	}
	if in.EstimatedDuration != nil {
		j.EstimatedDuration = in.EstimatedDuration
	}
	if in.IsRecurring != nil {
		j.IsRecurring = *in.IsRecurring
	}
	if len(in.RecurringPattern) > 0 {
		j.RecurringPattern = in.RecurringPattern
	}
	if in.EstimatedCost != nil {
		j.EstimatedCost = in.EstimatedCost
	}
	if in.ActualCost != nil {
		j.ActualCost = in.ActualCost
	}
	if len(in.WeatherConditions) > 0 {
		j.WeatherConditions = in.WeatherConditions
	}
	if len(in.ServiceItems) > 0 {
		j.ServiceItems = in.ServiceItems
	}
	j.UpdatedAt = m.deps.Now().UTC()

	if err := m.deps.Store.UpdateJob(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// UpdateStatus moves a job through the status machine. Requesting the current
// status succeeds without changing anything.
func (m *JobManager) UpdateStatus(ctx context.Context, s auth.Scope, id uuid.UUID, in StatusInput) (*model.Job, error) {
	to := model.JobStatus(in.Status)
	if !to.Valid() {
		return nil, apperr.ErrInvalidStatus
	}

	j, err := m.resolver.ResolveJob(ctx, s, id)
	if err != nil {
		return nil, err
	}
	from := j.Status

	if !model.CanTransition(from, to) {
		if m.enforceTransitions {
			return nil, apperr.Wrap(apperr.ErrIllegalTransition,
				fmt.Sprintf("Cannot change job status from %s to %s", from, to))
		}
		m.deps.log(ctx).Warn("Applying transition outside the status table",
			zap.String("job_id", j.ID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
	}

	if from == to && in.CompletionNotes == nil {
		return j, nil
	}

	changed := model.ApplyStatusChange(j, model.StatusChange{
		Status:          to,
		ActualStartTime: in.ActualStartTime,
		ActualEndTime:   in.ActualEndTime,
		CompletionNotes: in.CompletionNotes,
	}, m.deps.Now().UTC())
	j.UpdatedAt = m.deps.Now().UTC()

	if err := m.deps.Store.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	if changed {
		m.deps.Metrics.JobTransitions.WithLabelValues(string(from), string(to)).Inc()
		m.deps.log(ctx).Info("Job status changed",
			zap.String("job_id", j.ID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		m.deps.emit(ctx, messaging.NewEvent(messaging.EventJobStatusChanged, s.CompanyID, j.ID, map[string]any{
			"from":      from,
			"to":        to,
			"changedBy": s.UserID,
		}))
	}
	return j, nil
}

// AddPhotos uploads completion photos and appends their URLs to the job.
func (m *JobManager) AddPhotos(ctx context.Context, s auth.Scope, id uuid.UUID, uploads []Upload) (*model.Job, error) {
	if len(uploads) == 0 {
		return nil, apperr.Validation("No photos uploaded", nil)
	}
	if len(uploads) > MaxPhotosPerUpload {
		return nil, apperr.Validation(fmt.Sprintf("At most %d photos per upload", MaxPhotosPerUpload), nil)
	}

	j, err := m.resolver.ResolveJob(ctx, s, id)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		url, err := m.deps.upload(ctx, "jobs", j.ID.String(), "photos", u)
		if err != nil {
			return nil, apperr.Internal(err, "upload job photo")
		}
		urls = append(urls, url)
	}

	j.CompletionPhotos = append(j.CompletionPhotos, urls...)
	j.UpdatedAt = m.deps.Now().UTC()
	if err := m.deps.Store.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	m.deps.emit(ctx, messaging.NewEvent(messaging.EventJobPhotosAdded, s.CompanyID, j.ID, map[string]any{
		"count": len(urls),
	}))
	return j, nil
}

func (m *JobManager) Delete(ctx context.Context, s auth.Scope, id uuid.UUID) error {
	j, err := m.resolver.ResolveJob(ctx, s, id)
	if err != nil {
		return err
	}
	if err := m.deps.Store.SoftDeleteJob(ctx, s.CompanyID, j.ID, m.deps.Now().UTC()); err != nil {
		return err
	}
	m.deps.emit(ctx, messaging.NewEvent(messaging.EventJobDeleted, s.CompanyID, j.ID, nil))
	return nil
}
