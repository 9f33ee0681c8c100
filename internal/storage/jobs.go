package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"landscapehub/internal/model"
)

type JobFilter struct {
	ClientID   *uuid.UUID
	PropertyID *uuid.UUID
	Status     model.JobStatus
	JobType    model.JobType
	StartDate  string
	EndDate    string
	Search     string
	Page
}

var jobSort = map[string]string{
	"scheduledDate": "scheduled_date",
	"createdAt":     "created_at",
	"title":         "title",
	"priority":      rankExpr("priority", model.Priorities),
	"status":        rankExpr("status", model.JobStatuses),
}

const jobColumns = `id, company_id, property_id, client_id, title, description, status, job_type,
	scheduled_date::text, scheduled_start_time::text, scheduled_end_time::text, actual_start_time,
	actual_end_time, estimated_duration, is_recurring, recurring_pattern, priority, assigned_to,
	notes, estimated_cost, actual_cost, weather_conditions, service_items, completion_notes,
	client_signature, completion_photos, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*model.Job, error) {
	var j model.Job
	var start, end sql.NullString
	var actualStart, actualEnd sql.NullTime
	var duration sql.NullInt64
	var estCost, actCost sql.NullFloat64
	var pattern, weather, items []byte
	var assigned []string
	var photos pq.StringArray
	if err := row.Scan(&j.ID, &j.CompanyID, &j.PropertyID, &j.ClientID, &j.Title, &j.Description,
		&j.Status, &j.JobType, &j.ScheduledDate, &start, &end, &actualStart, &actualEnd, &duration,
		&j.IsRecurring, &pattern, &j.Priority, pq.Array(&assigned), &j.Notes, &estCost, &actCost,
		&weather, &items, &j.CompletionNotes, &j.ClientSignature, &photos,
		&j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}

	j.ScheduledStartTime, j.ScheduledEndTime = start.String, end.String
	j.ActualStartTime, j.ActualEndTime = timePtr(actualStart), timePtr(actualEnd)
	j.EstimatedDuration = intPtr(duration)
	j.EstimatedCost, j.ActualCost = floatPtr(estCost), floatPtr(actCost)
	j.RecurringPattern, j.WeatherConditions, j.ServiceItems = rawJSON(pattern), rawJSON(weather), rawJSON(items)

	j.AssignedTo = make([]uuid.UUID, 0, len(assigned))
	for _, s := range assigned {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse assigned_to: %w", err)
		}
		j.AssignedTo = append(j.AssignedTo, id)
	}
	j.CompletionPhotos = []string(photos)
	if j.CompletionPhotos == nil {
		j.CompletionPhotos = []string{}
	}
	return &j, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func photoArray(photos []string) pq.StringArray {
	if photos == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(photos)
}

func (s *Storage) CreateJob(ctx context.Context, j *model.Job) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO jobs (id, company_id, property_id, client_id, title, description, status, job_type,
			scheduled_date, scheduled_start_time, scheduled_end_time, actual_start_time, actual_end_time,
			estimated_duration, is_recurring, recurring_pattern, priority, assigned_to, notes,
			estimated_cost, actual_cost, weather_conditions, service_items, completion_notes,
			client_signature, completion_photos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date, $10::time, $11::time, $12, $13, $14, $15,
			$16::jsonb, $17, $18::uuid[], $19, $20, $21, $22::jsonb, $23::jsonb, $24, $25, $26, $27, $27)`,
		j.ID, j.CompanyID, j.PropertyID, j.ClientID, j.Title, j.Description, j.Status, j.JobType,
		j.ScheduledDate, nullString(j.ScheduledStartTime), nullString(j.ScheduledEndTime),
		nullTime(j.ActualStartTime), nullTime(j.ActualEndTime), nullInt(j.EstimatedDuration),
		j.IsRecurring, nullJSON(j.RecurringPattern), j.Priority, pq.Array(uuidStrings(j.AssignedTo)),
		j.Notes, nullFloat(j.EstimatedCost), nullFloat(j.ActualCost), nullJSON(j.WeatherConditions),
		nullJSON(j.ServiceItems), j.CompletionNotes, j.ClientSignature, photoArray(j.CompletionPhotos),
		j.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (s *Storage) GetJob(ctx context.Context, companyID, id uuid.UUID) (*model.Job, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`, id, companyID)
	j, err := scanJob(row)
	if err != nil {
		return nil, notFoundOr(err, "Job")
	}
	return j, nil
}

// UpdateJob writes every mutable column. There is no version check: the last
// writer wins.
func (s *Storage) UpdateJob(ctx context.Context, j *model.Job) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE jobs
		SET property_id = $3, client_id = $4, title = $5, description = $6, status = $7, job_type = $8,
			scheduled_date = $9::date, scheduled_start_time = $10::time, scheduled_end_time = $11::time,
			actual_start_time = $12, actual_end_time = $13, estimated_duration = $14, is_recurring = $15,
			recurring_pattern = $16::jsonb, priority = $17, assigned_to = $18::uuid[], notes = $19,
			estimated_cost = $20, actual_cost = $21, weather_conditions = $22::jsonb,
			service_items = $23::jsonb, completion_notes = $24, client_signature = $25,
			completion_photos = $26, updated_at = $27
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		j.ID, j.CompanyID, j.PropertyID, j.ClientID, j.Title, j.Description, j.Status, j.JobType,
		j.ScheduledDate, nullString(j.ScheduledStartTime), nullString(j.ScheduledEndTime),
		nullTime(j.ActualStartTime), nullTime(j.ActualEndTime), nullInt(j.EstimatedDuration),
		j.IsRecurring, nullJSON(j.RecurringPattern), j.Priority, pq.Array(uuidStrings(j.AssignedTo)),
		j.Notes, nullFloat(j.EstimatedCost), nullFloat(j.ActualCost), nullJSON(j.WeatherConditions),
		nullJSON(j.ServiceItems), j.CompletionNotes, j.ClientSignature, photoArray(j.CompletionPhotos),
		j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return expectOne(res, "Job")
}

func (s *Storage) ListJobs(ctx context.Context, companyID uuid.UUID, f JobFilter) ([]model.Job, int, error) {
	f.Page = f.Page.Normalize()

	w := &whereBuilder{}
	w.add("company_id = ?", companyID)
	w.add("deleted_at IS NULL")
	if f.ClientID != nil {
		w.add("client_id = ?", *f.ClientID)
	}
	if f.PropertyID != nil {
		w.add("property_id = ?", *f.PropertyID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.JobType != "" {
		w.add("job_type = ?", f.JobType)
	}
	if f.StartDate != "" {
		w.add("scheduled_date >= ?::date", f.StartDate)
	}
	if f.EndDate != "" {
		w.add("scheduled_date <= ?::date", f.EndDate)
	}
	if f.Search != "" {
		w.add("(title ILIKE ? OR description ILIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs` + w.sql() +
		orderBy(jobSort, f.SortBy, "scheduledDate", f.Descending(true)) + w.limit(f.Page)
	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, total, rows.Err()
}

func (s *Storage) SoftDeleteJob(ctx context.Context, companyID, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, s.DB, "jobs", "Job", companyID, id, at)
}

// CountLiveJobsForProperty counts non-deleted jobs on the property.
func (s *Storage) CountLiveJobsForProperty(ctx context.Context, companyID, propertyID uuid.UUID) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM jobs WHERE property_id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		propertyID, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}
