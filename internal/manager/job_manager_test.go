package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscapehub/internal/apperr"
	"landscapehub/internal/messaging"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

func TestCreateJob_Defaults(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	assert.Equal(t, model.StatusDraft, j.Status)
	assert.Equal(t, model.PriorityMedium, j.Priority)
	assert.Equal(t, admin.CompanyID, j.CompanyID)
	assert.Empty(t, j.AssignedTo)
	assert.Contains(t, f.publisher.types(), messaging.EventJobCreated)
}

func TestCreateJob_PropertyClientMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	owner := f.seedClient(t, admin)
	other := f.seedClient(t, admin)
	p := f.seedProperty(t, admin, owner.ID)

	_, err := f.jobs.Create(ctx, admin, JobInput{
		PropertyID: p.ID, ClientID: other.ID, Title: "Mow", JobType: model.JobMaintenance, ScheduledDate: "2025-06-12",
	})
	require.True(t, errors.Is(err, apperr.ErrPropertyClientMismatch))
	assert.Equal(t, 400, apperr.From(err).Kind.Status())
}

func TestCreateJob_Validation(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")

	_, err := f.jobs.Create(context.Background(), admin, JobInput{
		Title: " ", JobType: "mowing", ScheduledDate: "06/12/2025", ScheduledStartTime: "8am", Status: "done",
	})
	ae := apperr.From(err)
	require.Equal(t, apperr.KindValidation, ae.Kind)
	for _, field := range []string{"propertyId", "clientId", "title", "jobType", "scheduledDate", "scheduledStartTime", "status"} {
		assert.Contains(t, ae.Fields, field)
	}
}

func TestCreateJob_AssigneesMustBelongToCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acme := f.register(t, "Acme Lawns", "a@acme.com")
	bravo := f.register(t, "Bravo Gardens", "b@bravo.com")
	crew := f.scopeAs(t, acme, model.RoleCrew)
	c := f.seedClient(t, acme)
	p := f.seedProperty(t, acme, c.ID)

	in := JobInput{PropertyID: p.ID, ClientID: c.ID, Title: "Mow", JobType: model.JobMaintenance,
		ScheduledDate: "2025-06-12", AssignedTo: []uuid.UUID{crew.UserID, bravo.UserID}}
	_, err := f.jobs.Create(ctx, acme, in)
	require.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
	assert.Contains(t, apperr.From(err).Fields, "assignedTo")

	in.AssignedTo = []uuid.UUID{crew.UserID, crew.UserID}
	j, err := f.jobs.Create(ctx, acme, in)
	require.NoError(t, err)
	assert.Len(t, j.AssignedTo, 2)
}

func TestUpdateStatus_InProgressIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	_, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "scheduled"})
	require.NoError(t, err)

	started, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "in_progress"})
	require.NoError(t, err)
	require.NotNil(t, started.ActualStartTime)
	first := *started.ActualStartTime

	f.advance(time.Hour)
	again, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, first, *again.ActualStartTime)

	stored, err := f.jobs.Get(ctx, admin, j.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *stored.ActualStartTime)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.JobTransitions.WithLabelValues("scheduled", "in_progress")))
}

func TestUpdateStatus_CompletedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	for _, s := range []string{"scheduled", "in_progress"} {
		_, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: s})
		require.NoError(t, err)
	}
	notes := "all done"
	done, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "completed", CompletionNotes: &notes})
	require.NoError(t, err)
	require.NotNil(t, done.ActualEndTime)
	end := *done.ActualEndTime
	assert.Equal(t, "all done", done.CompletionNotes)

	f.advance(time.Hour)
	again, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, end, *again.ActualEndTime)
}

func TestUpdateStatus_IllegalTransitionRejected(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	_, err := f.jobs.UpdateStatus(context.Background(), admin, j.ID, StatusInput{Status: "completed"})
	require.True(t, errors.Is(err, apperr.ErrIllegalTransition))
	assert.Equal(t, 409, apperr.From(err).Kind.Status())

	stored, _ := f.jobs.Get(context.Background(), admin, j.ID)
	assert.Equal(t, model.StatusDraft, stored.Status)
}

func TestUpdateStatus_EnforcementDisabledAppliesAnyway(t *testing.T) {
	f := newFixtureWith(t, false)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	done, err := f.jobs.UpdateStatus(context.Background(), admin, j.ID, StatusInput{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, done.Status)
	assert.NotNil(t, done.ActualEndTime)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	_, err := f.jobs.UpdateStatus(context.Background(), admin, j.ID, StatusInput{Status: "finished"})
	require.True(t, errors.Is(err, apperr.ErrInvalidStatus))
	assert.Equal(t, 400, apperr.From(err).Kind.Status())
}

func TestUpdateStatus_StartOverride(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)
	_, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "scheduled"})
	require.NoError(t, err)

	override := time.Date(2025, 6, 10, 6, 45, 0, 0, time.UTC)
	started, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "in_progress", ActualStartTime: &override})
	require.NoError(t, err)
	assert.Equal(t, override, *started.ActualStartTime)
}

// Two writers racing on the same job: the later write wins and no error is raised.
func TestUpdateStatus_LastWriteWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)
	_, err := f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "scheduled"})
	require.NoError(t, err)

	stale, err := f.store.GetJob(ctx, admin.CompanyID, j.ID)
	require.NoError(t, err)

	_, err = f.jobs.UpdateStatus(ctx, admin, j.ID, StatusInput{Status: "in_progress"})
	require.NoError(t, err)

	stale.Status = model.StatusOnHold
	require.NoError(t, f.store.UpdateJob(ctx, stale))

	stored, _ := f.jobs.Get(ctx, admin, j.ID)
	assert.Equal(t, model.StatusOnHold, stored.Status)
	assert.Nil(t, stored.ActualStartTime)
}

func TestUpdateJob_CannotChangeStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	completed := model.StatusCompleted
	_, err := f.jobs.Update(ctx, admin, j.ID, JobUpdate{Status: &completed})
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)

	draft := model.StatusDraft
	title := "Edge and mow"
	updated, err := f.jobs.Update(ctx, admin, j.ID, JobUpdate{Status: &draft, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Edge and mow", updated.Title)
	assert.Equal(t, model.StatusDraft, updated.Status)
}

func TestUpdateJob_RechecksPropertyOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)
	other := f.seedClient(t, admin)

	_, err := f.jobs.Update(ctx, admin, j.ID, JobUpdate{ClientID: &other.ID})
	assert.True(t, errors.Is(err, apperr.ErrPropertyClientMismatch))
}

func TestAddPhotos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	crew := f.scopeAs(t, admin, model.RoleCrew)
	j := f.seedJob(t, admin)

	updated, err := f.jobs.AddPhotos(ctx, crew, j.ID, []Upload{upload("a.jpg"), upload("b.jpg")})
	require.NoError(t, err)
	require.Len(t, updated.CompletionPhotos, 2)
	assert.Contains(t, updated.CompletionPhotos[0], "jobs/"+j.ID.String()+"/photos/")
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.ObjectUploads.WithLabelValues("photos")))

	updated, err = f.jobs.AddPhotos(ctx, crew, j.ID, []Upload{upload("c.jpg")})
	require.NoError(t, err)
	assert.Len(t, updated.CompletionPhotos, 3)
	assert.Contains(t, f.publisher.types(), messaging.EventJobPhotosAdded)
}

func TestAddPhotos_Limits(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	_, err := f.jobs.AddPhotos(context.Background(), admin, j.ID, nil)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)

	many := make([]Upload, MaxPhotosPerUpload+1)
	for i := range many {
		many[i] = upload("x.jpg")
	}
	_, err = f.jobs.AddPhotos(context.Background(), admin, j.ID, many)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
	assert.Empty(t, f.objects.keys)
}

func TestDeleteJob_HidesIt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	j := f.seedJob(t, admin)

	require.NoError(t, f.jobs.Delete(ctx, admin, j.ID))
	_, err := f.jobs.Get(ctx, admin, j.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)

	page, err := f.jobs.List(ctx, admin, storage.JobFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Pagination.Total)
}

func TestListJobs_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	first := f.seedJob(t, admin)
	f.seedJob(t, admin)
	_, err := f.jobs.UpdateStatus(ctx, admin, first.ID, StatusInput{Status: "scheduled"})
	require.NoError(t, err)

	page, err := f.jobs.List(ctx, admin, storage.JobFilter{Status: model.StatusScheduled})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.ID, page.Items[0].ID)
	assert.Equal(t, Pagination{Total: 1, Page: 1, PageSize: storage.DefaultLimit, TotalPages: 1}, page.Pagination)

	_, err = f.jobs.List(ctx, admin, storage.JobFilter{Status: "bogus"})
	assert.True(t, errors.Is(err, apperr.ErrInvalidStatus))
}

func TestEventPublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	f.publisher.fail = true

	j := f.seedJob(t, admin)
	_, err := f.jobs.UpdateStatus(context.Background(), admin, j.ID, StatusInput{Status: "scheduled"})
	assert.NoError(t, err)
}

func TestCreateJob_InitialStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.register(t, "Acme Lawns", "a@acme.com")
	c := f.seedClient(t, admin)
	p := f.seedProperty(t, admin, c.ID)
	in := JobInput{PropertyID: p.ID, ClientID: c.ID, Title: "Mow", JobType: model.JobMaintenance, ScheduledDate: "2025-06-12"}

	for _, s := range []model.JobStatus{model.StatusInProgress, model.StatusCompleted, model.StatusOnHold} {
		in.Status = s
		_, err := f.jobs.Create(ctx, admin, in)
		ae := apperr.From(err)
		require.Equal(t, apperr.KindValidation, ae.Kind, s)
		assert.Contains(t, ae.Fields, "status")
	}

	in.Status = model.StatusScheduled
	j, err := f.jobs.Create(ctx, admin, in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, j.Status)
}
