package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Storage) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock, NewWithDB(db)
}

var clientCols = []string{
	"id", "company_id", "first_name", "last_name", "email", "phone_number", "address", "city",
	"state", "zip_code", "notes", "billing_frequency", "is_active", "client_since", "created_at", "updated_at",
}

func TestGetClient_ScopedToCompany(t *testing.T) {
	_, mock, s := setupMockDB(t)
	companyID, clientID := uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(clientCols).AddRow(
		clientID.String(), companyID.String(), "Jane", "Doe", "jane@example.com", "", "1 Elm St", "Austin", "TX",
		"78701", "", "monthly", true, now, now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM clients\s+WHERE id = \$1 AND company_id = \$2 AND deleted_at IS NULL`).
		WithArgs(clientID, companyID).
		WillReturnRows(rows)

	c, err := s.GetClient(context.Background(), companyID, clientID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, model.BillingMonthly, c.BillingFrequency)
	assert.Equal(t, companyID, c.CompanyID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClient_NotFound(t *testing.T) {
	_, mock, s := setupMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM clients`).WillReturnError(sql.ErrNoRows)

	_, err := s.GetClient(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	assert.Equal(t, "Client not found", apperr.From(err).Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	_, mock, s := setupMockDB(t)
	mock.ExpectExec(`INSERT INTO clients`).WillReturnError(&pq.Error{Code: "23505"})

	err := s.CreateClient(context.Background(), &model.Client{
		ID: uuid.New(), CompanyID: uuid.New(), FirstName: "A", LastName: "B", Email: "dup@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.From(err).Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompanyWithAdmin_Commits(t *testing.T) {
	_, mock, s := setupMockDB(t)
	company := &model.Company{ID: uuid.New(), Name: "Acme", IsActive: true,
		SubscriptionTier: model.TierBasic, SubscriptionStatus: model.SubscriptionTrial, CreatedAt: time.Now()}
	admin := &model.User{ID: uuid.New(), Email: "a@acme.com", PasswordHash: "h", Role: model.RoleAdmin,
		CompanyID: &company.ID, IsActive: true, CreatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO companies`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.CreateCompanyWithAdmin(context.Background(), company, admin))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompanyWithAdmin_RollsBackOnDuplicateEmail(t *testing.T) {
	_, mock, s := setupMockDB(t)
	company := &model.Company{ID: uuid.New(), Name: "Acme", CreatedAt: time.Now()}
	admin := &model.User{ID: uuid.New(), Email: "taken@acme.com", CompanyID: &company.ID}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO companies`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := s.CreateCompanyWithAdmin(context.Background(), company, admin)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.From(err).Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobs_FiltersAndPaginates(t *testing.T) {
	_, mock, s := setupMockDB(t)
	companyID, jobID, propID, clientID, crewID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE company_id = \$1 AND deleted_at IS NULL AND status = \$2`).
		WithArgs(companyID, model.StatusInProgress).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	cols := []string{
		"id", "company_id", "property_id", "client_id", "title", "description", "status", "job_type",
		"scheduled_date", "scheduled_start_time", "scheduled_end_time", "actual_start_time",
		"actual_end_time", "estimated_duration", "is_recurring", "recurring_pattern", "priority",
		"assigned_to", "notes", "estimated_cost", "actual_cost", "weather_conditions", "service_items",
		"completion_notes", "client_signature", "completion_photos", "created_at", "updated_at",
	}
	rows := sqlmock.NewRows(cols).AddRow(
		jobID.String(), companyID.String(), propID.String(), clientID.String(), "Mow lawn", "", "in_progress", "maintenance",
		"2025-06-10", "08:00:00", nil, now, nil, int64(60), false, nil, "high",
		[]byte("{"+crewID.String()+"}"), "", 120.5, nil, nil, []byte(`[{"item":"mow"}]`),
		"", "", []byte(`{"http://x/a.jpg"}`), now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM jobs WHERE company_id = \$1 AND deleted_at IS NULL AND status = \$2 ORDER BY scheduled_date DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(companyID, model.StatusInProgress, 20, 20).
		WillReturnRows(rows)

	jobs, total, err := s.ListJobs(context.Background(), companyID, JobFilter{
		Status: model.StatusInProgress,
		Page:   Page{Page: 2, SortBy: "nonsense"},
	})
	require.NoError(t, err)
	assert.Equal(t, 21, total)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "2025-06-10", j.ScheduledDate)
	assert.Equal(t, "08:00:00", j.ScheduledStartTime)
	assert.Empty(t, j.ScheduledEndTime)
	assert.Equal(t, []uuid.UUID{crewID}, j.AssignedTo)
	assert.Equal(t, []string{"http://x/a.jpg"}, j.CompletionPhotos)
	require.NotNil(t, j.EstimatedDuration)
	assert.Equal(t, 60, *j.EstimatedDuration)
	require.NotNil(t, j.EstimatedCost)
	assert.InDelta(t, 120.5, *j.EstimatedCost, 0.001)
	assert.Nil(t, j.ActualCost)
	assert.Nil(t, j.ActualEndTime)
	assert.JSONEq(t, `[{"item":"mow"}]`, string(j.ServiceItems))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteJob_OtherTenantIsNotFound(t *testing.T) {
	_, mock, s := setupMockDB(t)
	mock.ExpectExec(`UPDATE jobs SET deleted_at`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.SoftDeleteJob(context.Background(), uuid.New(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProperty_JoinsClientCompany(t *testing.T) {
	_, mock, s := setupMockDB(t)
	mock.ExpectQuery(`FROM properties p JOIN clients c ON c.id = p.client_id\s+WHERE p.id = \$1 AND c.company_id = \$2`).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetProperty(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, apperr.NotFound("Property")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageNormalize(t *testing.T) {
	p := Page{Page: 0, Limit: 500}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)

	p = Page{Page: 3}.Normalize()
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 40, p.Offset())
}

func TestUpdateProperty_MovesClientWithinCompany(t *testing.T) {
	_, mock, s := setupMockDB(t)
	companyID, newClient := uuid.New(), uuid.New()
	p := &model.Property{ID: uuid.New(), CompanyID: companyID, ClientID: newClient, Address: "1 Elm", UpdatedAt: time.Now()}

	args := []driver.Value{p.ID, companyID}
	for i := 0; i < 16; i++ {
		args = append(args, sqlmock.AnyArg())
	}
	args = append(args, newClient)

	mock.ExpectExec(`UPDATE properties p\s+SET (.+) client_id = \$19\s+FROM clients c\s+WHERE (.+) AND EXISTS \(SELECT 1 FROM clients nc\s+WHERE nc.id = \$19 AND nc.company_id = \$2 AND nc.deleted_at IS NULL\)`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.UpdateProperty(context.Background(), p))

	// a client outside the company matches no row
	mock.ExpectExec(`UPDATE properties p`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := s.UpdateProperty(context.Background(), p)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLiveProperties_ScopedToCompany(t *testing.T) {
	_, mock, s := setupMockDB(t)
	companyID, clientID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties p\s+JOIN clients c ON c.id = p.client_id AND c.company_id = \$2\s+WHERE p.client_id = \$1 AND p.deleted_at IS NULL`).
		WithArgs(clientID, companyID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := s.CountLiveProperties(context.Background(), companyID, clientID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLiveJobsForProperty(t *testing.T) {
	_, mock, s := setupMockDB(t)
	companyID, propID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE property_id = \$1 AND company_id = \$2 AND deleted_at IS NULL`).
		WithArgs(propID, companyID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := s.CountLiveJobsForProperty(context.Background(), companyID, propID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobs_SortsEnumsByDeclarationOrder(t *testing.T) {
	for sortBy, want := range map[string]string{
		"priority": "ORDER BY array_position(ARRAY['low', 'medium', 'high', 'urgent']::text[], priority) ASC",
		"status": "ORDER BY array_position(ARRAY['draft', 'scheduled', 'in_progress', 'completed', " +
			"'cancelled', 'on_hold']::text[], status) ASC",
	} {
		t.Run(sortBy, func(t *testing.T) {
			_, mock, s := setupMockDB(t)
			mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery(regexp.QuoteMeta(want)).WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, _, err := s.ListJobs(context.Background(), uuid.New(), JobFilter{
				Page: Page{SortBy: sortBy, SortOrder: "asc"},
			})
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%lawn%", likePattern("lawn"))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}
