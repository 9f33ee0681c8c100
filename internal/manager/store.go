package manager

import (
	"context"
	"time"

	"github.com/google/uuid"

	"landscapehub/internal/model"
	"landscapehub/internal/objectstore"
	"landscapehub/internal/storage"
)

type CompanyStore interface {
	CreateCompanyWithAdmin(ctx context.Context, c *model.Company, admin *model.User) error
	GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	UpdateCompany(ctx context.Context, c *model.Company) error
	ListCompanyIDs(ctx context.Context) ([]uuid.UUID, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	ListTeam(ctx context.Context, companyID uuid.UUID) ([]model.User, error)
	CountCompanyUsers(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int, error)
}

type ClientStore interface {
	CreateClient(ctx context.Context, c *model.Client) error
	GetClient(ctx context.Context, companyID, id uuid.UUID) (*model.Client, error)
	UpdateClient(ctx context.Context, c *model.Client) error
	ListClients(ctx context.Context, companyID uuid.UUID, f storage.ClientFilter) ([]model.Client, int, error)
	CountLiveProperties(ctx context.Context, companyID, clientID uuid.UUID) (int, error)
	SoftDeleteClient(ctx context.Context, companyID, id uuid.UUID, at time.Time) error
}

type PropertyStore interface {
	CreateProperty(ctx context.Context, p *model.Property) error
	GetProperty(ctx context.Context, companyID, id uuid.UUID) (*model.Property, error)
	UpdateProperty(ctx context.Context, p *model.Property) error
	ListProperties(ctx context.Context, companyID uuid.UUID, f storage.PropertyFilter) ([]model.Property, int, error)
	SoftDeleteProperty(ctx context.Context, companyID, id uuid.UUID, at time.Time) error
}

type JobStore interface {
	CreateJob(ctx context.Context, j *model.Job) error
	GetJob(ctx context.Context, companyID, id uuid.UUID) (*model.Job, error)
	UpdateJob(ctx context.Context, j *model.Job) error
	ListJobs(ctx context.Context, companyID uuid.UUID, f storage.JobFilter) ([]model.Job, int, error)
	SoftDeleteJob(ctx context.Context, companyID, id uuid.UUID, at time.Time) error
	CountLiveJobsForProperty(ctx context.Context, companyID, propertyID uuid.UUID) (int, error)
}

// Store is everything the managers persist through.
type Store interface {
	CompanyStore
	UserStore
	ClientStore
	PropertyStore
	JobStore
	Ping(ctx context.Context) error
}

var (
	_ Store = (*storage.Storage)(nil)
	_ Store = (*storage.MemoryStore)(nil)
)

// ObjectStore uploads files and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, obj objectstore.Object) (string, error)
}

var _ ObjectStore = (*objectstore.Store)(nil)
