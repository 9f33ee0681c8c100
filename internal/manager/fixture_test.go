package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"landscapehub/internal/auth"
	"landscapehub/internal/messaging"
	"landscapehub/internal/metrics"
	"landscapehub/internal/model"
	"landscapehub/internal/objectstore"
	"landscapehub/internal/storage"
)

type fakeObjects struct {
	mu   sync.Mutex
	keys []string
	fail bool
}

func (f *fakeObjects) Put(_ context.Context, obj objectstore.Object) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	key := fmt.Sprintf("%s/%s/%s/%d_%s", obj.EntityType, obj.EntityID, obj.Category, len(f.keys), obj.Filename)
	f.keys = append(f.keys, key)
	return "http://objects.test/landscapehub/" + key, nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	declared []uuid.UUID
	events   []messaging.Event
	fail     bool
}

func (p *recordingPublisher) DeclareQueue(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.declared = append(p.declared, id)
	return nil
}

func (p *recordingPublisher) Publish(_ context.Context, e messaging.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) UpdateQueueDepth(uuid.UUID) {}
func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []messaging.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]messaging.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fixture struct {
	store      *storage.MemoryStore
	objects    *fakeObjects
	publisher  *recordingPublisher
	metrics    *metrics.Metrics
	tokens     *auth.TokenIssuer
	clock      time.Time
	tenants    *TenantManager
	auth       *AuthManager
	company    *CompanyManager
	clients    *ClientManager
	properties *PropertyManager
	jobs       *JobManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, true)
}

func newFixtureWith(t *testing.T, enforce bool) *fixture {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("manager-test-secret", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		store:     storage.NewMemoryStore(),
		objects:   &fakeObjects{},
		publisher: &recordingPublisher{},
		metrics:   metrics.NewNop(),
		tokens:    tokens,
		clock:     time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
	}
	deps := Deps{
		Store:     f.store,
		Objects:   f.objects,
		Publisher: f.publisher,
		Metrics:   f.metrics,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return f.clock },
	}
	resolver := NewResolver(f.store)
	f.tenants = NewTenantManager(deps, tokens)
	f.auth = NewAuthManager(deps, tokens)
	f.company = NewCompanyManager(deps)
	f.clients = NewClientManager(deps, resolver)
	f.properties = NewPropertyManager(deps, resolver)
	f.jobs = NewJobManager(deps, resolver, enforce)
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

// register creates a company and returns its admin scope.
func (f *fixture) register(t *testing.T, name, email string) auth.Scope {
	t.Helper()
	sess, err := f.tenants.RegisterCompany(context.Background(), RegisterInput{
		CompanyName: name,
		Email:       email,
		Password:    "Secret123!",
		FirstName:   "Ada",
		LastName:    "Admin",
	})
	require.NoError(t, err)
	scope, err := auth.ScopeForUser(sess.User)
	require.NoError(t, err)
	return scope
}

func (f *fixture) scopeAs(t *testing.T, admin auth.Scope, role model.Role) auth.Scope {
	t.Helper()
	inv, err := f.company.Invite(context.Background(), admin, InviteInput{
		Email:     fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		FirstName: "Team",
		LastName:  string(role),
		Role:      role,
	})
	require.NoError(t, err)
	s, err := auth.ScopeForUser(inv.User)
	require.NoError(t, err)
	return s
}

func (f *fixture) seedClient(t *testing.T, s auth.Scope) *model.Client {
	t.Helper()
	c, err := f.clients.Create(context.Background(), s, ClientInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     fmt.Sprintf("jane-%s@example.com", uuid.NewString()[:8]),
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) seedProperty(t *testing.T, s auth.Scope, clientID uuid.UUID) *model.Property {
	t.Helper()
	p, err := f.properties.Create(context.Background(), s, PropertyInput{
		ClientID: clientID,
		Address:  "1 Elm St",
		City:     "Austin",
		State:    "TX",
		ZipCode:  "78701",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) seedJob(t *testing.T, s auth.Scope) *model.Job {
	t.Helper()
	c := f.seedClient(t, s)
	p := f.seedProperty(t, s, c.ID)
	j, err := f.jobs.Create(context.Background(), s, JobInput{
		PropertyID:    p.ID,
		ClientID:      c.ID,
		Title:         "Weekly mow",
		JobType:       model.JobMaintenance,
		ScheduledDate: "2025-06-12",
	})
	require.NoError(t, err)
	return j
}

func upload(name string) Upload {
	body := []byte("image-bytes")
	return Upload{Filename: name, ContentType: "image/jpeg", Size: int64(len(body)), Body: bytes.NewReader(body)}
}
