package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

// MemoryStore keeps every table in maps. It mirrors Storage's tenant
// filtering and soft-delete rules and backs manager and handler tests.
type MemoryStore struct {
	mu         sync.RWMutex
	companies  map[uuid.UUID]model.Company
	users      map[uuid.UUID]model.User
	clients    map[uuid.UUID]model.Client
	properties map[uuid.UUID]model.Property
	jobs       map[uuid.UUID]model.Job
	deleted    map[uuid.UUID]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:  make(map[uuid.UUID]model.Company),
		users:      make(map[uuid.UUID]model.User),
		clients:    make(map[uuid.UUID]model.Client),
		properties: make(map[uuid.UUID]model.Property),
		jobs:       make(map[uuid.UUID]model.Job),
		deleted:    make(map[uuid.UUID]time.Time),
	}
}

func (m *MemoryStore) live(id uuid.UUID) bool {
	_, gone := m.deleted[id]
	return !gone
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) CreateCompanyWithAdmin(_ context.Context, c *model.Company, admin *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(admin.Email) {
		return errUserEmailTaken
	}
	m.companies[c.ID] = *c
	m.users[admin.ID] = *admin
	return nil
}

func (m *MemoryStore) GetCompany(_ context.Context, id uuid.UUID) (*model.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[id]
	if !ok || !m.live(id) {
		return nil, apperr.NotFound("Company")
	}
	return &c, nil
}

func (m *MemoryStore) UpdateCompany(_ context.Context, c *model.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.companies[c.ID]; !ok || !m.live(c.ID) {
		return apperr.NotFound("Company")
	}
	m.companies[c.ID] = *c
	return nil
}

func (m *MemoryStore) ListCompanyIDs(context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cs []model.Company
	for id, c := range m.companies {
		if m.live(id) {
			cs = append(cs, c)
		}
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].CreatedAt.Before(cs[j].CreatedAt) })
	ids := make([]uuid.UUID, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids, nil
}

func (m *MemoryStore) emailTaken(email string) bool {
	for id, u := range m.users {
		if u.Email == email && m.live(id) {
			return true
		}
	}
	return false
}

func (m *MemoryStore) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(u.Email) {
		return errUserEmailTaken
	}
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok || !m.live(id) {
		return nil, apperr.NotFound("User")
	}
	return &u, nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, u := range m.users {
		if u.Email == email && m.live(id) {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (m *MemoryStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.LastLogin = &at
		m.users[id] = u
	}
	return nil
}

func (m *MemoryStore) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !m.live(id) {
		return apperr.NotFound("User")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return nil
}

// SetUserActive flips a user's active flag. There is no HTTP route for it; tests
// use it to simulate an administrator disabling an account.
func (m *MemoryStore) SetUserActive(id uuid.UUID, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.IsActive = active
		m.users[id] = u
	}
}

func (m *MemoryStore) ListTeam(_ context.Context, companyID uuid.UUID) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	team := []model.User{}
	for id, u := range m.users {
		if u.CompanyID != nil && *u.CompanyID == companyID && m.live(id) {
			team = append(team, u)
		}
	}
	sort.Slice(team, func(i, j int) bool {
		if team[i].LastName != team[j].LastName {
			return team[i].LastName < team[j].LastName
		}
		return team[i].FirstName < team[j].FirstName
	})
	return team, nil
}

func (m *MemoryStore) CountCompanyUsers(_ context.Context, companyID uuid.UUID, ids []uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		u, ok := m.users[id]
		if ok && m.live(id) && u.CompanyID != nil && *u.CompanyID == companyID {
			seen[id] = true
		}
	}
	return len(seen), nil
}

func (m *MemoryStore) clientEmailTaken(c *model.Client) bool {
	if c.Email == "" {
		return false
	}
	for id, other := range m.clients {
		if id != c.ID && m.live(id) && other.CompanyID == c.CompanyID && other.Email == c.Email {
			return true
		}
	}
	return false
}

func (m *MemoryStore) CreateClient(_ context.Context, c *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clientEmailTaken(c) {
		return errClientEmailTaken
	}
	m.clients[c.ID] = *c
	return nil
}

func (m *MemoryStore) GetClient(_ context.Context, companyID, id uuid.UUID) (*model.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clients[id]
	if !ok || !m.live(id) || c.CompanyID != companyID {
		return nil, apperr.NotFound("Client")
	}
	return &c, nil
}

func (m *MemoryStore) UpdateClient(_ context.Context, c *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.clients[c.ID]
	if !ok || !m.live(c.ID) || cur.CompanyID != c.CompanyID {
		return apperr.NotFound("Client")
	}
	if m.clientEmailTaken(c) {
		return errClientEmailTaken
	}
	m.clients[c.ID] = *c
	return nil
}

func (m *MemoryStore) ListClients(_ context.Context, companyID uuid.UUID, f ClientFilter) ([]model.Client, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Client
	for id, c := range m.clients {
		if c.CompanyID != companyID || !m.live(id) {
			continue
		}
		if f.Active != nil && c.IsActive != *f.Active {
			continue
		}
		if f.Search != "" && !containsFold(f.Search, c.FirstName, c.LastName, c.Email) {
			continue
		}
		out = append(out, c)
	}
	key := func(c model.Client) string {
		switch f.SortBy {
		case "firstName":
			return c.FirstName
		case "email":
			return c.Email
		case "createdAt":
			return c.CreatedAt.Format(time.RFC3339Nano)
		case "clientSince":
			return c.ClientSince.Format(time.RFC3339Nano)
		}
		return c.LastName
	}
	return paginate(out, key, f.Page, false)
}

func (m *MemoryStore) CountLiveProperties(_ context.Context, companyID, clientID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for id, p := range m.properties {
		if company, _ := m.companyOfClient(p.ClientID); company != companyID {
			continue
		}
		if p.ClientID == clientID && m.live(id) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) SoftDeleteClient(_ context.Context, companyID, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok || !m.live(id) || c.CompanyID != companyID {
		return apperr.NotFound("Client")
	}
	m.deleted[id] = at
	return nil
}

func (m *MemoryStore) companyOfClient(clientID uuid.UUID) (uuid.UUID, bool) {
	c, ok := m.clients[clientID]
	return c.CompanyID, ok
}

func (m *MemoryStore) CreateProperty(_ context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	company, ok := m.companyOfClient(p.ClientID)
	if !ok {
		return apperr.NotFound("Client")
	}
	cp := *p
	cp.CompanyID = company
	m.properties[p.ID] = cp
	return nil
}

func (m *MemoryStore) GetProperty(_ context.Context, companyID, id uuid.UUID) (*model.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.properties[id]
	if !ok || !m.live(id) {
		return nil, apperr.NotFound("Property")
	}
	if company, _ := m.companyOfClient(p.ClientID); company != companyID {
		return nil, apperr.NotFound("Property")
	}
	p.CompanyID = companyID
	return &p, nil
}

func (m *MemoryStore) UpdateProperty(_ context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.properties[p.ID]
	if !ok || !m.live(p.ID) {
		return apperr.NotFound("Property")
	}
	if company, _ := m.companyOfClient(cur.ClientID); company != p.CompanyID {
		return apperr.NotFound("Property")
	}
	if company, ok := m.companyOfClient(p.ClientID); !ok || company != p.CompanyID || !m.live(p.ClientID) {
		return apperr.NotFound("Property")
	}
	m.properties[p.ID] = *p
	return nil
}

func (m *MemoryStore) ListProperties(_ context.Context, companyID uuid.UUID, f PropertyFilter) ([]model.Property, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Property
	for id, p := range m.properties {
		if company, _ := m.companyOfClient(p.ClientID); company != companyID || !m.live(id) {
			continue
		}
		if f.ClientID != nil && p.ClientID != *f.ClientID {
			continue
		}
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		if f.Search != "" && !containsFold(f.Search, p.Name, p.Address, p.City) {
			continue
		}
		p.CompanyID = companyID
		out = append(out, p)
	}
	key := func(p model.Property) string {
		switch f.SortBy {
		case "name":
			return p.Name
		case "address":
			return p.Address
		case "city":
			return p.City
		}
		return p.CreatedAt.Format(time.RFC3339Nano)
	}
	return paginate(out, key, f.Page, true)
}

func (m *MemoryStore) SoftDeleteProperty(_ context.Context, companyID, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok || !m.live(id) {
		return apperr.NotFound("Property")
	}
	if company, _ := m.companyOfClient(p.ClientID); company != companyID {
		return apperr.NotFound("Property")
	}
	m.deleted[id] = at
	return nil
}

func cloneJob(j model.Job) model.Job {
	j.AssignedTo = append([]uuid.UUID{}, j.AssignedTo...)
	j.CompletionPhotos = append([]string{}, j.CompletionPhotos...)
	return j
}

func (m *MemoryStore) CreateJob(_ context.Context, j *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[j.ID] = cloneJob(*j)
	return nil
}

func (m *MemoryStore) GetJob(_ context.Context, companyID, id uuid.UUID) (*model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok || !m.live(id) || j.CompanyID != companyID {
		return nil, apperr.NotFound("Job")
	}
	j = cloneJob(j)
	return &j, nil
}

func (m *MemoryStore) UpdateJob(_ context.Context, j *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.jobs[j.ID]
	if !ok || !m.live(j.ID) || cur.CompanyID != j.CompanyID {
		return apperr.NotFound("Job")
	}
	m.jobs[j.ID] = cloneJob(*j)
	return nil
}

func (m *MemoryStore) ListJobs(_ context.Context, companyID uuid.UUID, f JobFilter) ([]model.Job, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Job
	for id, j := range m.jobs {
		if j.CompanyID != companyID || !m.live(id) {
			continue
		}
		if f.ClientID != nil && j.ClientID != *f.ClientID {
			continue
		}
		if f.PropertyID != nil && j.PropertyID != *f.PropertyID {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.StartDate != "" && j.ScheduledDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && j.ScheduledDate > f.EndDate {
			continue
		}
		if f.Search != "" && !containsFold(f.Search, j.Title, j.Description) {
			continue
		}
		out = append(out, cloneJob(j))
	}
	key := func(j model.Job) string {
		switch f.SortBy {
		case "createdAt":
			return j.CreatedAt.Format(time.RFC3339Nano)
		case "title":
			return j.Title
		case "priority":
			return fmt.Sprintf("%02d", j.Priority.Rank())
		case "status":
			return fmt.Sprintf("%02d", j.Status.Rank())
		}
		return j.ScheduledDate
	}
	return paginate(out, key, f.Page, true)
}

func (m *MemoryStore) SoftDeleteJob(_ context.Context, companyID, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || !m.live(id) || j.CompanyID != companyID {
		return apperr.NotFound("Job")
	}
	m.deleted[id] = at
	return nil
}

func (m *MemoryStore) CountLiveJobsForProperty(_ context.Context, companyID, propertyID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for id, j := range m.jobs {
		if j.CompanyID == companyID && j.PropertyID == propertyID && m.live(id) {
			n++
		}
	}
	return n, nil
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, key func(T) string, p Page, defDesc bool) ([]T, int, error) {
	p = p.Normalize()
	desc := p.Descending(defDesc)
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return key(items[i]) > key(items[j])
		}
		return key(items[i]) < key(items[j])
	})
	total := len(items)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	page := make([]T, 0, end-start)
	page = append(page, items[start:end]...)
	return page, total, nil
}
