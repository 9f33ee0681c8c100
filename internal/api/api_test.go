package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"landscapehub/internal/auth"
	"landscapehub/internal/manager"
	"landscapehub/internal/metrics"
	"landscapehub/internal/model"
	"landscapehub/internal/objectstore"
	"landscapehub/internal/storage"
)

type fakeObjects struct {
	mu   sync.Mutex
	n    int
	fail bool
}

func (f *fakeObjects) Put(_ context.Context, obj objectstore.Object) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	_, _ = io.Copy(io.Discard, obj.Body)
	f.n++
	return fmt.Sprintf("http://objects.test/%s/%s/%s/%d_%s", obj.EntityType, obj.EntityID, obj.Category, f.n, obj.Filename), nil
}

func (f *fakeObjects) Ping(context.Context) error {
	if f.fail {
		return errors.New("bucket unavailable")
	}
	return nil
}

type testServer struct {
	t       *testing.T
	srv     *httptest.Server
	store   *storage.MemoryStore
	objects *fakeObjects
	metrics *metrics.Metrics
	company *manager.CompanyManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("api-test-secret", time.Hour)
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	objects := &fakeObjects{}
	m := metrics.NewNop()
	deps := manager.Deps{Store: store, Objects: objects, Metrics: m, Logger: zap.NewNop()}
	resolver := manager.NewResolver(store)

	ts := &testServer{t: t, store: store, objects: objects, metrics: m, company: manager.NewCompanyManager(deps)}
	a := NewAPI(Services{
		Tenants:    manager.NewTenantManager(deps, tokens),
		Auth:       manager.NewAuthManager(deps, tokens),
		Company:    ts.company,
		Clients:    manager.NewClientManager(deps, resolver),
		Properties: manager.NewPropertyManager(deps, resolver),
		Jobs:       manager.NewJobManager(deps, resolver, true),
		Tokens:     tokens,
		Users:      store,
		Database:   store,
		Objects:    objects,
	}, Settings{Environment: "test", Bucket: "landscapehub", StorageHost: "objects.test"}, m, zap.NewNop())

	ts.srv = httptest.NewServer(a.Router())
	t.Cleanup(ts.srv.Close)
	return ts
}

type response struct {
	status int
	body   []byte
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (r response) errorBody(t *testing.T) errorResponse {
	t.Helper()
	var e errorResponse
	r.decode(t, &e)
	require.True(t, e.Error, string(r.body))
	return e
}

func (ts *testServer) do(method, path, token string, body any) response {
	ts.t.Helper()
	var rdr io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rdr = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(ts.t, err)
			rdr = bytes.NewReader(raw)
		}
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rdr)
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.send(req)
}

func (ts *testServer) upload(path, token, field string, names ...string) response {
	ts.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(ts.t, err)
		_, _ = fw.Write([]byte("fake-image"))
	}
	require.NoError(ts.t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+path, &buf)
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return ts.send(req)
}

func (ts *testServer) send(req *http.Request) response {
	ts.t.Helper()
	res, err := ts.srv.Client().Do(req)
	require.NoError(ts.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(ts.t, err)
	return response{status: res.StatusCode, body: body}
}

type account struct {
	token string
	scope auth.Scope
}

func (ts *testServer) register(company, email string) account {
	ts.t.Helper()
	res := ts.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"companyName": company,
		"email":       email,
		"password":    "Secret123!",
		"firstName":   "Ada",
		"lastName":    "Admin",
	})
	require.Equal(ts.t, http.StatusCreated, res.status, string(res.body))
	var sess manager.Session
	res.decode(ts.t, &sess)
	s, err := auth.ScopeForUser(sess.User)
	require.NoError(ts.t, err)
	return account{token: sess.Token, scope: s}
}

// member invites a user with role and logs them in.
func (ts *testServer) member(admin account, role model.Role) account {
	ts.t.Helper()
	email := fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano())
	res := ts.do(http.MethodPost, "/api/v1/company/team/invite", admin.token, map[string]string{
		"email": email, "firstName": "Team", "lastName": string(role), "role": string(role),
	})
	require.Equal(ts.t, http.StatusCreated, res.status, string(res.body))
	var inv manager.Invitation
	res.decode(ts.t, &inv)

	res = ts.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": inv.TemporaryPassword,
	})
	require.Equal(ts.t, http.StatusOK, res.status, string(res.body))
	var sess manager.Session
	res.decode(ts.t, &sess)
	s, err := auth.ScopeForUser(sess.User)
	require.NoError(ts.t, err)
	return account{token: sess.Token, scope: s}
}

func (ts *testServer) createClient(a account) model.Client {
	ts.t.Helper()
	res := ts.do(http.MethodPost, "/api/v1/clients", a.token, map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": fmt.Sprintf("jane-%d@example.com", time.Now().UnixNano()),
	})
	require.Equal(ts.t, http.StatusCreated, res.status, string(res.body))
	var c model.Client
	res.decode(ts.t, &c)
	return c
}

func (ts *testServer) createProperty(a account, clientID string) model.Property {
	ts.t.Helper()
	res := ts.do(http.MethodPost, "/api/v1/properties", a.token, map[string]string{
		"clientId": clientID, "address": "1 Elm St", "city": "Austin", "state": "TX", "zipCode": "78701",
	})
	require.Equal(ts.t, http.StatusCreated, res.status, string(res.body))
	var p model.Property
	res.decode(ts.t, &p)
	return p
}

func (ts *testServer) createJob(a account) model.Job {
	ts.t.Helper()
	c := ts.createClient(a)
	p := ts.createProperty(a, c.ID.String())
	res := ts.do(http.MethodPost, "/api/v1/jobs", a.token, map[string]string{
		"propertyId": p.ID.String(), "clientId": c.ID.String(),
		"title": "Spring cleanup", "jobType": "cleanup", "scheduledDate": "2025-06-12",
	})
	require.Equal(ts.t, http.StatusCreated, res.status, string(res.body))
	var j model.Job
	res.decode(ts.t, &j)
	return j
}
