package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "landscapehub/docs"
	"landscapehub/internal/manager"
	"landscapehub/internal/model"
)

func TestOtherTenantsEntitiesAre404(t *testing.T) {
	ts := newTestServer(t)
	acme := ts.register("Acme Lawns", "a@acme.com")
	bravo := ts.register("Bravo Gardens", "b@bravo.com")
	job := ts.createJob(acme)

	paths := []string{
		"/api/v1/clients/" + job.ClientID.String(),
		"/api/v1/clients/" + job.ClientID.String() + "/properties",
		"/api/v1/properties/" + job.PropertyID.String(),
		"/api/v1/jobs/" + job.ID.String(),
	}
	for _, p := range paths {
		res := ts.do(http.MethodGet, p, bravo.token, nil)
		assert.Equal(t, http.StatusNotFound, res.status, p)
		assert.Equal(t, "not_found", res.errorBody(t).Code)
	}

	res := ts.do(http.MethodDelete, "/api/v1/jobs/"+job.ID.String(), bravo.token, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
	res = ts.do(http.MethodGet, "/api/v1/jobs/"+job.ID.String(), acme.token, nil)
	assert.Equal(t, http.StatusOK, res.status)

	// a property from another tenant cannot anchor a job
	bc := ts.createClient(bravo)
	res = ts.do(http.MethodPost, "/api/v1/jobs", bravo.token, map[string]string{
		"propertyId": job.PropertyID.String(), "clientId": bc.ID.String(),
		"title": "Steal", "jobType": "other", "scheduledDate": "2025-06-12",
	})
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	res := ts.do(http.MethodGet, "/api/v1/jobs/not-a-uuid", admin.token, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestJobStatusRoute(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	job := ts.createJob(admin)
	path := "/api/v1/jobs/" + job.ID.String() + "/status"

	res := ts.do(http.MethodPut, path, admin.token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusConflict, res.status)
	assert.Equal(t, "illegal_transition", res.errorBody(t).Code)

	res = ts.do(http.MethodPut, path, admin.token, map[string]string{"status": "finished"})
	require.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "invalid_status", res.errorBody(t).Code)

	for _, s := range []string{"scheduled", "in_progress", "in_progress"} {
		res = ts.do(http.MethodPut, path, admin.token, map[string]string{"status": s})
		require.Equal(t, http.StatusOK, res.status, s)
	}
	var j model.Job
	res.decode(t, &j)
	assert.Equal(t, model.StatusInProgress, j.Status)
	require.NotNil(t, j.ActualStartTime)

	res = ts.do(http.MethodPut, path, admin.token, map[string]string{"status": "completed", "completionNotes": "done"})
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &j)
	assert.Equal(t, "done", j.CompletionNotes)
	assert.NotNil(t, j.ActualEndTime)

	// the general update cannot sneak a status change past the machine
	res = ts.do(http.MethodPut, "/api/v1/jobs/"+job.ID.String(), admin.token, map[string]string{"status": "draft"})
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestJobPhotosUpload(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	crew := ts.member(admin, model.RoleCrew)
	job := ts.createJob(admin)
	path := "/api/v1/jobs/" + job.ID.String() + "/photos"

	res := ts.upload(path, crew.token, "photos", "a.jpg", "b.jpg")
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var j model.Job
	res.decode(t, &j)
	assert.Len(t, j.CompletionPhotos, 2)

	names := make([]string, manager.MaxPhotosPerUpload+1)
	for i := range names {
		names[i] = "p.jpg"
	}
	res = ts.upload(path, crew.token, "photos", names...)
	assert.Equal(t, http.StatusBadRequest, res.status)

	ts.objects.fail = true
	res = ts.upload(path, crew.token, "photos", "c.jpg")
	require.Equal(t, http.StatusInternalServerError, res.status)
	e := res.errorBody(t)
	assert.Equal(t, internalErrorMessage, e.Message)
	assert.NotContains(t, string(res.body), "bucket unavailable")
}

func TestClientDeleteResponse(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	c := ts.createClient(admin)
	ts.createProperty(admin, c.ID.String())

	res := ts.do(http.MethodDelete, "/api/v1/clients/"+c.ID.String(), admin.token, nil)
	require.Equal(t, http.StatusOK, res.status)
	var out manager.DeleteResult
	res.decode(t, &out)
	assert.True(t, out.Deactivated)

	empty := ts.createClient(admin)
	res = ts.do(http.MethodDelete, "/api/v1/clients/"+empty.ID.String(), admin.token, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &out)
	assert.False(t, out.Deactivated)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/clients/"+empty.ID.String(), admin.token, nil).status)
}

func TestPropertyZonesAndSatellite(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	p := ts.createProperty(admin, ts.createClient(admin).ID.String())
	base := "/api/v1/properties/" + p.ID.String()

	res := ts.do(http.MethodPut, base+"/zones", admin.token, `{"zones":{"front":{"area":900}}}`)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var got model.Property
	res.decode(t, &got)
	assert.JSONEq(t, `{"front":{"area":900}}`, string(got.Zones))

	res = ts.do(http.MethodPut, base+"/zones", admin.token, `{}`)
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = ts.upload(base+"/satellite-image", admin.token, "image", "sat.png")
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var sat satelliteResponse
	res.decode(t, &sat)
	assert.Contains(t, sat.SatelliteImageURL, "/properties/"+p.ID.String()+"/satellite/")
}

func TestListQueryParsing(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	for i := 0; i < 3; i++ {
		ts.createClient(admin)
	}

	res := ts.do(http.MethodGet, "/api/v1/clients?limit=2&page=2&sortBy=createdAt&sortOrder=asc", admin.token, nil)
	require.Equal(t, http.StatusOK, res.status)
	var page manager.Page[model.Client]
	res.decode(t, &page)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, manager.Pagination{Total: 3, Page: 2, PageSize: 2, TotalPages: 2}, page.Pagination)

	res = ts.do(http.MethodGet, "/api/v1/clients?active=maybe&page=x", admin.token, nil)
	require.Equal(t, http.StatusBadRequest, res.status)
	e := res.errorBody(t)
	assert.Contains(t, e.Errors, "active")
	assert.Contains(t, e.Errors, "page")

	res = ts.do(http.MethodGet, "/api/v1/jobs?status=finished", admin.token, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
	res = ts.do(http.MethodGet, "/api/v1/jobs?startDate=June", admin.token, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
	res = ts.do(http.MethodGet, "/api/v1/properties?clientId=nope", admin.token, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("Acme Lawns", "a@acme.com")
	res := ts.do(http.MethodPost, "/api/v1/clients", admin.token, `{"firstName":`)
	require.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Invalid request body", res.errorBody(t).Message)
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	ts := newTestServer(t)
	res := ts.do(http.MethodGet, "/api/v1/nothing-here", "", nil)
	require.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "not_found", res.errorBody(t).Code)
}

func TestHealthStatusAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	for _, p := range []string{"/health", "/api/health"} {
		res := ts.do(http.MethodGet, p, "", nil)
		require.Equal(t, http.StatusOK, res.status)
		var h healthResponse
		res.decode(t, &h)
		assert.Equal(t, "ok", h.Status)
	}

	res := ts.do(http.MethodGet, "/api/status", "", nil)
	require.Equal(t, http.StatusOK, res.status)
	var st statusResponse
	res.decode(t, &st)
	assert.Equal(t, "online", st.App.Status)
	assert.Equal(t, "connected", st.Database.Status)
	assert.Equal(t, "connected", st.Storage.Status)
	assert.Equal(t, "landscapehub", st.Storage.Bucket)

	ts.objects.fail = true
	res = ts.do(http.MethodGet, "/api/status", "", nil)
	res.decode(t, &st)
	assert.Equal(t, "error", st.Storage.Status)
	assert.NotEmpty(t, st.Storage.Error)

	res = ts.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, string(res.body), "http_requests_total")
}

func TestSwaggerDocServed(t *testing.T) {
	ts := newTestServer(t)

	res := ts.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, string(res.body), "LandscapeHub API")
	assert.Contains(t, string(res.body), "/jobs/{id}/status")
}
