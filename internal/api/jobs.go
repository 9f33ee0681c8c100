package api

import (
	"net/http"

	"landscapehub/internal/manager"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

// @Summary List jobs
// @Tags Jobs
// @Security ApiKeyAuth
// @Produce json
// @Param clientId query string false "Client ID"
// @Param propertyId query string false "Property ID"
// @Param status query string false "Job status"
// @Param jobType query string false "Job type"
// @Param startDate query string false "Earliest scheduled date (YYYY-MM-DD)"
// @Param endDate query string false "Latest scheduled date (YYYY-MM-DD)"
// @Param search query string false "Matches title or description"
// @Param sortBy query string false "scheduledDate, createdAt, title, priority or status"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} manager.Page[model.Job]
// @Router /jobs [get]
func (a *API) ListJobs(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	f := storage.JobFilter{
		ClientID:   qr.uuid("clientId"),
		PropertyID: qr.uuid("propertyId"),
		Status:     model.JobStatus(qr.str("status")),
		JobType:    model.JobType(qr.str("jobType")),
		StartDate:  qr.str("startDate"),
		EndDate:    qr.str("endDate"),
		Search:     qr.str("search"),
		Page:       qr.page(),
	}
	if err := qr.err(); err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.svc.Jobs.List(r.Context(), scope(r), f)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary Get a job
// @Tags Jobs
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errorResponse
// @Router /jobs/{id} [get]
func (a *API) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Job")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	j, err := a.svc.Jobs.Get(r.Context(), scope(r), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// @Summary Create a job
// @Tags Jobs
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.JobInput true "Job"
// @Success 201 {object} model.Job
// @Failure 400 {object} errorResponse
// @Router /jobs [post]
func (a *API) CreateJob(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.JobInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	j, err := a.svc.Jobs.Create(r.Context(), scope(r), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, j)
}

// @Summary Update a job
// @Description Status changes go through PUT /jobs/{id}/status.
// @Tags Jobs
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param body body manager.JobUpdate true "Fields to change"
// @Success 200 {object} model.Job
// @Router /jobs/{id} [put]
func (a *API) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Job")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := decodeJSON[manager.JobUpdate](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	j, err := a.svc.Jobs.Update(r.Context(), scope(r), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// @Summary Change a job's status
// @Tags Jobs
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param body body manager.StatusInput true "Target status"
// @Success 200 {object} model.Job
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /jobs/{id}/status [put]
func (a *API) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Job")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := decodeJSON[manager.StatusInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	j, err := a.svc.Jobs.UpdateStatus(r.Context(), scope(r), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// @Summary Upload completion photos
// @Tags Jobs
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Job ID"
// @Param photos formData file true "Up to 10 photos"
// @Success 200 {object} model.Job
// @Router /jobs/{id}/photos [post]
func (a *API) AddJobPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Job")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	uploads, cleanup, err := a.readUploads(w, r, "photos")
	defer cleanup()
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	j, err := a.svc.Jobs.AddPhotos(r.Context(), scope(r), id, uploads)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// @Summary Delete a job
// @Tags Jobs
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} messageResponse
// @Router /jobs/{id} [delete]
func (a *API) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Job")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Jobs.Delete(r.Context(), scope(r), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}
