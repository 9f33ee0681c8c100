package api

import (
	"net/http"

	"landscapehub/internal/manager"
	"landscapehub/internal/storage"
)

// @Summary List clients
// @Tags Clients
// @Security ApiKeyAuth
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Matches first name, last name or email"
// @Param sortBy query string false "firstName, lastName, email, createdAt or clientSince"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} manager.Page[model.Client]
// @Router /clients [get]
func (a *API) ListClients(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	f := storage.ClientFilter{
		Active: qr.bool("active"),
		Search: qr.str("search"),
		Page:   qr.page(),
	}
	if err := qr.err(); err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.svc.Clients.List(r.Context(), scope(r), f)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary Get a client
// @Tags Clients
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} model.Client
// @Failure 404 {object} errorResponse
// @Router /clients/{id} [get]
func (a *API) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Client")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Clients.Get(r.Context(), scope(r), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// @Summary Create a client
// @Tags Clients
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.ClientInput true "Client"
// @Success 201 {object} model.Client
// @Failure 409 {object} errorResponse
// @Router /clients [post]
func (a *API) CreateClient(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.ClientInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Clients.Create(r.Context(), scope(r), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// @Summary Update a client
// @Tags Clients
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param body body manager.ClientUpdate true "Fields to change"
// @Success 200 {object} model.Client
// @Router /clients/{id} [put]
func (a *API) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Client")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := decodeJSON[manager.ClientUpdate](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Clients.Update(r.Context(), scope(r), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// @Summary Delete a client
// @Description Clients that still have properties are deactivated instead.
// @Tags Clients
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} manager.DeleteResult
// @Router /clients/{id} [delete]
func (a *API) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Client")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	res, err := a.svc.Clients.Delete(r.Context(), scope(r), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary List a client's properties
// @Tags Clients
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} model.Property
// @Router /clients/{id}/properties [get]
func (a *API) ListClientProperties(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Client")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	props, err := a.svc.Clients.Properties(r.Context(), scope(r), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, props)
}
