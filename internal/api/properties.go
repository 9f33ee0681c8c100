package api

import (
	"encoding/json"
	"net/http"

	"landscapehub/internal/manager"
	"landscapehub/internal/model"
	"landscapehub/internal/storage"
)

// @Summary List properties
// @Tags Properties
// @Security ApiKeyAuth
// @Produce json
// @Param clientId query string false "Client ID"
// @Param propertyType query string false "Property type"
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Matches name, address or city"
// @Param sortBy query string false "name, address, city or createdAt"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} manager.Page[model.Property]
// @Router /properties [get]
func (a *API) ListProperties(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	f := storage.PropertyFilter{
		ClientID:     qr.uuid("clientId"),
		PropertyType: model.PropertyType(qr.str("propertyType")),
		Active:       qr.bool("active"),
		Search:       qr.str("search"),
		Page:         qr.page(),
	}
	if f.PropertyType != "" && !f.PropertyType.Valid() {
		qr.fields["propertyType"] = "Invalid property type"
	}
	if err := qr.err(); err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.svc.Properties.List(r.Context(), scope(r), f)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary Get a property
// @Tags Properties
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} model.Property
// @Failure 404 {object} errorResponse
// @Router /properties/{id} [get]
func (a *API) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Property")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svc.Properties.Get(r.Context(), scope(r), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary Create a property
// @Tags Properties
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.PropertyInput true "Property"
// @Success 201 {object} model.Property
// @Router /properties [post]
func (a *API) CreateProperty(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.PropertyInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svc.Properties.Create(r.Context(), scope(r), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// @Summary Update a property
// @Tags Properties
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body manager.PropertyUpdate true "Fields to change"
// @Success 200 {object} model.Property
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /properties/{id} [put]
func (a *API) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Property")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := decodeJSON[manager.PropertyUpdate](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svc.Properties.Update(r.Context(), scope(r), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type zonesRequest struct {
	Zones json.RawMessage `json:"zones" swaggertype:"object"`
}

// @Summary Replace a property's zones
// @Tags Properties
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body zonesRequest true "Zones document"
// @Success 200 {object} model.Property
// @Router /properties/{id}/zones [put]
func (a *API) UpdateZones(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Property")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := decodeJSON[zonesRequest](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svc.Properties.UpdateZones(r.Context(), scope(r), id, in.Zones)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type satelliteResponse struct {
	Message           string `json:"message"`
	SatelliteImageURL string `json:"satelliteImageUrl"`
}

// @Summary Upload a satellite image
// @Tags Properties
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param image formData file true "Satellite image"
// @Success 200 {object} satelliteResponse
// @Router /properties/{id}/satellite-image [post]
func (a *API) UploadSatelliteImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Property")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	u, cleanup, err := a.readSingleUpload(w, r, "image")
	defer cleanup()
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svc.Properties.UploadSatelliteImage(r.Context(), scope(r), id, u)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, satelliteResponse{
		Message:           "Satellite image uploaded successfully",
		SatelliteImageURL: p.SatelliteImageURL,
	})
}

// @Summary Delete a property
// @Tags Properties
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} messageResponse
// @Router /properties/{id} [delete]
func (a *API) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Property")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Properties.Delete(r.Context(), scope(r), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Property deleted successfully"})
}
