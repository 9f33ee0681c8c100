package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"landscapehub/internal/logger"
)

const statusCheckTimeout = 5 * time.Second

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// @Summary Liveness probe
// @Tags Status
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (a *API) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

type dependencyStatus struct {
	Status   string `json:"status"`
	Bucket   string `json:"bucket,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Error    string `json:"error,omitempty"`
}

type appStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type statusResponse struct {
	Time     time.Time        `json:"time"`
	App      appStatus        `json:"app"`
	Database dependencyStatus `json:"database"`
	Storage  dependencyStatus `json:"storage"`
}

func (a *API) check(ctx context.Context, name string, p Pinger) dependencyStatus {
	if p == nil {
		return dependencyStatus{Status: "disabled"}
	}
	ctx, cancel := context.WithTimeout(ctx, statusCheckTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		logger.FromContext(ctx, a.logger).Error("Dependency check failed", zap.String("dependency", name), zap.Error(err))
		return dependencyStatus{Status: "error", Error: err.Error()}
	}
	return dependencyStatus{Status: "connected"}
}

// @Summary Dependency status
// @Description Reports database and object storage connectivity. Always 200; inspect the body.
// @Tags Status
// @Produce json
// @Success 200 {object} statusResponse
// @Router /api/status [get]
func (a *API) Status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Time: time.Now().UTC(),
		App: appStatus{
			Status:      "online",
			Environment: a.settings.Environment,
			Version:     a.settings.Version,
		},
		Database: a.check(r.Context(), "database", a.svc.Database),
		Storage:  a.check(r.Context(), "storage", a.svc.Objects),
	}
	resp.Storage.Bucket = a.settings.Bucket
	resp.Storage.Endpoint = a.settings.StorageHost
	writeJSON(w, http.StatusOK, resp)
}
