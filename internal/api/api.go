package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/logger"
	"landscapehub/internal/manager"
	"landscapehub/internal/metrics"
)

// Pinger is a dependency checked by the status endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the managers and dependencies the handlers call into.
type Services struct {
	Tenants    *manager.TenantManager
	Auth       *manager.AuthManager
	Company    *manager.CompanyManager
	Clients    *manager.ClientManager
	Properties *manager.PropertyManager
	Jobs       *manager.JobManager

	Tokens   *auth.TokenIssuer
	Users    auth.UserLookup
	Database Pinger
	Objects  Pinger
}

// Settings are the pieces of configuration the HTTP layer reads.
type Settings struct {
	Environment    string
	Version        string
	Bucket         string
	StorageHost    string
	MaxUploadBytes int64
	MaxBodyBytes   int64
}

type API struct {
	svc      Services
	settings Settings
	metrics  *metrics.Metrics
	logger   *zap.Logger
	authn    *auth.Authenticator
}

func NewAPI(svc Services, settings Settings, m *metrics.Metrics, log *zap.Logger) *API {
	if m == nil {
		m = metrics.NewNop()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if settings.MaxUploadBytes <= 0 {
		settings.MaxUploadBytes = 32 << 20
	}
	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = 1 << 20
	}
	if settings.Version == "" {
		settings.Version = "0.1.0"
	}

	a := &API{svc: svc, settings: settings, metrics: m, logger: log}
	a.authn = auth.NewAuthenticator(svc.Tokens, svc.Users, a.writeError, func(reason string) {
		m.AuthFailures.WithLabelValues(reason).Inc()
	})
	return a
}

func (a *API) require(op auth.Operation) func(http.Handler) http.Handler {
	return auth.Require(op, a.writeError)
}

// recoverer turns a handler panic into the standard 500 response.
func (a *API) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context(), a.logger).Error("Handler panicked",
				zap.Any("panic", rec), zap.Stack("stack"))
			a.writeError(w, r, apperr.Internal(fmt.Errorf("panic: %v", rec), "handler panic"))
		}()
		next.ServeHTTP(w, r)
	})
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestID(a.logger))
	r.Use(logger.AccessLog(a.logger))
	r.Use(a.metrics.Middleware)
	r.Use(a.recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.writeError(w, r, apperr.NotFound("Route "+r.Method+" "+r.URL.Path))
	})

	r.Get("/health", a.Health)
	r.Get("/api/health", a.Health)
	r.Get("/api/status", a.Status)
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		// Public
		r.Post("/auth/register", a.Register)
		r.Post("/auth/login", a.Login)

		// Secured
		r.Group(func(r chi.Router) {
			r.Use(a.authn.Middleware)

			r.Get("/auth/profile", a.Profile)
			r.Put("/auth/password", a.ChangePassword)

			r.With(a.require(auth.OpCompanyRead)).Get("/company", a.GetCompany)
			r.With(a.require(auth.OpCompanyUpdate)).Put("/company", a.UpdateCompany)
			r.With(a.require(auth.OpCompanyLogo)).Post("/company/logo", a.UploadLogo)
			r.With(a.require(auth.OpTeamRead)).Get("/company/team", a.ListTeam)
			r.With(a.require(auth.OpTeamInvite)).Post("/company/team/invite", a.InviteUser)

			r.With(a.require(auth.OpClientRead)).Get("/clients", a.ListClients)
			r.With(a.require(auth.OpClientCreate)).Post("/clients", a.CreateClient)
			r.With(a.require(auth.OpClientRead)).Get("/clients/{id}", a.GetClient)
			r.With(a.require(auth.OpClientUpdate)).Put("/clients/{id}", a.UpdateClient)
			r.With(a.require(auth.OpClientDelete)).Delete("/clients/{id}", a.DeleteClient)
			r.With(a.require(auth.OpPropertyRead)).Get("/clients/{id}/properties", a.ListClientProperties)

			r.With(a.require(auth.OpPropertyRead)).Get("/properties", a.ListProperties)
			r.With(a.require(auth.OpPropertyCreate)).Post("/properties", a.CreateProperty)
			r.With(a.require(auth.OpPropertyRead)).Get("/properties/{id}", a.GetProperty)
			r.With(a.require(auth.OpPropertyUpdate)).Put("/properties/{id}", a.UpdateProperty)
			r.With(a.require(auth.OpPropertyDelete)).Delete("/properties/{id}", a.DeleteProperty)
			r.With(a.require(auth.OpPropertyZones)).Put("/properties/{id}/zones", a.UpdateZones)
			r.With(a.require(auth.OpPropertyImage)).Post("/properties/{id}/satellite-image", a.UploadSatelliteImage)

			r.With(a.require(auth.OpJobRead)).Get("/jobs", a.ListJobs)
			r.With(a.require(auth.OpJobCreate)).Post("/jobs", a.CreateJob)
			r.With(a.require(auth.OpJobRead)).Get("/jobs/{id}", a.GetJob)
			r.With(a.require(auth.OpJobUpdate)).Put("/jobs/{id}", a.UpdateJob)
			r.With(a.require(auth.OpJobDelete)).Delete("/jobs/{id}", a.DeleteJob)
			r.With(a.require(auth.OpJobStatus)).Put("/jobs/{id}/status", a.UpdateJobStatus)
			r.With(a.require(auth.OpJobPhotos)).Post("/jobs/{id}/photos", a.AddJobPhotos)
		})
	})

	return r
}
