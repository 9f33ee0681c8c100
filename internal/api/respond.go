package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"landscapehub/internal/apperr"
	"landscapehub/internal/auth"
	"landscapehub/internal/logger"
)

const internalErrorMessage = "An unexpected error occurred"

type errorResponse struct {
	Error     bool              `json:"error"`
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is the only place an error becomes an HTTP response.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.From(err)
	msg := ae.Message

	if ae.Kind == apperr.KindInternal {
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		}
		if s, ok := auth.ScopeFrom(r.Context()); ok {
			fields = append(fields,
				zap.String("user_id", s.UserID.String()),
				zap.String("company_id", s.CompanyID.String()))
		}
		logger.FromContext(r.Context(), a.logger).Error("Request failed", fields...)
		msg = internalErrorMessage
	}

	writeJSON(w, ae.Kind.Status(), errorResponse{
		Error:     true,
		Code:      ae.Code,
		Message:   msg,
		Errors:    ae.Fields,
		Timestamp: time.Now().UTC(),
	})
}

// decodeJSON reads a JSON body into T. Empty and malformed bodies are
// validation errors.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return v, apperr.Validation("Request body too large", nil)
		case errors.Is(err, io.EOF):
			return v, apperr.Validation("Request body is required", nil)
		default:
			return v, apperr.Validation("Invalid request body", nil)
		}
	}
	return v, nil
}
