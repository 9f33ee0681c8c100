package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/manager"
	"landscapehub/internal/storage"
)

// pathID parses the {id} URL parameter. A malformed id is reported exactly like
// a missing entity.
func pathID(r *http.Request, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.NotFound(entity)
	}
	return id, nil
}

// queryReader collects per-parameter errors so a bad query reports all of them.
type queryReader struct {
	q      url.Values
	fields map[string]string
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{q: r.URL.Query(), fields: map[string]string{}}
}

func (qr *queryReader) str(key string) string {
	return qr.q.Get(key)
}

func (qr *queryReader) int(key string) int {
	v := qr.q.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		qr.fields[key] = "Must be a non-negative integer"
		return 0
	}
	return n
}

func (qr *queryReader) bool(key string) *bool {
	v := qr.q.Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		qr.fields[key] = "Must be true or false"
		return nil
	}
	return &b
}

func (qr *queryReader) uuid(key string) *uuid.UUID {
	v := qr.q.Get(key)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		qr.fields[key] = "Must be a UUID"
		return nil
	}
	return &id
}

func (qr *queryReader) page() storage.Page {
	p := storage.Page{
		Page:      qr.int("page"),
		Limit:     qr.int("limit"),
		SortBy:    qr.str("sortBy"),
		SortOrder: qr.str("sortOrder"),
	}
	if o := p.SortOrder; o != "" && o != "asc" && o != "desc" && o != "ASC" && o != "DESC" {
		qr.fields["sortOrder"] = "Must be asc or desc"
	}
	return p
}

func (qr *queryReader) err() error {
	if len(qr.fields) == 0 {
		return nil
	}
	return apperr.Validation("Invalid query parameters", qr.fields)
}

// readUploads parses a multipart form and opens the files under field. The
// returned cleanup closes them and removes any spooled temp files.
func (a *API) readUploads(w http.ResponseWriter, r *http.Request, field string) ([]manager.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.settings.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.settings.MaxUploadBytes); err != nil {
		return nil, func() {}, apperr.Validation("Invalid multipart upload", nil)
	}

	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			_ = c()
		}
		_ = r.MultipartForm.RemoveAll()
	}

	headers := r.MultipartForm.File[field]
	uploads := make([]manager.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, apperr.Internal(err, "open upload")
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, manager.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, cleanup, nil
}

// readSingleUpload is readUploads for routes taking exactly one file.
func (a *API) readSingleUpload(w http.ResponseWriter, r *http.Request, field string) (manager.Upload, func(), error) {
	uploads, cleanup, err := a.readUploads(w, r, field)
	if err != nil {
		return manager.Upload{}, cleanup, err
	}
	if len(uploads) == 0 {
		cleanup()
		return manager.Upload{}, func() {}, apperr.Validation("No file uploaded", map[string]string{field: "File is required"})
	}
	return uploads[0], cleanup, nil
}
