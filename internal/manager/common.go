package manager

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"landscapehub/internal/logger"
	"landscapehub/internal/messaging"
	"landscapehub/internal/metrics"
	"landscapehub/internal/objectstore"
)

// Deps bundles what every manager needs.
type Deps struct {
	Store     Store
	Objects   ObjectStore
	Publisher messaging.Publisher
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Now       func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Publisher == nil {
		d.Publisher = messaging.NopPublisher{}
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewNop()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) log(ctx context.Context) *zap.Logger {
	return logger.FromContext(ctx, d.Logger)
}

// emit publishes e. Broker failures never fail the request.
func (d Deps) emit(ctx context.Context, e messaging.Event) {
	if err := d.Publisher.Publish(ctx, e); err != nil {
		d.log(ctx).Warn("Failed to publish event",
			zap.String("type", string(e.Type)),
			zap.String("company_id", e.CompanyID.String()),
			zap.Error(err))
	}
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (d Deps) upload(ctx context.Context, entityType, entityID, category string, u Upload) (string, error) {
	url, err := d.Objects.Put(ctx, objectstore.Object{
		EntityType:  entityType,
		EntityID:    entityID,
		Category:    category,
		Filename:    u.Filename,
		ContentType: u.ContentType,
		Size:        u.Size,
		Body:        u.Body,
	})
	if err != nil {
		return "", err
	}
	d.Metrics.ObjectUploads.WithLabelValues(category).Inc()
	return url, nil
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Page is a list response.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func newPage[T any](items []T, total, page, size int) Page[T] {
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Page[T]{
		Items:      items,
		Pagination: Pagination{Total: total, Page: page, PageSize: size, TotalPages: pages},
	}
}
