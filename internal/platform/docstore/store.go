package docstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("restaurantBackoffice/docstore")

// Store loads and persists the whole document. Implementations give no
// isolation between concurrent Update calls: the last Save wins.
type Store interface {
	// Load returns the persisted document, or an empty one when nothing has
	// been saved yet.
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
	// Exists reports whether a document has ever been saved.
	Exists(ctx context.Context) (bool, error)
}

// Update performs one read-modify-write cycle. The document is saved only
// when fn returns nil.
func Update(ctx context.Context, s Store, fn func(*Document) error) (err error) {
	ctx, span := tracer.Start(ctx, "docstore.update", trace.WithSpanKind(trace.SpanKindInternal))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(ctx, doc)
}

// NewID returns a fresh random identifier for a created record.
func NewID() string {
	return uuid.NewString()
}

// Timestamp formats t the way createdAt fields are stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
