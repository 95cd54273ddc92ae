package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/aicopilot/internal/content/sanity"
	"github.com/louisbranch/aicopilot/internal/content/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/aicopilot/internal/content"

// DefaultRevalidate is how long successful results are reused.
const DefaultRevalidate = 60 * time.Second

// Source hands out the querier when the content source is usable.
type Source interface {
	Querier() (sanity.Querier, bool)
}

// Executor runs queries against a Source and decodes their results.
type Executor struct {
	source     Source
	report     func(*FetchError)
	catalog    *schema.Catalog
	revalidate time.Duration
	now        func() time.Time
	tracer     trace.Tracer
	cache      *resultCache
}

// Option customizes an Executor.
type Option func(*Executor)

// WithReporter replaces the sink for transport, decode and invalid failures.
func WithReporter(report func(*FetchError)) Option {
	return func(e *Executor) {
		if report != nil {
			e.report = report
		}
	}
}

// WithCatalog replaces the schema catalog used for validation.
func WithCatalog(catalog *schema.Catalog) Option {
	return func(e *Executor) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithRevalidate sets how long successful results are cached. Zero disables
// caching.
func WithRevalidate(ttl time.Duration) Option {
	return func(e *Executor) {
		e.revalidate = ttl
	}
}

// WithClock replaces the clock used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithTracer replaces the tracer used for fetch spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Executor) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// NewExecutor builds an executor reading from source.
func NewExecutor(source Source, opts ...Option) (*Executor, error) {
	e := &Executor{
		source:     source,
		revalidate: DefaultRevalidate,
		now:        time.Now,
		report: func(err *FetchError) {
			log.Printf("content fetch failed query=%s reason=%s err=%v", err.Query, err.Reason, err.Err)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.catalog == nil {
		catalog, err := schema.Default()
		if err != nil {
			return nil, fmt.Errorf("load schema catalog: %w", err)
		}
		e.catalog = catalog
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	e.cache = newResultCache(e.revalidate, e.now)
	return e, nil
}

// Catalog returns the schema catalog used for validation.
func (e *Executor) Catalog() *schema.Catalog {
	if e == nil {
		return nil
	}
	return e.catalog
}

// Fetch runs q and decodes its result into T.
//
// The returned error is always nil or a *FetchError. Fetch never panics and
// never contacts the content source when it is not configured. Transport,
// decode and invalid failures are reported exactly once; a read abandoned
// because ctx was canceled is returned as a transport failure but not
// reported. Invalid items of list queries are dropped and reported without
// failing the fetch.
func Fetch[T any](ctx context.Context, e *Executor, q Query) (T, error) {
	var zero T
	q = q.normalized()
	if e == nil {
		return zero, &FetchError{Query: q.Name, Reason: ReasonNotConfigured, Err: ErrNotConfigured}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := e.tracer.Start(ctx, "content.fetch", trace.WithAttributes(attribute.String("content.query", q.Name)))
	defer span.End()

	value, err := fetch[T](ctx, e, q)
	if err != nil {
		span.SetAttributes(attribute.String("content.reason", string(err.Reason)))
		if err.Reported() {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(err.Reason))
		}
		return zero, err
	}
	return value, nil
}

func fetch[T any](ctx context.Context, e *Executor, q Query) (T, *FetchError) {
	var zero T
	raw, failure := e.read(ctx, q)
	if failure != nil {
		return zero, failure
	}
	if isNull(raw) {
		return zero, &FetchError{Query: q.Name, Reason: ReasonNoRecord, Err: ErrNoRecord}
	}

	raw, failure = e.validate(q, raw)
	if failure != nil {
		e.report(failure)
		return zero, failure
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		failure = &FetchError{Query: q.Name, Reason: ReasonDecode, Err: err}
		e.report(failure)
		return zero, failure
	}
	return value, nil
}

// read obtains the raw result, going through the cache when enabled.
// Transport failures are reported here so callers sharing one upstream read
// produce one report.
func (e *Executor) read(ctx context.Context, q Query) (json.RawMessage, *FetchError) {
	if e.source == nil {
		return nil, &FetchError{Query: q.Name, Reason: ReasonNotConfigured, Err: ErrNotConfigured}
	}
	querier, ok := e.source.Querier()
	if !ok || querier == nil {
		return nil, &FetchError{Query: q.Name, Reason: ReasonNotConfigured, Err: ErrNotConfigured}
	}

	upstream := func(ctx context.Context) (json.RawMessage, error) {
		raw, err := safeQuery(ctx, querier, q)
		if err != nil {
			failure := &FetchError{Query: q.Name, Reason: ReasonTransport, Err: err}
			// A caller that went away is not a source failure.
			if !errors.Is(ctx.Err(), context.Canceled) {
				e.report(failure)
			}
			return nil, failure
		}
		return raw, nil
	}

	var (
		raw json.RawMessage
		err error
	)
	key, keyErr := cacheKey(q)
	if e.cache == nil || keyErr != nil {
		raw, err = upstream(ctx)
	} else {
		raw, err = e.cache.load(ctx, key, upstream)
	}
	if err != nil {
		var failure *FetchError
		if errors.As(err, &failure) {
			return nil, failure
		}
		return nil, &FetchError{Query: q.Name, Reason: ReasonTransport, Err: err}
	}
	return raw, nil
}

func safeQuery(ctx context.Context, querier sanity.Querier, q Query) (raw json.RawMessage, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			raw, err = nil, fmt.Errorf("query panicked: %v", recovered)
		}
	}()
	return querier.Query(ctx, q.GROQ, q.Params)
}

// validate checks raw against the query's document type. List results come
// back with invalid items removed.
func (e *Executor) validate(q Query, raw json.RawMessage) (json.RawMessage, *FetchError) {
	if q.DocumentType == "" || e.catalog == nil {
		return raw, nil
	}
	if !q.List {
		var record map[string]any
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, &FetchError{Query: q.Name, Reason: ReasonDecode, Err: err}
		}
		if err := e.catalog.Validate(q.DocumentType, record, q.Require...); err != nil {
			return nil, &FetchError{Query: q.Name, Reason: ReasonInvalid, Err: err}
		}
		return raw, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &FetchError{Query: q.Name, Reason: ReasonDecode, Err: err}
	}
	kept := make([]json.RawMessage, 0, len(items))
	var dropped []error
	for i, item := range items {
		var record map[string]any
		if err := json.Unmarshal(item, &record); err != nil || record == nil {
			dropped = append(dropped, fmt.Errorf("item %d is not an object", i))
			continue
		}
		if err := e.catalog.Validate(q.DocumentType, record, q.Require...); err != nil {
			dropped = append(dropped, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		kept = append(kept, item)
	}
	if len(dropped) > 0 {
		e.report(&FetchError{Query: q.Name, Reason: ReasonInvalid, Err: errors.Join(dropped...)})
	}
	if len(dropped) == 0 {
		return raw, nil
	}
	filtered, err := json.Marshal(kept)
	if err != nil {
		return nil, &FetchError{Query: q.Name, Reason: ReasonDecode, Err: err}
	}
	return filtered, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
