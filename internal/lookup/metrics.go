package lookup

import (
	"context"
	"time"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeHit   = "hit"
	outcomeMiss  = "miss"
	outcomeError = "error"
)

type lookupMetrics struct {
	lookups  metric.Int64Counter
	duration metric.Float64Histogram
}

// initLookupMetrics registers the lookup instruments on meter
func initLookupMetrics(meter metric.Meter) (*lookupMetrics, error) {
	lookups, err := meter.Int64Counter("catalog_lookups_total",
		metric.WithDescription("Catalog lookups by operation and outcome"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("catalog_lookup_duration_seconds",
		metric.WithDescription("Catalog lookup latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &lookupMetrics{lookups: lookups, duration: duration}, nil
}

func (m *lookupMetrics) record(ctx context.Context, backend DbType, op, outcome string, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("backend", backend.String()),
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	m.lookups.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// instrumentedProvider records a metric for every call to the wrapped provider
type instrumentedProvider struct {
	next    CatalogProvider
	backend DbType
	metrics *lookupMetrics
}

func newInstrumentedProvider(next CatalogProvider, backend DbType, metrics *lookupMetrics) *instrumentedProvider {
	return &instrumentedProvider{next: next, backend: backend, metrics: metrics}
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeHit
}

func (p *instrumentedProvider) Categories(ctx context.Context) ([]catalog.Category, error) {
	start := time.Now()
	res, err := p.next.Categories(ctx)
	p.metrics.record(ctx, p.backend, "categories", outcomeOf(err), start)
	return res, err
}

func (p *instrumentedProvider) Pages(ctx context.Context) ([]catalog.Page, error) {
	start := time.Now()
	res, err := p.next.Pages(ctx)
	p.metrics.record(ctx, p.backend, "pages", outcomeOf(err), start)
	return res, err
}

func (p *instrumentedProvider) PagesByCategory(ctx context.Context, id catalog.CategoryID) ([]catalog.Page, error) {
	start := time.Now()
	res, err := p.next.PagesByCategory(ctx, id)
	outcome := outcomeOf(err)
	if err == nil && len(res) == 0 {
		outcome = outcomeMiss
	}
	p.metrics.record(ctx, p.backend, "pages_by_category", outcome, start)
	return res, err
}

func (p *instrumentedProvider) PageByID(ctx context.Context, id string) (catalog.Page, bool, error) {
	start := time.Now()
	page, ok, err := p.next.PageByID(ctx, id)
	outcome := outcomeOf(err)
	if err == nil && !ok {
		outcome = outcomeMiss
	}
	p.metrics.record(ctx, p.backend, "page_by_id", outcome, start)
	return page, ok, err
}

func (p *instrumentedProvider) Close() error {
	return p.next.Close()
}
