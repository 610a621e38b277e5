package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const metricNamespace = "github.com/ytsandesh670-cpu/Shopping/internal/shop"

// Metrics records catalog interaction counters.
type Metrics struct {
	events   metric.Int64Counter
	overlays metric.Int64Counter
	results  metric.Int64Histogram
}

// NewMetrics registers the catalog instruments on meter. A nil meter uses the
// global provider. Registration failures are logged and the instrument is skipped.
func NewMetrics(meter metric.Meter, logger *zap.Logger) *Metrics {
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(metricNamespace)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{}
	var err error
	if m.events, err = meter.Int64Counter(
		"shop.catalog.events",
		metric.WithDescription("Count of catalog view events by kind"),
	); err != nil {
		logger.Warn("metrics: unable to register events counter", zap.Error(err))
		m.events = nil
	}
	if m.overlays, err = meter.Int64Counter(
		"shop.overlay.opens",
		metric.WithDescription("Count of product overlays opened by product id"),
	); err != nil {
		logger.Warn("metrics: unable to register overlay counter", zap.Error(err))
		m.overlays = nil
	}
	if m.results, err = meter.Int64Histogram(
		"shop.catalog.results",
		metric.WithDescription("Number of products matching the active filters"),
	); err != nil {
		logger.Warn("metrics: unable to register results histogram", zap.Error(err))
		m.results = nil
	}
	return m
}

// RecordEvent counts a view event such as "search" or "page.next" and the size
// of the resulting match set.
func (m *Metrics) RecordEvent(ctx context.Context, kind string, matches int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	if m.events != nil {
		m.events.Add(ctx, 1, attrs)
	}
	if m.results != nil {
		m.results.Record(ctx, int64(matches), attrs)
	}
}

// RecordOverlayOpen counts an overlay opened for productID.
func (m *Metrics) RecordOverlayOpen(ctx context.Context, productID string) {
	if m == nil || m.overlays == nil {
		return
	}
	m.overlays.Add(ctx, 1, metric.WithAttributes(attribute.String("product_id", productID)))
}
