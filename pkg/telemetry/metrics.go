package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/catalog"

// Metrics holds the domain counters. Methods are safe on a nil receiver so
// services built without telemetry (tests) need no stub.
type Metrics struct {
	itemsCreated      metric.Int64Counter
	categoriesCreated metric.Int64Counter
	conflicts         metric.Int64Counter
	ownershipMisses   metric.Int64Counter
}

// NewMetrics registers the counters on the global meter provider. Call after Setup.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFrom(otel.GetMeterProvider())
}

// NewMetricsFrom registers the counters on mp.
func NewMetricsFrom(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	var (
		m   Metrics
		err error
	)
	if m.itemsCreated, err = meter.Int64Counter("catalog.items.created",
		metric.WithDescription("Items created")); err != nil {
		return nil, fmt.Errorf("items created counter: %w", err)
	}
	if m.categoriesCreated, err = meter.Int64Counter("catalog.categories.created",
		metric.WithDescription("Categories created")); err != nil {
		return nil, fmt.Errorf("categories created counter: %w", err)
	}
	if m.conflicts, err = meter.Int64Counter("catalog.conflicts",
		metric.WithDescription("Writes rejected by a uniqueness rule")); err != nil {
		return nil, fmt.Errorf("conflicts counter: %w", err)
	}
	if m.ownershipMisses, err = meter.Int64Counter("catalog.ownership.misses",
		metric.WithDescription("Item lookups that matched no record owned by the caller")); err != nil {
		return nil, fmt.Errorf("ownership misses counter: %w", err)
	}
	return &m, nil
}

// ItemCreated counts one persisted item.
func (m *Metrics) ItemCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.itemsCreated.Add(ctx, 1)
}

// CategoryCreated counts one persisted category.
func (m *Metrics) CategoryCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.categoriesCreated.Add(ctx, 1)
}

// Conflict counts a uniqueness rejection; field is "name" or "mobile".
func (m *Metrics) Conflict(ctx context.Context, resource, field string) {
	if m == nil {
		return
	}
	m.conflicts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resource", resource),
		attribute.String("field", field),
	))
}

// OwnershipMiss counts an item lookup that found nothing for the caller.
func (m *Metrics) OwnershipMiss(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.ownershipMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}
