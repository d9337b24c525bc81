// Package otelhooks emits nscache hook events as OpenTelemetry counters.
// Only the metric API is used; provider/exporter setup belongs to the host
// application.
package otelhooks

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/unkn0wn-root/nscache"
)

type Hooks struct {
	storeErrors   metric.Int64Counter
	epochErrors   metric.Int64Counter
	epochRotation metric.Int64Counter
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(meter metric.Meter) (*Hooks, error) {
	storeErrors, err := meter.Int64Counter(
		"nscache.store.errors",
		metric.WithDescription("Store failures absorbed fail-open"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}
	epochErrors, err := meter.Int64Counter(
		"nscache.epoch.resolve_errors",
		metric.WithDescription("Epoch resolutions that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}
	epochRotation, err := meter.Int64Counter(
		"nscache.epoch.rotations",
		metric.WithDescription("Namespace invalidations via epoch rotation"),
		metric.WithUnit("{rotation}"),
	)
	if err != nil {
		return nil, err
	}
	return &Hooks{
		storeErrors:   storeErrors,
		epochErrors:   epochErrors,
		epochRotation: epochRotation,
	}, nil
}

// Physical keys are hashes already; only the operation is attached as an
// attribute to keep cardinality bounded.
func (h *Hooks) StoreError(op, _ string, _ error) {
	h.storeErrors.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("op", op)))
}

func (h *Hooks) EpochResolveError(namespace string, _ error) {
	h.epochErrors.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("namespace", namespace)))
}

func (h *Hooks) EpochRotated(namespace string) {
	h.epochRotation.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("namespace", namespace)))
}
