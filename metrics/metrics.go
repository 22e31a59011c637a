package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type EngineMetrics struct {
	*HostMetrics
	*SettlementMetrics
}

// NewEngineMetrics creates all metrics of the settlement engine labeled with
// the deployment environment, instance id and version.
func NewEngineMetrics(ctx context.Context, meter metric.Meter, env, instance, version string) (*EngineMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", instance),
		attribute.String("version", version),
	)

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	settlementMetrics, err := NewSettlementMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &EngineMetrics{
		HostMetrics:       hostMetrics,
		SettlementMetrics: settlementMetrics,
	}, nil
}
