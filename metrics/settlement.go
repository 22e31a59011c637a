package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/sprintertech/sprinter-settlement/settlement"
)

type SettlementMetrics struct {
	opts metric.MeasurementOption

	settlementCounter metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// NewSettlementMetrics initializes metrics counting settlements per strategy and outcome
func NewSettlementMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*SettlementMetrics, error) {
	settlementCounter, err := meter.Int64Counter(
		"settlement.Settlements",
		metric.WithDescription("Number of settlements by strategy and outcome"),
	)
	if err != nil {
		return nil, err
	}

	durationHistogram, err := meter.Float64Histogram(
		"settlement.DurationSeconds",
		metric.WithDescription("Time spent executing a settlement"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &SettlementMetrics{
		opts:              opts,
		settlementCounter: settlementCounter,
		durationHistogram: durationHistogram,
	}, nil
}

func (m *SettlementMetrics) TrackSettlement(ctx context.Context, kind settlement.StrategyKind, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", string(kind)),
		attribute.String("outcome", outcome),
	)
	m.settlementCounter.Add(ctx, 1, m.opts, attrs)
	m.durationHistogram.Record(ctx, duration.Seconds(), m.opts, attrs)
}
