package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/sky-dodger/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics records run statistics, a no-op unless a global provider is installed
type simMetrics struct {
	ticks      metric.Int64Counter
	spawns     metric.Int64Counter
	crashes    metric.Int64Counter
	restarts   metric.Int64Counter
	finalScore metric.Int64Histogram
}

func newSimMetrics(m metric.Meter) (*simMetrics, error) {
	if m == nil {
		m = meter()
	}
	sm := &simMetrics{}
	var err error

	sm.ticks, err = m.Int64Counter(
		"simulation.ticks",
		metric.WithDescription("Simulation ticks that advanced state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	sm.spawns, err = m.Int64Counter(
		"simulation.obstacles.spawned",
		metric.WithDescription("Obstacles spawned, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawn counter: %w", err)
	}

	sm.crashes, err = m.Int64Counter(
		"simulation.crashes",
		metric.WithDescription("Runs ended by collision, by cause"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating crash counter: %w", err)
	}

	sm.restarts, err = m.Int64Counter(
		"simulation.restarts",
		metric.WithDescription("Explicit restarts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restart counter: %w", err)
	}

	sm.finalScore, err = m.Int64Histogram(
		"simulation.final_score",
		metric.WithDescription("Score at game over"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	return sm, nil
}

func (sm *simMetrics) tick(ctx context.Context) {
	sm.ticks.Add(ctx, 1)
}

func (sm *simMetrics) spawn(ctx context.Context, kind string) {
	sm.spawns.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (sm *simMetrics) crash(ctx context.Context, cause string, final int) {
	sm.crashes.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", cause)))
	sm.finalScore.Record(ctx, int64(final))
}

func (sm *simMetrics) restart(ctx context.Context) {
	sm.restarts.Add(ctx, 1)
}
