package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const meterName = "github.com/lixenwraith/sky-dodger"

// runMetrics holds an in-process provider whose totals are logged once at exit
type runMetrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader
}

func newRunMetrics() *runMetrics {
	reader := sdkmetric.NewManualReader()
	return &runMetrics{
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		reader:   reader,
	}
}

func (rm *runMetrics) Meter() metric.Meter {
	return rm.provider.Meter(meterName)
}

// Totals flattens every counter and histogram into name{attrs} keys
// Counters map to their value, histograms to their observation count and sum
func (rm *runMetrics) Totals(ctx context.Context) (map[string]int64, error) {
	var data metricdata.ResourceMetrics
	if err := rm.reader.Collect(ctx, &data); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}

	enc := attribute.DefaultEncoder()
	out := make(map[string]int64)
	for _, sm := range data.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch d := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range d.DataPoints {
					out[seriesKey(m.Name, dp.Attributes.Encoded(enc))] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range d.DataPoints {
					key := seriesKey(m.Name, dp.Attributes.Encoded(enc))
					out[key+".count"] += int64(dp.Count)
					out[key+".sum"] += dp.Sum
				}
			}
		}
	}
	return out, nil
}

// Shutdown logs the run totals then stops the provider
func (rm *runMetrics) Shutdown(ctx context.Context, log zerolog.Logger) {
	totals, err := rm.Totals(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Metrics unavailable")
	} else {
		ev := log.Info()
		for k, v := range totals {
			ev = ev.Int64(k, v)
		}
		ev.Msg("Run metrics")
	}
	if err := rm.provider.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Meter provider shutdown")
	}
}

func seriesKey(name, attrs string) string {
	if attrs == "" {
		return name
	}
	return name + "{" + attrs + "}"
}
