package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	cycleCounter   otelmetric.Int64Counter
	matchCounter   otelmetric.Int64Counter
	cycleDuration  otelmetric.Float64Histogram
}

// New sets up the global meter provider (prometheus exporter) and, when a
// collector endpoint is given, the global tracer provider (jaeger exporter).
func New(serviceName, jaegerEndpoint string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	cycleCounter, _ := meter.Int64Counter(
		"watcher.cycles",
		otelmetric.WithDescription("Number of completed watch cycles"),
	)

	matchCounter, _ := meter.Int64Counter(
		"watcher.alert_matches",
		otelmetric.WithDescription("Number of alert matches found"),
	)

	cycleDuration, _ := meter.Float64Histogram(
		"watcher.cycle_duration",
		otelmetric.WithDescription("Watch cycle duration"),
		otelmetric.WithUnit("ms"),
	)

	obs := &Observability{
		meterProvider: provider,
		meter:         meter,
		cycleCounter:  cycleCounter,
		matchCounter:  matchCounter,
		cycleDuration: cycleDuration,
	}

	if jaegerEndpoint != "" {
		traceExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			log.Printf("Failed to create Jaeger exporter: %v", err)
			return obs
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExporter),
			sdktrace.WithResource(resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName(serviceName),
			)),
		)
		otel.SetTracerProvider(tp)
		obs.tracerProvider = tp
	}

	return obs
}

// RecordCycle records one completed watch cycle and its match count.
func (o *Observability) RecordCycle(ctx context.Context, matched int, duration time.Duration) {
	if o.cycleCounter != nil {
		o.cycleCounter.Add(ctx, 1)
	}
	if o.matchCounter != nil && matched > 0 {
		o.matchCounter.Add(ctx, int64(matched), otelmetric.WithAttributes(
			attribute.String("topic", "alert.matched"),
		))
	}
	if o.cycleDuration != nil {
		o.cycleDuration.Record(ctx, float64(duration.Milliseconds()))
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.tracerProvider != nil {
		_ = o.tracerProvider.Shutdown(ctx)
	}
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
}
