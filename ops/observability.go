// Package ops carries the operational surface of the bot: the otel
// providers and the small http server exposing health and metrics.
package ops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"riskmentor/config"
)

func startMeterProvider(ctx context.Context, res *resource.Resource, cfg config.ObserveConfig) (*metric.MeterProvider, error) {
	// prometheus reader backs the /metrics endpoint and is always on
	promReader, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	opts := []metric.Option{
		metric.WithReader(promReader),
		metric.WithResource(res),
	}

	if cfg.Enable {
		var exporter metric.Exporter
		switch cfg.Exporter {
		case "otlp":
			otlpOpts := []otlpmetrichttp.Option{
				otlpmetrichttp.WithEndpoint(cfg.MetricsEndpoint),
			}
			if !cfg.Secure {
				otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
			}
			exporter, err = otlpmetrichttp.New(ctx, otlpOpts...)
			if err != nil {
				return nil, fmt.Errorf("failed to create otlp http metric exporter: %w", err)
			}
		default:
			slog.Debug("initialize stdout metric exporter")
			exporter, err = stdoutmetric.New()
			if err != nil {
				return nil, fmt.Errorf("failed to create metric exporter: %w", err)
			}
		}
		opts = append(opts, metric.WithReader(metric.NewPeriodicReader(exporter)))
	}

	return metric.NewMeterProvider(opts...), nil
}

func startTracerProvider(ctx context.Context, res *resource.Resource, cfg config.ObserveConfig) (*trace.TracerProvider, error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.Exporter {
	case "otlp":
		otlpOpts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(cfg.TraceEndpoint),
		}
		if !cfg.Secure {
			otlpOpts = append(otlpOpts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, otlpOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp http trace exporter: %w", err)
		}
	default:
		slog.Debug("initialize stdout trace exporter")
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	), nil
}

// InitObservability configures the global otel providers. The returned
// shutdown function must be called on application exit so buffered
// telemetry gets flushed.
func InitObservability(ctx context.Context, serviceName string, cfg config.ObserveConfig) (func(context.Context) error, error) {
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return func(context.Context) error { return nil }, fmt.Errorf("failed to create otel resource: %w", err)
	}

	sfn := []func(context.Context) error{}

	meterProvider, err := startMeterProvider(ctx, res, cfg)
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(meterProvider)
	sfn = append(sfn, meterProvider.Shutdown)

	if cfg.Enable {
		tracerProvider, err := startTracerProvider(ctx, res, cfg)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(tracerProvider)
		sfn = append(sfn, tracerProvider.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		var shutdownErr error
		for _, fn := range sfn {
			shutdownErr = errors.Join(shutdownErr, fn(ctx))
		}
		return shutdownErr
	}, nil
}
