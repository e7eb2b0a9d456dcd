// Package otel wires optional OpenTelemetry tracing for explorer processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/co2explorer/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls trace export. Fields read CO2_EXPLORER_OTEL_* variables.
type Settings struct {
	Endpoint    string  `env:"OTEL_ENDPOINT"`
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"true"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadSettings reads tracing settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.ParseEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("load otel settings: %w", err)
	}
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	if s.SampleRatio < 0 || s.SampleRatio > 1 {
		return Settings{}, fmt.Errorf("load otel settings: sample ratio %v outside [0, 1]", s.SampleRatio)
	}
	return s, nil
}

// active reports whether spans should be exported at all.
func (s Settings) active() bool {
	return s.Enabled && s.Endpoint != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	if s.SampleRatio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
}

// Setup registers a global tracer provider for serviceName using settings
// from the environment. When export is inactive the returned shutdown is a
// no-op and the global provider is left untouched.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	settings, err := LoadSettings()
	if err != nil {
		return noop, err
	}
	return SetupWith(ctx, serviceName, settings)
}

// SetupWith is Setup with explicit settings.
func SetupWith(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(settings.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return provider.Shutdown, nil
}

func noop(context.Context) error { return nil }
