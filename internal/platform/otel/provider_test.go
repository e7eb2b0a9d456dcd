package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/co2explorer/internal/platform/otel"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("CO2_EXPLORER_OTEL_ENDPOINT", " ")
	t.Setenv("CO2_EXPLORER_OTEL_ENABLED", "")
	t.Setenv("CO2_EXPLORER_OTEL_SAMPLE_RATIO", "")

	s, err := otel.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Endpoint != "" || !s.Enabled || s.SampleRatio != 1 {
		t.Fatalf("LoadSettings() = %+v, want empty endpoint, enabled, ratio 1", s)
	}
}

func TestLoadSettings_RejectsRatioOutOfRange(t *testing.T) {
	t.Setenv("CO2_EXPLORER_OTEL_SAMPLE_RATIO", "1.5")

	if _, err := otel.LoadSettings(); err == nil {
		t.Fatal("expected error for sample ratio 1.5")
	}
	if _, err := otel.Setup(context.Background(), "explorer"); err == nil {
		t.Fatal("expected Setup to surface settings error")
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("CO2_EXPLORER_OTEL_ENDPOINT", "")
	t.Setenv("CO2_EXPLORER_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "explorer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("CO2_EXPLORER_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("CO2_EXPLORER_OTEL_ENABLED", "FALSE")

	shutdown, err := otel.Setup(context.Background(), "explorer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWith_SampledProvider(t *testing.T) {
	t.Parallel()

	// Non-routable address: nothing is exported before shutdown.
	settings := otel.Settings{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 0.25}
	shutdown, err := otel.SetupWith(context.Background(), "explorer", settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
