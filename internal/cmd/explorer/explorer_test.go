package explorer

import (
	"context"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("explorer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := Config{
		Host:            "127.0.0.1",
		Port:            8050,
		DataDir:         "data",
		CountryInfoFile: "country_info.csv",
		SnapshotFile:    "data_2018.csv",
		EmissionsFile:   "co2_1960_2018.csv",
		SnapshotYear:    2018,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8050" {
		t.Fatalf("Addr() = %q, want %q", got, "127.0.0.1:8050")
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CO2_EXPLORER_PORT", "9000")
	t.Setenv("CO2_EXPLORER_DEBUG", "true")
	t.Setenv("CO2_EXPLORER_DATA_DIR", "/srv/wdi")

	cfg, err := ParseConfig(newFlagSet(), []string{"-port", "9100", "-host", "", "-snapshot", "wdi_2018.csv"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Port != 9100 {
		t.Fatalf("Port = %d, want 9100", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatal("Debug = false, want true from env")
	}
	if got := cfg.Addr(); got != ":9100" {
		t.Fatalf("Addr() = %q, want %q", got, ":9100")
	}
	want := dataset.Paths{
		CountryInfo: filepath.Join("/srv/wdi", "country_info.csv"),
		Snapshot:    filepath.Join("/srv/wdi", "wdi_2018.csv"),
		Emissions:   filepath.Join("/srv/wdi", "co2_1960_2018.csv"),
	}
	if diff := cmp.Diff(want, cfg.Paths()); diff != "" {
		t.Fatalf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "port zero", args: []string{"-port", "0"}, want: "port must be between"},
		{name: "port too large", args: []string{"-port", "70000"}, want: "port must be between"},
		{name: "snapshot year", args: []string{"-snapshot-year", "-1"}, want: "snapshot year"},
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
	}
	for _, tc := range tests {
		_, err := ParseConfig(newFlagSet(), tc.args)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error = %v, want %q", tc.name, err, tc.want)
		}
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("CO2_EXPLORER_PORT", "eighty")

	if _, err := ParseConfig(newFlagSet(), nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestRunFailsOnMissingData(t *testing.T) {
	t.Setenv("CO2_EXPLORER_OTEL_ENABLED", "false")

	cfg, err := ParseConfig(newFlagSet(), []string{"-data-dir", t.TempDir(), "-port", "18050"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	err = Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("Run error = %v, want load dataset failure", err)
	}
}
