// Package explorer parses explorer command flags and launches the dashboard.
package explorer

import (
	"context"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"

	entrypoint "github.com/louisbranch/co2explorer/internal/platform/cmd"
	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"github.com/louisbranch/co2explorer/internal/platform/timeouts"
	server "github.com/louisbranch/co2explorer/internal/services/explorer"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset"
)

// Config holds explorer command configuration. Environment keys carry the
// CO2_EXPLORER_ prefix.
type Config struct {
	Host            string `env:"HOST" envDefault:"127.0.0.1"`
	Port            int    `env:"PORT" envDefault:"8050"`
	Debug           bool   `env:"DEBUG" envDefault:"false"`
	DataDir         string `env:"DATA_DIR" envDefault:"data"`
	CountryInfoFile string `env:"COUNTRY_INFO_FILE" envDefault:"country_info.csv"`
	SnapshotFile    string `env:"SNAPSHOT_FILE" envDefault:"data_2018.csv"`
	EmissionsFile   string `env:"EMISSIONS_FILE" envDefault:"co2_1960_2018.csv"`
	SnapshotYear    int    `env:"SNAPSHOT_YEAR" envDefault:"2018"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		fs = flag.NewFlagSet("explorer", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Interface the dashboard listens on (empty for all)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Dashboard HTTP port")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log every request and show error details")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding the source CSV files")
	fs.StringVar(&cfg.CountryInfoFile, "country-info", cfg.CountryInfoFile, "Country metadata file")
	fs.StringVar(&cfg.SnapshotFile, "snapshot", cfg.SnapshotFile, "Single-year indicator snapshot file")
	fs.StringVar(&cfg.EmissionsFile, "emissions", cfg.EmissionsFile, "Emissions time series file")
	fs.IntVar(&cfg.SnapshotYear, "snapshot-year", cfg.SnapshotYear, "Year covered by the snapshot file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.SnapshotYear <= 0 {
		return fmt.Errorf("snapshot year must be positive, got %d", c.SnapshotYear)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strconv.Itoa(c.Port))
}

// Paths resolves the three source files.
func (c Config) Paths() dataset.Paths {
	return dataset.PathsIn(c.DataDir, c.CountryInfoFile, c.SnapshotFile, c.EmissionsFile)
}

// Run loads the Data Store and serves the dashboard until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExplorer, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	catalog := indicators.Default()
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.DataLoad)
	store, err := dataset.Load(loadCtx, cfg.Paths(), catalog)
	cancel()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	srv, err := server.NewServer(server.Config{
		HTTPAddr:     cfg.Addr(),
		Debug:        cfg.Debug,
		SnapshotYear: cfg.SnapshotYear,
		Store:        store,
		Catalog:      catalog,
	})
	if err != nil {
		return err
	}
	defer srv.Close()
	return srv.ListenAndServe(ctx)
}
