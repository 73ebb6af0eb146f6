// Package bootstrap wires configuration into a ready-to-serve App.
package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/firebase/genkit/go/genkit"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/archive/bigquery"
	"github.com/atmoshq/weatherdesk/archive/local"
	"github.com/atmoshq/weatherdesk/config"
	"github.com/atmoshq/weatherdesk/stations"
	"github.com/atmoshq/weatherdesk/tools"
)

// App holds the initialized components of the application
type App struct {
	Directory  *stations.Directory
	Archive    *archive.Archive
	Dispatcher *tools.Dispatcher
	Genkit     *genkit.Genkit
	Registry   *tools.Registry

	closers []func() error
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	coverage, err := parseCoverage(cfg.Archive)
	if err != nil {
		return nil, err
	}

	app := &App{}

	// 1. Archive backend
	var backend archive.Backend
	switch cfg.Archive.Backend {
	case "bigquery", "":
		client, err := bigquery.NewClient(ctx, cfg.Archive.BigQuery.Project,
			cfg.Archive.BigQuery.CredentialsFile, cfg.Archive.BigQuery.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize bigquery archive: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		backend = client
	case "local":
		store, err := local.Open(cfg.Archive.Local.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local archive: %w", err)
		}
		backend = store
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Archive.Backend)
	}

	app.Archive = archive.New(backend, archive.Options{
		Coverage:      coverage,
		CacheTTL:      cfg.Query.CacheTTL,
		RetryAttempts: cfg.Query.RetryAttempts,
		RetryBackoff:  cfg.Query.RetryBackoff,
	})

	// 2. Station directory
	app.Directory, err = stations.NewDirectory(stations.DefaultStations)
	if err != nil {
		return nil, fmt.Errorf("failed to build station directory: %w", err)
	}

	// 3. Dispatcher + tool registry
	app.Dispatcher = tools.NewDispatcher(app.Directory, app.Archive,
		cfg.Query.MaxSeriesDays, cfg.Query.ToolTimeout)

	app.Genkit = genkit.Init(ctx)
	app.Registry = tools.NewRegistry()
	tools.RegisterAll(app.Genkit, app.Registry, app.Dispatcher)

	return app, nil
}

// Close releases backend resources.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func parseCoverage(cfg config.ArchiveConfig) (archive.DateRange, error) {
	start, err := civil.ParseDate(cfg.CoverageStart)
	if err != nil {
		return archive.DateRange{}, fmt.Errorf("invalid coverage_start %q: %w", cfg.CoverageStart, err)
	}
	end, err := civil.ParseDate(cfg.CoverageEnd)
	if err != nil {
		return archive.DateRange{}, fmt.Errorf("invalid coverage_end %q: %w", cfg.CoverageEnd, err)
	}
	return archive.NewDateRange(start, end)
}
