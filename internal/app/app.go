package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vk/docsift/internal/config"
	"github.com/vk/docsift/internal/pdfio"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	appCfg  *Config
	model   *config.Model
	source  pdfio.Source
	runID   string
	httpSrv *http.Server
}

// NewApp is the constructor for the main application. It resolves the
// pipeline configuration and returns a fully initialized App with its own
// isolated logger.
func NewApp(outW io.Writer, appCfg *Config, source pdfio.Source) *App {
	logger := newLogger(appCfg.LogLevel, appCfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	model, err := config.Load(appCfg.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	// CLI flags take precedence over the pipeline file.
	if appCfg.Workers > 0 {
		model.Workers = appCfg.Workers
	}
	if appCfg.TopN > 0 {
		model.TopN = appCfg.TopN
	}
	if appCfg.LedgerPath != "" {
		model.LedgerPath = appCfg.LedgerPath
	}
	logger.Debug("Pipeline configuration resolved.", "workers", model.Workers, "topN", model.TopN)

	return &App{
		outW:   outW,
		logger: logger,
		appCfg: appCfg,
		model:  model,
		source: source,
		runID:  uuid.NewString(),
	}
}

// Model returns the resolved pipeline configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// RunID returns the identifier stamped on this invocation's logs and ledger rows.
func (a *App) RunID() string {
	return a.runID
}
