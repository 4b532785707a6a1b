package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/docsift/internal/collection"
	"github.com/vk/docsift/internal/ctxlog"
	"github.com/vk/docsift/internal/ledger"
	"github.com/vk/docsift/internal/pipeline"
)

// Run executes the batch over every collection under the input root.
// Failed collections do not stop the remaining ones; the run as a whole
// fails if any collection did.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("runID", a.runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	if a.appCfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx)
		defer a.closeHealthcheckServer(ctx)
	}

	info, err := os.Stat(a.appCfg.InputRoot)
	if err != nil {
		return fmt.Errorf("input root %s: %w", a.appCfg.InputRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input root %s is not a directory", a.appCfg.InputRoot)
	}

	led, err := a.openLedger()
	if err != nil {
		return err
	}
	defer led.Close()

	collections, err := collection.Discover(ctx, a.appCfg.InputRoot, a.model.ManifestName, a.model.OutputName)
	if err != nil {
		return err
	}
	if len(collections) == 0 {
		logger.Warn("No collections found under input root, nothing to do.")
		return nil
	}

	parsedRoot := filepath.Join(a.appCfg.InputRoot, a.model.ParsedDir)
	if err := os.MkdirAll(parsedRoot, 0o755); err != nil {
		return fmt.Errorf("create parsed root: %w", err)
	}

	pipe := pipeline.New(a.model, a.source)

	logger.Info("🚀 Starting batch run.", "collections", len(collections))
	failed := 0
	for _, col := range collections {
		start := time.Now()
		result, runErr := pipe.RunCollection(ctx, col, filepath.Join(parsedRoot, col.Name))

		entry := ledger.Entry{
			RunID:      a.runID,
			Collection: col.Name,
			Status:     ledger.StatusOK,
			Documents:  result.Documents,
			Sections:   result.Sections,
			Duration:   time.Since(start),
		}
		if runErr != nil {
			failed++
			entry.Status = ledger.StatusFailed
			entry.Error = runErr.Error()
			logger.Error("Collection failed.", "collection", col.Name, "error", runErr)
		}
		if err := led.Record(ctx, entry); err != nil {
			logger.Error("Failed to record ledger entry.", "collection", col.Name, "error", err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	logger.Info("🏁 Batch run finished.", "collections", len(collections), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d collections failed", failed, len(collections))
	}
	return nil
}

// openLedger opens the run-history database when configured. A nil ledger
// is valid and records nothing.
func (a *App) openLedger() (*ledger.Ledger, error) {
	if a.model.LedgerPath == "" {
		return nil, nil
	}
	led, err := ledger.Open(a.model.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("open run ledger: %w", err)
	}
	a.logger.Debug("Run ledger opened.", "path", a.model.LedgerPath)
	return led, nil
}
