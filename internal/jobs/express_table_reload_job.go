package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"parcellabel/internal/core/domain/model/eligibility"

	"github.com/robfig/cron/v3"
)

// DefaultExpressTableReloadSpec is used when no schedule is configured.
const DefaultExpressTableReloadSpec = "@every 1h"

// ExpressTableReloadJob re-reads the express availability CSV on a schedule
// and swaps it into the registry. A failed reload keeps the current table.
type ExpressTableReloadJob struct {
	path     string
	spec     string
	registry *eligibility.ExpressRegistry
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewExpressTableReloadJob(
	path string,
	spec string,
	registry *eligibility.ExpressRegistry,
	logger *slog.Logger,
) *ExpressTableReloadJob {
	if spec == "" {
		spec = DefaultExpressTableReloadSpec
	}
	return &ExpressTableReloadJob{
		path:     path,
		spec:     spec,
		registry: registry,
		cron:     cron.New(),
		logger:   logger.With("component", "express_table_reload_job"),
	}
}

// Reload reads the file once and replaces the registry snapshot on success.
func (j *ExpressTableReloadJob) Reload() error {
	f, err := os.Open(j.path)
	if err != nil {
		return fmt.Errorf("open express table: %w", err)
	}
	defer f.Close()

	table, err := eligibility.ParseExpressTable(f)
	if err != nil {
		return err
	}

	j.registry.Replace(table)
	return nil
}

// Start loads the table immediately and then on every tick of the schedule.
func (j *ExpressTableReloadJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.spec, err)
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Express table reload job started", "path", j.path, "schedule", j.spec)
	return nil
}

// Stop waits for a running reload to finish.
func (j *ExpressTableReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Express table reload job stopped")
}

func (j *ExpressTableReloadJob) run() {
	ctx := context.Background()
	if err := j.Reload(); err != nil {
		j.logger.ErrorContext(ctx, "Express table reload failed, keeping previous table", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Express table reloaded", "rows", j.registry.Table().Len())
}
