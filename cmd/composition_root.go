package cmd

import (
	"fmt"
	"log/slog"

	httpin "parcellabel/internal/adapters/in/http"
	"parcellabel/internal/adapters/out/filestore"
	"parcellabel/internal/adapters/out/glsapi"
	"parcellabel/internal/adapters/out/memory"
	"parcellabel/internal/adapters/out/postgres/orderrepo"
	"parcellabel/internal/adapters/out/postgres/settingsrepo"
	"parcellabel/internal/adapters/out/postgres/submissionrepo"
	"parcellabel/internal/core/application/usecases/commands"
	"parcellabel/internal/core/application/usecases/queries"
	"parcellabel/internal/core/domain/model/eligibility"
	"parcellabel/internal/core/domain/services"
	"parcellabel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	logger  *slog.Logger

	express *eligibility.ExpressRegistry
	carrier *glsapi.Client
	blobs   *filestore.Store
	lock    *memory.InflightLock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	table, err := eligibility.DefaultExpressTable()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load embedded express table: %w", err)
	}

	glsConfig, err := configs.GLS()
	if err != nil {
		return CompositionRoot{}, err
	}
	carrier, err := glsapi.NewClient(glsConfig, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	blobs, err := filestore.New(configs.LabelDir, configs.LabelBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger.Info("label service configured",
		"gls_endpoint", carrier.Endpoint(),
		"label_dir", blobs.Dir(),
		"express_table", configs.ExpressTablePath,
	)
	if configs.ExpressTablePath == "" {
		logger.Warn("no express table configured, express services are disabled")
	}

	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		logger:  logger,
		express: eligibility.NewExpressRegistry(table),
		carrier: carrier,
		blobs:   blobs,
		lock:    memory.NewInflightLock(),
	}, nil
}

func (c *CompositionRoot) CreateGenerateLabelCommandHandler() *commands.GenerateLabelCommandHandler {
	return commands.NewGenerateLabelCommandHandler(
		c.logger,
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
		services.NewServiceListComposer(c.express),
		services.NewPayloadAssembler(),
		c.carrier,
		c.blobs,
		c.lock,
		submissionrepo.NewGormSubmissionRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetShipmentInfoQueryHandler() queries.GetShipmentInfoQueryHandler {
	return queries.NewGetShipmentInfoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGenerateLabelCommandHandler(),
		c.CreateGetShipmentInfoQueryHandler(),
		c.logger,
	)
}

// CreateJobManager schedules the express table reload only when a table
// file is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.configs.ExpressTablePath != "" {
		scheduled = append(scheduled, jobs.NewExpressTableReloadJob(
			c.configs.ExpressTablePath,
			c.configs.ExpressTableReloadSpec,
			c.express,
			c.logger,
		))
	}
	return jobs.NewJobManager(scheduled...)
}
