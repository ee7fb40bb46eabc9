package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcellabel/cmd"
	httpin "parcellabel/internal/adapters/in/http"
	"parcellabel/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := postgres.Open(configs.DSN(), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()
	logger.Info("background jobs started", "count", jobManager.Len())

	startWebServer(app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		GLSUsername:            os.Getenv("GLS_USERNAME"),
		GLSPassword:            os.Getenv("GLS_PASSWORD"),
		GLSCountry:             os.Getenv("GLS_COUNTRY"),
		GLSMode:                os.Getenv("GLS_MODE"),
		GLSTimeout:             os.Getenv("GLS_TIMEOUT"),
		GLSWebshopEngine:       os.Getenv("GLS_WEBSHOP_ENGINE"),
		LabelDir:               os.Getenv("LABEL_DIR"),
		LabelBaseURL:           os.Getenv("LABEL_BASE_URL"),
		ExpressTablePath:       os.Getenv("EXPRESS_TABLE_PATH"),
		ExpressTableReloadSpec: os.Getenv("EXPRESS_TABLE_RELOAD_SPEC"),
	}
	return config
}

func startWebServer(app cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := httpin.NewEcho(app.CreateHTTPServer(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
