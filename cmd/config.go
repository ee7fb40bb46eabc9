package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"parcellabel/internal/adapters/out/glsapi"
	"parcellabel/internal/adapters/out/postgres"
	"parcellabel/internal/core/domain/model/kernel"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GLSUsername      string
	GLSPassword      string
	GLSCountry       string
	GLSMode          string
	GLSTimeout       string
	GLSWebshopEngine string

	LabelDir     string
	LabelBaseURL string

	ExpressTablePath       string
	ExpressTableReloadSpec string
}

// DSN is the postgres connection string of the configured database.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// GLS converts the GLS_* values into a client config. An empty mode means
// sandbox and an empty timeout the client default.
func (c Config) GLS() (glsapi.Config, error) {
	country, err := kernel.NewCountryCode(c.GLSCountry)
	if err != nil {
		return glsapi.Config{}, fmt.Errorf("GLS_COUNTRY: %w", err)
	}

	mode := glsapi.Mode(strings.ToLower(strings.TrimSpace(c.GLSMode)))
	if mode == "" {
		mode = glsapi.Sandbox
	}

	timeout, err := parseTimeout(c.GLSTimeout)
	if err != nil {
		return glsapi.Config{}, fmt.Errorf("GLS_TIMEOUT: %w", err)
	}

	return glsapi.Config{
		Username:      c.GLSUsername,
		Password:      c.GLSPassword,
		Country:       country,
		Mode:          mode,
		WebshopEngine: c.GLSWebshopEngine,
		Timeout:       timeout,
	}, nil
}

// parseTimeout accepts a Go duration ("45s") or a number of seconds ("45").
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(raw)
}
