package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/jobs"

	"github.com/spf13/viper"
)

// Environment keys read by LoadConfig.
const (
	KeyHTTPPort                    = "HTTP_PORT"
	KeyDBHost                      = "DB_HOST"
	KeyDBPort                      = "DB_PORT"
	KeyDBUser                      = "DB_USER"
	KeyDBPassword                  = "DB_PASSWORD"
	KeyDBName                      = "DB_NAME"
	KeyDBSslMode                   = "DB_SSLMODE"
	KeyEstimatorBaseURL            = "ESTIMATOR_BASE_URL"
	KeyEstimatorTimeout            = "ESTIMATOR_TIMEOUT"
	KeyLogLevel                    = "LOG_LEVEL"
	KeyPackageCodeMaxAttempts      = "PACKAGE_CODE_MAX_ATTEMPTS"
	KeyOverdueOrdersSchedule       = "OVERDUE_ORDERS_SCHEDULE"
	KeyActiveOrdersSummarySchedule = "ACTIVE_ORDERS_SUMMARY_SCHEDULE"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort                    string
	DBHost                      string
	DBPort                      string
	DBUser                      string
	DBPassword                  string
	DBName                      string
	DBSslMode                   string
	EstimatorBaseURL            string
	EstimatorTimeout            time.Duration
	LogLevel                    string
	PackageCodeMaxAttempts      int
	OverdueOrdersSchedule       string
	ActiveOrdersSummarySchedule string
}

// NewViper returns a viper instance reading the environment with every default applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyHTTPPort, "8080")
	v.SetDefault(KeyDBHost, "localhost")
	v.SetDefault(KeyDBPort, "5432")
	v.SetDefault(KeyDBSslMode, "disable")
	v.SetDefault(KeyEstimatorTimeout, 5*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPackageCodeMaxAttempts, orderrepo.DefaultMaxAttempts)
	v.SetDefault(KeyOverdueOrdersSchedule, jobs.DefaultOverdueOrdersSchedule)
	v.SetDefault(KeyActiveOrdersSummarySchedule, jobs.DefaultActiveOrdersSummarySchedule)
	return v
}

// LoadConfig reads every key from v and validates the result.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:                    v.GetString(KeyHTTPPort),
		DBHost:                      v.GetString(KeyDBHost),
		DBPort:                      v.GetString(KeyDBPort),
		DBUser:                      v.GetString(KeyDBUser),
		DBPassword:                  v.GetString(KeyDBPassword),
		DBName:                      v.GetString(KeyDBName),
		DBSslMode:                   v.GetString(KeyDBSslMode),
		EstimatorBaseURL:            v.GetString(KeyEstimatorBaseURL),
		EstimatorTimeout:            v.GetDuration(KeyEstimatorTimeout),
		LogLevel:                    strings.ToLower(v.GetString(KeyLogLevel)),
		PackageCodeMaxAttempts:      v.GetInt(KeyPackageCodeMaxAttempts),
		OverdueOrdersSchedule:       v.GetString(KeyOverdueOrdersSchedule),
		ActiveOrdersSummarySchedule: v.GetString(KeyActiveOrdersSummarySchedule),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var problems []error
	required := map[string]string{
		KeyHTTPPort:         c.HTTPPort,
		KeyDBHost:           c.DBHost,
		KeyDBPort:           c.DBPort,
		KeyDBUser:           c.DBUser,
		KeyDBPassword:       c.DBPassword,
		KeyDBName:           c.DBName,
		KeyEstimatorBaseURL: c.EstimatorBaseURL,
	}
	for _, key := range []string{
		KeyHTTPPort, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyEstimatorBaseURL,
	} {
		if strings.TrimSpace(required[key]) == "" {
			problems = append(problems, fmt.Errorf("%s is required", key))
		}
	}

	if c.EstimatorTimeout <= 0 {
		problems = append(problems, fmt.Errorf("%s must be positive, got %s", KeyEstimatorTimeout, c.EstimatorTimeout))
	}
	if c.PackageCodeMaxAttempts < 1 {
		problems = append(problems,
			fmt.Errorf("%s must be at least 1, got %d", KeyPackageCodeMaxAttempts, c.PackageCodeMaxAttempts))
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// SlogLevel returns the configured log level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// DBConnection returns the Postgres connection parameters.
func (c Config) DBConnection() postgres.ConnectionParams {
	return postgres.ConnectionParams{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// JobSchedules returns the cron specs of the background jobs.
func (c Config) JobSchedules() jobs.Schedules {
	return jobs.Schedules{
		OverdueOrders:       c.OverdueOrdersSchedule,
		ActiveOrdersSummary: c.ActiveOrdersSummarySchedule,
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%s %q is not one of debug, info, warn, error", KeyLogLevel, s)
	}
	return level, nil
}
