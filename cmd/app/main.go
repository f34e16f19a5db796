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

	"dronedelivery/cmd"
	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/estimator"
	"dronedelivery/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	v := cmd.NewViper()
	if err := newRootCommand(v).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "dronedelivery",
		Short:         "Order lifecycle service for drone deliveries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadEnvFile(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded when present")

	root.AddCommand(newServeCommand(v), newMigrateCommand(v))
	return root
}

// loadEnvFile loads path into the process environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	var migrateFirst bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return serve(c.Context(), cfg, migrateFirst)
		},
	}
	serve.Flags().String("port", "", "HTTP port, overrides "+cmd.KeyHTTPPort)
	serve.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	_ = v.BindPFlag(cmd.KeyHTTPPort, serve.Flags().Lookup("port"))
	return serve
}

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}

	run := func(apply func(dsn string) error) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			cfg, err := cmd.LoadConfig(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return apply(cfg.DBConnection().DSN())
		}
	}

	migrateCmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply all pending migrations", RunE: run(postgres.MigrateUp)},
		&cobra.Command{Use: "down", Short: "Revert all migrations", RunE: run(postgres.MigrateDown)},
	)
	return migrateCmd
}

func serve(ctx context.Context, cfg cmd.Config, migrateFirst bool) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DBConnection().DSN()
	if migrateFirst {
		if err := postgres.MigrateUp(dsn); err != nil {
			return err
		}
	}

	gormDB, err := postgres.Open(dsn, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer sqlDB.Close()

	deliveryEstimator, err := estimator.NewHTTPDeliveryEstimator(cfg.EstimatorBaseURL,
		estimator.WithTimeout(cfg.EstimatorTimeout))
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(cfg, gormDB, deliveryEstimator, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := httpin.NewEcho(ctx, app.CreateHTTPServer())
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
