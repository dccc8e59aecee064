package main

import (
	"context"
	"fmt"
	"os"

	"turnos-api/cmd/bootstrap"
	"turnos-api/config"
	"turnos-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "turnos",
	Short:         "Shift scheduling API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		bootstrap.SetupLogger(cfg.Log)
		logrus.Info("Configuration loaded successfully")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize application with all dependencies
		app, err := bootstrap.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		// Run the application
		app.Run()
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the database schema",
	Long:      "Runs the versioned migrations on PostgreSQL. On SQLite only \"up\" is supported and the schema is created from the models.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		if cfg.DB.Driver == config.DBDriverPostgres {
			return database.Migrate(cfg.DB, direction)
		}
		if direction != "up" {
			return fmt.Errorf("migrate %s is not supported on %s", direction, cfg.DB.Driver)
		}

		// NewConnection creates the SQLite schema on open
		db, err := database.NewConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		logrus.Info("SQLite schema up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo analysts and projects into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}()

		return bootstrap.Seed(cmd.Context(), db, logrus.StandardLogger())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
