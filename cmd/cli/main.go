package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/cmd/cli/commands"
	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/postgres"
	"github.com/oakmere/surveyor-rota/pkg/utils/logging"
)

var env string

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Surveyor Rota CLI - Manage field-survey shift rosters",
		Long:  `A CLI tool for populating, validating and editing fortnightly DAY/NIGHT shift rosters for the SOUTH and NORTH service areas.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Postgres != nil {
				app.Postgres.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.PopulateCmd(app))
	rootCmd.AddCommand(commands.ValidateCmd(app))
	rootCmd.AddCommand(commands.EditCmd(app))
	rootCmd.AddCommand(commands.SetDemandCmd(app))
	rootCmd.AddCommand(commands.AddSurveyorCmd(app))
	rootCmd.AddCommand(commands.ListSurveyorsCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and database
func initApp(app *commands.AppContext) error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Postgres, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Database = app.Postgres
	app.Logger.Info("Database connected")

	return nil
}
