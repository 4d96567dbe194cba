package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"triage/internal/infrastructure/config"
	"triage/internal/infrastructure/database"
	"triage/internal/infrastructure/persistence/models"
	"triage/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema for tickets and analysis runs.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		Long:  `Create or update the tickets, analysis_runs and ticket_analysis tables.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("applying schema", "driver", cfg.Database.Driver)

	if err := database.Get().AutoMigrate(
		&models.TicketModel{},
		&models.AnalysisRunModel{},
		&models.TicketAnalysisModel{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("schema up to date")
	return nil
}
