package migrate

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/database"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/migration"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/bootstrap"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned database migrations.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending migrations",
			RunE:  runUp,
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE:  runDown,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE:  runStatus,
		},
	)

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.Env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", bootstrap.Env)
	if err := migration.NewGooseStrategy(log).Migrate(cmd.Context(), database.Get()); err != nil {
		bootstrap.Failure("migration failed: %v", err)
		return err
	}

	bootstrap.Success("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.Env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("rolling back one migration", "environment", bootstrap.Env)
	if err := migration.NewGooseStrategy(log).Down(cmd.Context(), database.Get()); err != nil {
		bootstrap.Failure("rollback failed: %v", err)
		return err
	}

	bootstrap.Success("rolled back one migration")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.Env)
	if err != nil {
		return err
	}
	defer database.Close()

	statuses, err := migration.NewGooseStrategy(log).Status(cmd.Context(), database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	fmt.Printf("\nMigration Status (%s):\n", bootstrap.Env)
	for _, s := range statuses {
		state := color.New(color.FgYellow).Sprint("pending")
		applied := ""
		if s.State == goose.StateApplied {
			state = color.New(color.FgGreen).Sprint("applied")
			applied = s.AppliedAt.Format(time.DateTime)
		}
		fmt.Printf("  %05d  %-8s  %s\n", s.Source.Version, state, applied)
	}
	return nil
}
