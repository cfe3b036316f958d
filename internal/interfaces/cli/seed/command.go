package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/auth"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/database"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/seeds"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/repository"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/bootstrap"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

var file string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load organizations, users and contracts from a YAML fixture",
		Long:  `Create the organizations, users and contracts listed in a fixture. Rows that already exist are skipped, so the command can be repeated.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.yaml", "Path to the fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fixture, err := seeds.LoadFile(file)
	if err != nil {
		bootstrap.Failure("%v", err)
		return err
	}

	cfg, _, err := bootstrap.Init(bootstrap.Env)
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewOrganizationRepository(gdb),
		repository.NewContractRepository(gdb),
		repository.NewUserRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
		db.NewTransactionManager(gdb),
		logger.WithComponent("seed"),
	)

	result, err := seeder.Apply(cmd.Context(), fixture)
	if err != nil {
		bootstrap.Failure("seeding failed: %v", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	bootstrap.Success("seeded %d organizations, %d users, %d contracts from %s",
		result.Organizations, result.Users, result.Contracts, file)
	return nil
}
