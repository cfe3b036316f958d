package sweep

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/database"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired sessions and expire lapsed contracts",
		Long:  `Run the maintenance sweep once. It is safe to repeat and is meant to be scheduled externally, for example from cron.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.Env)
	if err != nil {
		return err
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown(cmd.Context())

	result, err := container.Sweep(cmd.Context(), time.Now().UTC())
	if err != nil {
		bootstrap.Failure("sweep failed: %v", err)
		return err
	}

	bootstrap.Success("deleted %d expired sessions, expired %d contracts",
		result.SessionsDeleted, result.ContractsExpired)
	return nil
}
