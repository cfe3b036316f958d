package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/bootstrap"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/migrate"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/seed"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/server"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/cli/sweep"
)

// @title RobotCare API
// @version 1.0
// @description Multi-tenant service management for robot providers and their customers.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "robotcare",
		Short: "RobotCare - robot service management",
		Long:  `RobotCare connects robot service providers with their customers: robots, tickets, service stages, timelines and a shared knowledge library.`,
	}

	rootCmd.PersistentFlags().StringVarP(&bootstrap.Env, "env", "e", "development", "Environment (development, test, production)")

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		sweep.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
