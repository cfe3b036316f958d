// Package bootstrap holds the start-up steps shared by every CLI command.
package bootstrap

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/config"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/database"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// Env is bound to the persistent --env flag of the root command.
var Env string

// Init loads configuration for the given environment, sets up the logger and
// opens the database. Callers close the database with database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(GinMode(env))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to set business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

// GinMode maps a deployment environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("!"), fmt.Sprintf(format, args...))
}

func Failure(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("✗"), fmt.Sprintf(format, args...))
}
