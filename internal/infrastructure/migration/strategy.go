package migration

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(ctx context.Context, db *gorm.DB) error
	Name() string
}

// AutoMigrateStrategy lets gorm reconcile tables with the models. It never
// drops columns.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm automigrate", "models_count", len(all))
	return db.WithContext(ctx).AutoMigrate(all...)
}

func (s *AutoMigrateStrategy) Name() string {
	return "automigrate"
}

// GooseStrategy applies the versioned migrations in schema.go and records
// them in goose_db_version.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy(log logger.Interface) *GooseStrategy {
	return &GooseStrategy{logger: log.With("component", "migration.goose")}
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	p, err := newProvider(db)
	if err != nil {
		return err
	}

	current, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	s.logger.Infow("current migration status", "version", current)

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		s.logger.Infow("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

// Status reports every known migration and whether it has been applied.
func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]*goose.MigrationStatus, error) {
	p, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	return p.Status(ctx)
}

// Down rolls back the most recent migration.
func (s *GooseStrategy) Down(ctx context.Context, db *gorm.DB) error {
	p, err := newProvider(db)
	if err != nil {
		return err
	}
	r, err := p.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	s.logger.Infow("migration rolled back", "version", r.Source.Version)
	return nil
}

func newProvider(db *gorm.DB) (*goose.Provider, error) {
	dialect, err := dialectFor(db)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	p, err := goose.NewProvider(dialect, sqlDB, nil, goose.WithGoMigrations(schemaMigrations(db)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

func dialectFor(db *gorm.DB) (goose.Dialect, error) {
	switch db.Dialector.Name() {
	case "mysql":
		return goose.DialectMySQL, nil
	case "postgres":
		return goose.DialectPostgres, nil
	case "sqlite":
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported migration dialect: %s", db.Dialector.Name())
	}
}
