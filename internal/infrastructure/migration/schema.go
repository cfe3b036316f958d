package migration

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

// schemaMigrations lists every schema version in order. Versions are never
// renumbered once released.
func schemaMigrations(db *gorm.DB) []*goose.Migration {
	return []*goose.Migration{
		goose.NewGoMigration(1,
			&goose.GoFunc{Mode: goose.TransactionDisabled, RunDB: func(ctx context.Context, _ *sql.DB) error {
				return db.WithContext(ctx).AutoMigrate(models.All()...)
			}},
			&goose.GoFunc{Mode: goose.TransactionDisabled, RunDB: func(ctx context.Context, _ *sql.DB) error {
				all := models.All()
				for i := len(all) - 1; i >= 0; i-- {
					if err := db.WithContext(ctx).Migrator().DropTable(all[i]); err != nil {
						return err
					}
				}
				return nil
			}},
		),
		goose.NewGoMigration(2,
			&goose.GoFunc{Mode: goose.TransactionDisabled, RunDB: func(ctx context.Context, _ *sql.DB) error {
				return db.WithContext(ctx).Exec(
					"CREATE INDEX idx_tickets_provider_status ON tickets (service_provider_id, status)").Error
			}},
			&goose.GoFunc{Mode: goose.TransactionDisabled, RunDB: func(ctx context.Context, _ *sql.DB) error {
				return db.WithContext(ctx).Migrator().DropIndex(&models.TicketModel{}, "idx_tickets_provider_status")
			}},
		),
	}
}
