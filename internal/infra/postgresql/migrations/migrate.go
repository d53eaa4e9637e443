package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/smsdispatch/notification-svc/internal/repository"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "000001_create_notifications",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.NotificationModel{}); err != nil {
					return err
				}
				// Backs the active-listing query for a single owner.
				return tx.Exec(
					`CREATE INDEX IF NOT EXISTS idx_notifications_user_active ON notifications (user_id) WHERE is_deleted = FALSE`,
				).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.NotificationModel{})
			},
		},
	})

	return m.Migrate()
}
