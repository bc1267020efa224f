package db

import (
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/logger"
	"carwash/internal/model"
)

// tables is ordered so that referenced tables are created first.
func tables() []interface{} {
	return []interface{}{
		&model.Role{},
		&model.Module{},
		&model.Operation{},
		&model.RoleOperation{},
		&model.Employee{},
		&model.TokenRecord{},
		&model.Client{},
		&model.Vehicle{},
		&model.Service{},
		&model.ServiceOrder{},
	}
}

// Reset drops every table, children first. Failures are logged because a
// table may simply not exist yet.
func Reset(db *gorm.DB) {
	log := logger.Get()
	all := tables()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			log.Warn().Err(err).Msg("drop table")
		}
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
