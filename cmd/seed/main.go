package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"carwash/internal/access"
	"carwash/internal/auth"
	"carwash/internal/config"
	"carwash/internal/db"
	"carwash/internal/logger"
	"carwash/internal/model"
)

var roles = []model.Role{
	{ID: model.RoleAdmin, Name: "Administrador"},
	{ID: model.RoleSupervisor, Name: "Supervisor"},
	{ID: model.RoleWasher, Name: "Lavador"},
}

func main() {
	cfg := config.MustLoad()
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("starting seed")

	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := seedRoles(tx); err != nil {
			return err
		}
		if err := seedOperations(tx, log); err != nil {
			return err
		}
		return seedAdmin(tx, cfg.Seed, log)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed completed")
}

func seedRoles(tx *gorm.DB) error {
	for _, r := range roles {
		role := r
		if err := tx.Where(model.Role{ID: role.ID}).Attrs(model.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", r.Name, err)
		}
	}
	return nil
}

// seedOperations creates one module per action prefix and one operation per
// action, granted to the roles the access policy allows.
func seedOperations(tx *gorm.DB, log zerolog.Logger) error {
	modules := make(map[string]uint)
	created := 0

	for _, action := range access.Actions {
		name := action.Module()
		moduleID, ok := modules[name]
		if !ok {
			var module model.Module
			if err := tx.Where(model.Module{Name: name}).FirstOrCreate(&module).Error; err != nil {
				return fmt.Errorf("seed module %q: %w", name, err)
			}
			moduleID = module.ID
			modules[name] = moduleID
		}

		var op model.Operation
		if err := tx.Where(model.Operation{Name: string(action), ModuleID: moduleID}).FirstOrCreate(&op).Error; err != nil {
			return fmt.Errorf("seed operation %q: %w", action, err)
		}

		allowed, restricted := access.Policy[action]
		if !restricted {
			allowed = []uint{model.RoleAdmin, model.RoleSupervisor, model.RoleWasher}
		}
		for _, roleID := range allowed {
			grant := model.RoleOperation{RoleID: roleID, OperationID: op.ID}
			res := tx.Where(grant).FirstOrCreate(&grant)
			if res.Error != nil {
				return fmt.Errorf("seed grant %q to role %d: %w", action, roleID, res.Error)
			}
			created += int(res.RowsAffected)
		}
	}

	log.Info().Int("modules", len(modules)).Int("new_grants", created).Msg("operations seeded")
	return nil
}

func seedAdmin(tx *gorm.DB, cfg config.SeedConfig, log zerolog.Logger) error {
	var existing model.Employee
	err := tx.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		log.Info().Str("email", cfg.AdminEmail).Msg("administrator already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check administrator: %w", err)
	}
	if cfg.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_PASSWORD not set, skipping administrator")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	roleID := model.RoleAdmin
	admin := model.Employee{
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		RoleID:       &roleID,
		Cedula:       cfg.AdminCedula,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}
	log.Info().Str("email", admin.Email).Uint("empleado_id", admin.ID).Msg("administrator created")
	return nil
}
