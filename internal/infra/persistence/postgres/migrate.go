package postgres

import (
	"agromon/internal/errors"
	"agromon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every mapped table. It is safe
// to run on every startup; AutoMigrate only adds what is missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CropModel{},
		&model.CropActionModel{},
		&model.ActionLogModel{},
		&model.SensorReadingModel{},
		&model.AlertModel{},
		&model.RecommendationModel{},
	); err != nil {
		return errors.Wrap(err, "failed to run schema migration")
	}

	return nil
}
