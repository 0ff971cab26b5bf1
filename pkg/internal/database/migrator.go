package database

import (
	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.User{},
	&models.Photo{},
	&models.Codi{},
	&models.Items{},
	&models.Order{},
	&models.ShippingAddress{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.CodiItem{},
			&models.OrderHistory{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
