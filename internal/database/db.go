package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/config"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Migration: creates the tables in Postgres automatically
	if err := db.AutoMigrate(&models.JobApplication{}, &models.Interview{}); err != nil {
		return nil, err
	}
	return db, nil
}
