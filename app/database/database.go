package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school-management-system/app/models"
)

// Connect opens the backing store and verifies the connection. The handle is
// returned to the caller; nothing here is global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Class{},
		&models.Grade{},
		&models.Attendance{},
		&models.Fee{},
		&models.TimeSlot{},
		&models.Event{},
		&models.Message{},
		&models.ReportCard{},
		&models.GradeSummary{},
		&models.LearningMaterial{},
		&models.ClassMaterial{},
	)
}
