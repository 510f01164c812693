package database

import (
	"fmt"
	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if config.AppConfig.ResetOnStart {
		dropAllTables(db)
	}

	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.LiveClass{},
		&courseModels.Enrollment{},
		&courseModels.ModuleCompletion{},
		&courseModels.QuizAttempt{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// dropAllTables drops every managed table. Guarded by RESET_ON_START.
func dropAllTables(db *gorm.DB) {
	log.Println("Dropping all tables...")

	err := db.Migrator().DropTable(
		&courseModels.QuizAttempt{},
		&courseModels.ModuleCompletion{},
		&courseModels.Enrollment{},
		&courseModels.LiveClass{},
		&courseModels.Module{},
		&courseModels.Course{},
		&models.Session{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
}
