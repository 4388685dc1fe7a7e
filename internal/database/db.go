package database

import (
	log "github.com/sirupsen/logrus"

	"medsupply-backend/internal/config"
	"medsupply-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Product{},
		&models.Issue{},
		&models.IssueLine{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Info("database connected, migration complete")
}
