package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/config"
	l "github.com/fleetdesk/fleet-api/logger"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/models"
)

func handlePanic() {
	if err := recover(); err != nil {
		log.Errorf("Database automigrate failure: %s", err)
		os.Exit(1)
	}
}

func main() {
	config.Init()
	l.InitLogger()
	db.InitDB()
	defer l.FlushLogger()
	defer handlePanic()

	err := db.DB.AutoMigrate(
		&models.Device{},
		&models.EnrollmentToken{},
		&models.Task{},
		&models.ClientRelease{},
		&models.DeviceGroup{},
	)
	if err != nil {
		l.LogErrorAndPanic("database automigrate failure", err)
	}
	log.Info("Migration Completed")
}
