package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/config"
	l "github.com/fleetdesk/fleet-api/logger"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/services"
)

// leasesweep reverts tasks whose claim outlived the lease timeout back to
// pending so another poll can pick them up. Run it on a schedule.
func main() {
	config.Init()
	l.InitLogger()
	db.InitDB()
	defer l.FlushLogger()

	cfg := config.Get()
	taskService := services.NewTaskService(context.Background(), log.NewEntry(log.StandardLogger()))

	released, err := taskService.ReleaseExpiredClaims(cfg.TaskLeaseTimeout)
	if err != nil {
		l.LogErrorAndPanic("releasing expired task claims failed", err)
	}
	log.WithField("released", released).Info("Expired task claims released")
}
