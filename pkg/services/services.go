package services

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Service is the shared base for all fleet services
type Service struct {
	ctx context.Context
	log *log.Entry
}

// ServiceInterface is the blueprint for a service
type ServiceInterface interface{}

// NewService creates a new service pointer
func NewService(ctx context.Context, log *log.Entry) ServiceInterface {
	return &Service{ctx: ctx, log: log}
}
