package dependencies

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/logger"
	"github.com/fleetdesk/fleet-api/pkg/services"
)

// FleetAPIServices is the list of services behind the fleet API
type FleetAPIServices struct {
	DeviceService        services.DeviceServiceInterface
	EnrollmentService    services.EnrollmentServiceInterface
	TaskService          services.TaskServiceInterface
	ClientReleaseService services.ClientReleaseServiceInterface
	DeviceGroupsService  services.DeviceGroupsServiceInterface
	Log                  *log.Entry
}

// Init creates all services the fleet API depends on, bound to the
// request context so every log line carries the request id
func Init(ctx context.Context) *FleetAPIServices {
	logEntry := log.WithContext(ctx).WithFields(log.Fields{
		"requestId": middleware.GetReqID(ctx),
	})
	return &FleetAPIServices{
		DeviceService:        services.NewDeviceService(ctx, logEntry),
		EnrollmentService:    services.NewEnrollmentService(ctx, logEntry),
		TaskService:          services.NewTaskService(ctx, logEntry),
		ClientReleaseService: services.NewClientReleaseService(ctx, logEntry),
		DeviceGroupsService:  services.NewDeviceGroupsService(ctx, logEntry),
		Log:                  logEntry,
	}
}

type servicesKeyType string

// servicesKey is the context key for dependencies on the request context
const servicesKey = servicesKeyType("services")

// ContextWithServices adds the fleet API services to the context
func ContextWithServices(ctx context.Context, services *FleetAPIServices) context.Context {
	return context.WithValue(ctx, servicesKey, services)
}

// ServicesFromContext returns the fleet API services from the context
func ServicesFromContext(ctx context.Context) *FleetAPIServices {
	fleetServices, ok := ctx.Value(servicesKey).(*FleetAPIServices)
	if !ok {
		err := errors.New("could not get FleetAPIServices key value from context")
		logger.LogErrorAndPanic("could not get FleetAPIServices key value from context", err)
	}
	return fleetServices
}

// Middleware serves all fleet API services on the current request context
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fleetServices := Init(r.Context())
		ctx := ContextWithServices(r.Context(), fleetServices)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
