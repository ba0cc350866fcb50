package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes/common"
)

// MakeDevicesRouter adds support for device registry operations
func MakeDevicesRouter(sub chi.Router) {
	sub.With(validateGetAllDevicesFilterParams).With(common.Paginate).Get("/", GetAllDevices)
	sub.Route("/{DeviceUUID}", func(r chi.Router) {
		r.Get("/", GetDeviceByUUID)
		r.Put("/", UpdateDevice)
		r.Delete("/", DeleteDevice)
		r.Route("/tasks", MakeDeviceTasksRouter)
	})
}

var devicesFilters = common.ComposeFilters(
	common.ContainFilterHandler(&common.Filter{
		QueryParam: "name",
		DBField:    "devices.name",
	}),
	common.EqualFilterHandler(&common.Filter{
		QueryParam: "rustdesk_id",
		DBField:    "devices.rust_desk_id",
	}),
	common.OneOfFilterHandler(&common.Filter{
		QueryParam: "os",
		DBField:    "devices.os",
	}),
	common.CreatedAtFilterHandler(&common.Filter{
		QueryParam: "created_at",
		DBField:    "devices.created_at",
	}),
	common.SortFilterHandler("devices", "created_at", "DESC"),
)

var devicesSortKeys = map[string]bool{
	"name":         true,
	"os":           true,
	"created_at":   true,
	"last_seen_at": true,
}

func validateGetAllDevicesFilterParams(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var errs []validationError
		if val := r.URL.Query().Get("created_at"); val != "" {
			if _, err := time.Parse(common.LayoutISO, val); err != nil {
				errs = append(errs, validationError{Key: "created_at", Reason: err.Error()})
			}
		}
		if val := r.URL.Query().Get("sort_by"); val != "" {
			name := val
			if string(val[0]) == "-" {
				name = val[1:]
			}
			if !devicesSortKeys[name] {
				errs = append(errs, validationError{Key: "sort_by", Reason: fmt.Sprintf("%s is not a valid sort_by. Sort-by must be name or os or created_at or last_seen_at", name)})
			}
		}

		if len(errs) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		services := dependencies.ServicesFromContext(r.Context())
		w.WriteHeader(http.StatusBadRequest)
		respondWithJSONBody(w, services.Log, &errs)
	})
}

// GetAllDevices returns the device registry page for the admin view
func GetAllDevices(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	tx := devicesFilters(r, db.DB)
	pagination := common.GetPagination(r)

	devicesCount, err := services.DeviceService.GetDevicesCount(tx)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	devices, err := services.DeviceService.GetDevices(pagination.Limit, pagination.Offset, tx)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	respondWithJSONBody(w, services.Log, &common.PaginatedResponse{Count: devicesCount, Data: devices})
}

// GetDeviceByUUID returns a single device for the admin view
func GetDeviceByUUID(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	device, err := services.DeviceService.GetDeviceByUUID(chi.URLParam(r, "DeviceUUID"))
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, device)
}

// UpdateDevice applies an admin edit to a device
func UpdateDevice(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	var update models.Device
	if err := readRequestJSONBody(w, r, services.Log, &update); err != nil {
		return
	}

	device, err := services.DeviceService.UpdateDevice(chi.URLParam(r, "DeviceUUID"), &update)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, device)
}

// DeleteDevice removes a device along with its queued tasks and group memberships
func DeleteDevice(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	if err := services.DeviceService.DeleteDevice(chi.URLParam(r, "DeviceUUID")); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
