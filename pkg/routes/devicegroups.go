package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/errors"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes/common"
)

// MakeDeviceGroupsRouter adds support for device group operations
func MakeDeviceGroupsRouter(sub chi.Router) {
	sub.With(common.Paginate).Get("/", GetAllDeviceGroups)
	sub.Post("/", CreateDeviceGroup)
	sub.Route("/{ID}", func(r chi.Router) {
		r.Get("/", GetDeviceGroupByID)
		r.Put("/", UpdateDeviceGroup)
		r.Delete("/", DeleteDeviceGroupByID)
		r.Get("/members", GetDeviceGroupMembers)
		r.Post("/members", AddDeviceGroupMembers)
		r.Delete("/members", RemoveDeviceGroupMembers)
	})
}

// GetAllDeviceGroups returns the device groups for the admin view
func GetAllDeviceGroups(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	pagination := common.GetPagination(r)

	count, err := services.DeviceGroupsService.GetDeviceGroupsCount(nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	deviceGroups, err := services.DeviceGroupsService.GetDeviceGroups(pagination.Limit, pagination.Offset, nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	respondWithJSONBody(w, services.Log, &common.PaginatedResponse{Count: count, Data: deviceGroups})
}

// CreateDeviceGroup is the route to create a new device group
func CreateDeviceGroup(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	var deviceGroup models.DeviceGroup
	if err := readRequestJSONBody(w, r, services.Log, &deviceGroup); err != nil {
		return
	}
	services.Log = services.Log.WithFields(log.Fields{"name": deviceGroup.Name})

	if err := deviceGroup.ValidateRequest(); err != nil {
		services.Log.WithField("error", err.Error()).Info("Error validating device group request")
		respondWithAPIError(w, services.Log, errors.NewBadRequest(err.Error()))
		return
	}

	created, err := services.DeviceGroupsService.CreateDeviceGroup(&deviceGroup)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, services.Log, created)
}

// GetDeviceGroupByID returns a device group by ID
func GetDeviceGroupByID(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	deviceGroup, err := services.DeviceGroupsService.GetDeviceGroupByID(groupID)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, deviceGroup)
}

// UpdateDeviceGroup updates an existing device group
func UpdateDeviceGroup(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	var update models.DeviceGroup
	if err := readRequestJSONBody(w, r, services.Log, &update); err != nil {
		return
	}

	deviceGroup, err := services.DeviceGroupsService.UpdateDeviceGroup(groupID, &update)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, deviceGroup)
}

// DeleteDeviceGroupByID deletes an existing device group
func DeleteDeviceGroupByID(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	if err := services.DeviceGroupsService.DeleteDeviceGroupByID(groupID); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetDeviceGroupMembers resolves the group membership. Dynamic groups are
// re-evaluated against the device registry on every call.
func GetDeviceGroupMembers(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	members, err := services.DeviceGroupsService.ResolveMembers(groupID)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, members)
}

type groupMembersRequest struct {
	DeviceUUIDs []string `json:"DeviceUUIDs"`
}

// AddDeviceGroupMembers adds devices to a static device group
func AddDeviceGroupMembers(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	var request groupMembersRequest
	if err := readRequestJSONBody(w, r, services.Log, &request); err != nil {
		return
	}

	if err := services.DeviceGroupsService.AddDeviceGroupDevices(groupID, request.DeviceUUIDs); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// RemoveDeviceGroupMembers removes devices from a static device group
func RemoveDeviceGroupMembers(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	groupID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	var request groupMembersRequest
	if err := readRequestJSONBody(w, r, services.Log, &request); err != nil {
		return
	}

	if err := services.DeviceGroupsService.RemoveDeviceGroupDevices(groupID, request.DeviceUUIDs); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
