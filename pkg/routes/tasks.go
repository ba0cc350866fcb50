package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/routes/common"
)

// MakeDeviceTasksRouter adds support for task queue operations, nested
// under a device
func MakeDeviceTasksRouter(sub chi.Router) {
	sub.With(common.Paginate).Get("/", GetDeviceTasks)
	sub.Post("/", EnqueueTask)
	sub.Post("/{ID}/cancel", CancelTask)
}

type enqueueTaskRequest struct {
	Kind    string          `json:"Kind"`
	Payload json.RawMessage `json:"Payload"`
}

// EnqueueTask queues a command for the device
func EnqueueTask(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	var request enqueueTaskRequest
	if err := readRequestJSONBody(w, r, services.Log, &request); err != nil {
		return
	}

	task, err := services.TaskService.Enqueue(chi.URLParam(r, "DeviceUUID"), request.Kind, request.Payload)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, services.Log, task)
}

// GetDeviceTasks returns the device tasks newest-first for the admin view
func GetDeviceTasks(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	pagination := common.GetPagination(r)

	tasks, count, err := services.TaskService.ListForDevice(chi.URLParam(r, "DeviceUUID"), pagination.Limit, pagination.Offset)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	respondWithJSONBody(w, services.Log, &common.PaginatedResponse{Count: count, Data: tasks})
}

// CancelTask fails a pending task before any agent picks it up
func CancelTask(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	taskID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	task, err := services.TaskService.Cancel(taskID)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, task)
}
