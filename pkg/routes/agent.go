package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/services"
)

// MakeAgentRouter adds the agent-facing API: one-time enrollment, then
// credentialed check-in, task polling, result reporting and update checks
func MakeAgentRouter(sub chi.Router) {
	sub.Post("/enroll", EnrollAgent)
	sub.Group(func(r chi.Router) {
		r.Use(RequireAgentCredential)
		r.Post("/checkin", AgentCheckIn)
		r.Post("/tasks/next", AgentPollNextTask)
		r.Post("/tasks/{ID}/result", AgentReportTaskResult)
		r.Get("/update", GetActiveClientRelease)
	})
}

// agentError is the structured, prose-free error body served to agents
type agentError struct {
	Code string `json:"code"`
}

func respondWithAgentError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&agentError{Code: code})
}

// agentErrorFromServices maps a typed service error onto an agent status
// and error code. Agents are non-interactive, they only get codes.
func agentErrorFromServices(w http.ResponseWriter, err error) {
	switch err.(type) {
	case *services.TokenNotFoundError:
		respondWithAgentError(w, http.StatusUnauthorized, "TOKEN_NOT_FOUND")
	case *services.TokenExpiredError:
		respondWithAgentError(w, http.StatusUnauthorized, "TOKEN_EXPIRED")
	case *services.TokenExhaustedError:
		respondWithAgentError(w, http.StatusUnauthorized, "TOKEN_EXHAUSTED")
	case *services.TokenRevokedError:
		respondWithAgentError(w, http.StatusUnauthorized, "TOKEN_REVOKED")
	case *services.DeviceNotFoundError:
		respondWithAgentError(w, http.StatusNotFound, "DEVICE_NOT_FOUND")
	case *services.TaskNotFoundError:
		respondWithAgentError(w, http.StatusNotFound, "TASK_NOT_FOUND")
	case *services.InvalidTaskTransitionError:
		// already terminal or stale claim, the agent treats this as
		// "already handled, ignore"
		respondWithAgentError(w, http.StatusConflict, "ALREADY_HANDLED")
	default:
		respondWithAgentError(w, http.StatusInternalServerError, "INTERNAL")
	}
}

type agentDeviceKeyType string

const agentDeviceKey = agentDeviceKeyType("agentDeviceUUID")

// RequireAgentCredential verifies the bearer credential issued at
// enrollment and stores the bound device UUID on the request context
func RequireAgentCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondWithAgentError(w, http.StatusUnauthorized, "CREDENTIAL_MISSING")
			return
		}
		deviceUUID, err := services.ParseAgentCredential(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondWithAgentError(w, http.StatusUnauthorized, "CREDENTIAL_INVALID")
			return
		}
		ctx := context.WithValue(r.Context(), agentDeviceKey, deviceUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseAgentTaskID(param string) (uint, error) {
	taskID, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(taskID), nil
}

func agentDeviceUUID(r *http.Request) string {
	deviceUUID, _ := r.Context().Value(agentDeviceKey).(string)
	return deviceUUID
}

type enrollRequest struct {
	Secret string             `json:"Secret"`
	Claim  models.DeviceClaim `json:"Claim"`
}

type enrollResponse struct {
	Device     *models.Device `json:"Device"`
	Credential string         `json:"Credential"`
}

// EnrollAgent exchanges an enrollment token secret for a device identity
// and a long-lived agent credential
func EnrollAgent(w http.ResponseWriter, r *http.Request) {
	fleetServices := dependencies.ServicesFromContext(r.Context())

	var request enrollRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithAgentError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}
	if request.Secret == "" || request.Claim.RustDeskID == "" {
		respondWithAgentError(w, http.StatusBadRequest, "INVALID_CLAIM")
		return
	}

	device, credential, err := fleetServices.EnrollmentService.RedeemToken(request.Secret, &request.Claim)
	if err != nil {
		agentErrorFromServices(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, fleetServices.Log, &enrollResponse{Device: device, Credential: credential})
}

// AgentCheckIn refreshes the device metadata and last-seen timestamp
func AgentCheckIn(w http.ResponseWriter, r *http.Request) {
	fleetServices := dependencies.ServicesFromContext(r.Context())

	var checkIn models.DeviceCheckIn
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
		respondWithAgentError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	device, err := fleetServices.DeviceService.CheckIn(agentDeviceUUID(r), &checkIn)
	if err != nil {
		agentErrorFromServices(w, err)
		return
	}
	respondWithJSONBody(w, fleetServices.Log, device)
}

// AgentPollNextTask claims the oldest pending task for the device, or
// returns 204 when the queue is empty
func AgentPollNextTask(w http.ResponseWriter, r *http.Request) {
	fleetServices := dependencies.ServicesFromContext(r.Context())

	task, err := fleetServices.TaskService.PollNext(agentDeviceUUID(r))
	if err != nil {
		agentErrorFromServices(w, err)
		return
	}
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondWithJSONBody(w, fleetServices.Log, task)
}

// AgentReportTaskResult records the task outcome. A stale report on an
// already-terminal task is answered with ALREADY_HANDLED.
func AgentReportTaskResult(w http.ResponseWriter, r *http.Request) {
	fleetServices := dependencies.ServicesFromContext(r.Context())

	taskIDParam := chi.URLParam(r, "ID")
	taskID, err := parseAgentTaskID(taskIDParam)
	if err != nil {
		respondWithAgentError(w, http.StatusBadRequest, "INVALID_TASK_ID")
		return
	}

	var result models.TaskResult
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		respondWithAgentError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	task, err := fleetServices.TaskService.ReportResult(agentDeviceUUID(r), taskID, &result)
	if err != nil {
		if _, stale := err.(*services.InvalidTaskTransitionError); stale {
			fleetServices.Log.WithField("taskID", taskID).Info("Stale task result report ignored")
		}
		agentErrorFromServices(w, err)
		return
	}
	respondWithJSONBody(w, fleetServices.Log, task)
}
