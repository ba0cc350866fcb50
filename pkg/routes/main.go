package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/pkg/errors"
	"github.com/fleetdesk/fleet-api/pkg/services"
)

type validationError struct {
	Key    string `json:"Key"`
	Reason string `json:"Reason"`
}

func respondWithAPIError(w http.ResponseWriter, logEntry *log.Entry, apiError errors.APIError) {
	w.WriteHeader(apiError.GetStatus())
	if err := json.NewEncoder(w).Encode(&apiError); err != nil {
		logEntry.WithField("error", err.Error()).Error("Error while trying to encode api error")
	}
}

func respondWithJSONBody(w http.ResponseWriter, logEntry *log.Entry, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logEntry.WithField("error", data).Error("Error while trying to encode data")
		respondWithAPIError(w, logEntry, errors.NewInternalServerError())
	}
}

func readRequestJSONBody(w http.ResponseWriter, r *http.Request, logEntry *log.Entry, dataReceiver interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dataReceiver); err != nil {
		logEntry.WithField("error", err.Error()).Error("Error parsing json from request body")
		respondWithAPIError(w, logEntry, errors.NewBadRequest("invalid JSON request"))
		return err
	}
	return nil
}

// readIDParam parses the numeric {ID} url parameter, responding with a
// BadRequest when it is not a positive integer
func readIDParam(w http.ResponseWriter, r *http.Request, logEntry *log.Entry) (uint, error) {
	idParam := chi.URLParam(r, "ID")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		respondWithAPIError(w, logEntry, errors.NewBadRequest("ID must be an integer"))
		return 0, err
	}
	return uint(id), nil
}

// apiErrorFromServices maps a typed service error onto the admin API
// error taxonomy. Unknown errors map to an internal server error without
// leaking details.
func apiErrorFromServices(err error) errors.APIError {
	switch err.(type) {
	case *services.DeviceNotFoundError,
		*services.TaskNotFoundError,
		*services.ReleaseNotFoundError,
		*services.DeviceGroupNotFound,
		*services.TokenNotFoundError,
		*services.DeviceGroupDevicesNotFound:
		return errors.NewNotFound(err.Error())
	case *services.TokenExpiredError,
		*services.TokenExhaustedError,
		*services.TokenRevokedError:
		return errors.NewGone(err.Error())
	case *services.ReleaseVersionAlreadyExistsError,
		*services.DeviceGroupAlreadyExists,
		*services.InvalidTaskTransitionError,
		*services.DeviceAlreadyEnrolledError:
		return errors.NewConflict(err.Error())
	case *services.TokenExpiryInvalidError,
		*services.UnknownTaskKindError,
		*services.InvalidTaskPayloadError,
		*services.ReleaseVersionInvalidError,
		*services.WrongDeviceGroupKind,
		*services.InvalidGroupRule,
		*services.DeviceGroupDevicesNotSupplied:
		return errors.NewBadRequest(err.Error())
	case *services.StorageReleaseFailedError,
		*services.StorageUploadFailedError:
		return errors.NewFailedDependency(err.Error())
	}
	return errors.NewInternalServerError()
}
