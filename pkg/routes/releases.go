package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/errors"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes/common"
)

// MakeClientReleasesRouter adds support for client release registry operations
func MakeClientReleasesRouter(sub chi.Router) {
	sub.With(common.Paginate).Get("/", GetAllClientReleases)
	sub.Post("/", CreateClientRelease)
	sub.Post("/upload", UploadClientRelease)
	sub.Get("/active", GetActiveClientRelease)
	sub.Route("/{ID}", func(r chi.Router) {
		r.Get("/", GetClientReleaseByID)
		r.Post("/activate", ActivateClientRelease)
		r.Post("/deactivate", DeactivateClientRelease)
		r.Delete("/", DeleteClientRelease)
	})
}

// CreateClientRelease records an uploaded client binary version
func CreateClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	var release models.ClientRelease
	if err := readRequestJSONBody(w, r, services.Log, &release); err != nil {
		return
	}
	if err := release.ValidateRequest(); err != nil {
		respondWithAPIError(w, services.Log, errors.NewBadRequest(err.Error()))
		return
	}

	created, err := services.ClientReleaseService.CreateRelease(&release)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, services.Log, created)
}

// uploadReleaseResponse carries the storage key a follow-up create call references
type uploadReleaseResponse struct {
	StorageKey string `json:"StorageKey"`
}

// UploadClientRelease stores a client binary and returns its storage key
func UploadClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithAPIError(w, services.Log, errors.NewBadRequest("a file form field with the client binary is required"))
		return
	}
	defer file.Close()

	key, err := services.ClientReleaseService.UploadReleaseBinary(header.Filename, file)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, services.Log, &uploadReleaseResponse{StorageKey: key})
}

// GetAllClientReleases returns the client releases for the admin view
func GetAllClientReleases(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	pagination := common.GetPagination(r)

	count, err := services.ClientReleaseService.GetReleasesCount(nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	releases, err := services.ClientReleaseService.GetReleases(pagination.Limit, pagination.Offset, nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	respondWithJSONBody(w, services.Log, &common.PaginatedResponse{Count: count, Data: releases})
}

// GetClientReleaseByID returns a single client release
func GetClientReleaseByID(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	releaseID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	release, err := services.ClientReleaseService.GetReleaseByID(releaseID)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, release)
}

// activeReleaseResponse is the update check payload served to agents
type activeReleaseResponse struct {
	Release     *models.ClientRelease `json:"Release"`
	DownloadURL string                `json:"DownloadURL,omitempty"`
}

// GetActiveClientRelease returns the single active release with a
// presigned download URL, or 204 when none is active
func GetActiveClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	release, url, err := services.ClientReleaseService.GetActive()
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	if release == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondWithJSONBody(w, services.Log, &activeReleaseResponse{Release: release, DownloadURL: url})
}

// ActivateClientRelease makes the target the single active release
func ActivateClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	releaseID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	release, err := services.ClientReleaseService.Activate(releaseID)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	respondWithJSONBody(w, services.Log, release)
}

// DeactivateClientRelease clears the active flag, a no-op when already inactive
func DeactivateClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	releaseID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	if err := services.ClientReleaseService.Deactivate(releaseID); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteClientRelease releases the stored binary and removes the record
func DeleteClientRelease(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	releaseID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	if err := services.ClientReleaseService.DeleteRelease(releaseID); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
