package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes/common"
)

// MakeEnrollmentTokensRouter adds support for enrollment token management
func MakeEnrollmentTokensRouter(sub chi.Router) {
	sub.With(common.Paginate).Get("/", GetAllEnrollmentTokens)
	sub.Post("/", CreateEnrollmentToken)
	sub.Post("/{ID}/revoke", RevokeEnrollmentToken)
}

type createTokenRequest struct {
	ExpiresInSeconds int64 `json:"ExpiresInSeconds"`
	MaxUses          uint  `json:"MaxUses"`
}

// createTokenResponse carries the plaintext secret exactly once, it is
// not recoverable afterwards
type createTokenResponse struct {
	Token  *models.EnrollmentToken `json:"Token"`
	Secret string                  `json:"Secret"`
}

// CreateEnrollmentToken issues a new enrollment token
func CreateEnrollmentToken(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	var request createTokenRequest
	if err := readRequestJSONBody(w, r, services.Log, &request); err != nil {
		return
	}

	token, secret, err := services.EnrollmentService.IssueToken(request.ExpiresInSeconds, request.MaxUses)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	respondWithJSONBody(w, services.Log, &createTokenResponse{Token: token, Secret: secret})
}

// GetAllEnrollmentTokens returns the enrollment tokens for the admin view
func GetAllEnrollmentTokens(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())
	pagination := common.GetPagination(r)

	count, err := services.EnrollmentService.GetTokensCount(nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	tokens, err := services.EnrollmentService.GetTokens(pagination.Limit, pagination.Offset, nil)
	if err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}

	respondWithJSONBody(w, services.Log, &common.PaginatedResponse{Count: count, Data: tokens})
}

// RevokeEnrollmentToken revokes an enrollment token, revoking twice is a no-op
func RevokeEnrollmentToken(w http.ResponseWriter, r *http.Request) {
	services := dependencies.ServicesFromContext(r.Context())

	tokenID, err := readIDParam(w, r, services.Log)
	if err != nil {
		return
	}

	if err := services.EnrollmentService.RevokeToken(tokenID); err != nil {
		respondWithAPIError(w, services.Log, apiErrorFromServices(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
