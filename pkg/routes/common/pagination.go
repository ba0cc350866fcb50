package common

import (
	"context"
	"net/http"
	"strconv"
)

type paginationContextKey int

const (
	// PaginationKey is used to store pagination data in request context
	PaginationKey paginationContextKey = 1
	defaultLimit  int                  = 30
	defaultOffset int                  = 0
)

// Pagination represents pagination parameters
type Pagination struct {
	// Limit represents how many items to return
	Limit int
	// Offset represents from what item to start
	Offset int
}

// PaginatedResponse represents a pagination response
type PaginatedResponse struct {
	Count int64
	Data  interface{}
}

// Paginate is a middleware to get pagination params from the request and
// store them in the request context. Missing or malformed parameters fall
// back to the defaults.
func Paginate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagination := Pagination{Limit: defaultLimit, Offset: defaultOffset}
		if val := r.URL.Query().Get("limit"); val != "" {
			if valInt, err := strconv.Atoi(val); err == nil && valInt > 0 {
				pagination.Limit = valInt
			}
		}
		if val := r.URL.Query().Get("offset"); val != "" {
			if valInt, err := strconv.Atoi(val); err == nil && valInt >= 0 {
				pagination.Offset = valInt
			}
		}
		ctx := context.WithValue(r.Context(), PaginationKey, pagination)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPagination is a helper to get pagination parameters from the request
// context. When the router did not run Paginate the defaults are returned.
func GetPagination(r *http.Request) Pagination {
	pagination, ok := r.Context().Value(PaginationKey).(Pagination)
	if !ok {
		return Pagination{Offset: defaultOffset, Limit: defaultLimit}
	}
	return pagination
}
