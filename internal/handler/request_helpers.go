package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/RatingTable_Go/internal/logger"
)

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
