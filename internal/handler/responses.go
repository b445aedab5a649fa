package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RatingTable_Go/internal/mechanics"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// write encodes payload into a pooled buffer before touching the response,
// so an encoding failure can still produce a 500.
func write(w http.ResponseWriter, status int, contentType string, payload interface{}, encode func(*bytes.Buffer, interface{}) error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := encode(buf, payload); err != nil {
		slog.Error("Failed to encode response", "content_type", contentType, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	write(w, status, "application/json", payload, func(buf *bytes.Buffer, v interface{}) error {
		return json.NewEncoder(buf).Encode(v)
	})
}

// respondYAML sends a YAML response with the given status code and payload
func respondYAML(w http.ResponseWriter, status int, payload interface{}) {
	write(w, status, "application/yaml", payload, func(buf *bytes.Buffer, v interface{}) error {
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	})
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapMechanicsError maps table errors to HTTP status codes and user messages
func mapMechanicsError(err error) (int, string) {
	switch {
	case errors.Is(err, mechanics.ErrUnknownConstant):
		return http.StatusNotFound, ErrMsgConstantNotFound
	case errors.Is(err, mechanics.ErrUnknownStat):
		return http.StatusBadRequest, ErrMsgUnknownStat
	case errors.Is(err, mechanics.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRating
	case errors.Is(err, mechanics.ErrInvalidEffect):
		return http.StatusBadRequest, ErrMsgInvalidEffect
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
