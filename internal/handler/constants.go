package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RatingTable_Go/internal/logger"
	"github.com/osse101/RatingTable_Go/internal/mechanics"
	"github.com/osse101/RatingTable_Go/internal/metrics"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// ConstantResponse is one table row as served over HTTP
type ConstantResponse struct {
	Name    string  `json:"name" yaml:"name"`
	Title   string  `json:"title" yaml:"title"`
	Value   float64 `json:"value" yaml:"value"`
	Derived bool    `json:"derived" yaml:"derived"`
	Base    string  `json:"base,omitempty" yaml:"base,omitempty"`
	Offset  float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
}

func newConstantResponse(c mechanics.Constant) ConstantResponse {
	return ConstantResponse{
		Name:    c.Name,
		Title:   c.Title(),
		Value:   c.Value,
		Derived: c.Derived(),
		Base:    c.Base,
		Offset:  c.Offset,
	}
}

// HandleListConstants serves every row of the table, as JSON or YAML
func HandleListConstants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := strings.ToLower(GetOptionalQueryParam(r, "format", formatJSON))

		rows := mechanics.All()
		payload := make([]ConstantResponse, 0, len(rows))
		for _, row := range rows {
			payload = append(payload, newConstantResponse(row))
		}

		switch format {
		case formatJSON:
			respondJSON(w, http.StatusOK, DataResponse{Data: payload})
		case formatYAML:
			respondYAML(w, http.StatusOK, map[string]interface{}{"constants": payload})
		default:
			logger.FromContext(r.Context()).Warn("Unsupported constants format", "format", format)
			respondError(w, http.StatusBadRequest, ErrMsgUnsupportedFormat)
		}
	}
}

// HandleGetConstant serves a single row by name
func HandleGetConstant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		log := logger.FromContext(r.Context())

		c, err := mechanics.Lookup(name)
		metrics.RecordLookup(c.Name, err == nil)
		if err != nil {
			log.Debug("Constant lookup failed", "name", name, "error", err)
			status, msg := mapMechanicsError(err)
			respondError(w, status, msg)
			return
		}

		log.Debug("Constant looked up", "name", c.Name, "value", c.Value)
		respondJSON(w, http.StatusOK, newConstantResponse(c))
	}
}
