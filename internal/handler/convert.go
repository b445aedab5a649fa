package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/RatingTable_Go/internal/logger"
	"github.com/osse101/RatingTable_Go/internal/mechanics"
	"github.com/osse101/RatingTable_Go/internal/metrics"
)

// ConvertQuery holds the parsed /convert query parameters
type ConvertQuery struct {
	Stat   string  `validate:"required,max=64,stat"`
	Rating float64 `validate:"gte=0"`
	Class  string  `validate:"omitempty,class"`
}

// RatingQuery holds the parsed /rating query parameters
type RatingQuery struct {
	Stat   string  `validate:"required,max=64,stat"`
	Effect float64 `validate:"gte=0"`
	Class  string  `validate:"omitempty,class"`
}

// ConvertResponse reports a rating and the effect it converts to.
// Avoidance is only set for defense.
type ConvertResponse struct {
	Stat      string   `json:"stat"`
	Class     string   `json:"class,omitempty"`
	Rating    float64  `json:"rating"`
	Constant  string   `json:"constant"`
	Effect    float64  `json:"effect"`
	Avoidance *float64 `json:"avoidance,omitempty"`
}

// HandleConvert converts a rating into its percentage effect
func HandleConvert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		statName, rating, ok := parseStatAndAmount(w, r, log, "rating", ErrMsgInvalidRating)
		if !ok {
			return
		}

		q := ConvertQuery{
			Stat:   statName,
			Rating: rating,
			Class:  GetOptionalQueryParam(r, "class", ""),
		}
		if !validateQuery(w, q) {
			return
		}

		stat, class, ok := resolveStat(w, q.Stat, q.Class)
		if !ok {
			return
		}

		effect, err := mechanics.Convert(stat, q.Rating)
		metrics.RecordConversion(stat.String(), err)
		if err != nil {
			log.Warn("Rating conversion failed", "stat", stat.String(), "rating", q.Rating, "error", err)
			status, msg := mapMechanicsError(err)
			respondError(w, status, msg)
			return
		}

		c, err := stat.Constant()
		if err != nil {
			status, msg := mapMechanicsError(err)
			respondError(w, status, msg)
			return
		}

		resp := ConvertResponse{
			Stat:     stat.String(),
			Class:    string(class),
			Rating:   q.Rating,
			Constant: c.Name,
			Effect:   effect,
		}
		if stat == mechanics.StatDefense {
			avoidance, err := mechanics.DefenseAvoidance(q.Rating)
			if err != nil {
				status, msg := mapMechanicsError(err)
				respondError(w, status, msg)
				return
			}
			resp.Avoidance = &avoidance
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleRatingFor answers how much rating a given effect costs
func HandleRatingFor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		statName, effect, ok := parseStatAndAmount(w, r, log, "effect", ErrMsgInvalidEffect)
		if !ok {
			return
		}

		q := RatingQuery{
			Stat:   statName,
			Effect: effect,
			Class:  GetOptionalQueryParam(r, "class", ""),
		}
		if !validateQuery(w, q) {
			return
		}

		stat, class, ok := resolveStat(w, q.Stat, q.Class)
		if !ok {
			return
		}

		rating, err := mechanics.RatingForEffect(stat, q.Effect)
		metrics.RecordConversion(stat.String(), err)
		if err != nil {
			log.Warn("Effect conversion failed", "stat", stat.String(), "effect", q.Effect, "error", err)
			status, msg := mapMechanicsError(err)
			respondError(w, status, msg)
			return
		}

		c, err := stat.Constant()
		if err != nil {
			status, msg := mapMechanicsError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ConvertResponse{
			Stat:     stat.String(),
			Class:    string(class),
			Rating:   rating,
			Constant: c.Name,
			Effect:   q.Effect,
		})
	}
}

// parseStatAndAmount reads the required stat parameter and a numeric amount.
func parseStatAndAmount(w http.ResponseWriter, r *http.Request, log *slog.Logger, amountParam, invalidMsg string) (string, float64, bool) {
	statName, ok := GetQueryParam(r, w, "stat")
	if !ok {
		return "", 0, false
	}
	amountStr, ok := GetQueryParam(r, w, amountParam)
	if !ok {
		return "", 0, false
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		log.Warn("Invalid "+amountParam+" query parameter", amountParam, amountStr, "error", err)
		respondError(w, http.StatusBadRequest, invalidMsg)
		return "", 0, false
	}
	return statName, amount, true
}

func validateQuery(w http.ResponseWriter, q interface{}) bool {
	if err := GetValidator().ValidateStruct(q); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// resolveStat parses the stat and swaps haste for the class's melee haste row.
func resolveStat(w http.ResponseWriter, statName, className string) (mechanics.Stat, mechanics.Class, bool) {
	stat, err := mechanics.ParseStat(statName)
	if err != nil {
		status, msg := mapMechanicsError(err)
		respondError(w, status, msg)
		return mechanics.StatUnknown, "", false
	}
	class := mechanics.Class(strings.ToLower(className))
	if class != "" && stat == mechanics.StatHaste {
		stat = mechanics.MeleeHasteStat(class)
	}
	return stat, class, true
}
