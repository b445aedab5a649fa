package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/RatingTable_Go/internal/logger"
	"github.com/osse101/RatingTable_Go/internal/mechanics"
)

// LevelQuery holds the parsed /levels query parameters
type LevelQuery struct {
	Level int `validate:"min=1,max=255"`
}

// LevelResponse describes what the level constants mean for one level
type LevelResponse struct {
	Level             int  `json:"level"`
	TalentPoints      int  `json:"talent_points"`
	IsBoss            bool `json:"is_boss"`
	MaxCharacterLevel int  `json:"max_character_level"`
	BossLevel         int  `json:"boss_level"`
}

// HandleLevel reports talent points and boss status for a level
func HandleLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		levelStr, ok := GetQueryParam(r, w, "level")
		if !ok {
			return
		}

		level, err := strconv.Atoi(levelStr)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Invalid level query parameter", "level", levelStr, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
			return
		}

		if err := GetValidator().ValidateStruct(LevelQuery{Level: level}); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
			return
		}

		respondJSON(w, http.StatusOK, LevelResponse{
			Level:             level,
			TalentPoints:      mechanics.TalentPointsAtLevel(level),
			IsBoss:            mechanics.IsBossLevel(level),
			MaxCharacterLevel: mechanics.MaxCharacterLevel,
			BossLevel:         mechanics.BossLevel,
		})
	}
}
