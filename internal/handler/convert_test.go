package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RatingTable_Go/internal/mechanics"
)

func TestHandleConvert(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		expectedStatus   int
		expectedStat     string
		expectedConstant string
		expectedEffect   float64
		expectedError    string
	}{
		{
			name:             "haste rating",
			query:            "stat=haste&rating=65.58",
			expectedStatus:   http.StatusOK,
			expectedStat:     "haste",
			expectedConstant: mechanics.NameHasteRatingPerHastePercent,
			expectedEffect:   2,
		},
		{
			name:             "haste for a shaman uses special melee haste",
			query:            "stat=haste&rating=25.22&class=Shaman",
			expectedStatus:   http.StatusOK,
			expectedStat:     "special_melee_haste",
			expectedConstant: mechanics.NameSpecialMeleeHasteRatingPerHastePercent,
			expectedEffect:   1,
		},
		{
			name:             "haste for a rogue stays normal",
			query:            "stat=haste&rating=32.79&class=rogue",
			expectedStatus:   http.StatusOK,
			expectedStat:     "haste",
			expectedConstant: mechanics.NameHasteRatingPerHastePercent,
			expectedEffect:   1,
		},
		{
			name:             "expertise",
			query:            "stat=expertise&rating=32.79",
			expectedStatus:   http.StatusOK,
			expectedStat:     "expertise",
			expectedConstant: mechanics.NameExpertisePerQuarterPercentReduction,
			expectedEffect:   1,
		},
		{
			name:           "missing stat",
			query:          "rating=10",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing stat query parameter",
		},
		{
			name:           "missing rating",
			query:          "stat=haste",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing rating query parameter",
		},
		{
			name:           "rating not a number",
			query:          "stat=haste&rating=lots",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRating,
		},
		{
			name:           "negative rating",
			query:          "stat=haste&rating=-5",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSummary,
		},
		{
			name:           "infinite rating",
			query:          "stat=haste&rating=Inf",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRating,
		},
		{
			name:           "unknown stat",
			query:          "stat=spirit&rating=5",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgUnknownStat,
		},
		{
			name:           "unknown class",
			query:          "stat=haste&rating=5&class=bard",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Unknown class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/convert?"+tt.query, nil)

			HandleConvert().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
				return
			}

			var resp ConvertResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStat, resp.Stat)
			assert.Equal(t, tt.expectedConstant, resp.Constant)
			assert.InDelta(t, tt.expectedEffect, resp.Effect, 1e-9)
		})
	}
}

func TestHandleConvert_DefenseAvoidance(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/convert?stat=defense&rating=123", nil)

	HandleConvert().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 25.0, resp.Effect, 1e-9)
	require.NotNil(t, resp.Avoidance)
	assert.InDelta(t, 1.0, *resp.Avoidance, 1e-9)

	rec = httptest.NewRecorder()
	HandleConvert().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/convert?stat=dodge&rating=45.25", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "avoidance")
}

func TestHandleRatingFor(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		expectedStatus   int
		expectedStat     string
		expectedConstant string
		expectedRating   float64
		expectedError    string
	}{
		{
			name:             "haste percent",
			query:            "stat=haste&effect=2",
			expectedStatus:   http.StatusOK,
			expectedStat:     "haste",
			expectedConstant: mechanics.NameHasteRatingPerHastePercent,
			expectedRating:   65.58,
		},
		{
			name:             "haste for a paladin",
			query:            "stat=haste&effect=1&class=paladin",
			expectedStatus:   http.StatusOK,
			expectedStat:     "special_melee_haste",
			expectedConstant: mechanics.NameSpecialMeleeHasteRatingPerHastePercent,
			expectedRating:   25.22,
		},
		{
			name:             "expertise",
			query:            "stat=expertise&effect=1",
			expectedStatus:   http.StatusOK,
			expectedStat:     "expertise",
			expectedConstant: mechanics.NameExpertisePerQuarterPercentReduction,
			expectedRating:   32.79,
		},
		{
			name:           "missing effect",
			query:          "stat=haste",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing effect query parameter",
		},
		{
			name:           "effect not a number",
			query:          "stat=haste&effect=lots",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidEffect,
		},
		{
			name:           "infinite effect",
			query:          "stat=haste&effect=Inf",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidEffect,
		},
		{
			name:           "negative effect",
			query:          "stat=haste&effect=-1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/rating?"+tt.query, nil)

			HandleRatingFor().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
				return
			}

			var resp ConvertResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStat, resp.Stat)
			assert.Equal(t, tt.expectedConstant, resp.Constant)
			assert.InDelta(t, tt.expectedRating, resp.Rating, 1e-9)
		})
	}
}
