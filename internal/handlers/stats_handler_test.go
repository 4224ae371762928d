// internal/handlers/stats_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_kanji_srs/internal/handlers"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsTestRouter(mockService *mocks.MockStatsService) *chi.Mux {
	handler := handlers.NewStatsHandler(mockService, testLogger)
	router := chi.NewRouter()
	router.Get("/api/v1/stats/vocabulary", handler.GetVocabularyStatistics)
	router.Get("/api/v1/stats/reviews", handler.GetReviewStatistics)
	return router
}

func TestStatsHandler_GetVocabularyStatistics(t *testing.T) {
	t.Run("正常系: 語彙統計が返る", func(t *testing.T) {
		mockService := mocks.NewMockStatsService(t)
		mockService.On("GetVocabularyStatistics", mock.Anything).
			Return(&model.VocabularyStatistics{
				TotalWords:      4,
				NewWords:        2,
				LearningWords:   1,
				MasteredWords:   1,
				TotalEncounters: 6,
			}, nil).Once()
		router := newStatsTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/stats/vocabulary", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.VocabularyStatistics
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.EqualValues(t, 4, resp.TotalWords)
		assert.EqualValues(t, 6, resp.TotalEncounters)
	})

	t.Run("異常系: Serviceエラーは500", func(t *testing.T) {
		mockService := mocks.NewMockStatsService(t)
		mockService.On("GetVocabularyStatistics", mock.Anything).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙統計の取得に失敗しました。", "", errors.New("db down"))).Once()
		router := newStatsTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/stats/vocabulary", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
	})
}

func TestStatsHandler_GetReviewStatistics(t *testing.T) {
	t.Run("正常系: レビュー統計が返る（5フィールド全て含む）", func(t *testing.T) {
		mockService := mocks.NewMockStatsService(t)
		mockService.On("GetReviewStatistics", mock.Anything).
			Return(&model.ReviewStatistics{
				TotalFlashcards: 3,
				DueToday:        1,
				ReviewedToday:   2,
				AverageEase:     2.4,
				LongestStreak:   0,
			}, nil).Once()
		router := newStatsTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/stats/reviews", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		// longest_streakはゼロ値でもJSONに現れる（クライアント契約）
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		for _, key := range []string{"total_flashcards", "due_today", "reviewed_today", "average_ease", "longest_streak"} {
			assert.Contains(t, raw, key)
		}
	})
}
