// internal/handlers/flashcard_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_kanji_srs/internal/handlers"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFlashcardTestRouter(mockService *mocks.MockFlashcardService) *chi.Mux {
	handler := handlers.NewFlashcardHandler(mockService, testLogger)
	router := chi.NewRouter()
	router.Post("/api/v1/flashcards", handler.PostFlashcard)
	router.Post("/api/v1/flashcards/{flashcard_id}/review", handler.PostReview)
	router.Get("/api/v1/flashcards/due", handler.GetDueFlashcards)
	return router
}

func TestFlashcardHandler_PostFlashcard(t *testing.T) {
	vocab := &model.Vocabulary{VocabID: 1, Word: "勉強", Reading: "べんきょう", Meaning: "study"}
	createdCard := &model.Flashcard{
		FlashcardID:  10,
		VocabID:      1,
		CardType:     model.CardTypeRecognition,
		Status:       model.CardStatusActive,
		EaseFactor:   2.5,
		NextReviewAt: time.Now(),
		Vocabulary:   vocab,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockFlashcardService)
		expectedStatus int
		expectedCode   string // エラー時のみ
	}{
		{
			name: "正常系: カード作成で201",
			body: model.CreateFlashcardRequest{VocabID: 1},
			setupMock: func(m *mocks.MockFlashcardService) {
				m.On("CreateFlashcard", mock.Anything, uint(1)).Return(createdCard, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: vocab_idなしはバリデーションで400",
			body:           map[string]interface{}{},
			setupMock:      func(m *mocks.MockFlashcardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 壊れたJSONは400",
			body:           `{"vocab_id":`,
			setupMock:      func(m *mocks.MockFlashcardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 語彙が存在しなければ404",
			body: model.CreateFlashcardRequest{VocabID: 9999},
			setupMock: func(m *mocks.MockFlashcardService) {
				m.On("CreateFlashcard", mock.Anything, uint(9999)).
					Return(nil, model.NewAppError("NOT_FOUND", "vocabulary id 9999 not found", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name: "異常系: 既存カードがあれば409",
			body: model.CreateFlashcardRequest{VocabID: 1},
			setupMock: func(m *mocks.MockFlashcardService) {
				m.On("CreateFlashcard", mock.Anything, uint(1)).
					Return(nil, model.NewAppError("CONFLICT", "flashcard already exists for vocabulary id 1", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockFlashcardService(t)
			tt.setupMock(mockService)
			router := newFlashcardTestRouter(mockService)

			req := createRequest(t, "POST", "/api/v1/flashcards", tt.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				resp := decodeErrorResponse(t, rr)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
				return
			}

			var resp model.FlashcardResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, createdCard.FlashcardID, resp.FlashcardID)
			assert.Equal(t, "勉強", resp.Word)
			assert.Equal(t, model.CardTypeRecognition, resp.CardType)
		})
	}
}

func TestFlashcardHandler_PostReview(t *testing.T) {
	rating := 2
	reviewedCard := &model.Flashcard{
		FlashcardID:        10,
		VocabID:            1,
		EaseFactor:         2.5,
		IntervalDays:       1.0,
		ReviewCount:        1,
		ConsecutiveCorrect: 1,
		NextReviewAt:       time.Now().Add(24 * time.Hour),
	}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(m *mocks.MockFlashcardService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: レビュー記録で200",
			path: "/api/v1/flashcards/10/review",
			body: model.SubmitReviewRequest{Rating: &rating},
			setupMock: func(m *mocks.MockFlashcardService) {
				m.On("RecordReview", mock.Anything, uint(10), 2).Return(reviewedCard, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: IDが数値でなければ400",
			path:           "/api/v1/flashcards/abc/review",
			body:           model.SubmitReviewRequest{Rating: &rating},
			setupMock:      func(m *mocks.MockFlashcardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ID",
		},
		{
			name:           "異常系: ratingなしはバリデーションで400",
			path:           "/api/v1/flashcards/10/review",
			body:           map[string]interface{}{},
			setupMock:      func(m *mocks.MockFlashcardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: ratingが範囲外(4)は400",
			path:           "/api/v1/flashcards/10/review",
			body:           map[string]interface{}{"rating": 4},
			setupMock:      func(m *mocks.MockFlashcardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: カードが存在しなければ404",
			path: "/api/v1/flashcards/9999/review",
			body: model.SubmitReviewRequest{Rating: &rating},
			setupMock: func(m *mocks.MockFlashcardService) {
				m.On("RecordReview", mock.Anything, uint(9999), 2).
					Return(nil, model.NewAppError("NOT_FOUND", "flashcard id 9999 not found", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockFlashcardService(t)
			tt.setupMock(mockService)
			router := newFlashcardTestRouter(mockService)

			req := createRequest(t, "POST", tt.path, tt.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				resp := decodeErrorResponse(t, rr)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
				return
			}

			var resp model.ReviewResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, reviewedCard.FlashcardID, resp.FlashcardID)
			assert.Equal(t, 2, resp.RatingSubmitted)
			assert.InDelta(t, 1.0, resp.Interval, 1e-9)
		})
	}
}

func TestFlashcardHandler_GetDueFlashcards(t *testing.T) {
	dueCards := []*model.DueFlashcardResponse{
		{FlashcardID: 1, VocabID: 1, Word: "一", NextReview: time.Now().Add(-72 * time.Hour)},
		{FlashcardID: 2, VocabID: 2, Word: "二", NextReview: time.Now().Add(-48 * time.Hour)},
	}

	t.Run("正常系: 期限到来カードの一覧が返る", func(t *testing.T) {
		mockService := mocks.NewMockFlashcardService(t)
		mockService.On("GetDueFlashcards", mock.Anything, 0).Return(dueCards, nil).Once()
		router := newFlashcardTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/flashcards/due", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []*model.DueFlashcardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "一", resp[0].Word)
	})

	t.Run("正常系: limitクエリがServiceに渡る", func(t *testing.T) {
		mockService := mocks.NewMockFlashcardService(t)
		mockService.On("GetDueFlashcards", mock.Anything, 5).Return([]*model.DueFlashcardResponse{}, nil).Once()
		router := newFlashcardTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/flashcards/due?limit=5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("正常系: 0件はnullではなく空配列", func(t *testing.T) {
		mockService := mocks.NewMockFlashcardService(t)
		mockService.On("GetDueFlashcards", mock.Anything, 0).Return(nil, nil).Once()
		router := newFlashcardTestRouter(mockService)

		req := createRequest(t, "GET", "/api/v1/flashcards/due", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
