// internal/handlers/flashcard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/service"
	"go_5_kanji_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type FlashcardHandler struct {
	service service.FlashcardService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		service: s,
		logger:  logger,
	}
}

// PostFlashcard は語彙IDからフラッシュカードを作成するハンドラ
func (h *FlashcardHandler) PostFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFlashcard"))

	var req model.CreateFlashcardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateRequest(logger, req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	card, err := h.service.CreateFlashcard(r.Context(), req.VocabID)
	if err != nil {
		logger.Error("Error creating flashcard in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.FlashcardResponse{
		Success:     true,
		FlashcardID: card.FlashcardID,
		VocabID:     card.VocabID,
		EaseFactor:  card.EaseFactor,
		Interval:    card.IntervalDays,
		ReviewCount: card.ReviewCount,
		Status:      card.Status,
		CardType:    card.CardType,
	}
	if card.Vocabulary != nil {
		resp.Word = card.Vocabulary.Word
		resp.Reading = card.Vocabulary.Reading
		resp.Meaning = card.Vocabulary.Meaning
	}

	logger.Info("Flashcard created successfully", slog.Uint64("flashcard_id", uint64(card.FlashcardID)))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PostReview はレビュー結果を記録するハンドラ
func (h *FlashcardHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReview"))

	flashcardID, err := webutil.ParseUintParam(chi.URLParam(r, "flashcard_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_ID", "フラッシュカードIDの形式が正しくありません。", "flashcard_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Uint64("flashcard_id", uint64(flashcardID)))

	var req model.SubmitReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateRequest(logger, req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	card, err := h.service.RecordReview(r.Context(), flashcardID, *req.Rating)
	if err != nil {
		logger.Error("Error recording review in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.ReviewResponse{
		Success:            true,
		FlashcardID:        card.FlashcardID,
		EaseFactor:         card.EaseFactor,
		Interval:           card.IntervalDays,
		ReviewCount:        card.ReviewCount,
		ConsecutiveCorrect: card.ConsecutiveCorrect,
		Lapses:             card.Lapses,
		NextReview:         card.NextReviewAt,
		RatingSubmitted:    *req.Rating,
	}

	logger.Info("Review recorded successfully")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetDueFlashcards は期限到来カードの一覧を返すハンドラ
func (h *FlashcardHandler) GetDueFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueFlashcards"))

	limit := webutil.ParseLimitQuery(r)

	cards, err := h.service.GetDueFlashcards(r.Context(), limit)
	if err != nil {
		logger.Error("Error getting due flashcards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.DueFlashcardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}
