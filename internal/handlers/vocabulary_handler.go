// internal/handlers/vocabulary_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/service"
	"go_5_kanji_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{
		service: s,
		logger:  logger,
	}
}

// PostVocabulary は語彙の初出登録または再遭遇を記録するハンドラ
func (h *VocabularyHandler) PostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabulary"))

	var req model.RegisterVocabularyRequest
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

	vocab, created, err := h.service.RegisterVocabulary(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering vocabulary in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	logger.Info("Vocabulary registered successfully", slog.Uint64("vocab_id", uint64(vocab.VocabID)), slog.Bool("created", created))
	webutil.RespondWithJSON(w, status, vocab, logger)
}

// GetVocabulary は語彙1件を取得するハンドラ
func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	vocabID, err := webutil.ParseUintParam(chi.URLParam(r, "vocab_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_ID", "語彙IDの形式が正しくありません。", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	vocab, err := h.service.GetVocabulary(r.Context(), vocabID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// SearchVocabulary は?q=で部分一致検索するハンドラ
func (h *VocabularyHandler) SearchVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchVocabulary"))

	query := r.URL.Query().Get("q")
	if query == "" {
		appErr := model.NewAppError("VALIDATION_ERROR", "検索クエリ q は必須です。", "q", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	vocabs, err := h.service.SearchVocabulary(r.Context(), query)
	if err != nil {
		logger.Error("Error searching vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if vocabs == nil {
		vocabs = []*model.Vocabulary{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

// ListVocabularyByStatus はステータス別一覧を返すハンドラ
func (h *VocabularyHandler) ListVocabularyByStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListVocabularyByStatus"))

	status := chi.URLParam(r, "status")
	limit := webutil.ParseLimitQuery(r)

	vocabs, err := h.service.ListVocabularyByStatus(r.Context(), status, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if vocabs == nil {
		vocabs = []*model.Vocabulary{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

// PutVocabularyStatus は学習ステータスを更新するハンドラ
func (h *VocabularyHandler) PutVocabularyStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutVocabularyStatus"))

	vocabID, err := webutil.ParseUintParam(chi.URLParam(r, "vocab_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_ID", "語彙IDの形式が正しくありません。", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Uint64("vocab_id", uint64(vocabID)))

	var req model.UpdateStatusRequest
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

	vocab, err := h.service.UpdateVocabularyStatus(r.Context(), vocabID, req.Status)
	if err != nil {
		logger.Error("Error updating vocabulary status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary status updated successfully", slog.String("status", string(vocab.StudyStatus)))
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// DeleteVocabulary は語彙を物理削除するハンドラ（カードはカスケード削除）
func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVocabulary"))

	vocabID, err := webutil.ParseUintParam(chi.URLParam(r, "vocab_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_ID", "語彙IDの形式が正しくありません。", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteVocabulary(r.Context(), vocabID); err != nil {
		logger.Error("Error deleting vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary deleted successfully", slog.Uint64("vocab_id", uint64(vocabID)))
	w.WriteHeader(http.StatusNoContent)
}
