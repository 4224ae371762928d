// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_kanji_srs/internal/service"
	"go_5_kanji_srs/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetVocabularyStatistics は語彙統計を返すハンドラ
func (h *StatsHandler) GetVocabularyStatistics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabularyStatistics"))

	stats, err := h.service.GetVocabularyStatistics(r.Context())
	if err != nil {
		logger.Error("Error getting vocabulary statistics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetReviewStatistics はレビュー統計を返すハンドラ
func (h *StatsHandler) GetReviewStatistics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewStatistics"))

	stats, err := h.service.GetReviewStatistics(r.Context())
	if err != nil {
		logger.Error("Error getting review statistics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
