// internal/handlers/screenshot_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/service"
	"go_5_kanji_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ScreenshotHandler struct {
	service service.ScreenshotService
	logger  *slog.Logger
}

func NewScreenshotHandler(s service.ScreenshotService, logger *slog.Logger) *ScreenshotHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreenshotHandler{
		service: s,
		logger:  logger,
	}
}

// PostScreenshot はスクリーンショットを冪等に登録するハンドラ。
// 同一画像の再送信は同じIDを返す（新しい行は作らない）
func (h *ScreenshotHandler) PostScreenshot(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostScreenshot"))

	var req model.SubmitScreenshotRequest
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

	shot, duplicate, err := h.service.SubmitScreenshot(r.Context(), &req)
	if err != nil {
		logger.Error("Error submitting screenshot in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.ScreenshotResponse{
		Success:      true,
		ScreenshotID: shot.ScreenshotID,
		PublicID:     shot.PublicID,
		Checksum:     shot.Checksum,
		Duplicate:    duplicate,
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	logger.Info("Screenshot submitted", slog.Uint64("screenshot_id", uint64(shot.ScreenshotID)), slog.Bool("duplicate", duplicate))
	webutil.RespondWithJSON(w, status, resp, logger)
}

// GetScreenshot はスクリーンショット1件（OCR断片付き）を返すハンドラ
func (h *ScreenshotHandler) GetScreenshot(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetScreenshot"))

	screenshotID, err := webutil.ParseUintParam(chi.URLParam(r, "screenshot_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_ID", "スクリーンショットIDの形式が正しくありません。", "screenshot_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	shot, err := h.service.GetScreenshot(r.Context(), screenshotID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, shot, logger)
}
