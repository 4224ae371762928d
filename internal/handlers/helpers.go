// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateRequest はDTOのバリデーションを実行し、
// 失敗時は最初のエラーを日本語メッセージに翻訳したAppErrorを返します
func validateRequest(logger *slog.Logger, req interface{}) *model.AppError {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return model.NewAppError("INTERNAL_SERVER_ERROR", "バリデーション中にエラーが発生しました。", "", err)
	}
	return nil
}
