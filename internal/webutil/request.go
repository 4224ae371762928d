// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go_5_kanji_srs/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ParseUintParam はURLパラメータを正の整数IDとしてパースします
func ParseUintParam(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, model.ErrInvalidInput
	}
	return uint(id), nil
}

// ParseLimitQuery は?limit=クエリをパースします。未指定・不正値は0を返し、
// デフォルト適用はService層に任せる
func ParseLimitQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
