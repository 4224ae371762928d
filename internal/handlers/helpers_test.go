// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_kanji_srs/internal/model"

	"github.com/stretchr/testify/require"
)

// createRequest はJSONボディ付きのテストリクエストを作ります。
// bodyにstringを渡すとそのまま生のボディとして送る（壊れたJSONのテスト用）
func createRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
		// ボディなし
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeErrorResponse は {success:false, error:{...}} 形式のボディをデコードします
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) model.APIErrorResponse {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "failed to decode error response: %s", rr.Body.String())
	return resp
}
