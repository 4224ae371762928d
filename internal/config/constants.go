// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "kanji-srs"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultDatabaseURL = "file:kanji_srs.db"

	DefaultDueLimit    = 10
	DefaultSearchLimit = 50
	DefaultListLimit   = 100
)
