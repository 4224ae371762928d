// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App AppConfig `mapstructure:"app"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

type AppConfig struct {
	DueLimit    int `mapstructure:"due_limit"`    // get_due_flashcardsのデフォルト件数
	SearchLimit int `mapstructure:"search_limit"` // 検索結果の上限
	ListLimit   int `mapstructure:"list_limit"`   // ステータス別一覧の上限
}

// LoadConfig は設定を読み込んで返します。
// グローバル変数は持たず、呼び出し側がDIで引き回す（テストで独立インスタンスを使うため）
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数でも上書き可能 (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("server.port", "APP_SERVER_PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// --- デフォルト値の設定 ---
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.App.DueLimit <= 0 {
		cfg.App.DueLimit = DefaultDueLimit
	}
	if cfg.App.SearchLimit <= 0 {
		cfg.App.SearchLimit = DefaultSearchLimit
	}
	if cfg.App.ListLimit <= 0 {
		cfg.App.ListLimit = DefaultListLimit
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = DefaultDatabaseURL
		log.Printf("Database URL not set, using default %q", DefaultDatabaseURL)
	}

	log.Println("Config loaded successfully")
	return &cfg, nil
}
