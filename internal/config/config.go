package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Twilio  TwilioConfig  `koanf:"twilio"`
	App     AppConfig     `koanf:"app"`
	Logging LoggingConfig `koanf:"logging"`
}

type TwilioConfig struct {
	AccountSID string        `koanf:"account_sid"`
	AuthToken  string        `koanf:"auth_token"`
	BaseURL    string        `koanf:"base_url"`
	Timeout    time.Duration `koanf:"timeout"`
}

type AppConfig struct {
	Country         string `koanf:"country"`
	MaxBulkQuantity int    `koanf:"max_bulk_quantity"`
	SearchPageSize  int    `koanf:"search_page_size"`
}

type LoggingConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`   // log file path when output is file
	MaxSize    int    `koanf:"max_size"`    // max size in MB
	MaxBackups int    `koanf:"max_backups"` // max number of backup files
	MaxAge     int    `koanf:"max_age"`     // max age in days
	Compress   bool   `koanf:"compress"`    // compress old log files
}

var (
	accountSIDPattern = regexp.MustCompile(`^AC[0-9a-f]{32}$`)
	countryPattern    = regexp.MustCompile(`^[A-Z]{2}$`)
)

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			log.Printf("Warning: failed to load config file %s: %v", configPath, err)
		}
	}

	if err := k.Load(env.Provider("NUMBUY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "NUMBUY_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 處理環境變數中含底線的鍵名
	applyEnvOverrides(&config, k)

	// Twilio 官方環境變數優先於設定檔與 NUMBUY_ 前綴變數
	if sid := os.Getenv("TWILIO_ACCOUNT_SID"); sid != "" {
		config.Twilio.AccountSID = sid
	}
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" {
		config.Twilio.AuthToken = token
	}

	setDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	GlobalConfig = &config

	return &config, nil
}

func setDefaults(cfg *Config) {
	// Twilio 預設值
	if cfg.Twilio.BaseURL == "" {
		cfg.Twilio.BaseURL = "https://api.twilio.com"
	}
	if cfg.Twilio.Timeout == 0 {
		cfg.Twilio.Timeout = 30 * time.Second
	}

	// App 預設值
	if cfg.App.Country == "" {
		cfg.App.Country = "US"
	}
	if cfg.App.MaxBulkQuantity == 0 {
		cfg.App.MaxBulkQuantity = 100
	}
	if cfg.App.SearchPageSize == 0 {
		cfg.App.SearchPageSize = 20
	}

	// Logging 預設值（stdout 保留給互動介面，日誌走 stderr）
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Logging.MaxSize == 0 {
		cfg.Logging.MaxSize = 100 // 100MB
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 3
	}
	if cfg.Logging.MaxAge == 0 {
		cfg.Logging.MaxAge = 28 // 28 days
	}
}

// applyEnvOverrides 補上環境變數展開時因底線被拆成多段的鍵值
func applyEnvOverrides(cfg *Config, k *koanf.Koanf) {
	if sid := k.String("twilio.account.sid"); sid != "" {
		cfg.Twilio.AccountSID = sid
	}

	if token := k.String("twilio.auth.token"); token != "" {
		cfg.Twilio.AuthToken = token
	}

	if baseURL := k.String("twilio.base.url"); baseURL != "" {
		cfg.Twilio.BaseURL = baseURL
	}

	if timeoutStr := k.String("twilio.timeout"); timeoutStr != "" {
		if duration, err := time.ParseDuration(timeoutStr); err == nil {
			cfg.Twilio.Timeout = duration
		}
	}

	if quantityStr := k.String("app.max.bulk.quantity"); quantityStr != "" {
		if quantity, err := strconv.Atoi(quantityStr); err == nil {
			cfg.App.MaxBulkQuantity = quantity
		}
	}

	if pageSizeStr := k.String("app.search.page.size"); pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil {
			cfg.App.SearchPageSize = pageSize
		}
	}

	if filePath := k.String("logging.file.path"); filePath != "" {
		cfg.Logging.FilePath = filePath
	}

	if maxSizeStr := k.String("logging.max.size"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil {
			cfg.Logging.MaxSize = maxSize
		}
	}
}

func validateConfig(cfg *Config) error {
	// 驗證 Twilio 配置
	if err := validateTwilioConfig(&cfg.Twilio); err != nil {
		return fmt.Errorf("twilio config validation failed: %w", err)
	}

	// 驗證 App 配置
	if err := validateAppConfig(&cfg.App); err != nil {
		return fmt.Errorf("app config validation failed: %w", err)
	}

	// 驗證 Logging 配置
	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

// validateTwilioConfig 驗證 Twilio 連線配置。
// 憑證允許為空，啟動後第一次需要時才會提示輸入。
func validateTwilioConfig(cfg *TwilioConfig) error {
	if cfg.AccountSID != "" && !accountSIDPattern.MatchString(cfg.AccountSID) {
		return fmt.Errorf("account SID must match AC followed by 32 hex characters, got %q", cfg.AccountSID)
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://, got %q", cfg.BaseURL)
	}

	if cfg.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second, got %v", cfg.Timeout)
	}

	if cfg.Timeout > 5*time.Minute {
		return fmt.Errorf("timeout cannot exceed 5 minutes, got %v", cfg.Timeout)
	}

	return nil
}

func validateAppConfig(cfg *AppConfig) error {
	if !countryPattern.MatchString(cfg.Country) {
		return fmt.Errorf("country must be two uppercase letters, got %q", cfg.Country)
	}

	if cfg.MaxBulkQuantity < 1 {
		return fmt.Errorf("max bulk quantity must be at least 1, got %d", cfg.MaxBulkQuantity)
	}

	if cfg.MaxBulkQuantity > 1000 {
		return fmt.Errorf("max bulk quantity cannot exceed 1000, got %d", cfg.MaxBulkQuantity)
	}

	if cfg.SearchPageSize < 1 {
		return fmt.Errorf("search page size must be at least 1, got %d", cfg.SearchPageSize)
	}

	if cfg.SearchPageSize > 1000 {
		return fmt.Errorf("search page size cannot exceed 1000, got %d", cfg.SearchPageSize)
	}

	return nil
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid logging level: %s, must be one of: debug, info, warn, error", cfg.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}

	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid logging format: %s, must be one of: json, text", cfg.Format)
	}

	validOutputs := map[string]bool{
		"stdout": true,
		"stderr": true,
		"file":   true,
	}

	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid logging output: %s, must be one of: stdout, stderr, file", cfg.Output)
	}

	if cfg.Output == "file" && cfg.FilePath == "" {
		return fmt.Errorf("file_path must be specified when output is 'file'")
	}

	if cfg.MaxSize < 1 || cfg.MaxSize > 1000 {
		return fmt.Errorf("max_size must be between 1 and 1000 MB, got %d", cfg.MaxSize)
	}

	if cfg.MaxBackups < 0 || cfg.MaxBackups > 100 {
		return fmt.Errorf("max_backups must be between 0 and 100, got %d", cfg.MaxBackups)
	}

	if cfg.MaxAge < 1 || cfg.MaxAge > 365 {
		return fmt.Errorf("max_age must be between 1 and 365 days, got %d", cfg.MaxAge)
	}

	return nil
}

func GetConfig() *Config {
	return GlobalConfig
}
