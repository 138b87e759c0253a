package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 包裝 slog.Logger 提供結構化日誌記錄
type Logger struct {
	*slog.Logger
	level slog.Level
}

// LoggingConfig 日誌配置結構
type LoggingConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// APIEvent 定義 Twilio API 相關的日誌事件類型
type APIEvent string

const (
	APIEventRequestStart     APIEvent = "request_start"
	APIEventRequestSuccess   APIEvent = "request_success"
	APIEventRequestFailed    APIEvent = "request_failed"
	APIEventSearchStart      APIEvent = "search_start"
	APIEventSearchSuccess    APIEvent = "search_success"
	APIEventSearchFailed     APIEvent = "search_failed"
	APIEventPurchaseAttempt  APIEvent = "purchase_attempt"
	APIEventPurchaseSuccess  APIEvent = "purchase_success"
	APIEventPurchaseFailed   APIEvent = "purchase_failed"
	APIEventBulkRunStart     APIEvent = "bulk_run_start"
	APIEventBulkRunComplete  APIEvent = "bulk_run_complete"
	APIEventReleaseSuccess   APIEvent = "release_success"
	APIEventReleaseFailed    APIEvent = "release_failed"
	APIEventConfigValidation APIEvent = "config_validation"
)

// APICallMetrics API 呼叫監控指標
type APICallMetrics struct {
	TotalRequests       int64     `json:"total_requests"`
	SuccessfulRequests  int64     `json:"successful_requests"`
	FailedRequests      int64     `json:"failed_requests"`
	TotalSearches       int64     `json:"total_searches"`
	TotalPurchases      int64     `json:"total_purchases"`
	SuccessfulPurchases int64     `json:"successful_purchases"`
	FailedPurchases     int64     `json:"failed_purchases"`
	LastRequestTime     time.Time `json:"last_request_time"`
	LastFailureTime     time.Time `json:"last_failure_time"`
}

var (
	defaultLogger *Logger
	metrics       APICallMetrics
)

// NewLogger 創建新的結構化日誌記錄器
func NewLogger(config *LoggingConfig) (*Logger, error) {
	if config == nil {
		config = &LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		}
	}

	// 解析日誌級別
	level, err := parseLogLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	// 創建輸出目標
	writer, err := createWriter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	// 創建處理器
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", config.Format)
	}

	logger := &Logger{
		Logger: slog.New(handler),
		level:  level,
	}

	return logger, nil
}

// InitDefaultLogger 初始化默認日誌記錄器
func InitDefaultLogger(config *LoggingConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// GetDefaultLogger 獲取默認日誌記錄器
func GetDefaultLogger() *Logger {
	if defaultLogger == nil {
		// 如果沒有初始化，創建一個基本的日誌記錄器
		logger, _ := NewLogger(nil)
		defaultLogger = logger
	}
	return defaultLogger
}

// parseLogLevel 解析日誌級別字符串
func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// createWriter 根據配置創建日誌輸出目標。
// 預設使用 stderr，stdout 保留給互動提示與表格輸出。
func createWriter(config *LoggingConfig) (io.Writer, error) {
	switch strings.ToLower(config.Output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "file":
		if config.FilePath == "" {
			return nil, fmt.Errorf("file path is required when output is 'file'")
		}

		// 確保日誌目錄存在
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// 使用 lumberjack 進行日誌輪轉
		return &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output type: %s", config.Output)
	}
}

// Twilio API 相關的結構化日誌方法

// LogAPIEvent 記錄 API 事件
func (l *Logger) LogAPIEvent(event APIEvent, message string, attrs ...slog.Attr) {
	baseAttrs := []slog.Attr{
		slog.String("component", "twilio"),
		slog.String("event", string(event)),
		slog.Time("timestamp", time.Now()),
	}

	allAttrs := append(baseAttrs, attrs...)

	// 轉換 slog.Attr 到 any
	anyAttrs := make([]any, len(allAttrs))
	for i, attr := range allAttrs {
		anyAttrs[i] = attr
	}

	switch event {
	case APIEventRequestFailed, APIEventSearchFailed, APIEventPurchaseFailed, APIEventReleaseFailed:
		l.Error(message, anyAttrs...)
	case APIEventSearchSuccess, APIEventPurchaseSuccess, APIEventReleaseSuccess, APIEventBulkRunStart, APIEventBulkRunComplete:
		l.Info(message, anyAttrs...)
	default:
		l.Debug(message, anyAttrs...)
	}
}

// LogRequestStart 記錄 API 請求開始
func (l *Logger) LogRequestStart(method, path string) {
	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()
	l.LogAPIEvent(APIEventRequestStart, "Sending Twilio API request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int64("total_requests", metrics.TotalRequests),
	)
}

// LogRequestSuccess 記錄 API 請求成功
func (l *Logger) LogRequestSuccess(method, path string, status int, duration time.Duration) {
	metrics.SuccessfulRequests++
	l.LogAPIEvent(APIEventRequestSuccess, "Twilio API request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", duration),
		slog.Int64("successful_requests", metrics.SuccessfulRequests),
	)
}

// LogRequestFailed 記錄 API 請求失敗
func (l *Logger) LogRequestFailed(method, path string, err error, duration time.Duration) {
	metrics.FailedRequests++
	metrics.LastFailureTime = time.Now()
	l.LogAPIEvent(APIEventRequestFailed, "Twilio API request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("error", err.Error()),
		slog.Duration("duration", duration),
		slog.Int64("failed_requests", metrics.FailedRequests),
	)
}

// LogSearchStart 記錄號碼搜尋開始
func (l *Logger) LogSearchStart(country, areaCode string, limit int) {
	metrics.TotalSearches++
	l.LogAPIEvent(APIEventSearchStart, "Searching available phone numbers",
		slog.String("country", country),
		slog.String("area_code", areaCode),
		slog.Int("limit", limit),
		slog.Int64("total_searches", metrics.TotalSearches),
	)
}

// LogSearchSuccess 記錄號碼搜尋成功
func (l *Logger) LogSearchSuccess(count int, duration time.Duration) {
	l.LogAPIEvent(APIEventSearchSuccess, "Phone number search completed",
		slog.Int("candidates", count),
		slog.Duration("duration", duration),
	)
}

// LogSearchFailed 記錄號碼搜尋失敗
func (l *Logger) LogSearchFailed(country string, err error, duration time.Duration) {
	metrics.LastFailureTime = time.Now()
	l.LogAPIEvent(APIEventSearchFailed, "Phone number search failed",
		slog.String("country", country),
		slog.String("error", err.Error()),
		slog.Duration("duration", duration),
	)
}

// LogPurchaseAttempt 記錄購買嘗試
func (l *Logger) LogPurchaseAttempt(phoneNumber, friendlyName string) {
	metrics.TotalPurchases++
	l.LogAPIEvent(APIEventPurchaseAttempt, "Attempting to purchase phone number",
		slog.String("phone_number", phoneNumber),
		slog.String("friendly_name", friendlyName),
		slog.Int64("total_purchases", metrics.TotalPurchases),
	)
}

// LogPurchaseSuccess 記錄購買成功
func (l *Logger) LogPurchaseSuccess(phoneNumber, sid string, duration time.Duration) {
	metrics.SuccessfulPurchases++
	l.LogAPIEvent(APIEventPurchaseSuccess, "Phone number purchased",
		slog.String("phone_number", phoneNumber),
		slog.String("sid", sid),
		slog.Duration("duration", duration),
		slog.Int64("successful_purchases", metrics.SuccessfulPurchases),
	)
}

// LogPurchaseFailed 記錄購買失敗
func (l *Logger) LogPurchaseFailed(phoneNumber string, err error) {
	metrics.FailedPurchases++
	metrics.LastFailureTime = time.Now()
	l.LogAPIEvent(APIEventPurchaseFailed, "Phone number purchase failed",
		slog.String("phone_number", phoneNumber),
		slog.String("error", err.Error()),
		slog.Int64("failed_purchases", metrics.FailedPurchases),
	)
}

// LogBulkRunStart 記錄批量購買開始
func (l *Logger) LogBulkRunStart(runID string, total int) {
	l.LogAPIEvent(APIEventBulkRunStart, "Bulk purchase run started",
		slog.String("run_id", runID),
		slog.Int("total", total),
	)
}

// LogBulkRunComplete 記錄批量購買結束
func (l *Logger) LogBulkRunComplete(runID string, succeeded, failed int, duration time.Duration) {
	l.LogAPIEvent(APIEventBulkRunComplete, "Bulk purchase run completed",
		slog.String("run_id", runID),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
		slog.Duration("duration", duration),
	)
}

// LogReleaseSuccess 記錄號碼釋放成功
func (l *Logger) LogReleaseSuccess(sid string, duration time.Duration) {
	l.LogAPIEvent(APIEventReleaseSuccess, "Phone number released",
		slog.String("sid", sid),
		slog.Duration("duration", duration),
	)
}

// LogReleaseFailed 記錄號碼釋放失敗
func (l *Logger) LogReleaseFailed(sid string, err error) {
	metrics.LastFailureTime = time.Now()
	l.LogAPIEvent(APIEventReleaseFailed, "Phone number release failed",
		slog.String("sid", sid),
		slog.String("error", err.Error()),
	)
}

// LogConfigValidation 記錄配置驗證
func (l *Logger) LogConfigValidation(valid bool, errors []string) {
	if valid {
		l.LogAPIEvent(APIEventConfigValidation, "Configuration validation passed")
	} else {
		l.LogAPIEvent(APIEventConfigValidation, "Configuration validation failed",
			slog.Any("validation_errors", errors),
		)
	}
}

// GetAPICallMetrics 獲取 API 呼叫監控指標
func GetAPICallMetrics() APICallMetrics {
	return metrics
}

// ResetAPICallMetrics 重置 API 呼叫監控指標
func ResetAPICallMetrics() {
	metrics = APICallMetrics{}
}

// 便利方法，使用默認日誌記錄器

// LogAPIEvent 使用默認日誌記錄器記錄 API 事件
func LogAPIEvent(event APIEvent, message string, attrs ...slog.Attr) {
	GetDefaultLogger().LogAPIEvent(event, message, attrs...)
}

// LogRequestStart 使用默認日誌記錄器記錄 API 請求開始
func LogRequestStart(method, path string) {
	GetDefaultLogger().LogRequestStart(method, path)
}

// LogRequestSuccess 使用默認日誌記錄器記錄 API 請求成功
func LogRequestSuccess(method, path string, status int, duration time.Duration) {
	GetDefaultLogger().LogRequestSuccess(method, path, status, duration)
}

// LogRequestFailed 使用默認日誌記錄器記錄 API 請求失敗
func LogRequestFailed(method, path string, err error, duration time.Duration) {
	GetDefaultLogger().LogRequestFailed(method, path, err, duration)
}

// LogSearchStart 使用默認日誌記錄器記錄號碼搜尋開始
func LogSearchStart(country, areaCode string, limit int) {
	GetDefaultLogger().LogSearchStart(country, areaCode, limit)
}

// LogSearchSuccess 使用默認日誌記錄器記錄號碼搜尋成功
func LogSearchSuccess(count int, duration time.Duration) {
	GetDefaultLogger().LogSearchSuccess(count, duration)
}

// LogSearchFailed 使用默認日誌記錄器記錄號碼搜尋失敗
func LogSearchFailed(country string, err error, duration time.Duration) {
	GetDefaultLogger().LogSearchFailed(country, err, duration)
}

// LogPurchaseAttempt 使用默認日誌記錄器記錄購買嘗試
func LogPurchaseAttempt(phoneNumber, friendlyName string) {
	GetDefaultLogger().LogPurchaseAttempt(phoneNumber, friendlyName)
}

// LogPurchaseSuccess 使用默認日誌記錄器記錄購買成功
func LogPurchaseSuccess(phoneNumber, sid string, duration time.Duration) {
	GetDefaultLogger().LogPurchaseSuccess(phoneNumber, sid, duration)
}

// LogPurchaseFailed 使用默認日誌記錄器記錄購買失敗
func LogPurchaseFailed(phoneNumber string, err error) {
	GetDefaultLogger().LogPurchaseFailed(phoneNumber, err)
}

// LogBulkRunStart 使用默認日誌記錄器記錄批量購買開始
func LogBulkRunStart(runID string, total int) {
	GetDefaultLogger().LogBulkRunStart(runID, total)
}

// LogBulkRunComplete 使用默認日誌記錄器記錄批量購買結束
func LogBulkRunComplete(runID string, succeeded, failed int, duration time.Duration) {
	GetDefaultLogger().LogBulkRunComplete(runID, succeeded, failed, duration)
}
