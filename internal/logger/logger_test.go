package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  *LoggingConfig
		wantErr bool
	}{
		{
			name: "valid text logger",
			config: &LoggingConfig{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "valid json logger",
			config: &LoggingConfig{
				Level:  "debug",
				Format: "json",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: &LoggingConfig{
				Level:  "invalid",
				Format: "text",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "invalid format",
			config: &LoggingConfig{
				Level:  "info",
				Format: "invalid",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "invalid output",
			config: &LoggingConfig{
				Level:  "info",
				Format: "text",
				Output: "invalid",
			},
			wantErr: true,
		},
		{
			name: "file output without path",
			config: &LoggingConfig{
				Level:  "info",
				Format: "text",
				Output: "file",
			},
			wantErr: true,
		},
		{
			name:    "nil config uses defaults",
			config:  nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Errorf("NewLogger() returned nil logger without error")
			}
		})
	}
}

func TestLogAPIEvent(t *testing.T) {
	// 創建一個緩衝區來捕獲日誌輸出
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	logger := &Logger{
		Logger: slog.New(handler),
		level:  slog.LevelDebug,
	}

	tests := []struct {
		name     string
		event    APIEvent
		message  string
		attrs    []slog.Attr
		wantText string
	}{
		{
			name:     "search success event",
			event:    APIEventSearchSuccess,
			message:  "Phone number search completed",
			attrs:    []slog.Attr{slog.Int("candidates", 20)},
			wantText: "search_success",
		},
		{
			name:     "purchase failed event",
			event:    APIEventPurchaseFailed,
			message:  "Phone number purchase failed",
			attrs:    []slog.Attr{slog.String("error", "number taken")},
			wantText: "purchase_failed",
		},
		{
			name:     "bulk run start event",
			event:    APIEventBulkRunStart,
			message:  "Bulk purchase run started",
			attrs:    []slog.Attr{slog.Int("total", 5)},
			wantText: "bulk_run_start",
		},
		{
			name:     "request start event",
			event:    APIEventRequestStart,
			message:  "Sending Twilio API request",
			attrs:    []slog.Attr{slog.String("method", http.MethodGet)},
			wantText: "request_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			logger.LogAPIEvent(tt.event, tt.message, tt.attrs...)

			output := buf.String()
			if !strings.Contains(output, tt.wantText) {
				t.Errorf("LogAPIEvent() output = %v, want to contain %v", output, tt.wantText)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("LogAPIEvent() output = %v, want to contain message %v", output, tt.message)
			}
		})
	}
}

func TestAPICallMetrics(t *testing.T) {
	// 重置指標
	ResetAPICallMetrics()

	// 測試初始狀態
	metrics := GetAPICallMetrics()
	if metrics.TotalRequests != 0 {
		t.Errorf("Initial TotalRequests = %v, want 0", metrics.TotalRequests)
	}

	// 模擬一些 API 呼叫
	LogRequestStart(http.MethodGet, "/2010-04-01/Accounts/AC/IncomingPhoneNumbers.json")
	LogRequestSuccess(http.MethodGet, "/2010-04-01/Accounts/AC/IncomingPhoneNumbers.json", 200, 100*time.Millisecond)

	metrics = GetAPICallMetrics()
	if metrics.TotalRequests != 1 {
		t.Errorf("After request start TotalRequests = %v, want 1", metrics.TotalRequests)
	}
	if metrics.SuccessfulRequests != 1 {
		t.Errorf("After request success SuccessfulRequests = %v, want 1", metrics.SuccessfulRequests)
	}

	// 模擬購買失敗
	LogPurchaseAttempt("+14155550100", "Batch 1")
	LogPurchaseFailed("+14155550100", errors.New("number taken"))

	metrics = GetAPICallMetrics()
	if metrics.TotalPurchases != 1 {
		t.Errorf("After purchase attempt TotalPurchases = %v, want 1", metrics.TotalPurchases)
	}
	if metrics.FailedPurchases != 1 {
		t.Errorf("After purchase failure FailedPurchases = %v, want 1", metrics.FailedPurchases)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		levelStr  string
		wantLevel slog.Level
		wantErr   bool
	}{
		{"debug level", "debug", slog.LevelDebug, false},
		{"info level", "info", slog.LevelInfo, false},
		{"warn level", "warn", slog.LevelWarn, false},
		{"warning level", "warning", slog.LevelWarn, false},
		{"error level", "error", slog.LevelError, false},
		{"invalid level", "invalid", slog.LevelInfo, true},
		{"empty level", "", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLevel, err := parseLogLevel(tt.levelStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotLevel != tt.wantLevel {
				t.Errorf("parseLogLevel() = %v, want %v", gotLevel, tt.wantLevel)
			}
		})
	}
}

func TestInitDefaultLogger(t *testing.T) {
	// 測試初始化默認日誌記錄器
	config := &LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	err := InitDefaultLogger(config)
	if err != nil {
		t.Errorf("InitDefaultLogger() error = %v", err)
	}

	logger := GetDefaultLogger()
	if logger == nil {
		t.Errorf("GetDefaultLogger() returned nil")
	}

	// 測試使用默認日誌記錄器
	LogSearchStart("US", "415", 20)
	LogSearchSuccess(20, 50*time.Millisecond)
	LogBulkRunStart("run-1", 5)
	LogBulkRunComplete("run-1", 4, 1, time.Second)
}

func BenchmarkLogAPIEvent(b *testing.B) {
	config := &LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}

	logger, err := NewLogger(config)
	if err != nil {
		b.Fatalf("Failed to create logger: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.LogAPIEvent(APIEventPurchaseSuccess, "Test message",
			slog.String("phone_number", "+14155550100"),
			slog.Int("attempt", i),
		)
	}
}
