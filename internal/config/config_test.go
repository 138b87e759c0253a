package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Unsetenv("TWILIO_ACCOUNT_SID")
	os.Unsetenv("TWILIO_AUTH_TOKEN")

	// 測試載入預設配置
	config, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	// 驗證 Twilio 預設值
	if config.Twilio.BaseURL != "https://api.twilio.com" {
		t.Errorf("Expected base URL 'https://api.twilio.com', got '%s'", config.Twilio.BaseURL)
	}

	if config.Twilio.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", config.Twilio.Timeout)
	}

	// 驗證 App 預設值
	if config.App.Country != "US" {
		t.Errorf("Expected country 'US', got '%s'", config.App.Country)
	}

	if config.App.MaxBulkQuantity != 100 {
		t.Errorf("Expected max bulk quantity 100, got %d", config.App.MaxBulkQuantity)
	}

	if config.App.SearchPageSize != 20 {
		t.Errorf("Expected search page size 20, got %d", config.App.SearchPageSize)
	}

	// 驗證 Logging 預設值
	if config.Logging.Output != "stderr" {
		t.Errorf("Expected logging output 'stderr', got '%s'", config.Logging.Output)
	}
}

func TestTwilioConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		config    TwilioConfig
		expectErr bool
	}{
		{
			name: "valid config",
			config: TwilioConfig{
				AccountSID: "AC0123456789abcdef0123456789abcdef",
				AuthToken:  "secret-token",
				BaseURL:    "https://api.twilio.com",
				Timeout:    30 * time.Second,
			},
			expectErr: false,
		},
		{
			name: "empty credentials deferred to prompt",
			config: TwilioConfig{
				BaseURL: "https://api.twilio.com",
				Timeout: 30 * time.Second,
			},
			expectErr: false,
		},
		{
			name: "malformed account SID",
			config: TwilioConfig{
				AccountSID: "AC-not-a-valid-sid",
				BaseURL:    "https://api.twilio.com",
				Timeout:    30 * time.Second,
			},
			expectErr: true,
		},
		{
			name: "account SID with wrong prefix",
			config: TwilioConfig{
				AccountSID: "PN0123456789abcdef0123456789abcdef",
				BaseURL:    "https://api.twilio.com",
				Timeout:    30 * time.Second,
			},
			expectErr: true,
		},
		{
			name: "empty base URL",
			config: TwilioConfig{
				BaseURL: "",
				Timeout: 30 * time.Second,
			},
			expectErr: true,
		},
		{
			name: "base URL without scheme",
			config: TwilioConfig{
				BaseURL: "api.twilio.com",
				Timeout: 30 * time.Second,
			},
			expectErr: true,
		},
		{
			name: "timeout too small",
			config: TwilioConfig{
				BaseURL: "https://api.twilio.com",
				Timeout: 500 * time.Millisecond,
			},
			expectErr: true,
		},
		{
			name: "timeout too large",
			config: TwilioConfig{
				BaseURL: "https://api.twilio.com",
				Timeout: 10 * time.Minute,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTwilioConfig(&tt.config)
			if tt.expectErr && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestAppConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		config    AppConfig
		expectErr bool
	}{
		{
			name:      "valid config",
			config:    AppConfig{Country: "US", MaxBulkQuantity: 100, SearchPageSize: 20},
			expectErr: false,
		},
		{
			name:      "lowercase country",
			config:    AppConfig{Country: "us", MaxBulkQuantity: 100, SearchPageSize: 20},
			expectErr: true,
		},
		{
			name:      "country too long",
			config:    AppConfig{Country: "USA", MaxBulkQuantity: 100, SearchPageSize: 20},
			expectErr: true,
		},
		{
			name:      "zero max bulk quantity",
			config:    AppConfig{Country: "US", MaxBulkQuantity: 0, SearchPageSize: 20},
			expectErr: true,
		},
		{
			name:      "max bulk quantity too large",
			config:    AppConfig{Country: "US", MaxBulkQuantity: 1001, SearchPageSize: 20},
			expectErr: true,
		},
		{
			name:      "zero search page size",
			config:    AppConfig{Country: "US", MaxBulkQuantity: 100, SearchPageSize: 0},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAppConfig(&tt.config)
			if tt.expectErr && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	// 設置環境變數 - 使用正確的環境變數名稱格式
	os.Setenv("NUMBUY_TWILIO_BASE_URL", "https://api.twilio.example.com")
	os.Setenv("NUMBUY_TWILIO_TIMEOUT", "45s")
	os.Setenv("NUMBUY_APP_COUNTRY", "GB")
	os.Setenv("NUMBUY_APP_MAX_BULK_QUANTITY", "50")

	defer func() {
		os.Unsetenv("NUMBUY_TWILIO_BASE_URL")
		os.Unsetenv("NUMBUY_TWILIO_TIMEOUT")
		os.Unsetenv("NUMBUY_APP_COUNTRY")
		os.Unsetenv("NUMBUY_APP_MAX_BULK_QUANTITY")
	}()

	config, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config from environment: %v", err)
	}

	if config.Twilio.BaseURL != "https://api.twilio.example.com" {
		t.Errorf("Expected base URL from env 'https://api.twilio.example.com', got '%s'", config.Twilio.BaseURL)
	}

	if config.Twilio.Timeout != 45*time.Second {
		t.Errorf("Expected timeout from env 45s, got %v", config.Twilio.Timeout)
	}

	if config.App.Country != "GB" {
		t.Errorf("Expected country from env 'GB', got '%s'", config.App.Country)
	}

	if config.App.MaxBulkQuantity != 50 {
		t.Errorf("Expected max bulk quantity from env 50, got %d", config.App.MaxBulkQuantity)
	}
}

func TestTwilioCredentialsFromEnvironment(t *testing.T) {
	os.Setenv("TWILIO_ACCOUNT_SID", "AC0123456789abcdef0123456789abcdef")
	os.Setenv("TWILIO_AUTH_TOKEN", "env-auth-token")

	defer func() {
		os.Unsetenv("TWILIO_ACCOUNT_SID")
		os.Unsetenv("TWILIO_AUTH_TOKEN")
	}()

	config, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config with Twilio env credentials: %v", err)
	}

	if config.Twilio.AccountSID != "AC0123456789abcdef0123456789abcdef" {
		t.Errorf("Expected account SID from TWILIO_ACCOUNT_SID, got '%s'", config.Twilio.AccountSID)
	}

	if config.Twilio.AuthToken != "env-auth-token" {
		t.Errorf("Expected auth token from TWILIO_AUTH_TOKEN, got '%s'", config.Twilio.AuthToken)
	}
}

func TestConfigValidationIntegration(t *testing.T) {
	// 測試完整的配置驗證流程
	config := &Config{
		Twilio: TwilioConfig{
			AccountSID: "AC0123456789abcdef0123456789abcdef",
			AuthToken:  "secret-token",
			BaseURL:    "https://api.twilio.com",
			Timeout:    30 * time.Second,
		},
		App: AppConfig{
			Country:         "US",
			MaxBulkQuantity: 100,
			SearchPageSize:  20,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}

	err := validateConfig(config)
	if err != nil {
		t.Errorf("Valid config should pass validation, got error: %v", err)
	}

	// 測試無效配置
	config.App.Country = "usa"
	err = validateConfig(config)
	if err == nil {
		t.Error("Invalid config should fail validation")
	}
}
