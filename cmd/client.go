package cmd

import (
	"fmt"

	"numbuy/internal/config"
	"numbuy/internal/prompt"
	"numbuy/internal/twilio"
)

// 整個程序共用同一個 Twilio 客戶端，第一次需要時才建立
var apiClient *twilio.Client

// ensureClient 回傳共用的 Twilio 客戶端。
// 設定或環境變數沒有憑證時改以互動方式詢問，同一次執行只會問一次。
func ensureClient() (*twilio.Client, error) {
	if apiClient != nil {
		return apiClient, nil
	}

	cfg := config.GetConfig()

	accountSID := cfg.Twilio.AccountSID
	authToken := cfg.Twilio.AuthToken

	if accountSID == "" {
		sid, err := prompt.AskAccountSID()
		if err != nil {
			return nil, err
		}
		accountSID = sid
	}

	if authToken == "" {
		token, err := prompt.AskAuthToken()
		if err != nil {
			return nil, err
		}
		authToken = token
	}

	client, err := twilio.NewClient(twilio.Config{
		AccountSID: accountSID,
		AuthToken:  authToken,
		BaseURL:    cfg.Twilio.BaseURL,
		Timeout:    cfg.Twilio.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Twilio client: %w", err)
	}

	apiClient = client

	return apiClient, nil
}
