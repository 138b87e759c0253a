package twilio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// 錯誤類型定義
var (
	ErrMissingCredentials = errors.New("twilio credentials not provided")
	ErrInvalidAccountSID  = errors.New("twilio account SID format invalid")
	ErrInvalidNumberSID   = errors.New("phone number SID format invalid")
	ErrRequestFailed      = errors.New("twilio request failed")
)

// APIError 包裝 Twilio REST API 回傳的錯誤，提供更多上下文信息
type APIError struct {
	Op       string // 操作名稱
	Status   int    // HTTP 狀態碼
	Code     int    // Twilio 錯誤代碼
	Message  string // 錯誤訊息
	MoreInfo string // 說明文件連結
	Err      error  // 底層錯誤
}

// Error 實現error接口
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("twilio %s failed: %s (status: %d, code: %d)",
			e.Op, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("twilio %s failed: %s (status: %d)",
		e.Op, e.Message, e.Status)
}

// Unwrap 支持errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError 創建新的 API 錯誤
func NewAPIError(op string, status, code int, message, moreInfo string) *APIError {
	return &APIError{
		Op:       op,
		Status:   status,
		Code:     code,
		Message:  message,
		MoreInfo: moreInfo,
		Err:      ErrRequestFailed,
	}
}

// decodeAPIError 將非 2xx 回應內容解析為 APIError。
// Twilio 錯誤內容為 {"code", "message", "more_info", "status"}，
// 無法解析時退回使用原始內容作為訊息。
func decodeAPIError(op string, status int, body []byte) *APIError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return NewAPIError(op, status, parsed.Code, parsed.Message, parsed.MoreInfo)
	}

	return NewAPIError(op, status, 0, strings.TrimSpace(string(body)), "")
}
