package models

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Capabilities 號碼支援的通訊能力
type Capabilities struct {
	Voice bool `json:"voice"`
	SMS   bool `json:"sms"`
	MMS   bool `json:"mms"`
}

// UnmarshalJSON 解析 Twilio 回傳的能力欄位。
// 可購買號碼端點回傳 "SMS"/"MMS" 大寫鍵，已擁有號碼端點回傳小寫鍵，
// 這裡統一以不分大小寫的方式處理。
func (c *Capabilities) UnmarshalJSON(data []byte) error {
	raw := make(map[string]bool)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, enabled := range raw {
		switch strings.ToLower(key) {
		case "voice":
			c.Voice = enabled
		case "sms":
			c.SMS = enabled
		case "mms":
			c.MMS = enabled
		}
	}

	return nil
}

// String returns the string representation of Capabilities
func (c Capabilities) String() string {
	parts := make([]string, 0, 3)
	if c.Voice {
		parts = append(parts, "voice")
	}
	if c.SMS {
		parts = append(parts, "SMS")
	}
	if c.MMS {
		parts = append(parts, "MMS")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// SearchCriteria 搜尋可購買號碼的條件
type SearchCriteria struct {
	// 兩位大寫英文字母的國家代碼，例如 US、GB
	Country string `json:"country" validate:"required,len=2,uppercase"`

	// 三位數字的區碼，僅在預設國家下有意義，空字串表示不限區碼
	AreaCode string `json:"area_code,omitempty" validate:"omitempty,len=3,numeric"`

	// 必須支援的通訊能力，false 表示不過濾
	Voice bool `json:"voice"`
	SMS   bool `json:"sms"`
	MMS   bool `json:"mms"`

	// 搜尋結果數量上限
	Limit int `json:"limit" validate:"required,min=1,max=1000"`
}

// Validate 檢查搜尋條件是否合法
func (c *SearchCriteria) Validate() error {
	return validate.Struct(c)
}

// PurchaseRequest 購買號碼的請求參數
type PurchaseRequest struct {
	PhoneNumber  string `json:"phone_number" validate:"required,e164"`
	FriendlyName string `json:"friendly_name" validate:"omitempty,max=64"`
}

// Validate 檢查購買請求是否合法
func (r *PurchaseRequest) Validate() error {
	return validate.Struct(r)
}

// CandidateNumber 搜尋到的可購買號碼
type CandidateNumber struct {
	PhoneNumber  string       `json:"phone_number"`
	FriendlyName string       `json:"friendly_name"`
	Locality     string       `json:"locality,omitempty"`
	Region       string       `json:"region,omitempty"`
	Capabilities Capabilities `json:"capabilities"`
}

// OwnedNumber 帳戶已擁有的號碼
type OwnedNumber struct {
	SID          string       `json:"sid"`
	PhoneNumber  string       `json:"phone_number"`
	FriendlyName string       `json:"friendly_name"`
	Capabilities Capabilities `json:"capabilities"`
}
