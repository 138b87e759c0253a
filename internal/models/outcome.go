package models

// PurchaseOutcome 單一購買嘗試的結果，只會是 PurchaseSuccess 或 PurchaseFailure 其中之一
type PurchaseOutcome interface {
	// Number 回傳該筆結果對應的電話號碼
	Number() string

	outcome()
}

// PurchaseSuccess 購買成功，欄位皆為 Twilio 回傳的確認值
type PurchaseSuccess struct {
	PhoneNumber  string `json:"phone_number"`
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
}

// PurchaseFailure 購買失敗，Reason 為對使用者有意義的失敗原因
type PurchaseFailure struct {
	PhoneNumber string `json:"phone_number"`
	Reason      string `json:"reason"`
}

func (s PurchaseSuccess) Number() string { return s.PhoneNumber }
func (f PurchaseFailure) Number() string { return f.PhoneNumber }

func (PurchaseSuccess) outcome() {}
func (PurchaseFailure) outcome() {}

// SplitOutcomes 將結果分成成功與失敗兩組，各自保持原有順序
func SplitOutcomes(outcomes []PurchaseOutcome) ([]PurchaseSuccess, []PurchaseFailure) {
	var successes []PurchaseSuccess
	var failures []PurchaseFailure

	for _, outcome := range outcomes {
		switch v := outcome.(type) {
		case PurchaseSuccess:
			successes = append(successes, v)
		case PurchaseFailure:
			failures = append(failures, v)
		}
	}

	return successes, failures
}
