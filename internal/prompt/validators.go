package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

var (
	areaCodePattern   = regexp.MustCompile(`^[0-9]{3}$`)
	countryPattern    = regexp.MustCompile(`^[A-Z]{2}$`)
	accountSIDPattern = regexp.MustCompile(`^AC[0-9a-f]{32}$`)
)

// ValidateAreaCode 檢查區碼格式（三位數字）
func ValidateAreaCode(ans interface{}) error {
	value, ok := ans.(string)
	if !ok || !areaCodePattern.MatchString(strings.TrimSpace(value)) {
		return errors.New("區碼必須是三位數字，例如 415")
	}
	return nil
}

// ValidateCountry 檢查國家代碼格式（兩位大寫英文字母）
func ValidateCountry(ans interface{}) error {
	value, ok := ans.(string)
	if !ok || !countryPattern.MatchString(strings.TrimSpace(value)) {
		return errors.New("國家代碼必須是兩位大寫英文字母，例如 US、GB")
	}
	return nil
}

// ValidateAccountSID 檢查 Twilio 帳戶 SID 格式
func ValidateAccountSID(ans interface{}) error {
	value, ok := ans.(string)
	if !ok || !accountSIDPattern.MatchString(strings.TrimSpace(value)) {
		return errors.New("帳戶 SID 必須是 AC 開頭加上 32 位十六進位字元")
	}
	return nil
}

// QuantityValidator 回傳檢查購買數量範圍的驗證函數
func QuantityValidator(max int) survey.Validator {
	return func(ans interface{}) error {
		value, ok := ans.(string)
		if !ok {
			return errors.New("請輸入數字")
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.New("請輸入數字")
		}

		if quantity < 1 || quantity > max {
			return fmt.Errorf("數量必須介於 1 到 %d 之間", max)
		}

		return nil
	}
}
