package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"numbuy/internal/models"
)

// MenuAction 主選單可執行的動作
type MenuAction string

const (
	ActionListNumbers   MenuAction = "list-numbers"
	ActionSearchNumbers MenuAction = "search-numbers"
	ActionPurchaseOne   MenuAction = "purchase-number"
	ActionBulkPurchase  MenuAction = "bulk-purchase"
	ActionReleaseNumber MenuAction = "release-number"
	ActionRenameNumber  MenuAction = "rename-number"
	ActionExit          MenuAction = "exit"
)

var menuOptions = []struct {
	label  string
	action MenuAction
}{
	{"列出已擁有的號碼", ActionListNumbers},
	{"搜尋可購買的號碼", ActionSearchNumbers},
	{"購買單一號碼", ActionPurchaseOne},
	{"批量購買號碼", ActionBulkPurchase},
	{"釋放已擁有的號碼", ActionReleaseNumber},
	{"重新命名號碼", ActionRenameNumber},
	{"離開", ActionExit},
}

// SelectMainMenu 顯示主選單並回傳選擇的動作
func SelectMainMenu() (MenuAction, error) {
	labels := make([]string, 0, len(menuOptions))
	for _, option := range menuOptions {
		labels = append(labels, option.label)
	}

	var chosen int
	question := &survey.Select{
		Message:  "請選擇要執行的操作：",
		Options:  labels,
		PageSize: len(labels),
	}
	if err := survey.AskOne(question, &chosen); err != nil {
		return "", err
	}

	return menuOptions[chosen].action, nil
}

// SearchMode 搜尋方式
type SearchMode int

const (
	SearchByAreaCode SearchMode = iota
	SearchByCountry
)

// AskSearchMode 詢問要用區碼還是國家搜尋
func AskSearchMode(defaultCountry string) (SearchMode, error) {
	var chosen int
	question := &survey.Select{
		Message: "請選擇搜尋方式：",
		Options: []string{
			fmt.Sprintf("依區碼搜尋（%s）", defaultCountry),
			"依國家搜尋",
		},
	}
	if err := survey.AskOne(question, &chosen); err != nil {
		return SearchByAreaCode, err
	}

	return SearchMode(chosen), nil
}

// AskAreaCode 詢問三位數字的區碼
func AskAreaCode() (string, error) {
	var areaCode string
	question := &survey.Input{
		Message: "請輸入區碼（三位數字）：",
	}
	if err := survey.AskOne(question, &areaCode, survey.WithValidator(ValidateAreaCode)); err != nil {
		return "", err
	}

	return strings.TrimSpace(areaCode), nil
}

// AskCountry 詢問兩位大寫字母的國家代碼
func AskCountry(defaultCountry string) (string, error) {
	var country string
	question := &survey.Input{
		Message: "請輸入國家代碼（兩位大寫字母）：",
		Default: defaultCountry,
	}
	if err := survey.AskOne(question, &country, survey.WithValidator(ValidateCountry)); err != nil {
		return "", err
	}

	return strings.TrimSpace(country), nil
}

// 能力選項字串，勾選時顯示給使用者
const (
	capabilityVoice = "語音 (voice)"
	capabilitySMS   = "簡訊 (SMS)"
	capabilityMMS   = "多媒體訊息 (MMS)"
)

// AskCapabilities 詢問號碼必須支援的通訊能力，不勾選表示不過濾
func AskCapabilities() (models.Capabilities, error) {
	var selected []string
	question := &survey.MultiSelect{
		Message: "請勾選號碼必須支援的能力（不勾選表示不限）：",
		Options: []string{capabilityVoice, capabilitySMS, capabilityMMS},
	}
	if err := survey.AskOne(question, &selected); err != nil {
		return models.Capabilities{}, err
	}

	var caps models.Capabilities
	for _, option := range selected {
		switch option {
		case capabilityVoice:
			caps.Voice = true
		case capabilitySMS:
			caps.SMS = true
		case capabilityMMS:
			caps.MMS = true
		}
	}

	return caps, nil
}

// AskQuantity 詢問要購買的號碼數量
func AskQuantity(max int) (int, error) {
	var answer string
	question := &survey.Input{
		Message: fmt.Sprintf("請輸入要購買的號碼數量（1-%d）：", max),
	}
	if err := survey.AskOne(question, &answer, survey.WithValidator(QuantityValidator(max))); err != nil {
		return 0, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity: %w", err)
	}

	return quantity, nil
}

// AskLimit 詢問要顯示的搜尋結果數量
func AskLimit(defaultLimit, max int) (int, error) {
	var answer string
	question := &survey.Input{
		Message: fmt.Sprintf("請輸入要顯示的號碼數量（1-%d）：", max),
		Default: strconv.Itoa(defaultLimit),
	}
	if err := survey.AskOne(question, &answer, survey.WithValidator(QuantityValidator(max))); err != nil {
		return 0, err
	}

	limit, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid limit: %w", err)
	}

	return limit, nil
}

// AskFriendlyName 詢問號碼的好記名稱
func AskFriendlyName() (string, error) {
	var name string
	question := &survey.Input{
		Message: "請輸入號碼的好記名稱：",
	}
	if err := survey.AskOne(question, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// AskNamePrefix 詢問批量號碼的名稱前綴，第 i 個號碼會命名為「前綴 i」
func AskNamePrefix() (string, error) {
	var prefix string
	question := &survey.Input{
		Message: "請輸入批量號碼的名稱前綴：",
	}
	if err := survey.AskOne(question, &prefix, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(prefix), nil
}

// AskAccountSID 詢問 Twilio 帳戶 SID
func AskAccountSID() (string, error) {
	var sid string
	question := &survey.Input{
		Message: "請輸入 Twilio Account SID：",
	}
	if err := survey.AskOne(question, &sid, survey.WithValidator(ValidateAccountSID)); err != nil {
		return "", err
	}

	return strings.TrimSpace(sid), nil
}

// AskAuthToken 詢問 Twilio Auth Token，輸入時隱藏內容
func AskAuthToken() (string, error) {
	var token string
	question := &survey.Password{
		Message: "請輸入 Twilio Auth Token：",
	}
	if err := survey.AskOne(question, &token, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(token), nil
}

// PickCandidates 讓使用者勾選要購買的號碼，回傳所選索引（依清單順序）
func PickCandidates(candidates []models.CandidateNumber, defaults []int) ([]int, error) {
	options := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, FormatCandidate(candidate))
	}

	var indexes []int
	question := &survey.MultiSelect{
		Message:  "請勾選要購買的號碼：",
		Options:  options,
		Default:  defaults,
		PageSize: 15,
	}
	if err := survey.AskOne(question, &indexes); err != nil {
		return nil, err
	}

	return indexes, nil
}

// PickCandidate 讓使用者從候選清單選擇單一號碼，回傳所選索引
func PickCandidate(candidates []models.CandidateNumber) (int, error) {
	options := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, FormatCandidate(candidate))
	}

	var index int
	question := &survey.Select{
		Message:  "請選擇要購買的號碼：",
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(question, &index); err != nil {
		return 0, err
	}

	return index, nil
}

// PickOwnedNumber 讓使用者從已擁有的號碼中選擇一個，回傳所選索引
func PickOwnedNumber(numbers []models.OwnedNumber) (int, error) {
	options := make([]string, 0, len(numbers))
	for _, number := range numbers {
		options = append(options, FormatOwnedNumber(number))
	}

	var index int
	question := &survey.Select{
		Message:  "請選擇號碼：",
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(question, &index); err != nil {
		return 0, err
	}

	return index, nil
}

// Confirm 詢問是否繼續
func Confirm(message string, defaultAnswer bool) (bool, error) {
	var confirmed bool
	question := &survey.Confirm{
		Message: message,
		Default: defaultAnswer,
	}
	if err := survey.AskOne(question, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}

// FormatCandidate 將候選號碼格式化為單行選項文字
func FormatCandidate(candidate models.CandidateNumber) string {
	location := candidate.Locality
	if candidate.Region != "" {
		if location != "" {
			location += ", "
		}
		location += candidate.Region
	}
	if location == "" {
		location = candidate.FriendlyName
	}

	return fmt.Sprintf("%s（%s）[%s]", candidate.PhoneNumber, location, candidate.Capabilities)
}

// FormatOwnedNumber 將已擁有號碼格式化為單行選項文字
func FormatOwnedNumber(number models.OwnedNumber) string {
	return fmt.Sprintf("%s（%s）[%s]", number.PhoneNumber, number.FriendlyName, number.Capabilities)
}
