package twilio

import "numbuy/internal/models"

// Twilio 2010-04-01 API 的回應結構

// incomingPhoneNumber 已擁有號碼的回應欄位
type incomingPhoneNumber struct {
	SID          string              `json:"sid"`
	AccountSID   string              `json:"account_sid"`
	PhoneNumber  string              `json:"phone_number"`
	FriendlyName string              `json:"friendly_name"`
	Capabilities models.Capabilities `json:"capabilities"`
	DateCreated  string              `json:"date_created"`
	Status       string              `json:"status"`
}

func (n incomingPhoneNumber) toOwned() models.OwnedNumber {
	return models.OwnedNumber{
		SID:          n.SID,
		PhoneNumber:  n.PhoneNumber,
		FriendlyName: n.FriendlyName,
		Capabilities: n.Capabilities,
	}
}

// incomingPhoneNumberPage 已擁有號碼的分頁回應，
// next_page_uri 非空表示還有下一頁
type incomingPhoneNumberPage struct {
	IncomingPhoneNumbers []incomingPhoneNumber `json:"incoming_phone_numbers"`
	Page                 int                   `json:"page"`
	PageSize             int                   `json:"page_size"`
	NextPageURI          string                `json:"next_page_uri"`
	URI                  string                `json:"uri"`
}

// availablePhoneNumber 可購買號碼的回應欄位
type availablePhoneNumber struct {
	PhoneNumber  string              `json:"phone_number"`
	FriendlyName string              `json:"friendly_name"`
	Locality     string              `json:"locality"`
	Region       string              `json:"region"`
	ISOCountry   string              `json:"iso_country"`
	Capabilities models.Capabilities `json:"capabilities"`
}

func (n availablePhoneNumber) toCandidate() models.CandidateNumber {
	return models.CandidateNumber{
		PhoneNumber:  n.PhoneNumber,
		FriendlyName: n.FriendlyName,
		Locality:     n.Locality,
		Region:       n.Region,
		Capabilities: n.Capabilities,
	}
}

type availablePhoneNumberPage struct {
	AvailablePhoneNumbers []availablePhoneNumber `json:"available_phone_numbers"`
	URI                   string                 `json:"uri"`
}

// apiErrorBody Twilio 錯誤回應格式
type apiErrorBody struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
