package twilio

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"numbuy/internal/logger"
	"numbuy/internal/models"
)

const (
	apiVersion     = "2010-04-01"
	defaultBaseURL = "https://api.twilio.com"
	defaultTimeout = 30 * time.Second

	// 列出已擁有號碼時每頁的數量
	ownedPageSize = 50
)

var (
	accountSIDPattern = regexp.MustCompile(`^AC[0-9a-f]{32}$`)
	numberSIDPattern  = regexp.MustCompile(`^PN[0-9a-f]{32}$`)
)

// Config 建立 Client 所需的連線參數
type Config struct {
	AccountSID string
	AuthToken  string
	BaseURL    string
	Timeout    time.Duration
}

// Client 封裝 Twilio REST API 操作，單一實例可重複使用
type Client struct {
	http       *resty.Client
	accountSID string
	log        *logger.Logger
}

// NewClient 建立帶有基本認證的 Twilio REST 客戶端。
// 購買操作不可重試，因此不設定任何自動重試。
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, ErrMissingCredentials
	}
	if !accountSIDPattern.MatchString(cfg.AccountSID) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAccountSID, cfg.AccountSID)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetHeader("Accept", "application/json")

	return &Client{
		http:       httpClient,
		accountSID: cfg.AccountSID,
		log:        logger.GetDefaultLogger(),
	}, nil
}

// AccountSID 回傳客戶端綁定的帳戶識別碼
func (c *Client) AccountSID() string {
	return c.accountSID
}

// ListOwnedNumbers 取得帳戶已擁有的所有號碼，自動跟隨分頁直到取完
func (c *Client) ListOwnedNumbers(ctx context.Context) ([]models.OwnedNumber, error) {
	path := fmt.Sprintf("/%s/Accounts/%s/IncomingPhoneNumbers.json", apiVersion, c.accountSID)

	var owned []models.OwnedNumber
	firstPage := true

	for {
		var page incomingPhoneNumberPage

		req := c.http.R().
			SetContext(ctx).
			SetResult(&page)
		if firstPage {
			// next_page_uri 已帶有完整查詢參數，只在第一頁設定分頁大小
			req = req.SetQueryParam("PageSize", strconv.Itoa(ownedPageSize))
			firstPage = false
		}

		start := time.Now()
		c.log.LogRequestStart(http.MethodGet, path)

		resp, err := req.Get(path)
		if err != nil {
			c.log.LogRequestFailed(http.MethodGet, path, err, time.Since(start))
			return nil, fmt.Errorf("failed to list owned numbers: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			apiErr := decodeAPIError("list_owned_numbers", resp.StatusCode(), resp.Body())
			c.log.LogRequestFailed(http.MethodGet, path, apiErr, time.Since(start))
			return nil, apiErr
		}

		c.log.LogRequestSuccess(http.MethodGet, path, resp.StatusCode(), time.Since(start))

		for _, number := range page.IncomingPhoneNumbers {
			owned = append(owned, number.toOwned())
		}

		if page.NextPageURI == "" {
			break
		}
		path = page.NextPageURI
	}

	return owned, nil
}

// SearchAvailableNumbers 依條件搜尋可購買的本地號碼。
// 能力過濾只在要求支援時帶上參數，false 表示不過濾而非排除。
func (c *Client) SearchAvailableNumbers(ctx context.Context, criteria models.SearchCriteria) ([]models.CandidateNumber, error) {
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search criteria: %w", err)
	}

	path := fmt.Sprintf("/%s/Accounts/%s/AvailablePhoneNumbers/%s/Local.json",
		apiVersion, c.accountSID, criteria.Country)

	params := map[string]string{
		"PageSize": strconv.Itoa(criteria.Limit),
	}
	if criteria.AreaCode != "" {
		params["AreaCode"] = criteria.AreaCode
	}
	if criteria.Voice {
		params["VoiceEnabled"] = "true"
	}
	if criteria.SMS {
		params["SmsEnabled"] = "true"
	}
	if criteria.MMS {
		params["MmsEnabled"] = "true"
	}

	c.log.LogSearchStart(criteria.Country, criteria.AreaCode, criteria.Limit)
	start := time.Now()

	var page availablePhoneNumberPage
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&page).
		Get(path)
	if err != nil {
		c.log.LogSearchFailed(criteria.Country, err, time.Since(start))
		return nil, fmt.Errorf("failed to search available numbers: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		apiErr := decodeAPIError("search_available_numbers", resp.StatusCode(), resp.Body())
		c.log.LogSearchFailed(criteria.Country, apiErr, time.Since(start))
		return nil, apiErr
	}

	candidates := make([]models.CandidateNumber, 0, len(page.AvailablePhoneNumbers))
	for _, number := range page.AvailablePhoneNumbers {
		candidates = append(candidates, number.toCandidate())
	}

	c.log.LogSearchSuccess(len(candidates), time.Since(start))

	return candidates, nil
}

// PurchaseNumber 購買指定號碼並設定好記名稱，回傳 Twilio 確認後的號碼資料
func (c *Client) PurchaseNumber(ctx context.Context, phoneNumber, friendlyName string) (*models.OwnedNumber, error) {
	request := models.PurchaseRequest{PhoneNumber: phoneNumber, FriendlyName: friendlyName}
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid purchase request: %w", err)
	}

	path := fmt.Sprintf("/%s/Accounts/%s/IncomingPhoneNumbers.json", apiVersion, c.accountSID)

	c.log.LogPurchaseAttempt(phoneNumber, friendlyName)
	start := time.Now()

	var created incomingPhoneNumber
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"PhoneNumber":  phoneNumber,
			"FriendlyName": friendlyName,
		}).
		SetResult(&created).
		Post(path)
	if err != nil {
		c.log.LogPurchaseFailed(phoneNumber, err)
		return nil, fmt.Errorf("failed to purchase number %s: %w", phoneNumber, err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		apiErr := decodeAPIError("purchase_number", resp.StatusCode(), resp.Body())
		c.log.LogPurchaseFailed(phoneNumber, apiErr)
		return nil, apiErr
	}

	owned := created.toOwned()
	c.log.LogPurchaseSuccess(owned.PhoneNumber, owned.SID, time.Since(start))

	return &owned, nil
}

// ReleaseNumber 釋放（刪除）已擁有的號碼，成功時 Twilio 回傳 204
func (c *Client) ReleaseNumber(ctx context.Context, sid string) error {
	if !numberSIDPattern.MatchString(sid) {
		return fmt.Errorf("%w: %s", ErrInvalidNumberSID, sid)
	}

	path := fmt.Sprintf("/%s/Accounts/%s/IncomingPhoneNumbers/%s.json", apiVersion, c.accountSID, sid)

	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		Delete(path)
	if err != nil {
		c.log.LogReleaseFailed(sid, err)
		return fmt.Errorf("failed to release number %s: %w", sid, err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		apiErr := decodeAPIError("release_number", resp.StatusCode(), resp.Body())
		c.log.LogReleaseFailed(sid, apiErr)
		return apiErr
	}

	c.log.LogReleaseSuccess(sid, time.Since(start))

	return nil
}

// RenameNumber 更新已擁有號碼的好記名稱
func (c *Client) RenameNumber(ctx context.Context, sid, friendlyName string) (*models.OwnedNumber, error) {
	if !numberSIDPattern.MatchString(sid) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNumberSID, sid)
	}

	path := fmt.Sprintf("/%s/Accounts/%s/IncomingPhoneNumbers/%s.json", apiVersion, c.accountSID, sid)

	start := time.Now()
	c.log.LogRequestStart(http.MethodPost, path)

	var updated incomingPhoneNumber
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"FriendlyName": friendlyName,
		}).
		SetResult(&updated).
		Post(path)
	if err != nil {
		c.log.LogRequestFailed(http.MethodPost, path, err, time.Since(start))
		return nil, fmt.Errorf("failed to rename number %s: %w", sid, err)
	}
	if resp.StatusCode() != http.StatusOK {
		apiErr := decodeAPIError("rename_number", resp.StatusCode(), resp.Body())
		c.log.LogRequestFailed(http.MethodPost, path, apiErr, time.Since(start))
		return nil, apiErr
	}

	c.log.LogRequestSuccess(http.MethodPost, path, resp.StatusCode(), time.Since(start))

	owned := updated.toOwned()
	return &owned, nil
}
