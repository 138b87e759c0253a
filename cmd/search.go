package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numbuy/internal/config"
	"numbuy/internal/models"
	"numbuy/internal/prompt"
	"numbuy/internal/render"
)

// Twilio 單次查詢最多回傳的號碼數量
const maxSearchResults = 1000

var (
	searchAreaCode string
	searchCountry  string
	searchVoice    bool
	searchSMS      bool
	searchMMS      bool
	searchLimit    int
)

func init() {
	searchCmd.Flags().StringVarP(&searchAreaCode, "area-code", "a", "", "三位數字區碼，例如 415")
	searchCmd.Flags().StringVarP(&searchCountry, "country", "c", "", "兩位大寫字母國家代碼，例如 US")
	searchCmd.Flags().BoolVar(&searchVoice, "voice", false, "只顯示支援語音的號碼")
	searchCmd.Flags().BoolVar(&searchSMS, "sms", false, "只顯示支援簡訊的號碼")
	searchCmd.Flags().BoolVar(&searchMMS, "mms", false, "只顯示支援多媒體訊息的號碼")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "顯示數量上限，0 表示使用設定值")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "搜尋可購買的號碼",
	Long:  "依區碼或國家搜尋可購買的號碼。\n沒有指定 --area-code 或 --country 時會以互動方式詢問搜尋條件。",
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchAreaCode == "" && searchCountry == "" {
			return runSearchWorkflow(cmd.Context())
		}

		return searchAndRender(cmd.Context(), searchCriteriaFromFlags(config.GetConfig()))
	},
}

// searchCriteriaFromFlags 由命令列旗標組出搜尋條件，缺漏的部分取設定值
func searchCriteriaFromFlags(cfg *config.Config) models.SearchCriteria {
	criteria := models.SearchCriteria{
		Country:  searchCountry,
		AreaCode: searchAreaCode,
		Voice:    searchVoice,
		SMS:      searchSMS,
		MMS:      searchMMS,
		Limit:    searchLimit,
	}

	if criteria.Country == "" {
		criteria.Country = cfg.App.Country
	}
	if criteria.Limit == 0 {
		criteria.Limit = cfg.App.SearchPageSize
	}

	return criteria
}

// runSearchWorkflow 互動式搜尋流程：詢問條件後輸出候選號碼表格
func runSearchWorkflow(ctx context.Context) error {
	cfg := config.GetConfig()

	limit, err := prompt.AskLimit(cfg.App.SearchPageSize, maxSearchResults)
	if err != nil {
		return err
	}

	criteria, err := askSearchCriteria(limit)
	if err != nil {
		return err
	}

	return searchAndRender(ctx, criteria)
}

// askSearchCriteria 互動式詢問搜尋條件，顯示數量由呼叫端決定
func askSearchCriteria(limit int) (models.SearchCriteria, error) {
	cfg := config.GetConfig()

	criteria := models.SearchCriteria{
		Country: cfg.App.Country,
		Limit:   limit,
	}

	mode, err := prompt.AskSearchMode(cfg.App.Country)
	if err != nil {
		return models.SearchCriteria{}, err
	}

	switch mode {
	case prompt.SearchByAreaCode:
		areaCode, err := prompt.AskAreaCode()
		if err != nil {
			return models.SearchCriteria{}, err
		}
		criteria.AreaCode = areaCode
	case prompt.SearchByCountry:
		country, err := prompt.AskCountry(cfg.App.Country)
		if err != nil {
			return models.SearchCriteria{}, err
		}
		criteria.Country = country
	}

	caps, err := prompt.AskCapabilities()
	if err != nil {
		return models.SearchCriteria{}, err
	}
	criteria.Voice = caps.Voice
	criteria.SMS = caps.SMS
	criteria.MMS = caps.MMS

	return criteria, nil
}

// searchAndRender 執行搜尋並輸出結果表格
func searchAndRender(ctx context.Context, criteria models.SearchCriteria) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	fmt.Println("正在搜尋號碼...")

	candidates, err := client.SearchAvailableNumbers(ctx, criteria)
	if err != nil {
		return err
	}

	render.CandidatesTable(os.Stdout, candidates)

	return nil
}
