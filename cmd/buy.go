package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numbuy/internal/config"
	"numbuy/internal/prompt"
	"numbuy/internal/render"
)

func init() {
	rootCmd.AddCommand(buyCmd)
}

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "搜尋並購買單一號碼",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuyWorkflow(cmd.Context())
	},
}

// runBuyWorkflow 單一號碼購買流程：搜尋、選擇、命名、確認後購買
func runBuyWorkflow(ctx context.Context) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	cfg := config.GetConfig()

	criteria, err := askSearchCriteria(cfg.App.SearchPageSize)
	if err != nil {
		return err
	}

	fmt.Println("正在搜尋號碼...")

	candidates, err := client.SearchAvailableNumbers(ctx, criteria)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("沒有符合條件的號碼。")
		return nil
	}

	index, err := prompt.PickCandidate(candidates)
	if err != nil {
		return err
	}
	chosen := candidates[index]

	friendlyName, err := prompt.AskFriendlyName()
	if err != nil {
		return err
	}

	confirmed, err := prompt.Confirm(fmt.Sprintf("確定要購買 %s 嗎？", chosen.PhoneNumber), false)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("已取消購買。")
		return nil
	}

	owned, err := client.PurchaseNumber(ctx, chosen.PhoneNumber, friendlyName)
	if err != nil {
		return err
	}

	render.PurchaseReceipt(os.Stdout, owned)

	return nil
}
