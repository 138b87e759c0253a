package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numbuy/internal/config"
	"numbuy/internal/logger"
	"numbuy/internal/models"
	"numbuy/internal/prompt"
	"numbuy/internal/render"
	"numbuy/internal/services"
)

var bulkQuantity int

func init() {
	bulkCmd.Flags().IntVarP(&bulkQuantity, "quantity", "q", 0, "要購買的號碼數量，0 表示以互動方式詢問")
	rootCmd.AddCommand(bulkCmd)
}

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "批量搜尋並購買號碼",
	Long: "批量購買流程：詢問數量與搜尋條件，搜尋後勾選要購買的號碼，\n" +
		"確認後依序購買。單一號碼失敗不會中斷整批，最後輸出成功與失敗摘要。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkWorkflow(cmd.Context(), bulkQuantity)
	},
}

// runBulkWorkflow 批量購買流程。quantity 為 0 或超出範圍時改以互動方式詢問。
func runBulkWorkflow(ctx context.Context, quantity int) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	cfg := config.GetConfig()

	if quantity < 1 || quantity > cfg.App.MaxBulkQuantity {
		if quantity != 0 {
			fmt.Printf("數量必須介於 1 到 %d 之間。\n", cfg.App.MaxBulkQuantity)
		}
		quantity, err = prompt.AskQuantity(cfg.App.MaxBulkQuantity)
		if err != nil {
			return err
		}
	}

	// 多搜尋一些候選號碼，讓使用者有挑選空間
	criteria, err := askSearchCriteria(services.OverFetchLimit(quantity))
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

	candidates = services.TruncateCandidates(candidates, quantity)

	if len(candidates) < quantity {
		fmt.Printf("只找到 %d 個號碼，少於要求的 %d 個。\n", len(candidates), quantity)
		logger.GetDefaultLogger().Warn("fewer candidates than requested",
			"requested", quantity,
			"available", len(candidates),
		)
	}

	indexes, err := pickBulkCandidates(candidates, quantity)
	if err != nil {
		return err
	}
	selected := selectCandidates(candidates, indexes)

	namePrefix, err := prompt.AskNamePrefix()
	if err != nil {
		return err
	}

	confirmed, err := prompt.Confirm(fmt.Sprintf("確定要購買這 %d 個號碼嗎？", len(selected)), false)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("已取消購買。")
		return nil
	}

	fmt.Println("開始購買...")

	outcomes := services.NewPurchaseService(client).BulkPurchase(ctx, selected, namePrefix)

	render.OutcomeSummary(os.Stdout, outcomes)

	return nil
}

// pickBulkCandidates 讓使用者勾選號碼，預設勾選前 quantity 個。
// 勾選數量不符規定時顯示原因並重新勾選。
func pickBulkCandidates(candidates []models.CandidateNumber, quantity int) ([]int, error) {
	defaults := services.DefaultSelection(len(candidates), quantity)

	for {
		indexes, err := prompt.PickCandidates(candidates, defaults)
		if err != nil {
			return nil, err
		}

		if err := services.ValidateSelection(len(indexes), quantity); err != nil {
			switch {
			case errors.Is(err, services.ErrEmptySelection):
				fmt.Println("請至少勾選一個號碼。")
			case errors.Is(err, services.ErrTooManySelected):
				fmt.Printf("最多只能勾選 %d 個號碼，目前勾選了 %d 個。\n", quantity, len(indexes))
			default:
				return nil, err
			}
			continue
		}

		return indexes, nil
	}
}

// selectCandidates 依勾選的索引取出號碼，保持清單順序
func selectCandidates(candidates []models.CandidateNumber, indexes []int) []models.CandidateNumber {
	selected := make([]models.CandidateNumber, 0, len(indexes))
	for _, index := range indexes {
		if index < 0 || index >= len(candidates) {
			continue
		}
		selected = append(selected, candidates[index])
	}
	return selected
}
