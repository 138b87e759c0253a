package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"

	"numbuy/internal/logger"
	"numbuy/internal/prompt"
)

// runMainMenu 互動式主選單迴圈。
// 工作流程出錯時記錄並顯示錯誤，然後回到選單，不會結束程序。
// 在主選單按 Ctrl-C 視同選擇離開。
func runMainMenu(ctx context.Context) error {
	fmt.Println("歡迎使用 numbuy！")
	fmt.Println()

	for {
		action, err := prompt.SelectMainMenu()
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println("再見！")
				return nil
			}
			return err
		}

		if action == prompt.ActionExit {
			fmt.Println("再見！")
			return nil
		}

		if err := runMenuAction(ctx, action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				// 工作流程中按 Ctrl-C 只取消該流程
				fmt.Println("已取消。")
				fmt.Println()
				continue
			}

			logger.GetDefaultLogger().Error("workflow failed",
				"action", string(action),
				"error", err.Error(),
			)
			fmt.Fprintf(os.Stderr, "操作失敗：%v\n", err)
		}

		fmt.Println()
	}
}

// runMenuAction 將選單動作派送到對應的工作流程
func runMenuAction(ctx context.Context, action prompt.MenuAction) error {
	switch action {
	case prompt.ActionListNumbers:
		return runListWorkflow(ctx)
	case prompt.ActionSearchNumbers:
		return runSearchWorkflow(ctx)
	case prompt.ActionPurchaseOne:
		return runBuyWorkflow(ctx)
	case prompt.ActionBulkPurchase:
		return runBulkWorkflow(ctx, 0)
	case prompt.ActionReleaseNumber:
		return runReleaseWorkflow(ctx)
	case prompt.ActionRenameNumber:
		return runRenameWorkflow(ctx)
	default:
		return fmt.Errorf("unknown menu action: %s", action)
	}
}
