package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numbuy/internal/render"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "列出帳戶已擁有的號碼",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListWorkflow(cmd.Context())
	},
}

// runListWorkflow 取得帳戶所有號碼並輸出表格
func runListWorkflow(ctx context.Context) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	fmt.Println("正在取得號碼清單...")

	numbers, err := client.ListOwnedNumbers(ctx)
	if err != nil {
		return err
	}

	render.OwnedNumbersTable(os.Stdout, numbers)

	return nil
}
