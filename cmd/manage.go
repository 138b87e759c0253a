package cmd

import (
	"context"
	"fmt"

	"numbuy/internal/prompt"
)

// runReleaseWorkflow 釋放號碼流程：選擇號碼、確認後刪除
func runReleaseWorkflow(ctx context.Context) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	fmt.Println("正在取得號碼清單...")

	numbers, err := client.ListOwnedNumbers(ctx)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		fmt.Println("帳戶裡目前沒有任何號碼。")
		return nil
	}

	index, err := prompt.PickOwnedNumber(numbers)
	if err != nil {
		return err
	}
	chosen := numbers[index]

	confirmed, err := prompt.Confirm(
		fmt.Sprintf("釋放後 %s 將無法復原，確定要釋放嗎？", chosen.PhoneNumber), false)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("已取消。")
		return nil
	}

	if err := client.ReleaseNumber(ctx, chosen.SID); err != nil {
		return err
	}

	fmt.Printf("已釋放號碼 %s。\n", chosen.PhoneNumber)

	return nil
}

// runRenameWorkflow 重新命名流程：選擇號碼後更新好記名稱
func runRenameWorkflow(ctx context.Context) error {
	client, err := ensureClient()
	if err != nil {
		return err
	}

	fmt.Println("正在取得號碼清單...")

	numbers, err := client.ListOwnedNumbers(ctx)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		fmt.Println("帳戶裡目前沒有任何號碼。")
		return nil
	}

	index, err := prompt.PickOwnedNumber(numbers)
	if err != nil {
		return err
	}
	chosen := numbers[index]

	friendlyName, err := prompt.AskFriendlyName()
	if err != nil {
		return err
	}

	updated, err := client.RenameNumber(ctx, chosen.SID, friendlyName)
	if err != nil {
		return err
	}

	fmt.Printf("已將 %s 重新命名為 %s。\n", updated.PhoneNumber, updated.FriendlyName)

	return nil
}
