// Package render 負責把號碼清單與購買結果輸出成終端機表格
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"numbuy/internal/models"
)

// OwnedNumbersTable 輸出帳戶已擁有的號碼表格
func OwnedNumbersTable(w io.Writer, numbers []models.OwnedNumber) {
	if len(numbers) == 0 {
		fmt.Fprintln(w, "帳戶裡目前沒有任何號碼。")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "電話號碼", "好記名稱", "SID", "功能"})
	table.SetAutoWrapText(false)

	for i, number := range numbers {
		table.Append([]string{
			strconv.Itoa(i + 1),
			number.PhoneNumber,
			number.FriendlyName,
			number.SID,
			number.Capabilities.String(),
		})
	}

	table.Render()
	fmt.Fprintf(w, "共 %d 個號碼\n", len(numbers))
}

// CandidatesTable 輸出搜尋到的可購買號碼表格
func CandidatesTable(w io.Writer, candidates []models.CandidateNumber) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "沒有符合條件的號碼。")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "電話號碼", "城市", "地區", "功能"})
	table.SetAutoWrapText(false)

	for i, candidate := range candidates {
		table.Append([]string{
			strconv.Itoa(i + 1),
			candidate.PhoneNumber,
			candidate.Locality,
			candidate.Region,
			candidate.Capabilities.String(),
		})
	}

	table.Render()
	fmt.Fprintf(w, "共找到 %d 個號碼\n", len(candidates))
}

// OutcomeSummary 輸出批量購買的結果摘要，成功與失敗分開列表
func OutcomeSummary(w io.Writer, outcomes []models.PurchaseOutcome) {
	successes, failures := models.SplitOutcomes(outcomes)

	fmt.Fprintf(w, "購買完成：成功 %d 筆，失敗 %d 筆\n", len(successes), len(failures))

	if len(successes) > 0 {
		fmt.Fprintln(w, "成功購買的號碼：")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"電話號碼", "SID", "好記名稱"})
		table.SetAutoWrapText(false)
		for _, success := range successes {
			table.Append([]string{success.PhoneNumber, success.SID, success.FriendlyName})
		}
		table.Render()
	}

	if len(failures) > 0 {
		fmt.Fprintln(w, "購買失敗的號碼：")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"電話號碼", "失敗原因"})
		table.SetAutoWrapText(false)
		for _, failure := range failures {
			table.Append([]string{failure.PhoneNumber, failure.Reason})
		}
		table.Render()
	}
}

// PurchaseReceipt 輸出單一號碼購買成功的資訊
func PurchaseReceipt(w io.Writer, number *models.OwnedNumber) {
	fmt.Fprintf(w, "購買成功：%s（SID: %s，名稱：%s）\n", number.PhoneNumber, number.SID, number.FriendlyName)
}
