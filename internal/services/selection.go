package services

import (
	"errors"
	"fmt"

	"numbuy/internal/models"
)

// 批量購買搜尋時最少要求的候選數量
const minSearchLimit = 20

var (
	ErrEmptySelection  = errors.New("no phone numbers selected")
	ErrTooManySelected = errors.New("selected more numbers than requested quantity")
)

// OverFetchLimit 回傳搜尋時要求的候選數量。
// 多抓一倍讓使用者有替換預選項目的空間，最少仍要求 minSearchLimit 個。
func OverFetchLimit(quantity int) int {
	limit := quantity * 2
	if limit < minSearchLimit {
		limit = minSearchLimit
	}
	return limit
}

// TruncateCandidates 將候選清單裁剪到可顯示的上限（需求數量的兩倍）
func TruncateCandidates(candidates []models.CandidateNumber, quantity int) []models.CandidateNumber {
	max := quantity * 2
	if len(candidates) > max {
		return candidates[:max]
	}
	return candidates
}

// DefaultSelection 回傳預設勾選的候選索引，依序取前 quantity 個
func DefaultSelection(total, quantity int) []int {
	count := quantity
	if total < count {
		count = total
	}

	indexes := make([]int, 0, count)
	for i := 0; i < count; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// ValidateSelection 確認勾選數量介於 1 到 quantity 之間
func ValidateSelection(selectedCount, quantity int) error {
	if selectedCount == 0 {
		return ErrEmptySelection
	}
	if selectedCount > quantity {
		return fmt.Errorf("%w: selected %d, requested %d", ErrTooManySelected, selectedCount, quantity)
	}
	return nil
}
