package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"numbuy/internal/logger"
	"numbuy/internal/models"
	"numbuy/internal/twilio"
)

// numberPurchaser 定義購買流程所需的最小 Twilio 操作介面
type numberPurchaser interface {
	PurchaseNumber(ctx context.Context, phoneNumber, friendlyName string) (*models.OwnedNumber, error)
}

// PurchaseService 負責批量購買流程的協調
type PurchaseService struct {
	client numberPurchaser
	log    *logger.Logger
}

// NewPurchaseService 建立購買服務
func NewPurchaseService(client numberPurchaser) *PurchaseService {
	return &PurchaseService{
		client: client,
		log:    logger.GetDefaultLogger(),
	}
}

// BulkPurchase 依序購買所選號碼，回傳與輸入順序一致的結果清單。
// 第 i 個號碼（從 1 起算）的好記名稱為 "{namePrefix} {i}"。
// 單一號碼失敗只會記為失敗結果，不會中斷或跳過後續號碼，
// 也不會重試或回復已成功的購買。
func (s *PurchaseService) BulkPurchase(ctx context.Context, selected []models.CandidateNumber, namePrefix string) []models.PurchaseOutcome {
	runID := uuid.New().String()
	start := time.Now()

	s.log.LogBulkRunStart(runID, len(selected))

	outcomes := make([]models.PurchaseOutcome, 0, len(selected))
	for i, candidate := range selected {
		friendlyName := fmt.Sprintf("%s %d", namePrefix, i+1)

		owned, err := s.client.PurchaseNumber(ctx, candidate.PhoneNumber, friendlyName)
		if err != nil {
			outcomes = append(outcomes, models.PurchaseFailure{
				PhoneNumber: candidate.PhoneNumber,
				Reason:      failureReason(err),
			})
			continue
		}

		outcomes = append(outcomes, models.PurchaseSuccess{
			PhoneNumber:  owned.PhoneNumber,
			SID:          owned.SID,
			FriendlyName: owned.FriendlyName,
		})
	}

	successes, failures := models.SplitOutcomes(outcomes)
	s.log.LogBulkRunComplete(runID, len(successes), len(failures), time.Since(start))

	return outcomes
}

// failureReason 從錯誤中萃取對使用者有意義的失敗原因
func failureReason(err error) string {
	var apiErr *twilio.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	return "Unknown error"
}
