package converter

import (
	"time"

	"payout-service/src/internal/model"
	"payout-service/src/internal/payout"
)

func PayoutToEvent(orderID string, calc *payout.Calculation) *model.PayoutEvent {
	return &model.PayoutEvent{
		ID:           orderID,
		OrderID:      orderID,
		CompletedAt:  time.Now().UTC(),
		Calculations: calc,
	}
}
