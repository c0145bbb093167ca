package model

import (
	"time"

	"payout-service/src/internal/payout"
)

// PayoutEvent is the best-effort notification published after a payout is
// applied. Consumers must tolerate missing events.
type PayoutEvent struct {
	ID           string              `json:"id,omitempty"`
	OrderID      string              `json:"order_id"`
	CompletedAt  time.Time           `json:"completed_at"`
	Calculations *payout.Calculation `json:"calculations,omitempty"`
}

func (e *PayoutEvent) GetId() string {
	return e.ID
}
