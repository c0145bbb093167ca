package model

import (
	"payout-service/src/internal/entity"
	"payout-service/src/internal/payout"
)

type ProcessPayoutRequest struct {
	OrderID string `json:"orderId" validate:"required,max=100"`
}

// PayoutResult is the terminal state of one successful orchestration; failures
// travel in the response envelope instead. In test mode the transactions are
// the would-be entries, never persisted.
type PayoutResult struct {
	Success      bool                 `json:"success"`
	OrderID      string               `json:"order_id"`
	TestMode     bool                 `json:"test_mode,omitempty"`
	Calculation  *payout.Calculation  `json:"calculations,omitempty"`
	Transactions []entity.Transaction `json:"transactions,omitempty"`
}

// PayoutTransactionsResponse lists the ledger entries written for one order.
type PayoutTransactionsResponse struct {
	OrderID      string               `json:"order_id"`
	PayoutStatus string               `json:"payout_status"`
	Transactions []entity.Transaction `json:"transactions"`
}

// PayoutTaskPayload is the asynq payload for payout:process tasks.
type PayoutTaskPayload struct {
	OrderID string `json:"order_id"`
}
