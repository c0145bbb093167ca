package entity

import "time"

const (
	RoleMerchant = "merchant"
	RoleDriver   = "driver"
	RoleHouse    = "house"

	TransactionTypePayout     = "payout"
	TransactionTypeRefund     = "refund"
	TransactionTypeAdjustment = "adjustment"

	TransactionStatusPending = "PENDING"
)

// Transaction is a ledger entry. Rows are immutable once written;
// corrections are new adjustment transactions.
type Transaction struct {
	TransactionID     string    `db:"id" json:"transaction_id"`
	OrderID           string    `db:"order_id" json:"order_id"`
	RecipientID       string    `db:"recipient_id" json:"recipient_id"`
	Role              string    `db:"role" json:"role"`
	Amount            float64   `db:"amount" json:"amount"`
	Description       string    `db:"description" json:"description"`
	TransactionType   string    `db:"transaction_type" json:"transaction_type"`
	Status            string    `db:"status" json:"status"`
	ExternalReference *string   `db:"external_reference" json:"external_reference,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
