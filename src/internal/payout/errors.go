package payout

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotEligible covers a missing order, an order that is not
	// completed, and an order that was already paid out. Callers get the
	// distinction in the wrapped detail only.
	ErrOrderNotEligible = errors.New("order not eligible for payout")

	// ErrSettingsUnavailable means the settings store failed. Defaults are
	// never substituted on store failure.
	ErrSettingsUnavailable = errors.New("payment settings unavailable")

	// ErrInvalidAmount rejects negative fees and out-of-range percentages
	// before any money math runs.
	ErrInvalidAmount = errors.New("invalid monetary input")
)

// CalculationMismatchError means the distributed total drifted from the order
// total by more than the rounding allowance. Always fatal, never retried.
type CalculationMismatchError struct {
	OrderID     string
	OrderTotal  float64
	TotalPayout float64
}

func (e *CalculationMismatchError) Error() string {
	return fmt.Sprintf("payout calculation mismatch for order %s: distributed %.2f against order total %.2f",
		e.OrderID, e.TotalPayout, e.OrderTotal)
}

// LedgerWriteError reports which recipient and which step failed partway
// through applying a payout, for manual reconciliation.
type LedgerWriteError struct {
	RecipientID string
	Step        string
	Err         error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write failed at step %s for recipient %s: %v", e.Step, e.RecipientID, e.Err)
}

func (e *LedgerWriteError) Unwrap() error {
	return e.Err
}
