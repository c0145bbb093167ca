package usecase

import (
	"context"
	"fmt"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/payout"
	"payout-service/src/pkg/log"
	"payout-service/src/pkg/utils"
)

// LedgerWriter applies a built payout to the stores: claim the order,
// credit each wallet, record the ledger rows. There is no rollback across
// the steps; a failure after the claim is surfaced with enough detail for
// manual reconciliation.
type LedgerWriter struct {
	Log          log.Log
	Orders       OrderStore
	Wallets      WalletStore
	Transactions TransactionStore
}

func NewLedgerWriter(
	logger log.Log,
	orders OrderStore,
	wallets WalletStore,
	transactions TransactionStore,
) *LedgerWriter {
	return &LedgerWriter{
		Log:          logger,
		Orders:       orders,
		Wallets:      wallets,
		Transactions: transactions,
	}
}

// Apply claims the order first. The conditional update is what closes the
// double-payout window: two concurrent payouts can both pass the eligibility
// read, but only one wins the claim.
func (w *LedgerWriter) Apply(ctx context.Context, order *entity.Order, transactions []entity.Transaction) error {
	claimed, err := w.Orders.ClaimPayout(ctx, order.OrderID)
	if err != nil {
		return &payout.LedgerWriteError{RecipientID: order.OrderID, Step: "claim-order", Err: err}
	}
	if !claimed {
		return fmt.Errorf("%w: order %s was claimed by a concurrent payout", payout.ErrOrderNotEligible, order.OrderID)
	}

	for _, txn := range transactions {
		if err := w.Wallets.Credit(ctx, txn.RecipientID, txn.Amount); err != nil {
			w.Log.Error("ledger-writer", fmt.Sprintf("Failed to credit wallet: %v", err), "Apply", txn.RecipientID)
			return &payout.LedgerWriteError{RecipientID: txn.RecipientID, Step: "wallet-credit", Err: err}
		}
	}

	if err := w.Transactions.InsertMany(ctx, transactions); err != nil {
		w.Log.Error("ledger-writer", fmt.Sprintf("Failed to insert transactions: %v", err), "Apply", order.OrderID)
		return &payout.LedgerWriteError{RecipientID: order.OrderID, Step: "insert-transactions", Err: err}
	}

	w.Log.Info("ledger-writer", "Payout applied", "Apply", utils.ConvertString(transactions))
	return nil
}
