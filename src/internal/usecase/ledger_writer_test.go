package usecase

import (
	"context"
	"errors"
	"testing"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/payout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder() *entity.Order {
	return &entity.Order{
		OrderID:      "ord-100",
		MerchantID:   "merchant-1",
		DriverID:     "driver-1",
		CustomerID:   "customer-1",
		ItemTotal:    100.00,
		DeliveryFee:  10.00,
		ServiceFee:   5.00,
		Status:       entity.OrderStatusCompleted,
		PayoutStatus: entity.PayoutStatusPending,
	}
}

func builtTransactions(t *testing.T, order *entity.Order) []entity.Transaction {
	t.Helper()
	calc, err := payout.Calculate(order, entity.DefaultPaymentSettings())
	require.NoError(t, err)
	return payout.BuildTransactions(order, calc, payout.HouseAccountID)
}

func newLedgerFixture(order *entity.Order) (*LedgerWriter, *fakeOrderStore, *fakeWalletStore, *fakeTransactionStore) {
	orders := &fakeOrderStore{orders: map[string]*entity.Order{order.OrderID: order}}
	wallets := &fakeWalletStore{balances: map[string]float64{
		order.MerchantID:      0,
		order.DriverID:        0,
		payout.HouseAccountID: 0,
	}}
	transactions := &fakeTransactionStore{}
	writer := NewLedgerWriter(newTestLogger(), orders, wallets, transactions)
	return writer, orders, wallets, transactions
}

func TestApply_CreditsEachRecipientOnce(t *testing.T) {
	order := completedOrder()
	writer, orders, wallets, transactions := newLedgerFixture(order)

	err := writer.Apply(context.Background(), order, builtTransactions(t, order))
	require.NoError(t, err)

	assert.Equal(t, 100.00, wallets.balances[order.MerchantID])
	assert.Equal(t, 8.00, wallets.balances[order.DriverID])
	assert.Equal(t, 7.00, wallets.balances[payout.HouseAccountID])
	require.Len(t, transactions.inserted, 1)
	assert.Len(t, transactions.inserted[0], 3)
	assert.Equal(t, entity.PayoutStatusCompleted, orders.orders[order.OrderID].PayoutStatus)
}

func TestApply_LostClaimIsNotEligible(t *testing.T) {
	order := completedOrder()
	writer, orders, wallets, transactions := newLedgerFixture(order)
	orders.claimRejects = true

	err := writer.Apply(context.Background(), order, builtTransactions(t, order))
	assert.ErrorIs(t, err, payout.ErrOrderNotEligible)

	assert.Equal(t, 0.00, wallets.balances[order.MerchantID])
	assert.Empty(t, transactions.inserted)
}

func TestApply_StopsAtFirstFailedCredit(t *testing.T) {
	order := completedOrder()
	writer, _, wallets, transactions := newLedgerFixture(order)
	wallets.failFor = order.DriverID

	err := writer.Apply(context.Background(), order, builtTransactions(t, order))

	var ledgerErr *payout.LedgerWriteError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, order.DriverID, ledgerErr.RecipientID)
	assert.Equal(t, "wallet-credit", ledgerErr.Step)

	// merchant was credited before the failure; the partial state is the
	// documented reconciliation case
	assert.Equal(t, 100.00, wallets.balances[order.MerchantID])
	assert.Equal(t, 0.00, wallets.balances[payout.HouseAccountID])
	assert.Empty(t, transactions.inserted)
}

func TestApply_InsertFailureSurfacesStep(t *testing.T) {
	order := completedOrder()
	writer, _, _, transactions := newLedgerFixture(order)
	transactions.err = errors.New("insert failed")

	err := writer.Apply(context.Background(), order, builtTransactions(t, order))

	var ledgerErr *payout.LedgerWriteError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, "insert-transactions", ledgerErr.Step)
}

func TestApply_ClaimStoreError(t *testing.T) {
	order := completedOrder()
	writer, orders, _, _ := newLedgerFixture(order)
	orders.claimErr = errors.New("connection reset")

	err := writer.Apply(context.Background(), order, builtTransactions(t, order))

	var ledgerErr *payout.LedgerWriteError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, "claim-order", ledgerErr.Step)
}
