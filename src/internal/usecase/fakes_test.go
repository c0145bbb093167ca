package usecase

import (
	"context"
	"errors"
	"fmt"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/model"
	"payout-service/src/pkg/log"

	"github.com/spf13/viper"
)

func newTestLogger() log.Log {
	v := viper.New()
	v.Set("log.level", "ERROR")
	v.Set("app.name", "payout-service-test")
	log.InitLogger(v)
	return log.GetLogger()
}

type fakeOrderStore struct {
	orders       map[string]*entity.Order
	getErr       error
	claimErr     error
	claimRejects bool
}

func (f *fakeOrderStore) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	snapshot := *order
	return &snapshot, nil
}

func (f *fakeOrderStore) ClaimPayout(ctx context.Context, orderID string) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}
	if f.claimRejects {
		return false, nil
	}
	order, ok := f.orders[orderID]
	if !ok || order.Status != entity.OrderStatusCompleted || order.PayoutStatus != entity.PayoutStatusPending {
		return false, nil
	}
	order.PayoutStatus = entity.PayoutStatusCompleted
	return true, nil
}

type fakeWalletStore struct {
	balances map[string]float64
	failFor  string
}

func (f *fakeWalletStore) Credit(ctx context.Context, userID string, amount float64) error {
	if f.failFor != "" && f.failFor == userID {
		return fmt.Errorf("wallet store down for %s", userID)
	}
	f.balances[userID] += amount
	return nil
}

func (f *fakeWalletStore) GetBalance(ctx context.Context, userID string) (float64, error) {
	balance, ok := f.balances[userID]
	if !ok {
		return 0, errors.New("wallet not found")
	}
	return balance, nil
}

type fakeTransactionStore struct {
	inserted [][]entity.Transaction
	err      error
}

func (f *fakeTransactionStore) InsertMany(ctx context.Context, transactions []entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, transactions)
	return nil
}

func (f *fakeTransactionStore) FindByOrderID(ctx context.Context, orderID string) ([]entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var found []entity.Transaction
	for _, batch := range f.inserted {
		for _, txn := range batch {
			if txn.OrderID == orderID {
				found = append(found, txn)
			}
		}
	}
	return found, nil
}

type fakeSettingsStore struct {
	settings *entity.PaymentSettings
	err      error
}

func (f *fakeSettingsStore) GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fakeNotifier struct {
	events []*model.PayoutEvent
	err    error
}

func (f *fakeNotifier) SendPayoutCompleted(event *model.PayoutEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}
