package usecase

import (
	"context"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/model"
)

// Store interfaces consumed by the payout flow. The sqlx repositories in
// internal/repository are the production implementations.

type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ClaimPayout(ctx context.Context, orderID string) (bool, error)
}

type WalletStore interface {
	Credit(ctx context.Context, userID string, amount float64) error
	GetBalance(ctx context.Context, userID string) (float64, error)
}

type TransactionStore interface {
	InsertMany(ctx context.Context, transactions []entity.Transaction) error
	FindByOrderID(ctx context.Context, orderID string) ([]entity.Transaction, error)
}

type SettingsStore interface {
	GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error)
}

// PayoutNotifier is the fire-and-forget side channel. Implemented by
// messaging.PayoutProducer.
type PayoutNotifier interface {
	SendPayoutCompleted(event *model.PayoutEvent) error
}
