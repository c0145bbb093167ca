package repository

import (
	"context"
	"fmt"

	"payout-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{
		DB: db,
	}
}

// Credit adds amount to the wallet balance in a single UPDATE so two
// concurrent payouts touching the same wallet cannot lose an increment.
func (r *WalletRepository) Credit(ctx context.Context, userID string, amount float64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE wallets
		SET balance = balance + ?, last_updated = NOW()
		WHERE user_id = ?
	`

	result, err := db.ExecContext(ctx, query, amount, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("wallet for user %s not found", userID)
	}

	return nil
}

func (r *WalletRepository) GetBalance(ctx context.Context, userID string) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var balance float64
	err = db.GetContext(ctx, &balance, `SELECT balance FROM wallets WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// EnsureWallet provisions an empty wallet row if none exists. Used at
// bootstrap for the house account.
func (r *WalletRepository) EnsureWallet(ctx context.Context, userID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT IGNORE INTO wallets (id, user_id, balance, last_updated)
		VALUES (?, ?, 0, NOW())
	`

	_, err = db.ExecContext(ctx, query, uuid.NewString(), userID)
	return err
}
