package repository

import (
	"context"

	"payout-service/src/internal/entity"
	"payout-service/src/pkg/databases/mysql"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

// InsertMany bulk-inserts ledger rows. Rows are never updated afterwards.
func (r *TransactionRepository) InsertMany(ctx context.Context, transactions []entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO wallet_transactions
			(id, order_id, recipient_id, role, amount, description, transaction_type, status, external_reference, created_at)
		VALUES
			(:id, :order_id, :recipient_id, :role, :amount, :description, :transaction_type, :status, :external_reference, :created_at)
	`

	_, err = db.NamedExecContext(ctx, query, transactions)
	return err
}

// FindByOrderID lists the ledger entries already written for an order,
// newest last. Used for reconciliation after a partial ledger write.
func (r *TransactionRepository) FindByOrderID(ctx context.Context, orderID string) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	query := `
		SELECT id, order_id, recipient_id, role, amount, description, transaction_type, status, external_reference, created_at
		FROM wallet_transactions
		WHERE order_id = ?
		ORDER BY created_at ASC
	`

	err = db.SelectContext(ctx, &transactions, query, orderID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
