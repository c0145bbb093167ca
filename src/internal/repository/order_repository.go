package repository

import (
	"context"
	"database/sql"
	"errors"

	"payout-service/src/internal/entity"
	"payout-service/src/pkg/databases/mysql"
)

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

// GetOrder returns nil without error when the order does not exist.
func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	query := `
		SELECT
			o.id AS order_id,
			o.merchant_id,
			o.driver_id,
			o.customer_id,
			o.item_total,
			o.delivery_fee,
			o.service_fee,
			o.status,
			o.payout_status,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE o.id = ?
	`

	err = db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ClaimPayout flips payout_status PENDING -> COMPLETED only while the order
// is completed and still unpaid. The affected-row count is the claim: false
// means another payout won the race or the order is no longer eligible.
func (r *OrderRepository) ClaimPayout(ctx context.Context, orderID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE orders
		SET payout_status = ?, updated_at = NOW()
		WHERE id = ?
		AND status = ?
		AND payout_status = ?
	`

	result, err := db.ExecContext(ctx, query,
		entity.PayoutStatusCompleted,
		orderID,
		entity.OrderStatusCompleted,
		entity.PayoutStatusPending,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
