package payout

import (
	"fmt"
	"time"

	"payout-service/src/internal/entity"

	"github.com/google/uuid"
)

// BuildTransactions turns a calculation into exactly three pending ledger
// entries, always in merchant, driver, house order.
func BuildTransactions(order *entity.Order, calc *Calculation, houseAccountID string) []entity.Transaction {
	effectivePercentage := 0.0
	if order.DeliveryFee > 0 {
		effectivePercentage = calc.DriverAmount / order.DeliveryFee * 100
	}

	now := time.Now().UTC()

	return []entity.Transaction{
		{
			TransactionID:   uuid.NewString(),
			OrderID:         order.OrderID,
			RecipientID:     order.MerchantID,
			Role:            entity.RoleMerchant,
			Amount:          calc.MerchantAmount,
			Description:     fmt.Sprintf("Merchant payout for order %s", order.OrderID),
			TransactionType: entity.TransactionTypePayout,
			Status:          entity.TransactionStatusPending,
			CreatedAt:       now,
		},
		{
			TransactionID:   uuid.NewString(),
			OrderID:         order.OrderID,
			RecipientID:     order.DriverID,
			Role:            entity.RoleDriver,
			Amount:          calc.DriverAmount,
			Description:     fmt.Sprintf("Driver payout for order %s (%.0f%% of delivery fee)", order.OrderID, effectivePercentage),
			TransactionType: entity.TransactionTypePayout,
			Status:          entity.TransactionStatusPending,
			CreatedAt:       now,
		},
		{
			TransactionID:   uuid.NewString(),
			OrderID:         order.OrderID,
			RecipientID:     houseAccountID,
			Role:            entity.RoleHouse,
			Amount:          calc.HouseAmount,
			Description:     fmt.Sprintf("House revenue for order %s", order.OrderID),
			TransactionType: entity.TransactionTypePayout,
			Status:          entity.TransactionStatusPending,
			CreatedAt:       now,
		},
	}
}
