package payout

import (
	"testing"

	"payout-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactions_ThreeEntriesInFixedOrder(t *testing.T) {
	order := testOrder(100.00, 10.00, 5.00)
	calc, err := Calculate(order, testSettings(0.80, 0.00))
	require.NoError(t, err)

	transactions := BuildTransactions(order, calc, HouseAccountID)
	require.Len(t, transactions, 3)

	assert.Equal(t, entity.RoleMerchant, transactions[0].Role)
	assert.Equal(t, entity.RoleDriver, transactions[1].Role)
	assert.Equal(t, entity.RoleHouse, transactions[2].Role)

	assert.Equal(t, order.MerchantID, transactions[0].RecipientID)
	assert.Equal(t, order.DriverID, transactions[1].RecipientID)
	assert.Equal(t, HouseAccountID, transactions[2].RecipientID)

	assert.Equal(t, 100.00, transactions[0].Amount)
	assert.Equal(t, 8.00, transactions[1].Amount)
	assert.Equal(t, 7.00, transactions[2].Amount)

	for _, txn := range transactions {
		assert.Equal(t, order.OrderID, txn.OrderID)
		assert.Equal(t, entity.TransactionTypePayout, txn.TransactionType)
		assert.Equal(t, entity.TransactionStatusPending, txn.Status)
		assert.NotEmpty(t, txn.TransactionID)
		assert.Contains(t, txn.Description, order.OrderID)
	}

	assert.NotEqual(t, transactions[0].TransactionID, transactions[1].TransactionID)
	assert.NotEqual(t, transactions[1].TransactionID, transactions[2].TransactionID)
}

func TestBuildTransactions_DriverDescriptionCarriesEffectivePercentage(t *testing.T) {
	order := testOrder(100.00, 10.00, 5.00)
	calc, err := Calculate(order, testSettings(0.80, 0.00))
	require.NoError(t, err)

	transactions := BuildTransactions(order, calc, HouseAccountID)
	assert.Contains(t, transactions[1].Description, "80% of delivery fee")
}

func TestBuildTransactions_CustomHouseAccount(t *testing.T) {
	order := testOrder(100.00, 10.00, 5.00)
	calc, err := Calculate(order, testSettings(0.80, 0.00))
	require.NoError(t, err)

	transactions := BuildTransactions(order, calc, "WALLET-HOUSE-REGION-1")
	require.Len(t, transactions, 3)
	assert.Equal(t, "WALLET-HOUSE-REGION-1", transactions[2].RecipientID)
	assert.Equal(t, entity.RoleHouse, transactions[2].Role)
}

func TestBuildTransactions_ZeroDeliveryFeeReportsZeroPercent(t *testing.T) {
	order := testOrder(42.00, 0.00, 2.00)
	calc, err := Calculate(order, testSettings(0.80, 0.00))
	require.NoError(t, err)

	transactions := BuildTransactions(order, calc, HouseAccountID)
	assert.Contains(t, transactions[1].Description, "0% of delivery fee")
	assert.Equal(t, 0.00, transactions[1].Amount)
}
