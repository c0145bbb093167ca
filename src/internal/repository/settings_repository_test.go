package repository

import (
	"testing"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/payout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePaymentSettings_DefaultsForMissingKeys(t *testing.T) {
	settings, err := mergePaymentSettings([]entity.PaymentSetting{
		{Key: "driver_payout_percentage", Value: "0.75"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.75, settings.DriverPayoutPercentage)
	assert.Equal(t, entity.DefaultTaxRateServiceFee, settings.TaxRateServiceFee)
	assert.Equal(t, entity.DefaultHouseServiceFeePercentage, settings.HouseServiceFeePercentage)
	assert.Equal(t, entity.DefaultMinimumPayoutAmount, settings.MinimumPayoutAmount)
}

func TestMergePaymentSettings_AllKeysOverride(t *testing.T) {
	settings, err := mergePaymentSettings([]entity.PaymentSetting{
		{Key: "driver_payout_percentage", Value: "0.9"},
		{Key: "tax_rate_service_fee", Value: "0.0"},
		{Key: "house_service_fee_percentage", Value: "0.3"},
		{Key: "minimum_payout_amount", Value: "10"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.9, settings.DriverPayoutPercentage)
	assert.Equal(t, 0.0, settings.TaxRateServiceFee)
	assert.Equal(t, 0.3, settings.HouseServiceFeePercentage)
	assert.Equal(t, 10.0, settings.MinimumPayoutAmount)
}

func TestMergePaymentSettings_UnknownKeysIgnored(t *testing.T) {
	settings, err := mergePaymentSettings([]entity.PaymentSetting{
		{Key: "some_future_setting", Value: "123"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPaymentSettings(), settings)
}

func TestMergePaymentSettings_MalformedValueFailsClosed(t *testing.T) {
	_, err := mergePaymentSettings([]entity.PaymentSetting{
		{Key: "driver_payout_percentage", Value: "eighty percent"},
	})
	assert.ErrorIs(t, err, payout.ErrSettingsUnavailable)
}
