package repository

import (
	"context"
	"fmt"
	"strconv"

	"payout-service/src/internal/entity"
	"payout-service/src/internal/payout"
	"payout-service/src/pkg/databases/mysql"
)

type SettingsRepository struct {
	DB mysql.DBInterface
}

func NewSettingsRepository(db mysql.DBInterface) *SettingsRepository {
	return &SettingsRepository{
		DB: db,
	}
}

// GetPaymentSettings loads the key/value rows and overlays them on the
// defaults. A store or parse failure surfaces as ErrSettingsUnavailable;
// defaults fill in missing keys only.
func (r *SettingsRepository) GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payout.ErrSettingsUnavailable, err)
	}

	var rows []entity.PaymentSetting
	query := `SELECT setting_key, setting_value FROM payment_settings`

	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%w: %v", payout.ErrSettingsUnavailable, err)
	}

	return mergePaymentSettings(rows)
}

func mergePaymentSettings(rows []entity.PaymentSetting) (*entity.PaymentSettings, error) {
	settings := entity.DefaultPaymentSettings()

	for _, row := range rows {
		value, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: setting %s has non-numeric value %q", payout.ErrSettingsUnavailable, row.Key, row.Value)
		}

		switch row.Key {
		case "driver_payout_percentage":
			settings.DriverPayoutPercentage = value
		case "tax_rate_service_fee":
			settings.TaxRateServiceFee = value
		case "house_service_fee_percentage":
			settings.HouseServiceFeePercentage = value
		case "minimum_payout_amount":
			settings.MinimumPayoutAmount = value
		}
	}

	return settings, nil
}
