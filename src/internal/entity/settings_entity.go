package entity

// Fallback values applied per missing key only, never on store failure.
const (
	DefaultDriverPayoutPercentage    = 0.80
	DefaultTaxRateServiceFee         = 0.00
	DefaultHouseServiceFeePercentage = 0.25
	DefaultMinimumPayoutAmount       = 5.00
)

// PaymentSetting is one key/value row in the settings store.
type PaymentSetting struct {
	Key   string `db:"setting_key"`
	Value string `db:"setting_value"`
}

// PaymentSettings is the typed payout configuration, loaded fresh per
// orchestration call.
type PaymentSettings struct {
	DriverPayoutPercentage    float64 `json:"driver_payout_percentage" validate:"gte=0,lte=1"`
	TaxRateServiceFee         float64 `json:"tax_rate_service_fee" validate:"gte=0,lte=1"`
	HouseServiceFeePercentage float64 `json:"house_service_fee_percentage" validate:"gte=0,lte=1"`
	MinimumPayoutAmount       float64 `json:"minimum_payout_amount" validate:"gte=0"`
}

func DefaultPaymentSettings() *PaymentSettings {
	return &PaymentSettings{
		DriverPayoutPercentage:    DefaultDriverPayoutPercentage,
		TaxRateServiceFee:         DefaultTaxRateServiceFee,
		HouseServiceFeePercentage: DefaultHouseServiceFeePercentage,
		MinimumPayoutAmount:       DefaultMinimumPayoutAmount,
	}
}
