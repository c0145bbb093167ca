package payout

import (
	"fmt"
	"math"

	"payout-service/src/internal/entity"
)

// HouseAccountID is the default wallet holding platform revenue, overridable
// through the payout.house_account_id config key. The row is provisioned at
// bootstrap; a payout against a missing house wallet fails.
const HouseAccountID = "WALLET-HOUSE-0000000"

// The distributed total may drift from the order total by at most one cent
// of rounding. Anything beyond that is a fatal calculation error.
const conservationTolerance = 0.01

// Calculation is the immutable monetary breakdown of one order.
type Calculation struct {
	MerchantAmount float64 `json:"merchant_amount"`
	DriverAmount   float64 `json:"driver_amount"`
	HouseAmount    float64 `json:"house_amount"`
	ServiceFeeTax  float64 `json:"service_fee_tax"`
	TotalPayout    float64 `json:"total_payout"`
}

// Calculate splits an order total between merchant, driver and house.
// Pure: no I/O, deterministic for a given order and settings.
//
// The merchant keeps the full item price. The driver gets a percentage of
// the delivery fee, the house gets the remainder of the delivery fee plus the
// service fee plus tax on the service fee. Rounding happens once, at the
// output boundary.
func Calculate(order *entity.Order, settings *entity.PaymentSettings) (*Calculation, error) {
	if order.ItemTotal < 0 || order.DeliveryFee < 0 || order.ServiceFee < 0 {
		return nil, fmt.Errorf("%w: order %s carries a negative fee", ErrInvalidAmount, order.OrderID)
	}
	if settings.DriverPayoutPercentage < 0 || settings.DriverPayoutPercentage > 1 {
		return nil, fmt.Errorf("%w: driver_payout_percentage %v outside [0,1]", ErrInvalidAmount, settings.DriverPayoutPercentage)
	}
	if settings.TaxRateServiceFee < 0 || settings.TaxRateServiceFee > 1 {
		return nil, fmt.Errorf("%w: tax_rate_service_fee %v outside [0,1]", ErrInvalidAmount, settings.TaxRateServiceFee)
	}

	merchantAmount := order.ItemTotal
	driverAmount := order.DeliveryFee * settings.DriverPayoutPercentage
	houseDeliveryPortion := order.DeliveryFee * (1 - settings.DriverPayoutPercentage)
	serviceFeeTax := order.ServiceFee * settings.TaxRateServiceFee
	houseAmount := houseDeliveryPortion + order.ServiceFee + serviceFeeTax
	totalPayout := merchantAmount + driverAmount + houseAmount

	if math.Abs(totalPayout-order.Total()) > conservationTolerance {
		return nil, &CalculationMismatchError{
			OrderID:     order.OrderID,
			OrderTotal:  Round2(order.Total()),
			TotalPayout: Round2(totalPayout),
		}
	}

	return &Calculation{
		MerchantAmount: Round2(merchantAmount),
		DriverAmount:   Round2(driverAmount),
		HouseAmount:    Round2(houseAmount),
		ServiceFeeTax:  Round2(serviceFeeTax),
		TotalPayout:    Round2(totalPayout),
	}, nil
}

// Round2 rounds half-up to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
