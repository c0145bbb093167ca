package entity

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"

	PayoutStatusPending   = "PENDING"
	PayoutStatusCompleted = "COMPLETED"
)

type Order struct {
	OrderID      string    `db:"order_id" json:"order_id"`
	MerchantID   string    `db:"merchant_id" json:"merchant_id"`
	DriverID     string    `db:"driver_id" json:"driver_id"`
	CustomerID   string    `db:"customer_id" json:"customer_id"`
	ItemTotal    float64   `db:"item_total" json:"item_total"`
	DeliveryFee  float64   `db:"delivery_fee" json:"delivery_fee"`
	ServiceFee   float64   `db:"service_fee" json:"service_fee"`
	Status       string    `db:"status" json:"status"`
	PayoutStatus string    `db:"payout_status" json:"payout_status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Total is the authoritative order total. Never recompute it from the
// calculated payout breakdown.
func (o *Order) Total() float64 {
	return o.ItemTotal + o.DeliveryFee + o.ServiceFee
}
