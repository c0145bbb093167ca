package entity

import "time"

type Wallet struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Balance     float64   `db:"balance" json:"balance"`
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
}
