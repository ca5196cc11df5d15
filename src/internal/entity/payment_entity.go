package entity

import "time"

type PaymentMethod struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	PaymentType    string    `db:"payment_type"`
	PaymentDetails string    `db:"payment_details"`
	IsDefault      bool      `db:"is_default"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
