package model

import "time"

type CreatePaymentMethodRequest struct {
	UserID         int64  `json:"-" validate:"required"`
	PaymentType    string `json:"payment_type" validate:"required,max=50"`
	PaymentDetails string `json:"payment_details" validate:"required,max=512"`
	IsDefault      bool   `json:"is_default"`
}

type UpdatePaymentMethodRequest struct {
	ID             int64   `json:"-" validate:"required"`
	UserID         int64   `json:"-" validate:"required"`
	PaymentType    *string `json:"payment_type,omitempty" validate:"omitempty,max=50"`
	PaymentDetails *string `json:"payment_details,omitempty" validate:"omitempty,max=512"`
	IsDefault      *bool   `json:"is_default,omitempty"`
}

type PaymentMethodResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	PaymentType    string    `json:"payment_type"`
	PaymentDetails string    `json:"payment_details"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
