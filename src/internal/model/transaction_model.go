package model

import "time"

type CreateTransactionRequest struct {
	UserID          int64   `json:"-" validate:"required"`
	VehicleID       int64   `json:"vehicle_id" validate:"required"`
	TollPlazaID     int64   `json:"toll_plaza_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	TransactionType string  `json:"transaction_type" validate:"required,oneof='toll payment' 'account recharge'"`
	PaymentMethod   string  `json:"payment_method,omitempty" validate:"max=50"`
}

type ListTransactionRequest struct {
	UserID int64 `json:"-" validate:"required"`
	Skip   int   `json:"skip" validate:"gte=0"`
	Limit  int   `json:"limit" validate:"gt=0,lte=100"`
}

type UpdateTransactionStatusRequest struct {
	ID     int64  `json:"-" validate:"required"`
	Status string `json:"status" validate:"required,oneof=completed pending failed"`
}

type TransactionResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	VehicleID       int64     `json:"vehicle_id"`
	TollPlazaID     int64     `json:"toll_plaza_id"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	ReferenceID     string    `json:"reference_id"`
}

type CreateAccountTransactionRequest struct {
	UserID          int64   `json:"-" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Type            string  `json:"type" validate:"required,oneof=deposit withdrawal refund"`
	PaymentMethodID *int64  `json:"payment_method_id,omitempty"`
}

type AccountTransactionResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Amount          float64   `json:"amount"`
	Type            string    `json:"type"`
	PaymentMethodID *int64    `json:"payment_method_id,omitempty"`
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	ReferenceID     string    `json:"reference_id"`
	CurrentBalance  float64   `json:"current_balance"`
}
