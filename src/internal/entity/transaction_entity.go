package entity

import (
	"database/sql"
	"time"
)

type Transaction struct {
	ID              int64             `db:"id"`
	UserID          int64             `db:"user_id"`
	VehicleID       int64             `db:"vehicle_id"`
	TollPlazaID     int64             `db:"toll_plaza_id"`
	Amount          float64           `db:"amount"`
	Timestamp       time.Time         `db:"timestamp"`
	Status          TransactionStatus `db:"status"`
	TransactionType TransactionType   `db:"transaction_type"`
	PaymentMethod   sql.NullString    `db:"payment_method"`
	ReferenceID     string            `db:"reference_id"`
}

type AccountTransaction struct {
	ID              int64                  `db:"id"`
	UserID          int64                  `db:"user_id"`
	Amount          float64                `db:"amount"`
	Type            AccountTransactionType `db:"type"`
	PaymentMethodID *int64                 `db:"payment_method_id"`
	Status          TransactionStatus      `db:"status"`
	Timestamp       time.Time              `db:"timestamp"`
	ReferenceID     string                 `db:"reference_id"`
}
