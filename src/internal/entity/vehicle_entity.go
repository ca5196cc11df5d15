package entity

import "time"

type Vehicle struct {
	ID            int64       `db:"id"`
	UserID        int64       `db:"user_id"`
	LicensePlate  string      `db:"license_plate"`
	VehicleType   VehicleType `db:"vehicle_type"`
	Make          string      `db:"make"`
	Model         string      `db:"model"`
	Year          int         `db:"year"`
	Color         string      `db:"color"`
	TransponderID string      `db:"transponder_id"`
	IsActive      bool        `db:"is_active"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}
