package entity

import "time"

// TrafficData rows are append-only; samples are never updated or deleted.
type TrafficData struct {
	ID              int64     `db:"id"`
	TollPlazaID     int64     `db:"toll_plaza_id"`
	Timestamp       time.Time `db:"timestamp"`
	VehicleCount    int       `db:"vehicle_count"`
	AverageWaitTime int       `db:"average_wait_time"`
	PriceMultiplier float64   `db:"price_multiplier"`
}
