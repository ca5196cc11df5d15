package model

import "time"

type IngestTrafficRequest struct {
	TollPlazaID     int64   `json:"toll_plaza_id" validate:"required"`
	VehicleCount    int     `json:"vehicle_count" validate:"gte=0"`
	AverageWaitTime int     `json:"average_wait_time" validate:"gte=0"`
	PriceMultiplier float64 `json:"price_multiplier" validate:"required,gt=0"`
}

type ListTrafficRequest struct {
	TollPlazaID int64 `json:"-" validate:"required"`
	Skip        int   `json:"skip" validate:"gte=0"`
	Limit       int   `json:"limit" validate:"gt=0,lte=100"`
}

type TrafficDataResponse struct {
	ID              int64     `json:"id"`
	TollPlazaID     int64     `json:"toll_plaza_id"`
	Timestamp       time.Time `json:"timestamp"`
	VehicleCount    int       `json:"vehicle_count"`
	AverageWaitTime int       `json:"average_wait_time"`
	PriceMultiplier float64   `json:"price_multiplier"`
}
