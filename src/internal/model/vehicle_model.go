package model

import "time"

type CreateVehicleRequest struct {
	UserID        int64  `json:"-" validate:"required"`
	LicensePlate  string `json:"license_plate" validate:"required,max=20"`
	VehicleType   string `json:"vehicle_type" validate:"required,oneof=car motorcycle truck bus other"`
	Make          string `json:"make" validate:"required,max=100"`
	Model         string `json:"model" validate:"required,max=100"`
	Year          int    `json:"year" validate:"required,gte=1900,lte=2100"`
	Color         string `json:"color" validate:"required,max=50"`
	TransponderID string `json:"transponder_id" validate:"required,max=100"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

type UpdateVehicleRequest struct {
	ID            int64   `json:"-" validate:"required"`
	UserID        int64   `json:"-" validate:"required"`
	LicensePlate  *string `json:"license_plate,omitempty" validate:"omitempty,max=20"`
	VehicleType   *string `json:"vehicle_type,omitempty" validate:"omitempty,oneof=car motorcycle truck bus other"`
	Make          *string `json:"make,omitempty" validate:"omitempty,max=100"`
	Model         *string `json:"model,omitempty" validate:"omitempty,max=100"`
	Year          *int    `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Color         *string `json:"color,omitempty" validate:"omitempty,max=50"`
	TransponderID *string `json:"transponder_id,omitempty" validate:"omitempty,max=100"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type ListVehicleRequest struct {
	UserID int64 `json:"-" validate:"required"`
	Skip   int   `json:"skip" validate:"gte=0"`
	Limit  int   `json:"limit" validate:"gt=0,lte=100"`
}

type VehicleResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	LicensePlate  string    `json:"license_plate"`
	VehicleType   string    `json:"vehicle_type"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Color         string    `json:"color"`
	TransponderID string    `json:"transponder_id"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
