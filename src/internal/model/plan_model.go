package model

import "tolleasy-service/src/internal/entity"

type CreatePlanRequest struct {
	Name        string              `json:"name" validate:"required,max=255"`
	Price       float64             `json:"price" validate:"required,gt=0"`
	AnnualPrice float64             `json:"annual_price" validate:"required,gt=0"`
	MaxVehicles int                 `json:"max_vehicles" validate:"required,gt=0"`
	Features    entity.PlanFeatures `json:"features,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
}

type UpdatePlanRequest struct {
	ID          int64               `json:"-" validate:"required"`
	Name        *string             `json:"name,omitempty" validate:"omitempty,max=255"`
	Price       *float64            `json:"price,omitempty" validate:"omitempty,gt=0"`
	AnnualPrice *float64            `json:"annual_price,omitempty" validate:"omitempty,gt=0"`
	MaxVehicles *int                `json:"max_vehicles,omitempty" validate:"omitempty,gt=0"`
	Features    entity.PlanFeatures `json:"features,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
}

type PlanResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Price       float64             `json:"price"`
	AnnualPrice float64             `json:"annual_price"`
	MaxVehicles int                 `json:"max_vehicles"`
	Features    entity.PlanFeatures `json:"features"`
	IsActive    bool                `json:"is_active"`
}

type SubscribeRequest struct {
	UserID int64 `json:"-" validate:"required"`
	PlanID int64 `json:"plan_id" validate:"required"`
}
