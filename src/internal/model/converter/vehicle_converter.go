package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func VehicleToResponse(vehicle *entity.Vehicle) *model.VehicleResponse {
	return &model.VehicleResponse{
		ID:            vehicle.ID,
		UserID:        vehicle.UserID,
		LicensePlate:  vehicle.LicensePlate,
		VehicleType:   string(vehicle.VehicleType),
		Make:          vehicle.Make,
		Model:         vehicle.Model,
		Year:          vehicle.Year,
		Color:         vehicle.Color,
		TransponderID: vehicle.TransponderID,
		IsActive:      vehicle.IsActive,
		CreatedAt:     vehicle.CreatedAt,
		UpdatedAt:     vehicle.UpdatedAt,
	}
}

func VehiclesToResponse(vehicles []entity.Vehicle) []model.VehicleResponse {
	responses := make([]model.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, *VehicleToResponse(&vehicles[i]))
	}
	return responses
}
