package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/pkg/utils"
)

func PlazaToResponse(plaza *entity.TollPlaza) *model.PlazaResponse {
	return &model.PlazaResponse{
		ID:              plaza.ID,
		Name:            plaza.Name,
		Location:        plaza.Location,
		Address:         plaza.Address,
		BasePrice:       plaza.BasePrice,
		CurrentPrice:    plaza.CurrentPrice,
		BusyLevel:       string(plaza.BusyLevel),
		EstimatedTime:   plaza.EstimatedTime,
		VehiclesPerHour: plaza.VehiclesPerHour,
	}
}

func PlazasToResponse(plazas []entity.TollPlaza) []model.PlazaResponse {
	responses := make([]model.PlazaResponse, 0, len(plazas))
	for i := range plazas {
		responses = append(responses, *PlazaToResponse(&plazas[i]))
	}
	return responses
}

func PlazaToStatus(plaza *entity.TollPlaza) *model.PlazaStatusResponse {
	return &model.PlazaStatusResponse{
		TollPlazaID:     plaza.ID,
		Name:            plaza.Name,
		CurrentPrice:    plaza.CurrentPrice,
		BusyLevel:       string(plaza.BusyLevel),
		EstimatedTime:   utils.FormatDuration(plaza.EstimatedTime),
		VehiclesPerHour: plaza.VehiclesPerHour,
	}
}
