package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func TrafficDataToResponse(sample *entity.TrafficData) *model.TrafficDataResponse {
	return &model.TrafficDataResponse{
		ID:              sample.ID,
		TollPlazaID:     sample.TollPlazaID,
		Timestamp:       sample.Timestamp,
		VehicleCount:    sample.VehicleCount,
		AverageWaitTime: sample.AverageWaitTime,
		PriceMultiplier: sample.PriceMultiplier,
	}
}

func TrafficDataListToResponse(samples []entity.TrafficData) []model.TrafficDataResponse {
	responses := make([]model.TrafficDataResponse, 0, len(samples))
	for i := range samples {
		responses = append(responses, *TrafficDataToResponse(&samples[i]))
	}
	return responses
}
