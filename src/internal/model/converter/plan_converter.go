package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func PlanToResponse(plan *entity.Plan) *model.PlanResponse {
	return &model.PlanResponse{
		ID:          plan.ID,
		Name:        plan.Name,
		Price:       plan.Price,
		AnnualPrice: plan.AnnualPrice,
		MaxVehicles: plan.MaxVehicles,
		Features:    plan.Features,
		IsActive:    plan.IsActive,
	}
}

func PlansToResponse(plans []entity.Plan) []model.PlanResponse {
	responses := make([]model.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *PlanToResponse(&plans[i]))
	}
	return responses
}
