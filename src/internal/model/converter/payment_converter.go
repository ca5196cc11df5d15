package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func PaymentMethodToResponse(method *entity.PaymentMethod) *model.PaymentMethodResponse {
	return &model.PaymentMethodResponse{
		ID:             method.ID,
		UserID:         method.UserID,
		PaymentType:    method.PaymentType,
		PaymentDetails: method.PaymentDetails,
		IsDefault:      method.IsDefault,
		CreatedAt:      method.CreatedAt,
		UpdatedAt:      method.UpdatedAt,
	}
}

func PaymentMethodsToResponse(methods []entity.PaymentMethod) []model.PaymentMethodResponse {
	responses := make([]model.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		responses = append(responses, *PaymentMethodToResponse(&methods[i]))
	}
	return responses
}
