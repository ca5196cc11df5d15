package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:                    user.ID,
		Email:                 user.Email,
		Name:                  user.Name,
		PhoneNumber:           user.PhoneNumber.String,
		Address:               user.Address.String,
		CurrentBalance:        user.CurrentBalance,
		SubscriptionPlanID:    user.SubscriptionPlanID,
		SubscriptionStatus:    string(user.SubscriptionStatus),
		SubscriptionStartDate: user.SubscriptionStartDate,
		SubscriptionEndDate:   user.SubscriptionEndDate,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
}
