package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func NotificationToResponse(notification *entity.Notification) *model.NotificationResponse {
	return &model.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func NotificationsToResponse(notifications []entity.Notification) []model.NotificationResponse {
	responses := make([]model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *NotificationToResponse(&notifications[i]))
	}
	return responses
}
