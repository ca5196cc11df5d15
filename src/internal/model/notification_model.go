package model

import "time"

type ListNotificationRequest struct {
	UserID     int64 `json:"-" validate:"required"`
	Skip       int   `json:"skip" validate:"gte=0"`
	Limit      int   `json:"limit" validate:"gt=0,lte=100"`
	UnreadOnly bool  `json:"unread_only"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
