package entity

import "time"

type Notification struct {
	ID        int64            `db:"id"`
	UserID    int64            `db:"user_id"`
	Message   string           `db:"message"`
	Type      NotificationType `db:"type"`
	IsRead    bool             `db:"is_read"`
	CreatedAt time.Time        `db:"created_at"`
}
