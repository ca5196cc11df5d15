package repository

import (
	"context"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type NotificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID int64, skip, limit int, unreadOnly bool) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, message, type, is_read, created_at
		FROM notifications WHERE user_id = ?`
	args := []interface{}{userID}
	if unreadOnly {
		query += ` AND is_read = 0`
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, skip)

	var notifications []entity.Notification
	if err := db.SelectContext(ctx, &notifications, query, args...); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notification entity.Notification
	query := `SELECT id, user_id, message, type, is_read, created_at FROM notifications WHERE id = ?`
	if err := db.GetContext(ctx, &notification, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	notification.CreatedAt = utils.ISTNow()
	res, err := db.ExecContext(ctx, `
		INSERT INTO notifications (user_id, message, type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		notification.UserID, notification.Message, notification.Type,
		notification.IsRead, notification.CreatedAt)
	if err != nil {
		return err
	}

	notification.ID, err = res.LastInsertId()
	return err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0`, userID)
	return err
}
