package entity

import (
	"database/sql"
	"time"
)

type User struct {
	ID                    int64              `db:"id"`
	Email                 string             `db:"email"`
	PasswordHash          string             `db:"password_hash"`
	Name                  string             `db:"name"`
	PhoneNumber           sql.NullString     `db:"phone_number"`
	Address               sql.NullString     `db:"address"`
	CurrentBalance        float64            `db:"current_balance"`
	SubscriptionPlanID    *int64             `db:"subscription_plan_id"`
	SubscriptionStatus    SubscriptionStatus `db:"subscription_status"`
	SubscriptionStartDate *time.Time         `db:"subscription_start_date"`
	SubscriptionEndDate   *time.Time         `db:"subscription_end_date"`
	CreatedAt             time.Time          `db:"created_at"`
	UpdatedAt             time.Time          `db:"updated_at"`
}
