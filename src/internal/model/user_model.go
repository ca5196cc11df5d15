package model

import "time"

type RegisterUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=100"`
	Name        string `json:"name" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=32"`
	Address     string `json:"address,omitempty" validate:"max=512"`
}

type UpdateUserRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=512"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type GetUserRequest struct {
	ID int64 `json:"id" validate:"required"`
}

type UserResponse struct {
	ID                    int64      `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	PhoneNumber           string     `json:"phone_number,omitempty"`
	Address               string     `json:"address,omitempty"`
	CurrentBalance        float64    `json:"current_balance"`
	SubscriptionPlanID    *int64     `json:"subscription_plan_id,omitempty"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionStartDate *time.Time `json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   *time.Time `json:"subscription_end_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
