package repository

import (
	"context"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `
	id, email, password_hash, name, phone_number, address, current_balance,
	subscription_plan_id, subscription_status, subscription_start_date,
	subscription_end_date, created_at, updated_at`

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	if err := db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	if err := db.GetContext(ctx, &user, query, email); err != nil {
		return nil, translateNoRows(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	now := utils.ISTNow()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.CurrentBalance = 0.0
	user.SubscriptionStatus = entity.SubscriptionActive

	query := `
		INSERT INTO users (email, password_hash, name, phone_number, address,
			current_balance, subscription_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.PhoneNumber, user.Address,
		user.CurrentBalance, user.SubscriptionStatus, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return err
	}

	user.ID, err = res.LastInsertId()
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	user.UpdatedAt = utils.ISTNow()
	query := `
		UPDATE users
		SET email = ?, password_hash = ?, name = ?, phone_number = ?, address = ?,
			subscription_plan_id = ?, subscription_status = ?,
			subscription_start_date = ?, subscription_end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := db.ExecContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.PhoneNumber, user.Address,
		user.SubscriptionPlanID, user.SubscriptionStatus,
		user.SubscriptionStartDate, user.SubscriptionEndDate, user.UpdatedAt, user.ID)
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
