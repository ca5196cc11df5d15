package repository

import (
	"context"
	"fmt"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type PaymentMethodRepository struct {
	DB mysql.DBInterface
}

func NewPaymentMethodRepository(db mysql.DBInterface) *PaymentMethodRepository {
	return &PaymentMethodRepository{DB: db}
}

const paymentMethodColumns = `
	id, user_id, payment_type, payment_details, is_default, created_at, updated_at`

func (r *PaymentMethodRepository) FindByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.PaymentMethod, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var methods []entity.PaymentMethod
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE user_id = ? LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &methods, query, userID, limit, skip); err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var method entity.PaymentMethod
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = ?`
	if err := db.GetContext(ctx, &method, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &method, nil
}

// Create inserts the method; when flagged default it clears the flag on the
// user's other methods in the same database transaction so at most one
// default exists.
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	dbTx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if method.IsDefault {
		_, err = dbTx.ExecContext(ctx,
			`UPDATE payment_methods SET is_default = 0 WHERE user_id = ? AND is_default = 1`,
			method.UserID)
		if err != nil {
			return err
		}
	}

	now := utils.ISTNow()
	method.CreatedAt = now
	method.UpdatedAt = now

	res, err := dbTx.ExecContext(ctx, `
		INSERT INTO payment_methods (user_id, payment_type, payment_details, is_default, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		method.UserID, method.PaymentType, method.PaymentDetails,
		method.IsDefault, method.CreatedAt, method.UpdatedAt)
	if err != nil {
		return err
	}
	if method.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	return dbTx.Commit()
}

func (r *PaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	dbTx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if method.IsDefault {
		_, err = dbTx.ExecContext(ctx,
			`UPDATE payment_methods SET is_default = 0 WHERE user_id = ? AND is_default = 1 AND id != ?`,
			method.UserID, method.ID)
		if err != nil {
			return err
		}
	}

	method.UpdatedAt = utils.ISTNow()
	_, err = dbTx.ExecContext(ctx, `
		UPDATE payment_methods
		SET payment_type = ?, payment_details = ?, is_default = ?, updated_at = ?
		WHERE id = ?`,
		method.PaymentType, method.PaymentDetails, method.IsDefault,
		method.UpdatedAt, method.ID)
	if err != nil {
		return err
	}

	return dbTx.Commit()
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = ?`, id)
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
