package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/ledger"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

const transactionColumns = `
	id, user_id, vehicle_id, toll_plaza_id, amount, timestamp, status,
	transaction_type, payment_method, reference_id`

func (r *TransactionRepository) FindByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ? ORDER BY timestamp DESC LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &transactions, query, userID, limit, skip); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tx entity.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`
	if err := db.GetContext(ctx, &tx, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &tx, nil
}

// CreateWithBalance inserts the transaction row and moves the user's balance
// in one database transaction. The balance row is locked for the duration so
// two concurrent toll payments cannot both pass the balance check on a stale
// read. Returns the balance after the commit.
func (r *TransactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.Transaction) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	delta, err := ledger.TransactionDelta(transaction.TransactionType, transaction.Amount)
	if err != nil {
		return 0, err
	}

	dbTx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	var balance float64
	err = dbTx.GetContext(ctx, &balance,
		`SELECT current_balance FROM users WHERE id = ? FOR UPDATE`, transaction.UserID)
	if err != nil {
		return 0, translateNoRows(err)
	}

	newBalance, err := ledger.Apply(balance, delta)
	if err != nil {
		return balance, err
	}

	transaction.ReferenceID = uuid.NewString()
	transaction.Status = entity.TransactionStatusPending
	transaction.Timestamp = utils.ISTNow()

	res, err := dbTx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, vehicle_id, toll_plaza_id, amount,
			timestamp, status, transaction_type, payment_method, reference_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		transaction.UserID, transaction.VehicleID, transaction.TollPlazaID,
		transaction.Amount, transaction.Timestamp, transaction.Status,
		transaction.TransactionType, transaction.PaymentMethod, transaction.ReferenceID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	if transaction.ID, err = res.LastInsertId(); err != nil {
		return 0, err
	}

	_, err = dbTx.ExecContext(ctx,
		`UPDATE users SET current_balance = ?, updated_at = ? WHERE id = ?`,
		newBalance, utils.ISTNow(), transaction.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newBalance, nil
}

// UpdateStatus moves a transaction between pending/completed/failed. Status
// transitions never touch the balance; the ledger effect is applied once, at
// creation.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id int64, status entity.TransactionStatus) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		`UPDATE transactions SET status = ? WHERE id = ?`, status, id)
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
