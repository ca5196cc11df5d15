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

type AccountTransactionRepository struct {
	DB mysql.DBInterface
}

func NewAccountTransactionRepository(db mysql.DBInterface) *AccountTransactionRepository {
	return &AccountTransactionRepository{DB: db}
}

const accountTransactionColumns = `
	id, user_id, amount, type, payment_method_id, status, timestamp, reference_id`

func (r *AccountTransactionRepository) FindByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.AccountTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.AccountTransaction
	query := `SELECT ` + accountTransactionColumns + ` FROM account_transactions WHERE user_id = ? ORDER BY timestamp DESC LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &transactions, query, userID, limit, skip); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *AccountTransactionRepository) FindByID(ctx context.Context, id int64) (*entity.AccountTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tx entity.AccountTransaction
	query := `SELECT ` + accountTransactionColumns + ` FROM account_transactions WHERE id = ?`
	if err := db.GetContext(ctx, &tx, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &tx, nil
}

// CreateWithBalance inserts the account transaction and applies its signed
// effect to the user's balance in one database transaction. Withdrawals that
// would overdraw the account are rejected with ledger.ErrInsufficientBalance
// and nothing is persisted. Returns the balance after the commit.
func (r *AccountTransactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.AccountTransaction) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	delta, err := ledger.AccountTransactionDelta(transaction.Type, transaction.Amount)
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
	transaction.Status = entity.TransactionStatusCompleted
	transaction.Timestamp = utils.ISTNow()

	res, err := dbTx.ExecContext(ctx, `
		INSERT INTO account_transactions (user_id, amount, type, payment_method_id,
			status, timestamp, reference_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		transaction.UserID, transaction.Amount, transaction.Type,
		transaction.PaymentMethodID, transaction.Status, transaction.Timestamp,
		transaction.ReferenceID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert account transaction: %w", err)
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
		return 0, fmt.Errorf("failed to commit account transaction: %w", err)
	}
	return newBalance, nil
}
