// Package ledger maps financial events to signed balance adjustments. The
// check and the mutation are one operation: callers get either the new
// balance or an error, never an unguarded delta to apply themselves.
package ledger

import (
	"errors"
	"fmt"

	"tolleasy-service/src/internal/entity"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// TransactionDelta returns the signed balance effect of a toll transaction.
func TransactionDelta(txType entity.TransactionType, amount float64) (float64, error) {
	switch txType {
	case entity.TransactionTypeTollPayment:
		return -amount, nil
	case entity.TransactionTypeAccountRecharge:
		return amount, nil
	}
	return 0, fmt.Errorf("unknown transaction type: %q", txType)
}

// AccountTransactionDelta returns the signed balance effect of an account
// transaction.
func AccountTransactionDelta(txType entity.AccountTransactionType, amount float64) (float64, error) {
	switch txType {
	case entity.AccountTransactionDeposit, entity.AccountTransactionRefund:
		return amount, nil
	case entity.AccountTransactionWithdrawal:
		return -amount, nil
	}
	return 0, fmt.Errorf("unknown account transaction type: %q", txType)
}

// Apply returns the balance after the delta. A delta that would drive the
// balance negative is rejected with ErrInsufficientBalance and the balance is
// left untouched.
func Apply(balance, delta float64) (float64, error) {
	next := balance + delta
	if next < 0 {
		return balance, ErrInsufficientBalance
	}
	return next, nil
}
