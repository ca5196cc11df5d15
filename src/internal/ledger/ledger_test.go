package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tolleasy-service/src/internal/entity"
)

func TestTransactionDelta(t *testing.T) {
	cases := []struct {
		name     string
		txType   entity.TransactionType
		amount   float64
		expected float64
	}{
		{"toll payment subtracts", entity.TransactionTypeTollPayment, 200.0, -200.0},
		{"account recharge adds", entity.TransactionTypeAccountRecharge, 500.0, 500.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delta, err := TransactionDelta(tc.txType, tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, delta)
		})
	}
}

func TestTransactionDeltaUnknownType(t *testing.T) {
	_, err := TransactionDelta(entity.TransactionType("transfer"), 10)
	assert.Error(t, err)
}

func TestAccountTransactionDelta(t *testing.T) {
	cases := []struct {
		name     string
		txType   entity.AccountTransactionType
		amount   float64
		expected float64
	}{
		{"deposit adds", entity.AccountTransactionDeposit, 300.0, 300.0},
		{"withdrawal subtracts", entity.AccountTransactionWithdrawal, 150.0, -150.0},
		{"refund adds", entity.AccountTransactionRefund, 75.0, 75.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delta, err := AccountTransactionDelta(tc.txType, tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, delta)
		})
	}
}

func TestApply(t *testing.T) {
	next, err := Apply(1000.0, -200.0)
	require.NoError(t, err)
	assert.Equal(t, 800.0, next)

	next, err = Apply(800.0, -900.0)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 800.0, next)

	next, err = Apply(500.0, 300.0)
	require.NoError(t, err)
	assert.Equal(t, 800.0, next)
}

func TestApplyExactBalance(t *testing.T) {
	// Spending the whole balance is allowed, only going below zero is not.
	next, err := Apply(200.0, -200.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, next)
}

func TestTollPaymentScenario(t *testing.T) {
	balance := 1000.0

	delta, err := TransactionDelta(entity.TransactionTypeTollPayment, 200.0)
	require.NoError(t, err)
	balance, err = Apply(balance, delta)
	require.NoError(t, err)
	assert.Equal(t, 800.0, balance)

	delta, err = TransactionDelta(entity.TransactionTypeTollPayment, 900.0)
	require.NoError(t, err)
	balance, err = Apply(balance, delta)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 800.0, balance)
}
