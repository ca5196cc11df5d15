package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFeaturesRoundTrip(t *testing.T) {
	features := PlanFeatures{
		"free_passes":      5,
		"discount":         0,
		"priority_support": true,
	}

	value, err := features.Value()
	require.NoError(t, err)

	// JSON numbers come back as float64.
	var scanned PlanFeatures
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, PlanFeatures{
		"free_passes":      float64(5),
		"discount":         float64(0),
		"priority_support": true,
	}, scanned)
}

func TestPlanFeaturesScanNil(t *testing.T) {
	var features PlanFeatures
	require.NoError(t, features.Scan(nil))
	assert.Empty(t, features)
}

func TestPlanFeaturesScanString(t *testing.T) {
	var features PlanFeatures
	require.NoError(t, features.Scan(`{"discount":10,"dedicated_manager":true}`))
	assert.Equal(t, float64(10), features["discount"])
	assert.Equal(t, true, features["dedicated_manager"])
}

func TestPlanFeaturesScanUnsupported(t *testing.T) {
	var features PlanFeatures
	assert.Error(t, features.Scan(12345))
}

func TestPlanFeaturesNilValue(t *testing.T) {
	var features PlanFeatures
	value, err := features.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}

func TestParseTransactionType(t *testing.T) {
	parsed, err := ParseTransactionType("toll payment")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeTollPayment, parsed)

	parsed, err = ParseTransactionType("account recharge")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeAccountRecharge, parsed)

	_, err = ParseTransactionType("wire transfer")
	assert.Error(t, err)
}

func TestParseAccountTransactionType(t *testing.T) {
	for _, valid := range []string{"deposit", "withdrawal", "refund"} {
		parsed, err := ParseAccountTransactionType(valid)
		require.NoError(t, err)
		assert.Equal(t, AccountTransactionType(valid), parsed)
	}

	_, err := ParseAccountTransactionType("chargeback")
	assert.Error(t, err)
}
