package converter

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tolleasy-service/src/internal/entity"
)

func TestPlazaToStatusFormatsEstimatedTime(t *testing.T) {
	plaza := &entity.TollPlaza{
		ID:              3,
		Name:            "Eastern Gate",
		CurrentPrice:    82.5,
		BusyLevel:       entity.BusyLevelHigh,
		EstimatedTime:   75,
		VehiclesPerHour: 410,
	}

	status := PlazaToStatus(plaza)
	assert.Equal(t, int64(3), status.TollPlazaID)
	assert.Equal(t, "high", status.BusyLevel)
	assert.Equal(t, "1h 15m", status.EstimatedTime)
	assert.Equal(t, 410, status.VehiclesPerHour)
}

func TestTransactionToEventKeyedByReference(t *testing.T) {
	tx := &entity.Transaction{
		ID:              11,
		UserID:          4,
		VehicleID:       9,
		TollPlazaID:     3,
		Amount:          120,
		Timestamp:       time.Now(),
		Status:          entity.TransactionStatusCompleted,
		TransactionType: entity.TransactionTypeTollPayment,
		PaymentMethod:   sql.NullString{String: "balance", Valid: true},
		ReferenceID:     "TXN-ABC123",
	}

	response := TransactionToResponse(tx)
	require.Equal(t, "toll payment", response.TransactionType)
	require.Equal(t, "balance", response.PaymentMethod)

	event := TransactionToEvent(response)
	assert.Equal(t, "TXN-ABC123", event.GetId())
	assert.Equal(t, *response, event.Message)
}

func TestAccountTransactionToResponseCarriesBalance(t *testing.T) {
	tx := &entity.AccountTransaction{
		ID:          5,
		UserID:      4,
		Amount:      50,
		Type:        entity.AccountTransactionDeposit,
		Status:      entity.TransactionStatusCompleted,
		Timestamp:   time.Now(),
		ReferenceID: "ACC-XYZ789",
	}

	response := AccountTransactionToResponse(tx, 150.25)
	assert.Equal(t, "deposit", response.Type)
	assert.Equal(t, 150.25, response.CurrentBalance)
	assert.Nil(t, response.PaymentMethodID)
}
