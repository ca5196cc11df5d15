package converter

import (
	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
)

func TransactionToResponse(transaction *entity.Transaction) *model.TransactionResponse {
	return &model.TransactionResponse{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		VehicleID:       transaction.VehicleID,
		TollPlazaID:     transaction.TollPlazaID,
		Amount:          transaction.Amount,
		TransactionType: string(transaction.TransactionType),
		PaymentMethod:   transaction.PaymentMethod.String,
		Status:          string(transaction.Status),
		Timestamp:       transaction.Timestamp,
		ReferenceID:     transaction.ReferenceID,
	}
}

func TransactionsToResponse(transactions []entity.Transaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, *TransactionToResponse(&transactions[i]))
	}
	return responses
}

func TransactionToEvent(transaction *model.TransactionResponse) *model.TransactionEvent {
	return &model.TransactionEvent{
		ID:      transaction.ReferenceID,
		Message: *transaction,
	}
}

func AccountTransactionToResponse(transaction *entity.AccountTransaction, balance float64) *model.AccountTransactionResponse {
	return &model.AccountTransactionResponse{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Amount:          transaction.Amount,
		Type:            string(transaction.Type),
		PaymentMethodID: transaction.PaymentMethodID,
		Status:          string(transaction.Status),
		Timestamp:       transaction.Timestamp,
		ReferenceID:     transaction.ReferenceID,
		CurrentBalance:  balance,
	}
}

func AccountTransactionsToResponse(transactions []entity.AccountTransaction, balance float64) []model.AccountTransactionResponse {
	responses := make([]model.AccountTransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, *AccountTransactionToResponse(&transactions[i], balance))
	}
	return responses
}
