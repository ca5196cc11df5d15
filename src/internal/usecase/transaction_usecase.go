package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/gateway/messaging"
	"tolleasy-service/src/internal/ledger"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

// lowBalanceThreshold triggers the balance alert pipeline after a debit.
const lowBalanceThreshold = 10.0

type TransactionUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	TransactionRepository  *repository.TransactionRepository
	VehicleRepository      *repository.VehicleRepository
	PlazaRepository        *repository.PlazaRepository
	NotificationRepository *repository.NotificationRepository
	TransactionProducer    *messaging.TransactionProducer
	TaskClient             *asynq.Client
}

func NewTransactionUseCase(
	logger log.Log,
	validate *validator.Validate,
	transactionRepository *repository.TransactionRepository,
	vehicleRepository *repository.VehicleRepository,
	plazaRepository *repository.PlazaRepository,
	notificationRepository *repository.NotificationRepository,
	transactionProducer *messaging.TransactionProducer,
	taskClient *asynq.Client,
) *TransactionUseCase {
	return &TransactionUseCase{
		Log:                    logger,
		Validate:               validate,
		TransactionRepository:  transactionRepository,
		VehicleRepository:      vehicleRepository,
		PlazaRepository:        plazaRepository,
		NotificationRepository: notificationRepository,
		TransactionProducer:    transactionProducer,
		TaskClient:             taskClient,
	}
}

func (c *TransactionUseCase) Create(ctx context.Context, request *model.CreateTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	transactionType, err := entity.ParseTransactionType(request.TransactionType)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Create", request.TransactionType)
		return result
	}

	vehicle, err := c.VehicleRepository.FindByID(ctx, request.VehicleID)
	if err != nil || vehicle.UserID != request.UserID {
		errObj := httpError.NewNotFound()
		errObj.Message = "Vehicle not found"
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Create", utils.ConvertString(request.VehicleID))
		return result
	}

	plaza, err := c.PlazaRepository.FindByID(ctx, request.TollPlazaID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Toll Plaza not found"
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Create", utils.ConvertString(request.TollPlazaID))
		return result
	}

	transaction := &entity.Transaction{
		UserID:          request.UserID,
		VehicleID:       request.VehicleID,
		TollPlazaID:     request.TollPlazaID,
		Amount:          request.Amount,
		TransactionType: transactionType,
	}
	if request.PaymentMethod != "" {
		transaction.PaymentMethod.String = request.PaymentMethod
		transaction.PaymentMethod.Valid = true
	}

	newBalance, err := c.TransactionRepository.CreateWithBalance(ctx, transaction)
	if err != nil {
		var errObj *httpError.CommonError
		switch {
		case errors.Is(err, ledger.ErrInsufficientBalance):
			errObj = httpError.NewBadRequest()
			errObj.Message = "Insufficient balance"
		case errors.Is(err, repository.ErrNotFound):
			errObj = httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("user with id %d not found", request.UserID)
		default:
			errObj = httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to create transaction: %v", err)
		}
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	if transactionType == entity.TransactionTypeTollPayment {
		notification := &entity.Notification{
			UserID:  request.UserID,
			Message: fmt.Sprintf("Toll payment of $%.2f completed successfully at %s", request.Amount, plaza.Name),
			Type:    entity.NotificationTransactionComplete,
		}
		if err := c.NotificationRepository.Create(ctx, notification); err != nil {
			c.Log.Error("transaction-usecase", "failed to create notification", "Create", err.Error())
		}
	}

	response := converter.TransactionToResponse(transaction)

	if c.TransactionProducer != nil {
		event := converter.TransactionToEvent(response)
		if err := c.TransactionProducer.SendTransactionCreated(event); err != nil {
			c.Log.Error("transaction-usecase", "failed to publish transaction event", "Create", err.Error())
		}
	}

	if newBalance < lowBalanceThreshold && c.TaskClient != nil {
		task, err := NewBalanceLowTask(request.UserID, newBalance)
		if err == nil {
			if _, err := c.TaskClient.EnqueueContext(ctx, task); err != nil {
				c.Log.Error("transaction-usecase", "failed to enqueue balance alert", "Create", err.Error())
			}
		}
	}

	c.Log.Info("transaction-usecase", "transaction created", "Create", transaction.ReferenceID)
	result.Data = response
	return result
}

func (c *TransactionUseCase) List(ctx context.Context, request *model.ListTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	transactions, err := c.TransactionRepository.FindByUser(ctx, request.UserID, request.Skip, request.Limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list transactions: %v", err)
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "List", utils.ConvertString(request.UserID))
		return result
	}

	result.Data = converter.TransactionsToResponse(transactions)
	return result
}

func (c *TransactionUseCase) Get(ctx context.Context, transactionID, userID int64) utils.Result {
	var result utils.Result

	transaction, err := c.TransactionRepository.FindByID(ctx, transactionID)
	if err != nil || transaction.UserID != userID {
		errObj := httpError.NewNotFound()
		errObj.Message = "Transaction not found"
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "Get", utils.ConvertString(transactionID))
		return result
	}

	result.Data = converter.TransactionToResponse(transaction)
	return result
}

// UpdateStatus moves a transaction along PENDING -> COMPLETED/FAILED. The
// balance was settled at creation and is never touched here.
func (c *TransactionUseCase) UpdateStatus(ctx context.Context, request *model.UpdateTransactionStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "UpdateStatus", utils.ConvertString(err))
		return result
	}

	if err := c.TransactionRepository.UpdateStatus(ctx, request.ID, entity.TransactionStatus(request.Status)); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
			errObj.Message = "Transaction not found"
		} else {
			errObj.Message = fmt.Sprintf("failed to update status: %v", err)
		}
		result.Error = errObj
		c.Log.Error("transaction-usecase", errObj.Message, "UpdateStatus", utils.ConvertString(request.ID))
		return result
	}

	transaction, err := c.TransactionRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Transaction not found"
		result.Error = errObj
		return result
	}

	result.Data = converter.TransactionToResponse(transaction)
	return result
}
