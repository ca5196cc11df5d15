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

type AccountUseCase struct {
	Log                     log.Log
	Validate                *validator.Validate
	AccountRepository       *repository.AccountTransactionRepository
	PaymentMethodRepository *repository.PaymentMethodRepository
	NotificationRepository  *repository.NotificationRepository
	UserRepository          *repository.UserRepository
	TransactionProducer     *messaging.TransactionProducer
	TaskClient              *asynq.Client
}

func NewAccountUseCase(
	logger log.Log,
	validate *validator.Validate,
	accountRepository *repository.AccountTransactionRepository,
	paymentMethodRepository *repository.PaymentMethodRepository,
	notificationRepository *repository.NotificationRepository,
	userRepository *repository.UserRepository,
	transactionProducer *messaging.TransactionProducer,
	taskClient *asynq.Client,
) *AccountUseCase {
	return &AccountUseCase{
		Log:                     logger,
		Validate:                validate,
		AccountRepository:       accountRepository,
		PaymentMethodRepository: paymentMethodRepository,
		NotificationRepository:  notificationRepository,
		UserRepository:          userRepository,
		TransactionProducer:     transactionProducer,
		TaskClient:              taskClient,
	}
}

func (c *AccountUseCase) Create(ctx context.Context, request *model.CreateAccountTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("account-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	transactionType, err := entity.ParseAccountTransactionType(request.Type)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("account-usecase", errObj.Message, "Create", request.Type)
		return result
	}

	if request.PaymentMethodID != nil {
		method, err := c.PaymentMethodRepository.FindByID(ctx, *request.PaymentMethodID)
		if err != nil || method.UserID != request.UserID {
			errObj := httpError.NewNotFound()
			errObj.Message = "Payment Method not found"
			result.Error = errObj
			c.Log.Error("account-usecase", errObj.Message, "Create", utils.ConvertString(*request.PaymentMethodID))
			return result
		}
	}

	transaction := &entity.AccountTransaction{
		UserID:          request.UserID,
		Amount:          request.Amount,
		Type:            transactionType,
		PaymentMethodID: request.PaymentMethodID,
	}

	newBalance, err := c.AccountRepository.CreateWithBalance(ctx, transaction)
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
			errObj.Message = fmt.Sprintf("failed to create account transaction: %v", err)
		}
		result.Error = errObj
		c.Log.Error("account-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	if transactionType == entity.AccountTransactionDeposit {
		notification := &entity.Notification{
			UserID:  request.UserID,
			Message: fmt.Sprintf("Account recharge of $%.2f completed successfully", request.Amount),
			Type:    entity.NotificationTransactionComplete,
		}
		if err := c.NotificationRepository.Create(ctx, notification); err != nil {
			c.Log.Error("account-usecase", "failed to create notification", "Create", err.Error())
		}
	}

	if transactionType == entity.AccountTransactionWithdrawal && newBalance < lowBalanceThreshold {
		if c.TaskClient != nil {
			task, err := NewBalanceLowTask(request.UserID, newBalance)
			if err == nil {
				if _, err := c.TaskClient.EnqueueContext(ctx, task); err != nil {
					c.Log.Error("account-usecase", "failed to enqueue balance alert", "Create", err.Error())
				}
			}
		}
		if c.TransactionProducer != nil {
			event := &model.BalanceAlertEvent{
				ID:      transaction.ReferenceID,
				UserID:  request.UserID,
				Balance: newBalance,
			}
			if err := c.TransactionProducer.SendBalanceAlert(event); err != nil {
				c.Log.Error("account-usecase", "failed to publish balance alert", "Create", err.Error())
			}
		}
	}

	c.Log.Info("account-usecase", "account transaction created", "Create", transaction.ReferenceID)
	result.Data = converter.AccountTransactionToResponse(transaction, newBalance)
	return result
}

func (c *AccountUseCase) List(ctx context.Context, request *model.ListTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("account-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.UserID)
		result.Error = errObj
		c.Log.Error("account-usecase", err.Error(), "List", utils.ConvertString(request.UserID))
		return result
	}

	transactions, err := c.AccountRepository.FindByUser(ctx, request.UserID, request.Skip, request.Limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list account transactions: %v", err)
		result.Error = errObj
		c.Log.Error("account-usecase", errObj.Message, "List", utils.ConvertString(request.UserID))
		return result
	}

	result.Data = converter.AccountTransactionsToResponse(transactions, user.CurrentBalance)
	return result
}
