package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type PaymentMethodUseCase struct {
	Log                     log.Log
	Validate                *validator.Validate
	PaymentMethodRepository *repository.PaymentMethodRepository
}

func NewPaymentMethodUseCase(
	logger log.Log,
	validate *validator.Validate,
	paymentMethodRepository *repository.PaymentMethodRepository,
) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{
		Log:                     logger,
		Validate:                validate,
		PaymentMethodRepository: paymentMethodRepository,
	}
}

func (c *PaymentMethodUseCase) List(ctx context.Context, userID int64, skip, limit int) utils.Result {
	var result utils.Result

	methods, err := c.PaymentMethodRepository.FindByUser(ctx, userID, skip, limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list payment methods: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "List", utils.ConvertString(userID))
		return result
	}

	result.Data = converter.PaymentMethodsToResponse(methods)
	return result
}

func (c *PaymentMethodUseCase) Create(ctx context.Context, request *model.CreatePaymentMethodRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	method := &entity.PaymentMethod{
		UserID:         request.UserID,
		PaymentType:    request.PaymentType,
		PaymentDetails: request.PaymentDetails,
		IsDefault:      request.IsDefault,
	}
	if err := c.PaymentMethodRepository.Create(ctx, method); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create payment method: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	c.Log.Info("payment-usecase", "payment method added", "Create", method.PaymentType)
	result.Data = converter.PaymentMethodToResponse(method)
	return result
}

func (c *PaymentMethodUseCase) Update(ctx context.Context, request *model.UpdatePaymentMethodRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	method, errObj := c.findOwned(ctx, request.ID, request.UserID, "Update")
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if request.PaymentType != nil {
		method.PaymentType = *request.PaymentType
	}
	if request.PaymentDetails != nil {
		method.PaymentDetails = *request.PaymentDetails
	}
	if request.IsDefault != nil {
		method.IsDefault = *request.IsDefault
	}

	if err := c.PaymentMethodRepository.Update(ctx, method); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update payment method: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Update", utils.ConvertString(request.ID))
		return result
	}

	result.Data = converter.PaymentMethodToResponse(method)
	return result
}

func (c *PaymentMethodUseCase) Delete(ctx context.Context, methodID, userID int64) utils.Result {
	var result utils.Result

	method, errObj := c.findOwned(ctx, methodID, userID, "Delete")
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := c.PaymentMethodRepository.Delete(ctx, methodID); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to delete payment method: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Delete", utils.ConvertString(methodID))
		return result
	}

	c.Log.Info("payment-usecase", "payment method deleted", "Delete", utils.ConvertString(methodID))
	result.Data = converter.PaymentMethodToResponse(method)
	return result
}

func (c *PaymentMethodUseCase) findOwned(ctx context.Context, methodID, userID int64, scope string) (*entity.PaymentMethod, *httpError.CommonError) {
	method, err := c.PaymentMethodRepository.FindByID(ctx, methodID)
	if err != nil || method.UserID != userID {
		errObj := httpError.NewNotFound()
		errObj.Message = "Payment Method not found"
		c.Log.Error("payment-usecase", errObj.Message, scope, utils.ConvertString(methodID))
		return nil, errObj
	}
	return method, nil
}
