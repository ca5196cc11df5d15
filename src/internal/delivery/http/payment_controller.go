package http

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/delivery/http/middleware"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/usecase"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type PaymentMethodController struct {
	Log     log.Log
	UseCase *usecase.PaymentMethodUseCase
}

func NewPaymentMethodController(useCase *usecase.PaymentMethodUseCase, logger log.Log) *PaymentMethodController {
	return &PaymentMethodController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentMethodController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.List(ctx.Context(), auth.UserID, ctx.QueryInt("skip", 0), ctx.QueryInt("limit", 100))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListPaymentMethods", fiber.StatusOK, ctx)
}

func (c *PaymentMethodController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreatePaymentMethodRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentMethodController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreatePaymentMethod", fiber.StatusCreated, ctx)
}

func (c *PaymentMethodController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	methodID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid payment method id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdatePaymentMethodRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentMethodController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(methodID)
	request.UserID = auth.UserID
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdatePaymentMethod", fiber.StatusOK, ctx)
}

func (c *PaymentMethodController) Delete(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	methodID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid payment method id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Delete(ctx.Context(), int64(methodID), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "DeletePaymentMethod", fiber.StatusOK, ctx)
}
