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

type TransactionController struct {
	Log     log.Log
	UseCase *usecase.TransactionUseCase
}

func NewTransactionController(useCase *usecase.TransactionUseCase, logger log.Log) *TransactionController {
	return &TransactionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TransactionController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateTransactionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateTransaction", fiber.StatusCreated, ctx)
}

func (c *TransactionController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListTransactionRequest{
		UserID: auth.UserID,
		Skip:   ctx.QueryInt("skip", 0),
		Limit:  ctx.QueryInt("limit", 100),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListTransactions", fiber.StatusOK, ctx)
}

func (c *TransactionController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	transactionID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid transaction id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Get(ctx.Context(), int64(transactionID), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetTransaction", fiber.StatusOK, ctx)
}

func (c *TransactionController) UpdateStatus(ctx *fiber.Ctx) error {
	transactionID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid transaction id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdateTransactionStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(transactionID)
	result := c.UseCase.UpdateStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateTransactionStatus", fiber.StatusOK, ctx)
}
