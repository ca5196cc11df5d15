package http

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/delivery/http/middleware"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/usecase"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type AccountController struct {
	Log     log.Log
	UseCase *usecase.AccountUseCase
}

func NewAccountController(useCase *usecase.AccountUseCase, logger log.Log) *AccountController {
	return &AccountController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AccountController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateAccountTransactionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AccountController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateAccountTransaction", fiber.StatusCreated, ctx)
}

func (c *AccountController) List(ctx *fiber.Ctx) error {
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

	return utils.Response(result.Data, "ListAccountTransactions", fiber.StatusOK, ctx)
}
