package http

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/usecase"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type PlazaController struct {
	Log     log.Log
	UseCase *usecase.PlazaUseCase
}

func NewPlazaController(useCase *usecase.PlazaUseCase, logger log.Log) *PlazaController {
	return &PlazaController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PlazaController) List(ctx *fiber.Ctx) error {
	request := &model.ListPlazaRequest{
		Skip:  ctx.QueryInt("skip", 0),
		Limit: ctx.QueryInt("limit", 100),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListTollPlazas", fiber.StatusOK, ctx)
}

func (c *PlazaController) Get(ctx *fiber.Ctx) error {
	plazaID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid toll plaza id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Get(ctx.Context(), int64(plazaID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetTollPlaza", fiber.StatusOK, ctx)
}

func (c *PlazaController) GetStatus(ctx *fiber.Ctx) error {
	plazaID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid toll plaza id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.GetStatus(ctx.Context(), int64(plazaID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetTollPlazaStatus", fiber.StatusOK, ctx)
}

func (c *PlazaController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreatePlazaRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PlazaController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateTollPlaza", fiber.StatusCreated, ctx)
}

func (c *PlazaController) Update(ctx *fiber.Ctx) error {
	plazaID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid toll plaza id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdatePlazaRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PlazaController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(plazaID)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateTollPlaza", fiber.StatusOK, ctx)
}

func (c *PlazaController) Delete(ctx *fiber.Ctx) error {
	plazaID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid toll plaza id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Delete(ctx.Context(), int64(plazaID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "DeleteTollPlaza", fiber.StatusOK, ctx)
}
