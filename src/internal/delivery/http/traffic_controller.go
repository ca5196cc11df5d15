package http

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/usecase"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type TrafficController struct {
	Log     log.Log
	UseCase *usecase.TrafficUseCase
}

func NewTrafficController(useCase *usecase.TrafficUseCase, logger log.Log) *TrafficController {
	return &TrafficController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TrafficController) Ingest(ctx *fiber.Ctx) error {
	request := new(model.IngestTrafficRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TrafficController.Ingest", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Ingest(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "IngestTrafficData", fiber.StatusCreated, ctx)
}

func (c *TrafficController) ListByPlaza(ctx *fiber.Ctx) error {
	plazaID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid toll plaza id"
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.ListTrafficRequest{
		TollPlazaID: int64(plazaID),
		Skip:        ctx.QueryInt("skip", 0),
		Limit:       ctx.QueryInt("limit", 100),
	}
	result := c.UseCase.ListByPlaza(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListTrafficData", fiber.StatusOK, ctx)
}
