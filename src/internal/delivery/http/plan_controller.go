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

type PlanController struct {
	Log     log.Log
	UseCase *usecase.PlanUseCase
}

func NewPlanController(useCase *usecase.PlanUseCase, logger log.Log) *PlanController {
	return &PlanController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PlanController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context(), ctx.QueryInt("skip", 0), ctx.QueryInt("limit", 100))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListPlans", fiber.StatusOK, ctx)
}

func (c *PlanController) Get(ctx *fiber.Ctx) error {
	planID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid plan id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Get(ctx.Context(), int64(planID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetPlan", fiber.StatusOK, ctx)
}

func (c *PlanController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreatePlanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PlanController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreatePlan", fiber.StatusCreated, ctx)
}

func (c *PlanController) Update(ctx *fiber.Ctx) error {
	planID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid plan id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdatePlanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PlanController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(planID)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdatePlan", fiber.StatusOK, ctx)
}

func (c *PlanController) Subscribe(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SubscribeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PlanController.Subscribe", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Subscribe(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Subscribe", fiber.StatusOK, ctx)
}
