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

type VehicleController struct {
	Log     log.Log
	UseCase *usecase.VehicleUseCase
}

func NewVehicleController(useCase *usecase.VehicleUseCase, logger log.Log) *VehicleController {
	return &VehicleController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *VehicleController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateVehicle", fiber.StatusCreated, ctx)
}

func (c *VehicleController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListVehicleRequest{
		UserID: auth.UserID,
		Skip:   ctx.QueryInt("skip", 0),
		Limit:  ctx.QueryInt("limit", 100),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListVehicles", fiber.StatusOK, ctx)
}

func (c *VehicleController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	vehicleID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid vehicle id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Get(ctx.Context(), int64(vehicleID), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetVehicle", fiber.StatusOK, ctx)
}

func (c *VehicleController) Update(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	vehicleID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid vehicle id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(vehicleID)
	request.UserID = auth.UserID
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateVehicle", fiber.StatusOK, ctx)
}

func (c *VehicleController) Delete(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	vehicleID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid vehicle id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Delete(ctx.Context(), int64(vehicleID), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "DeleteVehicle", fiber.StatusOK, ctx)
}
