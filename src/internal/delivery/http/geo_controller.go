package http

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/usecase"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type GeoController struct {
	Log     log.Log
	UseCase *usecase.GeoUseCase
}

func NewGeoController(useCase *usecase.GeoUseCase, logger log.Log) *GeoController {
	return &GeoController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *GeoController) TrafficDetails(ctx *fiber.Ctx) error {
	request := &model.TrafficDetailsRequest{
		Location: ctx.Query("location"),
	}
	result := c.UseCase.TrafficDetails(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "TrafficDetails", fiber.StatusOK, ctx)
}

func (c *GeoController) Route(ctx *fiber.Ctx) error {
	request := &model.RouteRequest{
		Origin:      ctx.Query("origin"),
		Destination: ctx.Query("destination"),
	}
	result := c.UseCase.Route(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Route", fiber.StatusOK, ctx)
}

func (c *GeoController) NearbyPlazas(ctx *fiber.Ctx) error {
	request := &model.NearbyPlazasRequest{
		Location: ctx.Query("location"),
		Radius:   uint(ctx.QueryInt("radius", 0)),
	}
	result := c.UseCase.NearbyPlazas(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "NearbyTollPlazas", fiber.StatusOK, ctx)
}
