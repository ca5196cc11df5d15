package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type TrafficUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	TrafficRepository *repository.TrafficRepository
	Redis             redis.UniversalClient
}

func NewTrafficUseCase(
	logger log.Log,
	validate *validator.Validate,
	trafficRepository *repository.TrafficRepository,
	redisClient redis.UniversalClient,
) *TrafficUseCase {
	return &TrafficUseCase{
		Log:               logger,
		Validate:          validate,
		TrafficRepository: trafficRepository,
		Redis:             redisClient,
	}
}

// Ingest records the telemetry sample and recomputes the plaza's congestion
// pricing, then refreshes the cached status snapshot.
func (c *TrafficUseCase) Ingest(ctx context.Context, request *model.IngestTrafficRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("traffic-usecase", errObj.Message, "Ingest", utils.ConvertString(err))
		return result
	}

	sample := &entity.TrafficData{
		TollPlazaID:     request.TollPlazaID,
		VehicleCount:    request.VehicleCount,
		AverageWaitTime: request.AverageWaitTime,
		PriceMultiplier: request.PriceMultiplier,
	}

	plaza, err := c.TrafficRepository.IngestSample(ctx, sample)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
			errObj.Message = "Toll Plaza not found"
		} else {
			errObj.Message = fmt.Sprintf("failed to ingest traffic data: %v", err)
		}
		result.Error = errObj
		c.Log.Error("traffic-usecase", errObj.Message, "Ingest", utils.ConvertString(request))
		return result
	}

	c.cacheStatus(ctx, plaza)

	c.Log.Info("traffic-usecase", "traffic sample ingested", "Ingest",
		fmt.Sprintf("plaza=%d count=%d level=%s price=%.2f", plaza.ID, request.VehicleCount, plaza.BusyLevel, plaza.CurrentPrice))
	result.Data = converter.TrafficDataToResponse(sample)
	return result
}

func (c *TrafficUseCase) ListByPlaza(ctx context.Context, request *model.ListTrafficRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("traffic-usecase", errObj.Message, "ListByPlaza", utils.ConvertString(err))
		return result
	}

	samples, err := c.TrafficRepository.FindByPlaza(ctx, request.TollPlazaID, request.Skip, request.Limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list traffic data: %v", err)
		result.Error = errObj
		c.Log.Error("traffic-usecase", errObj.Message, "ListByPlaza", utils.ConvertString(request.TollPlazaID))
		return result
	}

	result.Data = converter.TrafficDataListToResponse(samples)
	return result
}

func (c *TrafficUseCase) cacheStatus(ctx context.Context, plaza *entity.TollPlaza) {
	if c.Redis == nil {
		return
	}
	status := converter.PlazaToStatus(plaza)
	payload, err := json.Marshal(status)
	if err != nil {
		c.Log.Error("traffic-usecase", "failed to marshal status snapshot", "cacheStatus", err.Error())
		return
	}
	key := fmt.Sprintf("PLAZA:STATUS:%d", plaza.ID)
	if err := c.Redis.Set(ctx, key, payload, 5*time.Minute).Err(); err != nil {
		c.Log.Error("traffic-usecase", "failed to cache status snapshot", "cacheStatus", err.Error())
	}
}
