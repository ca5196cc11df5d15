package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

type PlazaUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	PlazaRepository *repository.PlazaRepository
	Redis           redis.UniversalClient
}

func NewPlazaUseCase(
	logger log.Log,
	validate *validator.Validate,
	plazaRepository *repository.PlazaRepository,
	redisClient redis.UniversalClient,
) *PlazaUseCase {
	return &PlazaUseCase{
		Log:             logger,
		Validate:        validate,
		PlazaRepository: plazaRepository,
		Redis:           redisClient,
	}
}

func (c *PlazaUseCase) List(ctx context.Context, request *model.ListPlazaRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	plazas, err := c.PlazaRepository.List(ctx, request.Skip, request.Limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list toll plazas: %v", err)
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	result.Data = converter.PlazasToResponse(plazas)
	return result
}

func (c *PlazaUseCase) Get(ctx context.Context, plazaID int64) utils.Result {
	var result utils.Result

	plaza, err := c.PlazaRepository.FindByID(ctx, plazaID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("toll plaza with id %d not found", plazaID)
		result.Error = errObj
		c.Log.Error("plaza-usecase", err.Error(), "Get", utils.ConvertString(plazaID))
		return result
	}

	result.Data = converter.PlazaToResponse(plaza)
	return result
}

// GetStatus serves the live congestion snapshot, preferring the cache the
// traffic ingestion path maintains and falling back to the stored row.
func (c *PlazaUseCase) GetStatus(ctx context.Context, plazaID int64) utils.Result {
	var result utils.Result

	key := fmt.Sprintf("PLAZA:STATUS:%d", plazaID)
	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var status model.PlazaStatusResponse
			if err := json.Unmarshal([]byte(cached), &status); err == nil {
				result.Data = &status
				return result
			}
			c.Log.Error("plaza-usecase", "corrupt status cache entry", "GetStatus", key)
		}
	}

	plaza, err := c.PlazaRepository.FindByID(ctx, plazaID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("toll plaza with id %d not found", plazaID)
		result.Error = errObj
		c.Log.Error("plaza-usecase", err.Error(), "GetStatus", utils.ConvertString(plazaID))
		return result
	}

	result.Data = converter.PlazaToStatus(plaza)
	return result
}

func (c *PlazaUseCase) Create(ctx context.Context, request *model.CreatePlazaRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	plaza := &entity.TollPlaza{
		Name:      request.Name,
		Location:  request.Location,
		Address:   request.Address,
		BasePrice: request.BasePrice,
		// Derived fields start at the base rate until telemetry arrives.
		CurrentPrice: request.BasePrice,
		BusyLevel:    entity.BusyLevelLow,
	}
	if err := c.PlazaRepository.Create(ctx, plaza); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create toll plaza: %v", err)
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	c.Log.Info("plaza-usecase", "toll plaza created", "Create", plaza.Name)
	result.Data = converter.PlazaToResponse(plaza)
	return result
}

func (c *PlazaUseCase) Update(ctx context.Context, request *model.UpdatePlazaRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	plaza, err := c.PlazaRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("toll plaza with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("plaza-usecase", err.Error(), "Update", utils.ConvertString(request.ID))
		return result
	}

	if request.Name != nil {
		plaza.Name = *request.Name
	}
	if request.Location != nil {
		plaza.Location = *request.Location
	}
	if request.Address != nil {
		plaza.Address = *request.Address
	}
	if request.BasePrice != nil {
		plaza.BasePrice = *request.BasePrice
	}

	if err := c.PlazaRepository.Update(ctx, plaza); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
		}
		errObj.Message = fmt.Sprintf("failed to update toll plaza: %v", err)
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "Update", utils.ConvertString(request.ID))
		return result
	}

	result.Data = converter.PlazaToResponse(plaza)
	return result
}

func (c *PlazaUseCase) Delete(ctx context.Context, plazaID int64) utils.Result {
	var result utils.Result

	if err := c.PlazaRepository.Delete(ctx, plazaID); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("toll plaza with id %d not found", plazaID)
		} else {
			errObj.Message = fmt.Sprintf("failed to delete toll plaza: %v", err)
		}
		result.Error = errObj
		c.Log.Error("plaza-usecase", errObj.Message, "Delete", utils.ConvertString(plazaID))
		return result
	}

	c.Log.Info("plaza-usecase", "toll plaza deleted", "Delete", utils.ConvertString(plazaID))
	result.Data = map[string]interface{}{"deleted": true}
	return result
}
