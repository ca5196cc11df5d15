package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type VehicleUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	VehicleRepository *repository.VehicleRepository
	UserRepository    *repository.UserRepository
	PlanRepository    *repository.PlanRepository
}

func NewVehicleUseCase(
	logger log.Log,
	validate *validator.Validate,
	vehicleRepository *repository.VehicleRepository,
	userRepository *repository.UserRepository,
	planRepository *repository.PlanRepository,
) *VehicleUseCase {
	return &VehicleUseCase{
		Log:               logger,
		Validate:          validate,
		VehicleRepository: vehicleRepository,
		UserRepository:    userRepository,
		PlanRepository:    planRepository,
	}
}

func (c *VehicleUseCase) Create(ctx context.Context, request *model.CreateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.UserID)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", err.Error(), "Create", utils.ConvertString(request.UserID))
		return result
	}

	if user.SubscriptionPlanID != nil {
		plan, err := c.PlanRepository.FindByID(ctx, *user.SubscriptionPlanID)
		if err == nil {
			count, err := c.VehicleRepository.CountByUser(ctx, request.UserID)
			if err != nil {
				errObj := httpError.NewInternalServerError()
				errObj.Message = fmt.Sprintf("failed to count vehicles: %v", err)
				result.Error = errObj
				c.Log.Error("vehicle-usecase", errObj.Message, "Create", utils.ConvertString(request.UserID))
				return result
			}
			if count >= plan.MaxVehicles {
				errObj := httpError.NewBadRequest()
				errObj.Message = fmt.Sprintf("vehicle limit reached for plan %s (%d max)", plan.Name, plan.MaxVehicles)
				result.Error = errObj
				c.Log.Error("vehicle-usecase", errObj.Message, "Create", utils.ConvertString(request.UserID))
				return result
			}
		}
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	vehicle := &entity.Vehicle{
		UserID:        request.UserID,
		LicensePlate:  request.LicensePlate,
		VehicleType:   entity.VehicleType(request.VehicleType),
		Make:          request.Make,
		Model:         request.Model,
		Year:          request.Year,
		Color:         request.Color,
		TransponderID: request.TransponderID,
		IsActive:      isActive,
	}
	if err := c.VehicleRepository.Create(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create vehicle: %v", err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	c.Log.Info("vehicle-usecase", "vehicle registered", "Create", vehicle.LicensePlate)
	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) List(ctx context.Context, request *model.ListVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	vehicles, err := c.VehicleRepository.FindByUser(ctx, request.UserID, request.Skip, request.Limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list vehicles: %v", err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "List", utils.ConvertString(request.UserID))
		return result
	}

	result.Data = converter.VehiclesToResponse(vehicles)
	return result
}

// Get returns the vehicle only when it belongs to the requesting user.
func (c *VehicleUseCase) Get(ctx context.Context, vehicleID, userID int64) utils.Result {
	var result utils.Result

	vehicle, err := c.findOwned(ctx, vehicleID, userID, "Get")
	if err != nil {
		result.Error = err
		return result
	}

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) Update(ctx context.Context, request *model.UpdateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	vehicle, errObj := c.findOwned(ctx, request.ID, request.UserID, "Update")
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if request.LicensePlate != nil {
		vehicle.LicensePlate = *request.LicensePlate
	}
	if request.VehicleType != nil {
		vehicle.VehicleType = entity.VehicleType(*request.VehicleType)
	}
	if request.Make != nil {
		vehicle.Make = *request.Make
	}
	if request.Model != nil {
		vehicle.Model = *request.Model
	}
	if request.Year != nil {
		vehicle.Year = *request.Year
	}
	if request.Color != nil {
		vehicle.Color = *request.Color
	}
	if request.TransponderID != nil {
		vehicle.TransponderID = *request.TransponderID
	}
	if request.IsActive != nil {
		vehicle.IsActive = *request.IsActive
	}

	if err := c.VehicleRepository.Update(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update vehicle: %v", err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Update", utils.ConvertString(request.ID))
		return result
	}

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) Delete(ctx context.Context, vehicleID, userID int64) utils.Result {
	var result utils.Result

	if _, errObj := c.findOwned(ctx, vehicleID, userID, "Delete"); errObj != nil {
		result.Error = errObj
		return result
	}

	if err := c.VehicleRepository.Delete(ctx, vehicleID); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to delete vehicle: %v", err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Delete", utils.ConvertString(vehicleID))
		return result
	}

	c.Log.Info("vehicle-usecase", "vehicle deleted", "Delete", utils.ConvertString(vehicleID))
	result.Data = map[string]interface{}{"deleted": true}
	return result
}

func (c *VehicleUseCase) findOwned(ctx context.Context, vehicleID, userID int64, scope string) (*entity.Vehicle, *httpError.CommonError) {
	vehicle, err := c.VehicleRepository.FindByID(ctx, vehicleID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("vehicle with id %d not found", vehicleID)
		c.Log.Error("vehicle-usecase", err.Error(), scope, utils.ConvertString(vehicleID))
		return nil, errObj
	}
	if vehicle.UserID != userID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("vehicle with id %d not found", vehicleID)
		c.Log.Error("vehicle-usecase", "vehicle owned by another user", scope, utils.ConvertString(vehicleID))
		return nil, errObj
	}
	return vehicle, nil
}
