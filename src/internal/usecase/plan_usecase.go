package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

type PlanUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	PlanRepository *repository.PlanRepository
	UserRepository *repository.UserRepository
}

func NewPlanUseCase(
	logger log.Log,
	validate *validator.Validate,
	planRepository *repository.PlanRepository,
	userRepository *repository.UserRepository,
) *PlanUseCase {
	return &PlanUseCase{
		Log:            logger,
		Validate:       validate,
		PlanRepository: planRepository,
		UserRepository: userRepository,
	}
}

func (c *PlanUseCase) List(ctx context.Context, skip, limit int) utils.Result {
	var result utils.Result

	plans, err := c.PlanRepository.ListActive(ctx, skip, limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list plans: %v", err)
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "List", "")
		return result
	}

	result.Data = converter.PlansToResponse(plans)
	return result
}

func (c *PlanUseCase) Get(ctx context.Context, planID int64) utils.Result {
	var result utils.Result

	plan, err := c.PlanRepository.FindByID(ctx, planID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("plan with id %d not found", planID)
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "Get", utils.ConvertString(planID))
		return result
	}

	result.Data = converter.PlanToResponse(plan)
	return result
}

func (c *PlanUseCase) Create(ctx context.Context, request *model.CreatePlanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	plan := &entity.Plan{
		Name:        request.Name,
		Price:       request.Price,
		AnnualPrice: request.AnnualPrice,
		MaxVehicles: request.MaxVehicles,
		Features:    request.Features,
		IsActive:    isActive,
	}
	if err := c.PlanRepository.Create(ctx, plan); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create plan: %v", err)
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	c.Log.Info("plan-usecase", "plan created", "Create", plan.Name)
	result.Data = converter.PlanToResponse(plan)
	return result
}

func (c *PlanUseCase) Update(ctx context.Context, request *model.UpdatePlanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	plan, err := c.PlanRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("plan with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "Update", utils.ConvertString(request.ID))
		return result
	}

	if request.Name != nil {
		plan.Name = *request.Name
	}
	if request.Price != nil {
		plan.Price = *request.Price
	}
	if request.AnnualPrice != nil {
		plan.AnnualPrice = *request.AnnualPrice
	}
	if request.MaxVehicles != nil {
		plan.MaxVehicles = *request.MaxVehicles
	}
	if request.Features != nil {
		plan.Features = request.Features
	}
	if request.IsActive != nil {
		plan.IsActive = *request.IsActive
	}

	if err := c.PlanRepository.Update(ctx, plan); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
		}
		errObj.Message = fmt.Sprintf("failed to update plan: %v", err)
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Update", utils.ConvertString(request.ID))
		return result
	}

	result.Data = converter.PlanToResponse(plan)
	return result
}

// Subscribe puts the user on an active plan for one billing month.
func (c *PlanUseCase) Subscribe(ctx context.Context, request *model.SubscribeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Subscribe", utils.ConvertString(err))
		return result
	}

	plan, err := c.PlanRepository.FindByID(ctx, request.PlanID)
	if err != nil || !plan.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("plan with id %d not found", request.PlanID)
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Subscribe", utils.ConvertString(request.PlanID))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.UserID)
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "Subscribe", utils.ConvertString(request.UserID))
		return result
	}

	now := utils.ISTNow()
	end := now.AddDate(0, 1, 0)
	user.SubscriptionPlanID = &plan.ID
	user.SubscriptionStatus = entity.SubscriptionActive
	user.SubscriptionStartDate = &now
	user.SubscriptionEndDate = &end

	if err := c.UserRepository.Update(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to subscribe: %v", err)
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "Subscribe", utils.ConvertString(request))
		return result
	}

	c.Log.Info("plan-usecase", "user subscribed", "Subscribe",
		fmt.Sprintf("user=%d plan=%s until=%s", user.ID, plan.Name, end.Format(time.RFC3339)))
	result.Data = converter.UserToResponse(user)
	return result
}
