package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

// TaskTypeBalanceLow is the asynq task emitted after a debit leaves the
// account under the alert threshold.
const TaskTypeBalanceLow = "notification:balance_low"

type BalanceLowPayload struct {
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

func NewBalanceLowTask(userID int64, balance float64) (*asynq.Task, error) {
	payload, err := json.Marshal(BalanceLowPayload{UserID: userID, Balance: balance})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeBalanceLow, payload, asynq.MaxRetry(3)), nil
}

type NotificationUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	NotificationRepository *repository.NotificationRepository
}

func NewNotificationUseCase(
	logger log.Log,
	validate *validator.Validate,
	notificationRepository *repository.NotificationRepository,
) *NotificationUseCase {
	return &NotificationUseCase{
		Log:                    logger,
		Validate:               validate,
		NotificationRepository: notificationRepository,
	}
}

func (c *NotificationUseCase) List(ctx context.Context, request *model.ListNotificationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	notifications, err := c.NotificationRepository.FindByUser(ctx, request.UserID, request.Skip, request.Limit, request.UnreadOnly)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list notifications: %v", err)
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "List", utils.ConvertString(request.UserID))
		return result
	}

	result.Data = converter.NotificationsToResponse(notifications)
	return result
}

func (c *NotificationUseCase) MarkRead(ctx context.Context, notificationID, userID int64) utils.Result {
	var result utils.Result

	notification, err := c.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil || notification.UserID != userID {
		errObj := httpError.NewNotFound()
		errObj.Message = "Notification not found"
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "MarkRead", utils.ConvertString(notificationID))
		return result
	}

	if err := c.NotificationRepository.MarkRead(ctx, notificationID); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
			errObj.Message = "Notification not found"
		} else {
			errObj.Message = fmt.Sprintf("failed to mark notification read: %v", err)
		}
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "MarkRead", utils.ConvertString(notificationID))
		return result
	}

	notification.IsRead = true
	result.Data = converter.NotificationToResponse(notification)
	return result
}

func (c *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) utils.Result {
	var result utils.Result

	if err := c.NotificationRepository.MarkAllRead(ctx, userID); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to mark notifications read: %v", err)
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "MarkAllRead", utils.ConvertString(userID))
		return result
	}

	result.Data = map[string]interface{}{"marked_read": true}
	return result
}

// HandleBalanceLow is the asynq worker that writes the low-balance
// notification out of band of the triggering request.
func (c *NotificationUseCase) HandleBalanceLow(ctx context.Context, task *asynq.Task) error {
	var payload BalanceLowPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal balance alert payload: %w", err)
	}

	notification := &entity.Notification{
		UserID:  payload.UserID,
		Message: "Your account balance is running low. Please recharge to continue using toll services.",
		Type:    entity.NotificationBalanceLow,
	}
	if err := c.NotificationRepository.Create(ctx, notification); err != nil {
		c.Log.Error("notification-usecase", "failed to create balance alert", "HandleBalanceLow", err.Error())
		return err
	}

	c.Log.Info("notification-usecase", "balance alert delivered", "HandleBalanceLow",
		fmt.Sprintf("user=%d balance=%.2f", payload.UserID, payload.Balance))
	return nil
}
