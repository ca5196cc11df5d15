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

type NotificationController struct {
	Log     log.Log
	UseCase *usecase.NotificationUseCase
}

func NewNotificationController(useCase *usecase.NotificationUseCase, logger log.Log) *NotificationController {
	return &NotificationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *NotificationController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListNotificationRequest{
		UserID:     auth.UserID,
		Skip:       ctx.QueryInt("skip", 0),
		Limit:      ctx.QueryInt("limit", 100),
		UnreadOnly: ctx.QueryBool("unread_only", false),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListNotifications", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	notificationID, err := ctx.ParamsInt("id")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid notification id"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.MarkRead(ctx.Context(), int64(notificationID), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "MarkNotificationRead", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkAllRead(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.MarkAllRead(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "MarkAllNotificationsRead", fiber.StatusOK, ctx)
}
