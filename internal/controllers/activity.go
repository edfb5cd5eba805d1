package controllers

import (
	"net/http"
	"strconv"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
	logger          *zap.Logger
}

func NewActivityController(service services.ActivityServiceInterface, logger *zap.Logger) *ActivityController {
	return &ActivityController{activityService: service, logger: logger}
}

func (c *ActivityController) GetActivities(ctx echo.Context) error {
	res, err := c.activityService.GetActivities(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "activities retrieved", http.StatusOK)
}

func (c *ActivityController) GetActivity(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.activityService.GetActivity(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "activity found", http.StatusOK)
}

func (c *ActivityController) GetRecent(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			err = apperrors.NewHttpError(http.StatusBadRequest, "invalid limit format", err, nil)
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		limit = parsed
	}

	res, err := c.activityService.GetRecent(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "recent activities retrieved", http.StatusOK)
}

func (c *ActivityController) GetByType(ctx echo.Context) error {
	res, err := c.activityService.GetByType(ctx.Request().Context(), ctx.Param("type"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "activities retrieved", http.StatusOK)
}

func (c *ActivityController) GetByUser(ctx echo.Context) error {
	userID, err := parseUUIDParam(ctx, "userId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.activityService.GetByUser(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "activities retrieved", http.StatusOK)
}

func (c *ActivityController) RecordActivity(ctx echo.Context) error {
	var payload dto.CreateActivityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.activityService.RecordActivity(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "activity recorded", http.StatusCreated)
}
