package controllers

import (
	"net/http"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: service, logger: logger}
}

func parseQueryTime(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid "+name+" date format", err, nil)
	}
	return &t, nil
}

func filterFromQuery(ctx echo.Context) (dto.RequestListFilter, error) {
	filter := dto.RequestListFilter{
		Stage: ctx.QueryParam("stage"),
		Type:  ctx.QueryParam("type"),
	}
	if raw := ctx.QueryParam("teamId"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return filter, apperrors.NewHttpError(http.StatusBadRequest, "invalid teamId format", err, nil)
		}
		filter.TeamID = utils.ToPtr(teamID)
	}
	return filter, nil
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests retrieved", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request found", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request created", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request updated", http.StatusOK)
}

// UpdateRequestStage backs the kanban board drag-and-drop.
func (c *RequestController) UpdateRequestStage(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestStageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequestStage(ctx.Request().Context(), id, payload.Stage)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request stage updated", http.StatusOK)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.requestService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "request deleted", http.StatusOK)
}

func (c *RequestController) GetCalendarEvents(ctx echo.Context) error {
	var rng dto.CalendarRangeDTO
	var err error
	if rng.Start, err = parseQueryTime(ctx, "start"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if rng.End, err = parseQueryTime(ctx, "end"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.GetCalendarEvents(ctx.Request().Context(), rng)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calendar events retrieved", http.StatusOK)
}
