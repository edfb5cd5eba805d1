package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(service services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: service, logger: logger}
}

// ExportRequests streams the filtered request list as an xlsx attachment.
func (c *ReportController) ExportRequests(ctx echo.Context) error {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	buf, err := c.reportService.ExportRequests(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename := fmt.Sprintf("maintenance-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(
		http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}
