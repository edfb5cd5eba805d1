package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	g.GET("/reports/requests.xlsx", ctrl.ExportRequests, authMW.RequireCapability(authz.ReportsExport))
}
