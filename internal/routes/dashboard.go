package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	g.GET("/dashboard/stats", ctrl.GetStats, authMW.RequireCapability(authz.DashboardView))
}
