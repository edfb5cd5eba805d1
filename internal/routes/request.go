package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(g *echo.Group, ctrl *controllers.RequestController, authMW *middleware.AuthMiddleware) {
	g.GET("/requests", ctrl.GetRequests, authMW.RequireCapability(authz.RequestsView))
	g.GET("/requests/calendar", ctrl.GetCalendarEvents, authMW.RequireCapability(authz.CalendarView))
	g.GET("/requests/:id", ctrl.FindRequest, authMW.RequireCapability(authz.RequestsView))
	g.POST("/requests", ctrl.CreateRequest, authMW.RequireCapability(authz.RequestsCreate))
	g.PUT("/requests/:id", ctrl.UpdateRequest, authMW.RequireCapability(authz.RequestsUpdate))
	g.PATCH("/requests/:id/stage", ctrl.UpdateRequestStage, authMW.RequireCapability(authz.RequestsUpdate))
	g.DELETE("/requests/:id", ctrl.DeleteRequest, authMW.RequireCapability(authz.RequestsDelete))
}
