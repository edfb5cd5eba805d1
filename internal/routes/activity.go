package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runActivityRouter(g *echo.Group, ctrl *controllers.ActivityController, authMW *middleware.AuthMiddleware) {
	g.GET("/activities", ctrl.GetActivities, authMW.RequireCapability(authz.ActivityView))
	g.GET("/activities/recent", ctrl.GetRecent, authMW.RequireCapability(authz.ActivityView))
	g.GET("/activities/type/:type", ctrl.GetByType, authMW.RequireCapability(authz.ActivityView))
	g.GET("/activities/user/:userId", ctrl.GetByUser, authMW.RequireCapability(authz.ActivityView))
	g.GET("/activities/:id", ctrl.GetActivity, authMW.RequireCapability(authz.ActivityView))
	g.POST("/activities", ctrl.RecordActivity, authMW.RequireCapability(authz.ActivityRecord))
}
