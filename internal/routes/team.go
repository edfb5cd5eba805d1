package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(g *echo.Group, ctrl *controllers.TeamController, authMW *middleware.AuthMiddleware) {
	g.GET("/teams", ctrl.GetTeams, authMW.RequireCapability(authz.TeamsView))
	g.GET("/teams/:id", ctrl.FindTeam, authMW.RequireCapability(authz.TeamsView))
	g.POST("/teams", ctrl.CreateTeam, authMW.RequireCapability(authz.TeamsManage))
	g.PUT("/teams/:id", ctrl.UpdateTeam, authMW.RequireCapability(authz.TeamsManage))
	g.DELETE("/teams/:id", ctrl.DeleteTeam, authMW.RequireCapability(authz.TeamsManage))
}
