package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runMemberRouter(g *echo.Group, ctrl *controllers.MemberController, authMW *middleware.AuthMiddleware) {
	g.GET("/members", ctrl.GetMembers, authMW.RequireCapability(authz.MembersView))
	g.GET("/members/:id", ctrl.FindMember, authMW.RequireCapability(authz.MembersView))
	g.POST("/members", ctrl.CreateMember, authMW.RequireCapability(authz.MembersManage))
	g.PUT("/members/:id", ctrl.UpdateMember, authMW.RequireCapability(authz.MembersManage))
	g.DELETE("/members/:id", ctrl.DeleteMember, authMW.RequireCapability(authz.MembersManage))
}
