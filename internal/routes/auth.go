package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	public.POST("/auth/signup/admin", ctrl.SignupAdmin)
	public.POST("/auth/signup/member", ctrl.SignupMember)
	public.POST("/auth/verify-member", ctrl.VerifyMember)
	public.POST("/auth/login", ctrl.Login)
	public.GET("/auth/user/:firebaseUid", ctrl.GetUserByFirebaseUID)

	secure.GET("/auth/users", ctrl.GetUsers, authMW.RequireCapability(authz.UsersManage))
	secure.PUT("/auth/users/:id", ctrl.UpdateUser, authMW.RequireCapability(authz.UsersManage))
	secure.PUT("/auth/users/:id/deactivate", ctrl.DeactivateUser, authMW.RequireCapability(authz.UsersManage))
}
