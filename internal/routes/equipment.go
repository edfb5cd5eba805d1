package routes

import (
	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	g.GET("/equipment", ctrl.GetEquipments, authMW.RequireCapability(authz.EquipmentView))
	g.GET("/equipment/:id", ctrl.FindEquipment, authMW.RequireCapability(authz.EquipmentView))
	g.GET("/equipment/:id/maintenance", ctrl.GetMaintenanceHistory, authMW.RequireCapability(authz.EquipmentView))
	g.POST("/equipment", ctrl.CreateEquipment, authMW.RequireCapability(authz.EquipmentManage))
	g.PUT("/equipment/:id", ctrl.UpdateEquipment, authMW.RequireCapability(authz.EquipmentManage))
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment, authMW.RequireCapability(authz.EquipmentManage))
}
