package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api/v1.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api/v1")

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	teamRepo := repositories.NewTeamRepository(dbConn, logger)
	memberRepo := repositories.NewMemberRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	sequenceRepo := repositories.NewSequenceRepository()
	userRepo := repositories.NewUserRepository(dbConn, logger)
	activityRepo := repositories.NewActivityRepository(dbConn, logger)

	authService := services.NewAuthService(userRepo, teamRepo, memberRepo, cacheRepo, jwtSvc, cfg.UserCacheTTL, logger)
	teamService := services.NewTeamService(teamRepo, activityRepo, logger)
	memberService := services.NewMemberService(memberRepo, activityRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, activityRepo, logger)
	requestService := services.NewRequestService(txManager, requestRepo, equipmentRepo, sequenceRepo, activityRepo, userRepo, logger)
	activityService := services.NewActivityService(activityRepo, cacheRepo, cfg.RecentActivityTTL, logger)
	dashboardService := services.NewDashboardService(equipmentRepo, requestRepo, teamRepo, memberRepo, logger)
	reportService := services.NewReportService(requestRepo, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, logger)

	healthCtrl := controllers.NewHealthController(dbConn, redisClient, logger)
	e.GET("/health", healthCtrl.Health)
	api.GET("/health", healthCtrl.Health)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, controllers.NewAuthController(authService, logger), authMW)
	runTeamRouter(secure, controllers.NewTeamController(teamService, logger), authMW)
	runMemberRouter(secure, controllers.NewMemberController(memberService, logger), authMW)
	runEquipmentRouter(secure, controllers.NewEquipmentController(equipmentService, logger), authMW)
	runRequestRouter(secure, controllers.NewRequestController(requestService, logger), authMW)
	runActivityRouter(secure, controllers.NewActivityController(activityService, logger), authMW)
	runDashboardRouter(secure, controllers.NewDashboardController(dashboardService, logger), authMW)
	runReportRouter(secure, controllers.NewReportController(reportService, logger), authMW)

	logger.Info("routes registered")
}
