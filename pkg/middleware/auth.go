package middleware

import (
	"context"
	"strings"

	"gearguard/internal/authz"
	"gearguard/internal/services"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService  service.JWTService
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, authService services.AuthServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		authService: authService,
		logger:      logger,
	}
}

// Auth authenticates the bearer token and loads the caller's identity into
// the request context. Missing or bad credentials answer 401.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// Deactivation takes effect on the next call, not at token expiry.
		user, err := m.authService.ResolveActiveUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, user.ID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, user.Role)
		ctx = context.WithValue(ctx, contextkeys.UserNameKey, user.Name)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireCapability gates a route on the caller's role. An authenticated
// caller without the capability answers 403, never 401.
func (m *AuthMiddleware) RequireCapability(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Request().Context().Value(contextkeys.UserRoleKey).(string)
			if !ok || !authz.KnownRole(role) {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			if !authz.Can(role, capability) {
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
