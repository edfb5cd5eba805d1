package routes

import (
	"testing"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Registers the routers against a bare echo instance and checks the resulting
// route table. Handlers are never invoked, so nil services are fine.
func registeredPaths(t *testing.T) map[string]bool {
	t.Helper()
	e := echo.New()
	g := e.Group("/api/v1")
	authMW := middleware.NewAuthMiddleware(nil, nil, nil)

	runAuthRouter(g, g, controllers.NewAuthController(nil, nil), authMW)
	runEquipmentRouter(g, controllers.NewEquipmentController(nil, nil), authMW)
	runActivityRouter(g, controllers.NewActivityController(nil, nil), authMW)
	runRequestRouter(g, controllers.NewRequestController(nil, nil), authMW)

	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	return paths
}

func TestRoutePaths(t *testing.T) {
	paths := registeredPaths(t)

	for _, want := range []string{
		"GET /api/v1/equipment/:id/maintenance",
		"GET /api/v1/auth/users",
		"PUT /api/v1/auth/users/:id",
		"PUT /api/v1/auth/users/:id/deactivate",
		"GET /api/v1/activities/recent",
		"GET /api/v1/activities/:id",
		"GET /api/v1/requests/calendar",
		"PATCH /api/v1/requests/:id/stage",
	} {
		assert.True(t, paths[want], "missing route %s", want)
	}
}
