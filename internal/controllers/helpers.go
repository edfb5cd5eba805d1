package controllers

import (
	"net/http"

	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseUUIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid "+name+" format",
			err,
			map[string]interface{}{"param": ctx.Param(name)},
		)
	}
	return id, nil
}
