package utils

import (
	"errors"
	"net/http"
	"os"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps an application error onto the response envelope. Unknown
// errors become a generic 500; the underlying detail is only echoed back in
// development mode.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "validation failed: " + validationErrs.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrUserDeactivated):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	default:
		if os.Getenv("APP_ENV") == "development" {
			message = err.Error()
		}
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
