package utils

import (
	"errors"
	"net/http"

	apperrors "fitness-center/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse is the single place where error kinds become status codes.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusCode(err)
	message := apperrors.Message(err)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		code = http.StatusBadRequest
		message = "validation failed"
		details := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
		return ctx.JSON(code, &HttpResponse{Status: false, Body: details, Message: message})
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
