package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the wire shape for error responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes data with status 200.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes an error body with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// BadRequestResponse writes a 400 error body.
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// TooManyRequestsResponse writes a 429 error body.
func TooManyRequestsResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusTooManyRequests, message)
}

// InternalServerErrorResponse writes a generic 500 error body.
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Something went wrong"
	}
	return ErrorResponse(c, http.StatusInternalServerError, message)
}

// AppErrorResponse writes an error response using the AppError status when available.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c, "")
}
