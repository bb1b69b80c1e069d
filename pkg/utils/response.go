package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "hr-reports/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total_count,omitempty"`
}

// SuccessResponse writes the standard success envelope. An optional total
// carries the full row count for paginated lists.
func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.Total = &total[0]
	}
	return ctx.JSON(code, response)
}

// ErrorResponse maps application errors onto HTTP statuses and writes the
// failure envelope.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *apperrors.HttpError
	var connErr *apperrors.ConnectionError
	var queryErr *apperrors.QueryError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &connErr):
		code = http.StatusServiceUnavailable
		message = "datasource is unreachable"
	case errors.As(err, &queryErr):
		message = "report query failed"
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = validationErrs.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = apperrors.ErrBadRequest.Error()
	}

	if logger != nil {
		logger.Error("request failed",
			zap.Int("status", code),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
