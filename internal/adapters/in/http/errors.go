package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"shipmate/internal/generated/servers"
	"shipmate/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	reasonValidationFailed = "validation_failed"
	reasonNotFound         = "not_found"
	reasonUnauthenticated  = "unauthenticated"
	reasonAuthUnavailable  = "auth_unavailable"
	reasonRateLimited      = "rate_limited"
	reasonInternal         = "internal"
)

// NewErrorHandler renders every error returned by a handler or middleware as
// servers.Error. Unexpected errors are logged and answered with a generic 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, body := mapError(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"status", status,
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, body)
		}
		if err != nil {
			logger.DebugContext(ctx.Request().Context(), "error response write failed", "error", err)
		}
	}
}

func mapError(err error) (int, servers.Error) {
	var (
		httpErr      *echo.HTTPError
		invalid      validator.ValidationErrors
		precondition *errs.PreconditionFailedError
		conflict     *errs.ConflictError
		exists       *errs.AlreadyExistsError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{
			Detail: fmt.Sprint(httpErr.Message),
			Reason: reasonForStatus(httpErr.Code),
		}
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, servers.Error{
			Detail: describeValidation(invalid),
			Reason: reasonValidationFailed,
		}
	case errors.As(err, &precondition):
		return http.StatusPreconditionRequired, servers.Error{Detail: err.Error(), Reason: precondition.Reason}
	case errors.As(err, &conflict):
		return http.StatusConflict, servers.Error{Detail: err.Error(), Reason: conflict.Reason}
	case errors.As(err, &exists):
		return http.StatusConflict, servers.Error{Detail: err.Error(), Reason: exists.Reason}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Detail: err.Error(), Reason: reasonNotFound}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity, servers.Error{
			Detail: strings.ReplaceAll(err.Error(), "\n", "; "),
			Reason: reasonValidationFailed,
		}
	default:
		return http.StatusInternalServerError, servers.Error{
			Detail: "internal error",
			Reason: reasonInternal,
		}
	}
}

func reasonForStatus(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return reasonValidationFailed
	case http.StatusUnauthorized:
		return reasonUnauthenticated
	case http.StatusNotFound:
		return reasonNotFound
	case http.StatusTooManyRequests:
		return reasonRateLimited
	case http.StatusServiceUnavailable:
		return reasonAuthUnavailable
	}
	if code >= http.StatusInternalServerError {
		return reasonInternal
	}
	return strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_")
}

func describeValidation(invalid validator.ValidationErrors) string {
	parts := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: must satisfy %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
