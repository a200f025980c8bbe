package http

import (
	"errors"
	"net/http"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps an application error to the HTTP status reported to clients.
// Conflicts are checked first: a joined error can carry both a conflict and a
// validation failure.
func statusCode(err error) int {
	switch {
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// HTTPErrorHandler renders errors that escape handlers (binding failures, unknown
// routes, panics recovered by middleware) in the same Error shape.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
		return
	}

	_ = writeError(ctx, err)
}
