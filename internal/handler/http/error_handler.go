// internal/handler/http/error_handler.go
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pullpush-docs/internal/models"
)

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		} else {
			detail = http.StatusText(code)
		}
		if he.Internal != nil {
			c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), he.Internal)
		}
	} else {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, models.ErrorResponse{Detail: detail})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
