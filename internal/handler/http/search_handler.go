// internal/handler/http/search_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pullpush-docs/internal/models"
)

// errNotImplemented is returned by every search route. Callers must use the
// official API instead.
var errNotImplemented = echo.NewHTTPError(http.StatusNotImplemented, models.NotImplementedDetail)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// SearchComments is registered only so the route shape exists; the
// documented contract lives in the generated API description.
func (h *SearchHandler) SearchComments(c echo.Context) error {
	return errNotImplemented
}

// SearchSubmissions behaves like SearchComments.
func (h *SearchHandler) SearchSubmissions(c echo.Context) error {
	return errNotImplemented
}
