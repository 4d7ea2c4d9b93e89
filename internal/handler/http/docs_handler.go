// internal/handler/http/docs_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// DocsUIPath is where the Swagger UI is mounted.
	DocsUIPath = "/swagger/index.html"
	// SwaggerDocPath is the document echo-swagger would serve from the
	// raw swag registry.
	SwaggerDocPath = "/swagger/doc.json"
	// OpenAPIPath is where the merged API description is served.
	OpenAPIPath = "/openapi.json"
)

// DocumentSource yields the encoded API description.
type DocumentSource interface {
	JSON() ([]byte, error)
}

type DocsHandler struct {
	docs DocumentSource
}

func NewDocsHandler(docs DocumentSource) *DocsHandler {
	return &DocsHandler{docs: docs}
}

func (h *DocsHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, DocsUIPath)
}

// SwaggerDoc sends clients of the UI's default document to the merged one.
func (h *DocsHandler) SwaggerDoc(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, OpenAPIPath)
}

// OpenAPI serves the merged API description. It is not annotated for swag:
// the published document only lists the PullPush search routes.
func (h *DocsHandler) OpenAPI(c echo.Context) error {
	body, err := h.docs.JSON()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build API description").SetInternal(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}
