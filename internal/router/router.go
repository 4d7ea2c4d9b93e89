// internal/router/router.go
package router

import (
	"pullpush-docs/internal/handler/http"
	"pullpush-docs/internal/openapi"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func NewRouter(e *echo.Echo, docs http.DocumentSource) {
	dh := http.NewDocsHandler(docs)
	sch := http.NewSearchHandler()
	cmt := http.NewCommentHandler()

	e.GET("/", dh.Root)
	e.GET(http.OpenAPIPath, dh.OpenAPI)
	e.GET(http.SwaggerDocPath, dh.SwaggerDoc)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(http.OpenAPIPath)))

	e.GET(openapi.SearchCommentsPath, sch.SearchComments)
	e.GET(openapi.SearchSubmissionsPath, sch.SearchSubmissions)
	e.GET(openapi.CommentIDsPath, cmt.GetCommentIDs)
}
