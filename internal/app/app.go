// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/http2"

	"pullpush-docs/docs"
	"pullpush-docs/internal/config"
	handler "pullpush-docs/internal/handler/http"
	"pullpush-docs/internal/openapi"
	"pullpush-docs/internal/router"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Builder *openapi.Builder
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return New(cfg), nil
}

// New wires the HTTP server for cfg. The API description is built on the
// first request for it.
func New(cfg *config.Config) *App {
	builder := openapi.NewBuilder(
		openapi.SwagSource{InstanceName: docs.SwaggerInfo.InstanceName()},
		cfg.OfficialAPIURL,
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// /reddit/search/comment?q=x continues to /reddit/search/comment/?q=x.
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/reddit/")
		},
		RedirectCode: http.StatusTemporaryRedirect,
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.NewRouter(e, builder)

	return &App{
		Config:  cfg,
		Echo:    e,
		Builder: builder,
	}
}

func (a *App) Start() error {
	addr := a.Config.Address()

	var err error
	if a.Config.EnableH2C {
		err = a.Echo.StartH2CServer(addr, &http2.Server{})
	} else {
		err = a.Echo.Start(addr)
	}
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
