package http

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/codehook/dashboard/internal/config"
	"github.com/codehook/dashboard/internal/http/middleware"
	"github.com/codehook/dashboard/internal/ui"
	"github.com/codehook/dashboard/internal/util"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	e   *echo.Echo
	log *zap.Logger
}

func NewServer(cfg config.Config, svc Dashboard, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	// echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLevel(cfg.Log.Level))
	e.Use(
		echoMid.Recover(),
		echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.New}),
		middleware.Metrics(),
		middleware.AccessLog(logger),
	)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	e.StaticFS("/static", echo.MustSubFS(ui.Assets, "static"))

	h := &handlers{svc: svc, log: logger}

	// routes
	e.GET("/", func(c echo.Context) error { return c.Redirect(http.StatusFound, ui.PathDashboard) })
	e.GET(ui.PathDashboard, h.overview)
	e.GET(ui.PathEndpoints, h.endpoints)
	e.GET(ui.PathSettings, h.settings)
	e.GET("/api/cards", h.cards)

	notFound := ui.Page("Not Found", "", ui.ErrorPage("This page could not be found."))
	e.RouteNotFound("/dashboard/*", echo.WrapHandler(templ.Handler(notFound, templ.WithStatus(http.StatusNotFound))))

	return &Server{e: e, log: logger}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.e }

func (s *Server) Start(addr string) error {
	s.log.Info("http: listening", zap.String("addr", addr))
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

func echoLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
