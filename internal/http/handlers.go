package http

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/codehook/dashboard/internal/model"
	"github.com/codehook/dashboard/internal/service/dashboard"
	"github.com/codehook/dashboard/internal/ui"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dashboard is the data the pages need; *dashboard.Service implements it.
type Dashboard interface {
	FetchCardData(ctx context.Context) (model.CardData, error)
	Overview(ctx context.Context) (dashboard.Overview, error)
	Endpoints(ctx context.Context) ([]model.Endpoint, error)
	Providers(ctx context.Context) ([]model.Provider, error)
}

var _ Dashboard = (*dashboard.Service)(nil)

type handlers struct {
	svc Dashboard
	log *zap.Logger
}

func (h *handlers) overview(c echo.Context) error {
	ov, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return h.fail(c, "Dashboard", err)
	}
	return render(c, http.StatusOK, ui.Page("Dashboard", ui.PathDashboard, ui.Overview(ov.Cards, ov.Latest, ov.History)))
}

func (h *handlers) endpoints(c echo.Context) error {
	rows, err := h.svc.Endpoints(c.Request().Context())
	if err != nil {
		return h.fail(c, "Endpoints", err)
	}
	return render(c, http.StatusOK, ui.Page("Endpoints", ui.PathEndpoints, ui.EndpointsTable(rows)))
}

func (h *handlers) settings(c echo.Context) error {
	rows, err := h.svc.Providers(c.Request().Context())
	if err != nil {
		return h.fail(c, "Settings", err)
	}
	return render(c, http.StatusOK, ui.Page("Settings", ui.PathSettings, ui.ProvidersTable(rows)))
}

func (h *handlers) cards(c echo.Context) error {
	d, err := h.svc.FetchCardData(c.Request().Context())
	if err != nil {
		h.log.Error("fetch card data failed", zap.Error(err), requestID(c))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, d)
}

// fail logs err and renders a generic error inside the page layout.
func (h *handlers) fail(c echo.Context, title string, err error) error {
	h.log.Error("render page failed",
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
		requestID(c),
	)
	return render(c, http.StatusInternalServerError,
		ui.Page(title, c.Request().URL.Path, ui.ErrorPage("Something went wrong loading this page.")))
}

func render(c echo.Context, status int, comp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return comp.Render(c.Request().Context(), c.Response().Writer)
}

func requestID(c echo.Context) zap.Field {
	return zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}
