package httptransport

//go:generate mockgen -source=http.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard"
	"github.com/labstack/echo/v4"
)

// Dashboard — операции дашборда, доступные по HTTP.
type Dashboard interface {
	View() dashboard.View
	Refresh(ctx context.Context) error
	Retry(ctx context.Context, slot dashboard.Slot) error
	ChangeCurrency(ctx context.Context, code string) error
	Search(ctx context.Context, term string) error
	SelectCoinByID(ctx context.Context, id string) error
	ChangeTimeframe(ctx context.Context, days int) error
	ToggleIndicator(name domain.Indicator, enabled bool) error
	CloseChart()
	SetVisible(visible bool)
}

// Router — то, куда регистрируются маршруты (echo.Echo или echo.Group).
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// DashboardHandler — HTTP‑handler дашборда. Каждая команда отвечает
// актуальным состоянием (View).
type DashboardHandler struct {
	logger  *slog.Logger
	svc     Dashboard
	push    http.Handler
	timeout time.Duration
}

// NewDashboardHandler — push может быть nil, тогда /ws не регистрируется.
func NewDashboardHandler(logger *slog.Logger, svc Dashboard, push http.Handler, timeout time.Duration) *DashboardHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 10
	}
	return &DashboardHandler{
		logger:  logger,
		svc:     svc,
		push:    push,
		timeout: timeout,
	}
}

func (h *DashboardHandler) RegisterRoutes(r Router) {
	r.GET("/view", h.GetView)
	r.POST("/markets/refresh", h.Refresh)
	r.POST("/retry/:slot", h.Retry)
	r.PUT("/currency/:code", h.ChangeCurrency)
	r.GET("/search", h.Search)
	r.POST("/chart/:id", h.SelectCoin)
	r.PUT("/chart/timeframe/:days", h.ChangeTimeframe)
	r.PUT("/chart/indicators/:name", h.ToggleIndicator)
	r.DELETE("/chart", h.CloseChart)
	r.PUT("/visibility", h.SetVisibility)
	if h.push != nil {
		r.GET("/ws", echo.WrapHandler(h.push))
	}
}

func (h *DashboardHandler) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.View())
}

func (h *DashboardHandler) Refresh(c echo.Context) error {
	return h.run(c, "Refresh", func(ctx context.Context) error {
		return h.svc.Refresh(ctx)
	})
}

func (h *DashboardHandler) Retry(c echo.Context) error {
	slot, ok := dashboard.ParseSlot(c.Param("slot"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: "unknown_slot", Message: "Unknown slot."})
	}
	return h.run(c, "Retry", func(ctx context.Context) error {
		return h.svc.Retry(ctx, slot)
	})
}

func (h *DashboardHandler) ChangeCurrency(c echo.Context) error {
	code := c.Param("code")
	return h.run(c, "ChangeCurrency", func(ctx context.Context) error {
		return h.svc.ChangeCurrency(ctx, code)
	})
}

func (h *DashboardHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	return h.run(c, "Search", func(ctx context.Context) error {
		return h.svc.Search(ctx, term)
	})
}

func (h *DashboardHandler) SelectCoin(c echo.Context) error {
	id := strings.ToLower(strings.TrimSpace(c.Param("id")))
	if id == "" {
		return h.fail(c, "SelectCoin", errcode.BadRequest, nil)
	}
	return h.run(c, "SelectCoin", func(ctx context.Context) error {
		return h.svc.SelectCoinByID(ctx, id)
	})
}

func (h *DashboardHandler) ChangeTimeframe(c echo.Context) error {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		return h.fail(c, "ChangeTimeframe", errcode.InvalidTimeframe, err)
	}
	return h.run(c, "ChangeTimeframe", func(ctx context.Context) error {
		return h.svc.ChangeTimeframe(ctx, days)
	})
}

func (h *DashboardHandler) ToggleIndicator(c echo.Context) error {
	name, err := domain.ParseIndicator(c.Param("name"))
	if err != nil {
		return h.fail(c, "ToggleIndicator", errcode.UnknownIndicator, err)
	}
	enabled, err := strconv.ParseBool(c.QueryParam("enabled"))
	if err != nil {
		return h.fail(c, "ToggleIndicator", errcode.BadRequest, err)
	}
	if err := h.svc.ToggleIndicator(name, enabled); err != nil {
		return h.fail(c, "ToggleIndicator", errcode.FromError(err), err)
	}
	return c.JSON(http.StatusOK, h.svc.View())
}

func (h *DashboardHandler) CloseChart(c echo.Context) error {
	h.svc.CloseChart()
	return c.JSON(http.StatusOK, h.svc.View())
}

func (h *DashboardHandler) SetVisibility(c echo.Context) error {
	visible, err := strconv.ParseBool(c.QueryParam("visible"))
	if err != nil {
		return h.fail(c, "SetVisibility", errcode.BadRequest, err)
	}
	h.svc.SetVisible(visible)
	return c.NoContent(http.StatusNoContent)
}

// run — выполнить команду с таймаутом и ответить состоянием или ошибкой.
func (h *DashboardHandler) run(c echo.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		return h.fail(c, op, errcode.FromError(err), err)
	}
	return c.JSON(http.StatusOK, h.svc.View())
}

func (h *DashboardHandler) fail(c echo.Context, op string, code errcode.Code, err error) error {
	status := HTTPStatus(code)
	if status >= http.StatusInternalServerError && err != nil {
		h.logger.Error("dashboard command failed",
			slog.String("op", op),
			slog.String("code", string(code)),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(status, makeErrorBody(code))
}
