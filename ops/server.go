package ops

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"riskmentor/config"
)

// Pinger reports backend health, typically the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	e    *echo.Echo
	addr string
}

// NewServer builds the ops http server: /healthz and prometheus
// /metrics. pinger may be nil.
func NewServer(cfg config.OpsConfig, pinger Pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("riskmentor-ops"))

	e.GET("/healthz", func(c echo.Context) error {
		if pinger != nil {
			if err := pinger.Ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{
					"status": "degraded",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{e: e, addr: cfg.Address}
}

// Start serves until ctx is cancelled, then shuts the listener down.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		slog.Info("shutdown ops server...")
		if err := s.e.Shutdown(context.Background()); err != nil {
			slog.Error("ops server shutdown", "error", err)
		}
	}()

	slog.Info("ops server listening", "address", s.addr)
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler exposes the underlying mux, used by tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
