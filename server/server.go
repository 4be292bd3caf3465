// Package server exposes the chatbot over HTTP: one JSON query endpoint plus
// a health check, with CORS and per-client rate limiting.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/skydesk/skydesk/chatbot"
	"github.com/skydesk/skydesk/internal/profile"
	"github.com/skydesk/skydesk/server/middleware"
)

// Server wires the echo instance around the dispatcher.
type Server struct {
	echoServer *echo.Echo
	profile    *profile.Profile
	dispatcher *chatbot.Dispatcher
}

// queryRequest is the inbound message submission.
type queryRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// New creates the HTTP server.
func New(p *profile.Profile, dispatcher *chatbot.Dispatcher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echoServer: e,
		profile:    p,
		dispatcher: dispatcher,
	}

	group := e.Group("/api/v1")
	if p.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(p.RateLimitRPS, p.RateLimitBurst)
		group.Use(limiter.Middleware())
	}
	group.POST("/query", s.handleQuery)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return s
}

// handleQuery dispatches one message. The reply is always HTTP 200 with a
// payload; dispatch faults surface as in-band text replies.
func (s *Server) handleQuery(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	resp := s.dispatcher.Handle(c.Request().Context(), req.UserID, req.Message)
	return c.JSON(http.StatusOK, resp)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
	errCh := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", addr, "mode", s.profile.Mode)
		if err := s.echoServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), profile.ShutdownTimeout)
	defer cancel()
	return s.echoServer.Shutdown(shutdownCtx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echoServer
}
