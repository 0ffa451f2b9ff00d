// Package server serves stored skip metadata over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

// Server exposes skip metadata stored as <dataDir>/<imdbId>/s<season>e<episode>.json
type Server struct {
	dataDir string
	logger  *slog.Logger
	echo    *echo.Echo
}

// New creates a server reading metadata from dataDir
func New(dataDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{dataDir: dataDir, logger: logger, echo: e}
	e.GET("/health", s.handleHealth)
	e.GET("/skip/:imdbId/:season/:episode", s.handleSkip)
	return s
}

// Handler returns the HTTP handler for the API
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Skip API server running", "addr", addr, "data_dir", s.dataDir)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down skip API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSkip(c echo.Context) error {
	imdbID := c.Param("imdbId")
	season := c.Param("season")
	episode := c.Param("episode")

	if !safeSegment(imdbID) || !safeSegment(season) || !safeSegment(episode) {
		return notFound(c)
	}

	path := filepath.Join(s.dataDir, imdbID, fmt.Sprintf("s%se%s.json", season, episode))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(c)
		}
		s.logger.Error("failed to read skip metadata", "path", path, "error", err)
		return internalError(c)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("invalid skip metadata", "path", path, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, doc)
}

// safeSegment rejects values that could escape the data directory
func safeSegment(v string) bool {
	return v != "" && v != "." && !strings.Contains(v, "..") && !strings.ContainsAny(v, `/\`)
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Skip metadata not found"})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
