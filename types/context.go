package types

import (
	"io"
	"log/slog"
	"os"
)

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Logger  *slog.Logger

	// Stdout and Stderr default to the process streams when nil
	Stdout io.Writer
	Stderr io.Writer
}

// Log returns the context logger, falling back to slog.Default
func (c *AppContext) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// VersionString returns the version or DefaultVersion
func (c *AppContext) VersionString() string {
	if c == nil || c.Version == "" {
		return DefaultVersion
	}
	return c.Version
}

// Out is where commands write their report
func (c *AppContext) Out() io.Writer {
	if c == nil || c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// Err is where progress bars and other transient output go
func (c *AppContext) Err() io.Writer {
	if c == nil || c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
