package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lepinkainen/skiptools/config"
	"github.com/lepinkainen/skiptools/server"
	"github.com/lepinkainen/skiptools/types"
)

// ServeCmd runs the skip metadata API. PORT and SKIP_DATA_DIR configure it,
// and the flags take precedence when set.
type ServeCmd struct {
	Port    int    `help:"Port to listen on (default from PORT, else 3000)"`
	DataDir string `name:"data-dir" help:"Directory holding skip metadata (default from SKIP_DATA_DIR, else ./skip)"`
}

// Run serves until interrupted
func (cmd *ServeCmd) Run(appCtx *types.AppContext) error {
	logger := appCtx.Log()

	cfg, err := cmd.resolveConfig(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.DataDir, logger).ListenAndServe(ctx, cfg.Addr())
}

// resolveConfig loads the environment config and applies any flags on top
func (cmd *ServeCmd) resolveConfig(logger *slog.Logger) (*config.ServerConfig, error) {
	cfg, err := config.LoadServerConfig(logger)
	if err != nil {
		return nil, err
	}
	if cmd.Port > 0 {
		cfg.Port = cmd.Port
	}
	if cmd.DataDir != "" {
		cfg.DataDir = cmd.DataDir
	}
	return cfg, nil
}
