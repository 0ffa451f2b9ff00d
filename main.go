package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/skiptools/cmd"
	"github.com/lepinkainen/skiptools/project"
	"github.com/lepinkainen/skiptools/types"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var Version = "dev"

type CLI struct {
	Debug   bool             `help:"Enable debug logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Analyze     cmd.AnalyzeCmd     `cmd:"" help:"Generate skip segments for a video file"`
	Validate    cmd.ValidateCmd    `cmd:"" help:"Check the Android TV project has every required file"`
	Check       cmd.CheckCmd       `cmd:"" help:"Show skip segments and validate them against the video runtime"`
	Fingerprint cmd.FingerprintCmd `cmd:"" help:"Print a CRC32 fingerprint for video files"`
	Serve       cmd.ServeCmd       `cmd:"" help:"Serve skip metadata over HTTP"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("skiptools"),
		kong.Description("Skip segment tooling for the Smart Player Android TV app"),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(cli.Debug)
	slog.SetDefault(logger)

	appCtx := &types.AppContext{Version: Version, Logger: logger}
	err = ctx.Run(appCtx)
	if errors.Is(err, project.ErrIncomplete) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
