package cmd

import (
	"fmt"

	"github.com/lepinkainen/skiptools/skip"
	"github.com/lepinkainen/skiptools/types"
	"github.com/lepinkainen/skiptools/ui"
	"github.com/lepinkainen/skiptools/video"
)

// AnalyzeCmd writes skip segments for a video file to a JSON document.
// Without an input file, or with --simulate, sample data is generated instead.
type AnalyzeCmd struct {
	Input    string `help:"Input video file path"`
	Output   string `help:"Output JSON file path" default:"output.json"`
	Simulate bool   `help:"Generate sample data without analysis"`
}

// Run executes the analyze command
func (cmd *AnalyzeCmd) Run(appCtx *types.AppContext) error {
	return cmd.run(appCtx, skip.NewGenerator(nil))
}

func (cmd *AnalyzeCmd) run(appCtx *types.AppContext, gen *skip.Generator) error {
	logger := appCtx.Log()

	if cmd.Input != "" && !video.IsVideoFile(cmd.Input) {
		logger.Warn("input does not look like a video file", "input", cmd.Input)
	}

	result := gen.Generate(cmd.Input, cmd.Simulate)
	logger.Debug("generated skip segments",
		"file", result.File,
		"segments", len(result.Skips),
		"simulated", cmd.Simulate || cmd.Input == "")

	if err := skip.WriteResult(cmd.Output, result); err != nil {
		return err
	}

	fmt.Fprintf(appCtx.Out(), "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("Analysis complete. Results saved to %s", cmd.Output)))
	return nil
}
