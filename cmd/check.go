package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/lepinkainen/skiptools/skip"
	"github.com/lepinkainen/skiptools/types"
	"github.com/lepinkainen/skiptools/ui"
	"github.com/lepinkainen/skiptools/utils"
	"github.com/lepinkainen/skiptools/video"
)

// CheckCmd displays the segments of a skip document and checks them against
// the runtime of the video they belong to
type CheckCmd struct {
	File    string  `arg:"" name:"file" help:"Skip JSON document" type:"existingfile"`
	Video   string  `help:"Video file to probe for its runtime" type:"existingfile"`
	Runtime float64 `help:"Video runtime in seconds (overrides --video)"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(appCtx *types.AppContext) error {
	out := appCtx.Out()

	result, err := skip.ReadResult(cmd.File)
	if err != nil {
		return err
	}

	runtimeSec, err := cmd.resolveRuntime(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", ui.InfoStyle.Render(fmt.Sprintf("%s: %d segment(s)", result.File, len(result.Skips))))
	if runtimeSec > 0 {
		fmt.Fprintf(out, "Runtime: %s\n", formatTimestamp(runtimeSec))
	} else {
		fmt.Fprintln(out, "Runtime unknown, skipping validation")
	}

	fmt.Fprintln(out, renderSegments(result.Skips, runtimeSec))

	valid, rejected := skip.ValidateAgainstRuntime(result.Skips, runtimeSec)
	fmt.Fprintf(out, "\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Valid: %d, ❌ Rejected: %d", len(valid), len(rejected))))
	return nil
}

func (cmd *CheckCmd) resolveRuntime(ctx context.Context) (float64, error) {
	if cmd.Runtime > 0 || cmd.Video == "" {
		return cmd.Runtime, nil
	}

	if err := utils.ValidateFFprobe(); err != nil {
		return 0, err
	}
	secs, err := video.GetDurationSeconds(ctx, cmd.Video)
	if err != nil {
		return 0, fmt.Errorf("failed to probe %s: %w", cmd.Video, err)
	}
	return secs, nil
}

func renderSegments(segments []skip.Segment, runtimeSec float64) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Label", "Confidence", "Status"})

	for i, s := range segments {
		status := "✅"
		if !s.FitsRuntime(runtimeSec) {
			status = "❌"
		}
		tw.AppendRow(table.Row{
			i + 1,
			formatTimestamp(float64(s.Start)),
			formatTimestamp(float64(s.End)),
			skip.Label(s.Reason),
			strconv.FormatFloat(s.Confidence, 'f', 2, 64),
			status,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

// formatTimestamp renders seconds as m:ss or h:mm:ss
func formatTimestamp(secs float64) string {
	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	total := int(secs)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%d:%02d", sign, m, s)
}
