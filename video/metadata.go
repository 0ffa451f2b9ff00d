package video

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetDurationSeconds extracts the video duration in seconds using ffprobe
func GetDurationSeconds(ctx context.Context, videoFile string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-show_entries",
		"format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get duration: %w", err)
	}

	return parseDuration(string(output))
}

// parseDuration parses ffprobe's duration output, keeping only the first line
func parseDuration(output string) (float64, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	line = strings.TrimSpace(line)
	if line == "" || line == "N/A" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}

	secs, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", line, err)
	}
	if secs < 0 {
		return 0, fmt.Errorf("negative duration %v", secs)
	}
	return secs, nil
}
