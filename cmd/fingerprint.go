package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lepinkainen/skiptools/types"
	"github.com/lepinkainen/skiptools/ui"
	"github.com/lepinkainen/skiptools/video"
	"github.com/schollz/progressbar/v3"
)

// FingerprintCmd prints a local CRC32 fingerprint for each video file
type FingerprintCmd struct {
	Files []string `arg:"" name:"files" help:"Video files to fingerprint" type:"existingfile"`
}

// Run hashes each file, continuing past failures, and reports the failure count
func (cmd *FingerprintCmd) Run(appCtx *types.AppContext) error {
	out := appCtx.Out()
	fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("skiptools %s", appCtx.VersionString())))
	fmt.Fprintln(out, ui.ProcessingStyle.Render(fmt.Sprintf("Fingerprinting %d files:", len(cmd.Files))))

	var failed int
	for _, videoFile := range cmd.Files {
		if !video.IsVideoFile(videoFile) {
			fmt.Fprintf(out, "%s\n", ui.WarningStyle.Render(fmt.Sprintf("⚠️  %s is not a video file, hashing anyway", videoFile)))
		}

		id, size, err := fingerprint(appCtx, videoFile)
		if err != nil {
			fmt.Fprintf(out, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error calculating hash for %s: %v", videoFile, err)))
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s  %s (%s)", id, videoFile, humanize.Bytes(uint64(size)))))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fingerprinted", failed, len(cmd.Files))
	}
	return nil
}

func fingerprint(appCtx *types.AppContext, videoFile string) (string, int64, error) {
	fi, err := os.Stat(videoFile)
	if err != nil {
		return "", 0, err
	}

	bar := progressbar.NewOptions64(fi.Size(),
		progressbar.OptionSetWriter(appCtx.Err()),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	crc, err := video.CalculateCRC32(videoFile, bar)
	if err != nil {
		return "", 0, err
	}
	return video.FileID(crc), fi.Size(), nil
}
