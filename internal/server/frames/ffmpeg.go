package frames

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/nathanjchan/dothething-backend/internal/common"
)

// FFmpegExtractor shells out to ffmpeg and grabs one frame near the
// one-second mark, encoded as JPEG.
type FFmpegExtractor struct {
	// Binary overrides the ffmpeg executable name. Empty means "ffmpeg"
	// from PATH.
	Binary string
}

// execCommandContext is a seam for testing the process invocation.
var execCommandContext = exec.CommandContext

func (e *FFmpegExtractor) ExtractFrame(ctx context.Context, localPath string) ([]byte, error) {
	binary := e.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	out := localPath + ".jpg"
	defer os.Remove(out)

	cmd := execCommandContext(ctx, binary,
		"-i", localPath,
		"-ss", "00:00:01.000",
		"-vframes", "1",
		out)

	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg: %v: %s", common.ErrorUpstream, err, output)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("%w: read frame: %v", common.ErrorUpstream, err)
	}
	return data, nil
}
