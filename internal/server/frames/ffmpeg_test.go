package frames

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nathanjchan/dothething-backend/internal/common"
)

func TestExtractFrame_ReadsProducedFrame(t *testing.T) {
	src := filepath.Join(t.TempDir(), "clip.mov")
	if err := os.WriteFile(src, []byte("media"), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	orig := execCommandContext
	execCommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		// stand in for ffmpeg: write the expected output file
		if err := os.WriteFile(src+".jpg", []byte("jpeg-bytes"), 0o600); err != nil {
			t.Fatalf("write frame: %v", err)
		}
		return exec.CommandContext(ctx, "true")
	}
	defer func() { execCommandContext = orig }()

	e := &FFmpegExtractor{}
	got, err := e.ExtractFrame(context.Background(), src)
	if err != nil {
		t.Fatalf("ExtractFrame error: %v", err)
	}
	if string(got) != "jpeg-bytes" {
		t.Fatalf("unexpected frame bytes: %q", got)
	}
	if _, err := os.Stat(src + ".jpg"); !os.IsNotExist(err) {
		t.Fatal("scratch frame file should be removed")
	}
}

func TestExtractFrame_CommandFailure(t *testing.T) {
	orig := execCommandContext
	execCommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	defer func() { execCommandContext = orig }()

	e := &FFmpegExtractor{}
	_, err := e.ExtractFrame(context.Background(), filepath.Join(t.TempDir(), "clip.mov"))
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("want common.ErrorUpstream, got %v", err)
	}
}

func TestExtractFrame_NoOutputFile(t *testing.T) {
	orig := execCommandContext
	execCommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "true")
	}
	defer func() { execCommandContext = orig }()

	e := &FFmpegExtractor{}
	_, err := e.ExtractFrame(context.Background(), filepath.Join(t.TempDir(), "clip.mov"))
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("want common.ErrorUpstream, got %v", err)
	}
}
