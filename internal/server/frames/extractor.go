// Package frames derives still-frame thumbnails from uploaded media.
package frames

import "context"

// Extractor produces a single still frame from the media file at localPath.
// It may fail for corrupt or unsupported media.
type Extractor interface {
	ExtractFrame(ctx context.Context, localPath string) ([]byte, error)
}
