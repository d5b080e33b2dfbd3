package recognize

import (
	"context"
	"time"
)

// Result is best-effort recognized text; Text may be empty.
type Result struct {
	Text       string
	Language   string
	Duration   time.Duration
	Confidence float32
	Warnings   []string
}

// ProgressFunc receives coarse recognition progress in 0..100.
type ProgressFunc func(pct int)

// Recognizer is the text-recognition boundary: photo in, raw text out.
// Engine-level failures (corrupt file, missing binary) return an error
// wrapping common.ErrOCREngine; a readable photo with no useful text is
// NOT an error.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string, progress ProgressFunc) (Result, error)
}
