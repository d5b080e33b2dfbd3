package recognize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/ocr"
)

// OCRAdapter backs the Recognizer boundary with the tesseract extractor.
type OCRAdapter struct {
	e      *ocr.Extractor
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{e: e, logger: logger}
}

func (a *OCRAdapter) Recognize(ctx context.Context, imagePath string, progress ProgressFunc) (Result, error) {
	if progress != nil {
		progress(0)
	}
	r, err := a.e.Extract(ctx, imagePath)
	if err != nil {
		a.logger.Error("recognition failed", "path", imagePath, "error", err)
		return Result{Warnings: r.Warnings}, fmt.Errorf("%w: %v", common.ErrOCREngine, err)
	}
	if progress != nil {
		progress(100)
	}
	return Result{
		Text:       r.Text,
		Language:   r.Language,
		Duration:   r.Duration,
		Confidence: r.Confidence,
		Warnings:   r.Warnings,
	}, nil
}
