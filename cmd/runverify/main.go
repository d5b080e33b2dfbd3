package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/activitycfg"
	"github.com/greenmap-app/greenmap-verify/internal/classify"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
	"github.com/greenmap-app/greenmap-verify/internal/gate"
	"github.com/greenmap-app/greenmap-verify/internal/history"
	"github.com/greenmap-app/greenmap-verify/internal/ocr"
	"github.com/greenmap-app/greenmap-verify/internal/recognize"
)

// runverify recognizes a single receipt photo end to end without a server:
// OCR -> extract -> classify -> gate, appending the outcome to the local
// sqlite history.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runverify <activity-type> <image-path>")
		os.Exit(2)
	}
	id, ok := constants.CanonicalizeActivityID(os.Args[1])
	if !ok {
		logger.Error("unknown activity type", "arg", os.Args[1])
		os.Exit(2)
	}
	imagePath := os.Args[2]

	catalog, err := activitycfg.Load(os.Getenv("ACTIVITY_CATALOG"), logger)
	if err != nil {
		logger.Error("failed to load activity catalog", "error", err)
		os.Exit(1)
	}
	at, ok := activitycfg.Find(catalog, id)
	if !ok {
		logger.Error("activity type not in catalog", "activity", string(id))
		os.Exit(1)
	}

	cfg := common.LoadConfig()

	store, err := history.Open(cfg.History.SQLitePath, logger)
	if err != nil {
		logger.Error("failed to open history store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("close history store", "error", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TessdataDir:   cfg.OCR.TessdataDir,
		TesseractLang: cfg.OCR.Language,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	recognizer := recognize.NewOCRAdapter(extractor, logger)

	start := time.Now()
	res, err := recognizer.Recognize(ctx, imagePath, nil)
	entry := history.Entry{
		ID:        uuid.New().String(),
		Activity:  string(at.ID),
		ImagePath: imagePath,
	}
	if err != nil {
		entry.Status = string(constants.JobStatusFailed)
		_ = store.Append(ctx, entry)
		logger.Error("recognition failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	fields := extract.Extract(res.Text, at)
	matched := classify.Matches(res.Text, at)
	category := constants.StoreCategoryNone
	if at.ID == constants.ActivityStore {
		category = classify.StoreCategory(res.Text, at)
		matched = category != constants.StoreCategoryNone
	}
	missing := gate.Missing(at, fields)

	entry.Status = string(constants.JobStatusRecognized)
	if !matched {
		entry.Status = string(constants.JobStatusNoCategory)
	}
	entry.Category = string(category)
	entry.Matched = matched
	entry.Missing = gate.IncompleteMessage(missing)
	entry.Confidence = float64(res.Confidence)
	if err := store.Append(ctx, entry); err != nil {
		logger.Error("failed to record attempt", "error", err)
	}

	logger.Info("recognition OK",
		"activity", string(at.ID),
		"matched", matched,
		"category", string(category),
		"can_submit", matched && len(missing) == 0,
		"missing", missing,
		"distance_km", fields.DistanceKm,
		"charge_amount_kwh", fields.ChargeAmountKwh,
		"charge_fee_won", fields.ChargeFeeWon,
		"price_won", fields.PriceWon,
		"approval_number", fields.ApprovalNumber,
		"bike_number", fields.BikeNumber,
		"merchant_name", fields.MerchantName,
		"start_time", fields.StartTime,
		"end_time", fields.EndTime,
		"confidence", res.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
