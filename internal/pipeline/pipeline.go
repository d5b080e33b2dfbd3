// Package pipeline orchestrates one verification attempt end to end:
// recognize -> extract + classify -> gate -> submit, persisting each step.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/attempt"
	"github.com/greenmap-app/greenmap-verify/internal/classify"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
	"github.com/greenmap-app/greenmap-verify/internal/gate"
	"github.com/greenmap-app/greenmap-verify/internal/recognize"
	"github.com/greenmap-app/greenmap-verify/internal/repository"
	"github.com/greenmap-app/greenmap-verify/internal/verifyapi"
)

// Config holds thresholds and behavior flags for the pipeline.
type Config struct {
	MinConfidence float32 // default 0.60
}

// Outcome is what one recognition pass produced for the caller/UI.
type Outcome struct {
	JobID      uuid.UUID
	Fields     extract.Fields
	Category   constants.StoreCategory
	Matched    bool
	Missing    []string
	Confidence float32
}

// CanSubmit reports whether the outcome clears the submission gate.
func (o *Outcome) CanSubmit() bool {
	return o.Matched && len(o.Missing) == 0
}

// Message is the user-facing summary of an incomplete outcome.
func (o *Outcome) Message() string {
	if !o.Matched {
		return "keywords not found, retake a clearer photo"
	}
	return gate.IncompleteMessage(o.Missing)
}

type Pipeline struct {
	Logger     *slog.Logger
	Cfg        Config
	Recognizer recognize.Recognizer
	JobsRepo   repository.VerificationJobRepository
	SubsRepo   repository.SubmissionRepository
	Verifier   *verifyapi.Client
}

func New(
	logger *slog.Logger,
	cfg Config,
	rec recognize.Recognizer,
	jobs repository.VerificationJobRepository,
	subs repository.SubmissionRepository,
	verifier *verifyapi.Client,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Pipeline{
		Logger:     logger,
		Cfg:        cfg,
		Recognizer: rec,
		JobsRepo:   jobs,
		SubsRepo:   subs,
		Verifier:   verifier,
	}
}

// Recognize runs OCR over the attempt's photo and fills the extraction
// accumulator. Extraction absence is a normal outcome; only engine failures
// return an error. A result arriving after the attempt was closed is
// discarded, the job marked failed, and ErrAttemptClosed returned.
func (p *Pipeline) Recognize(ctx context.Context, att *attempt.Attempt, imagePath string, req *repository.CreateJobRequest) (*Outcome, error) {
	at := att.Activity()
	if err := att.SelectPhoto(imagePath); err != nil {
		return nil, err
	}

	if req == nil {
		req = &repository.CreateJobRequest{}
	}
	req.ActivityType = at.ID
	req.ImagePath = imagePath

	job, err := p.JobsRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if err := att.Transition(attempt.StateRecognizing); err != nil {
		return nil, err
	}
	if err := p.JobsRepo.SetStatus(ctx, job.ID, constants.JobStatusRecognizing); err != nil {
		return nil, fmt.Errorf("mark recognizing: %w", err)
	}

	p.Logger.Info("recognition start", "job_id", job.ID, "activity", string(at.ID), "image", imagePath)

	res, err := p.Recognizer.Recognize(ctx, imagePath, func(pct int) {
		p.Logger.Debug("recognition progress", "job_id", job.ID, "pct", pct)
	})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		if terr := att.Transition(attempt.StateFailed); terr != nil {
			p.Logger.Warn("late recognition failure discarded", "job_id", job.ID, "error", err)
		}
		return nil, err
	}

	fields := extract.Extract(res.Text, at)
	matched := classify.Matches(res.Text, at)
	category := constants.StoreCategoryNone
	if at.ID == constants.ActivityStore {
		category = classify.StoreCategory(res.Text, at)
		matched = category != constants.StoreCategoryNone
	}
	missing := gate.Missing(at, fields)

	if !att.SetRecognition(res.Text, res.Confidence, fields, category) {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, "attempt closed during recognition")
		p.Logger.Info("recognition result discarded", "job_id", job.ID)
		return nil, fmt.Errorf("%w: job %s", common.ErrAttemptClosed, job.ID)
	}

	status := constants.JobStatusRecognized
	if !matched {
		status = constants.JobStatusNoCategory
	}

	fieldsJSON, _ := json.Marshal(fields)
	if err := p.JobsRepo.FinishRecognition(ctx, job.ID, &repository.RecognitionResult{
		Text:            res.Text,
		Confidence:      res.Confidence,
		ExtractedFields: fieldsJSON,
		Category:        category,
		KeywordsMatched: matched,
		MissingFields:   missing,
	}, status); err != nil {
		return nil, fmt.Errorf("persist recognition: %w", err)
	}

	if res.Confidence > 0 && res.Confidence < p.Cfg.MinConfidence {
		p.Logger.Warn("low recognition confidence", "job_id", job.ID, "confidence", res.Confidence)
	}
	p.Logger.Info("recognition done",
		"job_id", job.ID,
		"activity", string(at.ID),
		"matched", matched,
		"category", string(category),
		"missing", missing,
		"confidence", res.Confidence,
	)

	return &Outcome{
		JobID:      job.ID,
		Fields:     fields,
		Category:   category,
		Matched:    matched,
		Missing:    missing,
		Confidence: res.Confidence,
	}, nil
}

// Submit builds the payload and posts it to the verification API, recording
// the exchange. Gate validation happens here; BuildPayload itself never
// validates.
func (p *Pipeline) Submit(ctx context.Context, att *attempt.Attempt, jobID uuid.UUID, memberChallengeID *int) error {
	at := att.Activity()
	fields := att.Fields()

	if missing := gate.Missing(at, fields); len(missing) > 0 {
		return fmt.Errorf("cannot submit, %s", gate.IncompleteMessage(missing))
	}

	if err := att.Transition(attempt.StateSubmitting); err != nil {
		return err
	}
	if err := p.JobsRepo.SetStatus(ctx, jobID, constants.JobStatusSubmitting); err != nil {
		return fmt.Errorf("mark submitting: %w", err)
	}

	payload := gate.BuildPayload(at, fields, att.Category(), memberChallengeID)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	resp, submitErr := p.Verifier.Submit(ctx, at, payload)

	sub := &repository.CreateSubmissionRequest{
		JobID:    jobID,
		Endpoint: verifyapi.Endpoint(at),
		Payload:  payloadJSON,
	}
	if resp != nil {
		sub.HTTPStatus = resp.Status
		sub.Duplicate = resp.Duplicate
		sub.ResponseMessage = resp.Message
	}
	if _, rerr := p.SubsRepo.Create(ctx, sub); rerr != nil {
		p.Logger.Error("failed to record submission", "job_id", jobID, "error", rerr)
	}

	if submitErr != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, submitErr.Error())
		_ = att.Transition(attempt.StateFailed)
		return submitErr
	}

	if err := p.JobsRepo.FinishSuccess(ctx, jobID); err != nil {
		return err
	}
	if err := att.Transition(attempt.StateSucceeded); err != nil {
		return err
	}

	p.Logger.Info("verification submitted", "job_id", jobID, "activity", string(at.ID))
	return nil
}
