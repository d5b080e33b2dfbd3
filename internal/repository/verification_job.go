package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/gen/ent"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// CreateJobRequest wraps parameters for opening a verification job.
type CreateJobRequest struct {
	ActivityType      constants.ActivityID
	ImagePath         string
	MemberID          string
	MemberChallengeID *int
}

// RecognitionResult carries everything the pipeline learned from one photo.
type RecognitionResult struct {
	Text            string
	Confidence      float32
	ExtractedFields json.RawMessage
	Category        constants.StoreCategory
	KeywordsMatched bool
	MissingFields   []string
}

type VerificationJobRepository interface {
	Create(ctx context.Context, req *CreateJobRequest) (*ent.VerificationJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.VerificationJob, error)
	List(ctx context.Context, activity constants.ActivityID, from, to *time.Time) ([]*ent.VerificationJob, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error
	FinishRecognition(ctx context.Context, id uuid.UUID, res *RecognitionResult, status constants.JobStatus) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
	FinishSuccess(ctx context.Context, id uuid.UUID) error
}

type verificationJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVerificationJobRepository(client *ent.Client, logger *slog.Logger) VerificationJobRepository {
	return &verificationJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *verificationJobRepository) Create(ctx context.Context, req *CreateJobRequest) (*ent.VerificationJob, error) {
	builder := r.client.VerificationJob.Create().
		SetActivityType(string(req.ActivityType)).
		SetStatus(string(constants.JobStatusQueued)).
		SetImagePath(req.ImagePath)
	if req.MemberID != "" {
		builder = builder.SetMemberID(req.MemberID)
	}
	if req.MemberChallengeID != nil {
		builder = builder.SetMemberChallengeID(*req.MemberChallengeID)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create verification job", "activity", req.ActivityType, "error", err)
		return nil, err
	}
	return job, nil
}

func (r *verificationJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.VerificationJob, error) {
	return r.client.VerificationJob.Get(ctx, id)
}

func (r *verificationJobRepository) List(ctx context.Context, activity constants.ActivityID, from, to *time.Time) ([]*ent.VerificationJob, error) {
	q := r.client.VerificationJob.Query()
	if activity != "" {
		q = q.Where(verificationjob.ActivityType(string(activity)))
	}
	if from != nil {
		q = q.Where(verificationjob.StartedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(verificationjob.StartedAtLTE(*to))
	}
	jobs, err := q.Order(verificationjob.ByStartedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list verification jobs", "activity", activity, "error", err)
		return nil, err
	}
	return jobs, nil
}

func (r *verificationJobRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error {
	return r.client.VerificationJob.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
}

func (r *verificationJobRepository) FinishRecognition(ctx context.Context, id uuid.UUID, res *RecognitionResult, status constants.JobStatus) error {
	builder := r.client.VerificationJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetRecognizedText(res.Text).
		SetOcrConfidence(res.Confidence).
		SetKeywordsMatched(res.KeywordsMatched).
		SetMissingFields(res.MissingFields)
	if len(res.ExtractedFields) > 0 {
		builder = builder.SetExtractedFields(res.ExtractedFields)
	}
	if res.Category != constants.StoreCategoryNone {
		builder = builder.SetDetectedCategory(string(res.Category))
	}
	return builder.Exec(ctx)
}

func (r *verificationJobRepository) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	return r.client.VerificationJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}

func (r *verificationJobRepository) FinishSuccess(ctx context.Context, id uuid.UUID) error {
	return r.client.VerificationJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusSucceeded)).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}
