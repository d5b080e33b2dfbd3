package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/gen/ent"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
)

// CreateSubmissionRequest records one payload posted to the verification API.
type CreateSubmissionRequest struct {
	JobID           uuid.UUID
	Endpoint        string
	Payload         json.RawMessage
	HTTPStatus      int
	Duplicate       bool
	ResponseMessage string
}

type SubmissionRepository interface {
	Create(ctx context.Context, req *CreateSubmissionRequest) (*ent.Submission, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error)
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, req *CreateSubmissionRequest) (*ent.Submission, error) {
	builder := r.client.Submission.Create().
		SetJobID(req.JobID).
		SetEndpoint(req.Endpoint).
		SetPayload(req.Payload).
		SetHTTPStatus(req.HTTPStatus).
		SetDuplicate(req.Duplicate)
	if req.ResponseMessage != "" {
		builder = builder.SetResponseMessage(req.ResponseMessage)
	}

	sub, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to record submission", "job_id", req.JobID, "error", err)
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error) {
	return r.client.Submission.Query().
		Where(submission.JobID(jobID)).
		Order(submission.ByCreatedAt()).
		All(ctx)
}
