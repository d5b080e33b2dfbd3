package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	verifypb "github.com/greenmap-app/greenmap-verify/gen/proto/verify/v1"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/gen/ent"
	"github.com/greenmap-app/greenmap-verify/internal/activitycfg"
	"github.com/greenmap-app/greenmap-verify/internal/attempt"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/export"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
	"github.com/greenmap-app/greenmap-verify/internal/pipeline"
	"github.com/greenmap-app/greenmap-verify/internal/repository"
	"github.com/greenmap-app/greenmap-verify/internal/verifyapi"
)

type VerificationService struct {
	verifypb.UnimplementedVerificationServiceServer

	catalog  []constants.ActivityType
	pipe     *pipeline.Pipeline
	jobsRepo repository.VerificationJobRepository
	exporter *export.Service
	logger   *slog.Logger

	mu       sync.Mutex
	attempts map[uuid.UUID]*attempt.Attempt
}

func NewVerificationService(
	catalog []constants.ActivityType,
	pipe *pipeline.Pipeline,
	jobsRepo repository.VerificationJobRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *VerificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerificationService{
		catalog:  catalog,
		pipe:     pipe,
		jobsRepo: jobsRepo,
		exporter: exporter,
		logger:   logger,
		attempts: make(map[uuid.UUID]*attempt.Attempt),
	}
}

func (s *VerificationService) RecognizeReceipt(ctx context.Context, req *verifypb.RecognizeReceiptRequest) (*verifypb.RecognizeReceiptResponse, error) {
	id, ok := constants.CanonicalizeActivityID(req.GetActivityType())
	if !ok {
		s.logger.Error("unknown activity type", "activity_type", req.GetActivityType())
		return nil, status.Errorf(codes.InvalidArgument, "unknown activity type %q", req.GetActivityType())
	}
	at, ok := activitycfg.Find(s.catalog, id)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "activity type %q not in catalog", id)
	}
	if strings.TrimSpace(req.GetImagePath()) == "" {
		return nil, status.Error(codes.InvalidArgument, "image_path is required")
	}

	jobReq := &repository.CreateJobRequest{MemberID: req.GetMemberId()}
	if req.MemberChallengeId != nil {
		mc := int(req.GetMemberChallengeId())
		jobReq.MemberChallengeID = &mc
	}

	att := attempt.New(at)
	out, err := s.pipe.Recognize(ctx, att, req.GetImagePath(), jobReq)
	if err != nil {
		s.logger.Error("recognition failed", "activity", string(id), "error", err)
		if errors.Is(err, common.ErrOCREngine) {
			return nil, status.Error(codes.FailedPrecondition, "recognition failed, retry with another photo")
		}
		if errors.Is(err, common.ErrAttemptClosed) {
			return nil, status.Error(codes.Aborted, "attempt closed during recognition")
		}
		return nil, status.Errorf(codes.Internal, "recognize: %v", err)
	}

	s.mu.Lock()
	s.attempts[out.JobID] = att
	s.mu.Unlock()

	return &verifypb.RecognizeReceiptResponse{
		JobId:            out.JobID.String(),
		Fields:           toPBFields(out.Fields),
		DetectedCategory: string(out.Category),
		KeywordsMatched:  out.Matched,
		MissingFields:    out.Missing,
		CanSubmit:        out.CanSubmit(),
		Confidence:       out.Confidence,
		Message:          out.Message(),
	}, nil
}

func (s *VerificationService) SubmitVerification(ctx context.Context, req *verifypb.SubmitVerificationRequest) (*verifypb.SubmitVerificationResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	att, err := s.attemptForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var memberChallengeID *int
	if req.MemberChallengeId != nil {
		mc := int(req.GetMemberChallengeId())
		memberChallengeID = &mc
	}

	if err := s.pipe.Submit(ctx, att, jobID, memberChallengeID); err != nil {
		if errors.Is(err, common.ErrDuplicateSubmission) {
			return &verifypb.SubmitVerificationResponse{
				Status:    string(constants.JobStatusFailed),
				Message:   verifyapi.DuplicateMessage,
				Duplicate: true,
			}, nil
		}
		if errors.Is(err, common.ErrSubmissionRejected) {
			return nil, status.Errorf(codes.FailedPrecondition, "submission rejected: %v", err)
		}
		s.logger.Error("submit failed", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit: %v", err)
	}

	return &verifypb.SubmitVerificationResponse{
		Status: string(constants.JobStatusSucceeded),
	}, nil
}

// attemptForJob returns the live attempt for a job, rebuilding it from the
// stored row when the daemon restarted since recognition.
func (s *VerificationService) attemptForJob(ctx context.Context, jobID uuid.UUID) (*attempt.Attempt, error) {
	s.mu.Lock()
	att, ok := s.attempts[jobID]
	s.mu.Unlock()
	if ok {
		return att, nil
	}

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
	}
	id, _ := constants.CanonicalizeActivityID(job.ActivityType)
	at, ok := activitycfg.Find(s.catalog, id)
	if !ok {
		return nil, status.Errorf(codes.Internal, "activity type %q not in catalog", job.ActivityType)
	}

	var fields extract.Fields
	if len(job.ExtractedFields) > 0 {
		if err := json.Unmarshal(job.ExtractedFields, &fields); err != nil {
			return nil, status.Errorf(codes.Internal, "decode extracted fields: %v", err)
		}
	}
	text := ""
	if job.RecognizedText != nil {
		text = *job.RecognizedText
	}
	var conf float32
	if job.OcrConfidence != nil {
		conf = *job.OcrConfidence
	}
	category := constants.StoreCategoryNone
	if job.DetectedCategory != nil {
		category = constants.StoreCategory(*job.DetectedCategory)
	}

	att = attempt.New(at)
	if err := att.SelectPhoto(job.ImagePath); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild attempt: %v", err)
	}
	if err := att.Transition(attempt.StateRecognizing); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild attempt: %v", err)
	}
	if !att.SetRecognition(text, conf, fields, category) {
		return nil, status.Error(codes.Internal, "rebuild attempt: recognition not applied")
	}

	s.mu.Lock()
	s.attempts[jobID] = att
	s.mu.Unlock()
	return att, nil
}

func (s *VerificationService) GetJob(ctx context.Context, req *verifypb.GetJobRequest) (*verifypb.GetJobResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
	}
	return &verifypb.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *VerificationService) ListJobs(ctx context.Context, req *verifypb.ListJobsRequest) (*verifypb.ListJobsResponse, error) {
	activity, from, to, err := s.parseListArgs(req.GetActivityType(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobsRepo.List(ctx, activity, from, to)
	if err != nil {
		s.logger.Error("failed to list jobs", "activity", string(activity), "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*verifypb.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toPBJob(j))
	}
	return &verifypb.ListJobsResponse{Jobs: out}, nil
}

func (s *VerificationService) ExportJobs(ctx context.Context, req *verifypb.ExportJobsRequest) (*verifypb.ExportJobsResponse, error) {
	activity, from, to, err := s.parseListArgs(req.GetActivityType(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportJobsXLSX(ctx, activity, from, to)
	if err != nil {
		s.logger.Error("export failed", "activity", string(activity), "error", err)
		return nil, status.Errorf(codes.Internal, "export jobs: %v", err)
	}
	return &verifypb.ExportJobsResponse{Xlsx: data}, nil
}

func (s *VerificationService) parseListArgs(activityArg, fromArg, toArg string) (constants.ActivityID, *time.Time, *time.Time, error) {
	var activity constants.ActivityID
	if a := strings.TrimSpace(activityArg); a != "" {
		id, ok := constants.CanonicalizeActivityID(a)
		if !ok {
			return "", nil, nil, status.Errorf(codes.InvalidArgument, "unknown activity type %q", a)
		}
		activity = id
	}

	var from, to *time.Time
	if fd := strings.TrimSpace(fromArg); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return "", nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(toArg); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return "", nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}
	return activity, from, to, nil
}

func toPBFields(f extract.Fields) *verifypb.ExtractedFields {
	return &verifypb.ExtractedFields{
		DistanceKm:      f.DistanceKm,
		ChargeAmountKwh: f.ChargeAmountKwh,
		ChargeFeeWon:    f.ChargeFeeWon,
		PriceWon:        f.PriceWon,
		ApprovalNumber:  f.ApprovalNumber,
		BikeNumber:      f.BikeNumber,
		MerchantName:    f.MerchantName,
		StartTime:       f.StartTime,
		EndTime:         f.EndTime,
	}
}

func toPBJob(j *ent.VerificationJob) *verifypb.Job {
	pb := &verifypb.Job{
		Id:              j.ID.String(),
		ActivityType:    j.ActivityType,
		Status:          j.Status,
		StartedAt:       j.StartedAt.Format(time.RFC3339Nano),
		KeywordsMatched: j.KeywordsMatched,
		MissingFields:   j.MissingFields,
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.Format(time.RFC3339Nano)
	}
	if j.DetectedCategory != nil {
		pb.DetectedCategory = *j.DetectedCategory
	}
	if j.OcrConfidence != nil {
		pb.Confidence = *j.OcrConfidence
	}
	if j.ErrorMessage != nil {
		pb.ErrorMessage = *j.ErrorMessage
	}
	return pb
}
