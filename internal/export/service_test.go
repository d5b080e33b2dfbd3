package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/gen/ent"
	"github.com/greenmap-app/greenmap-verify/internal/repository"
)

type fakeJobsRepo struct {
	jobs []*ent.VerificationJob

	gotActivity constants.ActivityID
	gotFrom     *time.Time
	gotTo       *time.Time
}

func (r *fakeJobsRepo) Create(context.Context, *repository.CreateJobRequest) (*ent.VerificationJob, error) {
	return nil, nil
}

func (r *fakeJobsRepo) GetByID(context.Context, uuid.UUID) (*ent.VerificationJob, error) {
	return nil, nil
}

func (r *fakeJobsRepo) List(_ context.Context, activity constants.ActivityID, from, to *time.Time) ([]*ent.VerificationJob, error) {
	r.gotActivity = activity
	r.gotFrom = from
	r.gotTo = to
	return r.jobs, nil
}

func (r *fakeJobsRepo) SetStatus(context.Context, uuid.UUID, constants.JobStatus) error { return nil }

func (r *fakeJobsRepo) FinishRecognition(context.Context, uuid.UUID, *repository.RecognitionResult, constants.JobStatus) error {
	return nil
}

func (r *fakeJobsRepo) FinishFailure(context.Context, uuid.UUID, string) error { return nil }
func (r *fakeJobsRepo) FinishSuccess(context.Context, uuid.UUID) error         { return nil }

func strPtr(s string) *string { return &s }

func f32Ptr(f float32) *float32 { return &f }

func TestExportJobsXLSX(t *testing.T) {
	started := time.Date(2026, 5, 1, 7, 10, 0, 0, time.UTC)
	repo := &fakeJobsRepo{jobs: []*ent.VerificationJob{
		{
			ID:              uuid.New(),
			ActivityType:    "bike",
			Status:          string(constants.JobStatusSucceeded),
			StartedAt:       started,
			KeywordsMatched: true,
			OcrConfidence:   f32Ptr(0.91),
		},
		{
			ID:               uuid.New(),
			ActivityType:     "z",
			Status:           string(constants.JobStatusRecognized),
			StartedAt:        started.Add(time.Hour),
			MissingFields:    []string{"approval_number"},
			DetectedCategory: strPtr("zero"),
			KeywordsMatched:  true,
		},
	}}

	s := NewService(repo, nil)
	data, err := s.ExportJobsXLSX(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Verifications")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Started At", "Activity", "Status", "Category",
		"Keywords Matched", "Confidence", "Missing Fields", "Error",
	}, rows[0])

	assert.Equal(t, "2026-05-01 07:10", rows[1][0])
	assert.Equal(t, "bike", rows[1][1])
	assert.Equal(t, string(constants.JobStatusSucceeded), rows[1][2])
	assert.Equal(t, "0.91", rows[1][5])

	assert.Equal(t, "z", rows[2][1])
	assert.Equal(t, "zero", rows[2][3])
	assert.Equal(t, "approval_number", rows[2][6])
}

func TestExportJobsXLSXDateWindow(t *testing.T) {
	repo := &fakeJobsRepo{}
	s := NewService(repo, nil)

	from := time.Date(2026, 5, 1, 13, 45, 0, 0, time.UTC)
	_, err := s.ExportJobsXLSX(context.Background(), constants.ActivityBike, &from, nil)
	require.NoError(t, err)

	assert.Equal(t, constants.ActivityBike, repo.gotActivity)
	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *repo.gotFrom, "from is truncated to the day")
	require.NotNil(t, repo.gotTo, "open to-date defaults to today")
}
