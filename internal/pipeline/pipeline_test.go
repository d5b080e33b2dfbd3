package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/gen/ent"
	"github.com/greenmap-app/greenmap-verify/internal/attempt"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/gate"
	"github.com/greenmap-app/greenmap-verify/internal/recognize"
	"github.com/greenmap-app/greenmap-verify/internal/repository"
	"github.com/greenmap-app/greenmap-verify/internal/verifyapi"
)

var (
	bikeType = constants.ActivityType{
		ID:       constants.ActivityBike,
		Keywords: []string{"따릉이", "자전거"},
	}
	storeType = constants.ActivityType{
		ID:              constants.ActivityStore,
		Keywords:        []string{"제로웨이스트", "재활용"},
		RecycleKeywords: []string{"재활용"},
		ZeroKeywords:    []string{"리필", "알맹상점"},
	}
)

type stubRecognizer struct {
	res recognize.Result
	err error
}

func (s stubRecognizer) Recognize(_ context.Context, _ string, progress recognize.ProgressFunc) (recognize.Result, error) {
	if progress != nil {
		progress(0)
		progress(100)
	}
	return s.res, s.err
}

type fakeJobsRepo struct {
	created  []*repository.CreateJobRequest
	statuses map[uuid.UUID][]constants.JobStatus
	finished map[uuid.UUID]*repository.RecognitionResult
	failures map[uuid.UUID]string
	success  map[uuid.UUID]bool
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{
		statuses: map[uuid.UUID][]constants.JobStatus{},
		finished: map[uuid.UUID]*repository.RecognitionResult{},
		failures: map[uuid.UUID]string{},
		success:  map[uuid.UUID]bool{},
	}
}

func (r *fakeJobsRepo) Create(_ context.Context, req *repository.CreateJobRequest) (*ent.VerificationJob, error) {
	r.created = append(r.created, req)
	return &ent.VerificationJob{ID: uuid.New(), ActivityType: string(req.ActivityType), ImagePath: req.ImagePath}, nil
}

func (r *fakeJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.VerificationJob, error) {
	return nil, common.ErrNotFound
}

func (r *fakeJobsRepo) List(_ context.Context, _ constants.ActivityID, _, _ *time.Time) ([]*ent.VerificationJob, error) {
	return nil, nil
}

func (r *fakeJobsRepo) SetStatus(_ context.Context, id uuid.UUID, status constants.JobStatus) error {
	r.statuses[id] = append(r.statuses[id], status)
	return nil
}

func (r *fakeJobsRepo) FinishRecognition(_ context.Context, id uuid.UUID, res *repository.RecognitionResult, status constants.JobStatus) error {
	r.finished[id] = res
	r.statuses[id] = append(r.statuses[id], status)
	return nil
}

func (r *fakeJobsRepo) FinishFailure(_ context.Context, id uuid.UUID, message string) error {
	r.failures[id] = message
	r.statuses[id] = append(r.statuses[id], constants.JobStatusFailed)
	return nil
}

func (r *fakeJobsRepo) FinishSuccess(_ context.Context, id uuid.UUID) error {
	r.success[id] = true
	r.statuses[id] = append(r.statuses[id], constants.JobStatusSucceeded)
	return nil
}

type fakeSubsRepo struct {
	created []*repository.CreateSubmissionRequest
}

func (r *fakeSubsRepo) Create(_ context.Context, req *repository.CreateSubmissionRequest) (*ent.Submission, error) {
	r.created = append(r.created, req)
	return &ent.Submission{ID: uuid.New(), JobID: req.JobID}, nil
}

func (r *fakeSubsRepo) ListByJob(_ context.Context, _ uuid.UUID) ([]*ent.Submission, error) {
	return nil, nil
}

func newTestPipeline(rec recognize.Recognizer, jobs *fakeJobsRepo, subs *fakeSubsRepo, backendURL string) *Pipeline {
	var verifier *verifyapi.Client
	if backendURL != "" {
		verifier = verifyapi.NewClient(backendURL, time.Second, nil)
	}
	return New(nil, Config{}, rec, jobs, subs, verifier)
}

func TestRecognizeBikeHappyPath(t *testing.T) {
	jobs := newFakeJobsRepo()
	rec := stubRecognizer{res: recognize.Result{
		Text:       "따릉이 이용내역 대여 07:10 반납 07:45 이용거리 3.20km 자전거번호 1029",
		Confidence: 0.91,
	}}
	p := newTestPipeline(rec, jobs, &fakeSubsRepo{}, "")
	att := attempt.New(bikeType)

	out, err := p.Recognize(context.Background(), att, "/tmp/receipt.jpg", nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Matched)
	assert.Empty(t, out.Missing)
	assert.True(t, out.CanSubmit())
	assert.Equal(t, 3.2, out.Fields.DistanceKm)
	assert.Equal(t, "1029", out.Fields.BikeNumber)
	assert.Equal(t, attempt.StateRecognized, att.State())

	require.Len(t, jobs.created, 1)
	assert.Equal(t, constants.ActivityBike, jobs.created[0].ActivityType)
	res := jobs.finished[out.JobID]
	require.NotNil(t, res)
	assert.True(t, res.KeywordsMatched)
	assert.Equal(t,
		[]constants.JobStatus{constants.JobStatusRecognizing, constants.JobStatusRecognized},
		jobs.statuses[out.JobID])
}

func TestRecognizeStoreCategoryDrivesMatch(t *testing.T) {
	jobs := newFakeJobsRepo()
	rec := stubRecognizer{res: recognize.Result{
		Text:       "알맹상점 서울점 승인번호 12345678 결제금액 4,500원",
		Confidence: 0.88,
	}}
	p := newTestPipeline(rec, jobs, &fakeSubsRepo{}, "")
	att := attempt.New(storeType)

	out, err := p.Recognize(context.Background(), att, "/tmp/store.jpg", nil)
	require.NoError(t, err)
	assert.True(t, out.Matched)
	assert.Equal(t, constants.StoreCategoryZero, out.Category)
	assert.True(t, out.CanSubmit())
}

func TestRecognizeNoKeywordsIsNoCategoryNotError(t *testing.T) {
	jobs := newFakeJobsRepo()
	rec := stubRecognizer{res: recognize.Result{Text: "일반 편의점 영수증", Confidence: 0.7}}
	p := newTestPipeline(rec, jobs, &fakeSubsRepo{}, "")
	att := attempt.New(bikeType)

	out, err := p.Recognize(context.Background(), att, "/tmp/other.jpg", nil)
	require.NoError(t, err)
	assert.False(t, out.Matched)
	assert.False(t, out.CanSubmit())
	assert.Equal(t, "keywords not found, retake a clearer photo", out.Message())
	assert.Equal(t,
		[]constants.JobStatus{constants.JobStatusRecognizing, constants.JobStatusNoCategory},
		jobs.statuses[out.JobID])
}

func TestRecognizeEngineFailureMarksJobFailed(t *testing.T) {
	jobs := newFakeJobsRepo()
	engineErr := errors.New("tesseract: exit status 1")
	p := newTestPipeline(stubRecognizer{err: engineErr}, jobs, &fakeSubsRepo{}, "")
	att := attempt.New(bikeType)

	out, err := p.Recognize(context.Background(), att, "/tmp/corrupt.jpg", nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, attempt.StateFailed, att.State())
	require.Len(t, jobs.failures, 1)
}

func TestRecognizeDiscardsResultAfterClose(t *testing.T) {
	jobs := newFakeJobsRepo()
	att := attempt.New(bikeType)
	closing := closingRecognizer{att: att, res: recognize.Result{Text: "따릉이 이용거리 3.20km", Confidence: 0.9}}
	p := newTestPipeline(closing, jobs, &fakeSubsRepo{}, "")

	out, err := p.Recognize(context.Background(), att, "/tmp/receipt.jpg", nil)
	require.ErrorIs(t, err, common.ErrAttemptClosed)
	assert.Nil(t, out, "late results are dropped, not surfaced")

	require.Len(t, jobs.failures, 1)
	for _, msg := range jobs.failures {
		assert.Equal(t, "attempt closed during recognition", msg)
	}
	assert.Empty(t, att.Text())
}

// closingRecognizer closes the attempt while recognition is in flight.
type closingRecognizer struct {
	att *attempt.Attempt
	res recognize.Result
}

func (c closingRecognizer) Recognize(_ context.Context, _ string, _ recognize.ProgressFunc) (recognize.Result, error) {
	c.att.Close()
	return c.res, nil
}

func TestSubmitRefusesIncompleteFields(t *testing.T) {
	p := newTestPipeline(stubRecognizer{}, newFakeJobsRepo(), &fakeSubsRepo{}, "")
	att := attempt.New(bikeType)

	err := p.Submit(context.Background(), att, uuid.New(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing:")
}

func recognizedBikeAttempt(t *testing.T, p *Pipeline, jobs *fakeJobsRepo) (*attempt.Attempt, uuid.UUID) {
	t.Helper()
	att := attempt.New(bikeType)
	out, err := p.Recognize(context.Background(), att, "/tmp/receipt.jpg", nil)
	require.NoError(t, err)
	require.True(t, out.CanSubmit())
	return att, out.JobID
}

func TestSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	jobs := newFakeJobsRepo()
	subs := &fakeSubsRepo{}
	rec := stubRecognizer{res: recognize.Result{
		Text:       "따릉이 대여 07:10 반납 07:45 이용거리 3.20km 자전거번호 1029",
		Confidence: 0.9,
	}}
	p := newTestPipeline(rec, jobs, subs, srv.URL)
	att, jobID := recognizedBikeAttempt(t, p, jobs)

	require.NoError(t, p.Submit(context.Background(), att, jobID, nil))
	assert.Equal(t, attempt.StateSucceeded, att.State())
	assert.True(t, jobs.success[jobID])

	require.Len(t, subs.created, 1)
	sub := subs.created[0]
	assert.Equal(t, jobID, sub.JobID)
	assert.Equal(t, "/api/v1/verifications/bike", sub.Endpoint)
	assert.Equal(t, http.StatusOK, sub.HTTPStatus)

	var payload gate.BikePayload
	require.NoError(t, json.Unmarshal(sub.Payload, &payload))
	assert.Equal(t, int64(1029), payload.BikeNumber)
	assert.Equal(t, 3.2, payload.Distance)
}

func TestSubmitRejectionRecordsAndFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "already verified"})
	}))
	defer srv.Close()

	jobs := newFakeJobsRepo()
	subs := &fakeSubsRepo{}
	rec := stubRecognizer{res: recognize.Result{
		Text:       "따릉이 대여 07:10 반납 07:45 이용거리 3.20km 자전거번호 1029",
		Confidence: 0.9,
	}}
	p := newTestPipeline(rec, jobs, subs, srv.URL)
	att, jobID := recognizedBikeAttempt(t, p, jobs)

	err := p.Submit(context.Background(), att, jobID, nil)
	require.ErrorIs(t, err, common.ErrDuplicateSubmission)
	assert.Equal(t, attempt.StateFailed, att.State())
	assert.NotEmpty(t, jobs.failures[jobID])

	// the exchange is still recorded
	require.Len(t, subs.created, 1)
	assert.True(t, subs.created[0].Duplicate)
	assert.Equal(t, verifyapi.DuplicateMessage, subs.created[0].ResponseMessage)
}
