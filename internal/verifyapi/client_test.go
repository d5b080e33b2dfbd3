package verifyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/gate"
)

var (
	bikeType     = constants.ActivityType{ID: constants.ActivityBike}
	evType       = constants.ActivityType{ID: constants.ActivityCharge}
	hydrogenType = constants.ActivityType{ID: constants.ActivityCharge, CarType: constants.CarTypeHydrogen}
	storeType    = constants.ActivityType{ID: constants.ActivityStore}
)

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "/api/v1/verifications/bike", Endpoint(bikeType))
	assert.Equal(t, "/api/v1/verifications/ev", Endpoint(evType))
	assert.Equal(t, "/api/v1/verifications/h2", Endpoint(hydrogenType))
	assert.Equal(t, "/api/v1/verifications/store", Endpoint(storeType))
	assert.Equal(t, "", Endpoint(constants.ActivityType{ID: "walk"}))
}

func TestSubmitSuccess(t *testing.T) {
	var gotPath string
	var gotBody gate.BikePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "인증 완료"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	payload := gate.BikePayload{BikeNumber: 1029, Distance: 3.2, StartTime: "07:10", EndTime: "07:45"}

	resp, err := c.Submit(context.Background(), bikeType, payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "인증 완료", resp.Message)
	assert.False(t, resp.Duplicate)
	assert.Equal(t, "/api/v1/verifications/bike", gotPath)
	assert.Equal(t, payload, gotBody)
}

func TestSubmitDuplicateByStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "already verified"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	resp, err := c.Submit(context.Background(), bikeType, gate.BikePayload{})
	require.ErrorIs(t, err, common.ErrDuplicateSubmission)
	require.NotNil(t, resp)
	assert.True(t, resp.Duplicate)
	assert.Equal(t, DuplicateMessage, resp.Message, "backend wording is replaced for duplicates")
}

func TestSubmitDuplicateByCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "duplicate", "message": "dup"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	resp, err := c.Submit(context.Background(), storeType, gate.StorePayload{})
	require.ErrorIs(t, err, common.ErrDuplicateSubmission)
	assert.True(t, resp.Duplicate)
}

func TestSubmitRejectionKeepsBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "거리 값이 올바르지 않습니다"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	resp, err := c.Submit(context.Background(), bikeType, gate.BikePayload{})
	require.ErrorIs(t, err, common.ErrSubmissionRejected)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "거리 값이 올바르지 않습니다", resp.Message)
	assert.False(t, resp.Duplicate)
}

func TestSubmitRejectionWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	resp, err := c.Submit(context.Background(), bikeType, gate.BikePayload{})
	require.ErrorIs(t, err, common.ErrSubmissionRejected)
	assert.Equal(t, "verification failed (status 500)", resp.Message)
}

func TestSubmitUnknownActivity(t *testing.T) {
	c := NewClient("http://localhost:1", time.Second, nil)
	_, err := c.Submit(context.Background(), constants.ActivityType{ID: "walk"}, nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}
