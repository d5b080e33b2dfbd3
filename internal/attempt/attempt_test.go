package attempt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
)

var bikeType = constants.ActivityType{ID: constants.ActivityBike, Keywords: []string{"따릉이"}}

func TestHappyPathTransitions(t *testing.T) {
	a := New(bikeType)
	assert.Equal(t, StateIdle, a.State())

	require.NoError(t, a.SelectPhoto("/tmp/receipt.jpg"))
	assert.Equal(t, StatePhotoSelected, a.State())
	assert.Equal(t, "/tmp/receipt.jpg", a.ImagePath())

	require.NoError(t, a.Transition(StateRecognizing))
	ok := a.SetRecognition("따릉이 이용내역", 0.92, extract.Fields{DistanceKm: 3.2}, constants.StoreCategoryNone)
	require.True(t, ok)
	assert.Equal(t, StateRecognized, a.State())
	assert.Equal(t, float32(0.92), a.Confidence())
	assert.Equal(t, 3.2, a.Fields().DistanceKm)

	require.NoError(t, a.Transition(StateSubmitting))
	require.NoError(t, a.Transition(StateSucceeded))
	assert.Equal(t, StateSucceeded, a.State())
}

func TestIllegalTransitions(t *testing.T) {
	a := New(bikeType)

	err := a.Transition(StateSubmitting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal transition")
	assert.Equal(t, StateIdle, a.State(), "failed transition must not move the state")

	require.NoError(t, a.SelectPhoto("/tmp/receipt.jpg"))
	assert.Error(t, a.Transition(StateSucceeded))
}

func TestRetryAfterFailure(t *testing.T) {
	a := New(bikeType)
	require.NoError(t, a.SelectPhoto("/tmp/first.jpg"))
	require.NoError(t, a.Transition(StateRecognizing))
	require.NoError(t, a.Transition(StateFailed))

	// Failed -> PhotoSelected is the retry edge; the accumulator resets.
	require.NoError(t, a.SelectPhoto("/tmp/second.jpg"))
	assert.Equal(t, StatePhotoSelected, a.State())
	assert.Equal(t, "/tmp/second.jpg", a.ImagePath())
	assert.Empty(t, a.Text())
	assert.Equal(t, extract.Fields{}, a.Fields())
}

func TestSelectPhotoMidFlightResets(t *testing.T) {
	a := New(bikeType)
	require.NoError(t, a.SelectPhoto("/tmp/first.jpg"))
	require.NoError(t, a.Transition(StateRecognizing))
	ok := a.SetRecognition("text", 0.8, extract.Fields{BikeNumber: "1029"}, constants.StoreCategoryNone)
	require.True(t, ok)

	require.NoError(t, a.SelectPhoto("/tmp/second.jpg"))
	assert.Equal(t, StatePhotoSelected, a.State())
	assert.Empty(t, a.Text())
	assert.Equal(t, float32(0), a.Confidence())
	assert.Equal(t, extract.Fields{}, a.Fields())
}

func TestCloseDiscardsLateRecognition(t *testing.T) {
	a := New(bikeType)
	require.NoError(t, a.SelectPhoto("/tmp/receipt.jpg"))
	require.NoError(t, a.Transition(StateRecognizing))

	a.Close()
	require.True(t, a.Closed())

	ok := a.SetRecognition("late result", 0.99, extract.Fields{DistanceKm: 9.9}, constants.StoreCategoryNone)
	assert.False(t, ok, "results arriving after close must be dropped")
	assert.Empty(t, a.Text())
	assert.Equal(t, extract.Fields{}, a.Fields())
	assert.Equal(t, StateIdle, a.State())
}

func TestClosedAttemptRejectsMutation(t *testing.T) {
	a := New(bikeType)
	a.Close()

	assert.Error(t, a.SelectPhoto("/tmp/receipt.jpg"))
	assert.Error(t, a.Transition(StatePhotoSelected))
}

func TestSetRecognitionRequiresRecognizing(t *testing.T) {
	a := New(bikeType)
	require.NoError(t, a.SelectPhoto("/tmp/receipt.jpg"))

	ok := a.SetRecognition("text", 0.5, extract.Fields{}, constants.StoreCategoryNone)
	assert.False(t, ok)
	assert.Equal(t, StatePhotoSelected, a.State())
}
