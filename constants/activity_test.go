package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeActivityID(t *testing.T) {
	tests := []struct {
		in     string
		want   ActivityID
		wantOK bool
	}{
		{"bike", ActivityBike, true},
		{"BIKE", ActivityBike, true},
		{" bicycle ", ActivityBike, true},
		{"따릉이", ActivityBike, true},
		{"ev", ActivityCharge, true},
		{"hydrogen", ActivityCharge, true},
		{"h2", ActivityCharge, true},
		{"z", ActivityStore, true},
		{"store", ActivityStore, true},
		{"recycle", ActivityStore, true},
		{"walk", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalizeActivityID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultActivityTypes(t *testing.T) {
	catalog := DefaultActivityTypes()
	require.Len(t, catalog, 3)

	ids := ActivityIDs()
	assert.Equal(t, []string{"bike", "ev", "z"}, ids)

	for _, at := range catalog {
		assert.NotEmpty(t, at.Label, "activity %s", at.ID)
		assert.NotEmpty(t, at.Keywords, "activity %s", at.ID)
	}
}

func TestIsHydrogen(t *testing.T) {
	assert.True(t, ActivityType{ID: ActivityCharge, CarType: CarTypeHydrogen}.IsHydrogen())
	assert.False(t, ActivityType{ID: ActivityCharge}.IsHydrogen())
	assert.False(t, ActivityType{ID: ActivityBike, CarType: CarTypeHydrogen}.IsHydrogen())
}
