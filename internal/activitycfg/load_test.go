package activitycfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity_types.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	catalog, err := Load("", nil)
	require.NoError(t, err)
	assert.Len(t, catalog, 3)

	bike, ok := Find(catalog, constants.ActivityBike)
	require.True(t, ok)
	assert.NotEmpty(t, bike.Keywords)
}

func TestLoadValidCatalog(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "bike", "label": "자전거", "keywords": ["따릉이"]},
		{"id": "ev", "label": "수소차 충전", "carType": "H", "keywords": ["충전"]},
		{"id": "z", "label": "매장", "keywords": ["재활용"], "recycleKeywords": ["재활용"], "zeroKeywords": ["리필"]}
	]`)

	catalog, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, catalog, 3)

	charge, ok := Find(catalog, constants.ActivityCharge)
	require.True(t, ok)
	assert.True(t, charge.IsHydrogen())

	store, ok := Find(catalog, constants.ActivityStore)
	require.True(t, ok)
	assert.Equal(t, []string{"리필"}, store.ZeroKeywords)
}

func TestLoadRejectsUnknownActivityID(t *testing.T) {
	path := writeCatalog(t, `[{"id": "walk", "label": "걷기", "keywords": ["산책"]}]`)

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	path := writeCatalog(t, `[{"id": "bike", "keywords": ["따릉이"]}]`)

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoadRejectsUnknownProperty(t *testing.T) {
	path := writeCatalog(t, `[{"id": "bike", "label": "자전거", "keywords": ["따릉이"], "points": 30}]`)

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read activity catalog")
}

func TestFindMiss(t *testing.T) {
	_, ok := Find(constants.DefaultActivityTypes(), "walk")
	assert.False(t, ok)
}
