package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenmap-app/greenmap-verify/constants"
)

var (
	bikeType = constants.ActivityType{
		ID:       constants.ActivityBike,
		Keywords: []string{"따릉이", "자전거"},
	}
	storeType = constants.ActivityType{
		ID:              constants.ActivityStore,
		Keywords:        []string{"제로웨이스트", "재활용"},
		RecycleKeywords: []string{"재활용", "리사이클"},
		ZeroKeywords:    []string{"제로웨이스트", "리필"},
	}
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   constants.ActivityType
		want bool
	}{
		{"keyword present", "따릉이 이용내역", bikeType, true},
		{"second keyword present", "공공 자전거 대여", bikeType, true},
		{"no keyword", "스타벅스 영수증", bikeType, false},
		{"empty text", "", bikeType, false},
		{"case insensitive latin", "KWH CHARGE", constants.ActivityType{ID: constants.ActivityCharge, Keywords: []string{"kwh"}}, true},
		{"no keywords configured", "따릉이", constants.ActivityType{ID: constants.ActivityBike}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.text, tt.at))
		})
	}
}

func TestStoreCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.StoreCategory
	}{
		{"recycle keyword", "재활용 센터 영수증", constants.StoreCategoryRecycle},
		{"zero keyword", "리필 스테이션", constants.StoreCategoryZero},
		{"recycle wins when both match", "재활용 리필 매장", constants.StoreCategoryRecycle},
		{"neither", "일반 편의점", constants.StoreCategoryNone},
		{"empty text", "", constants.StoreCategoryNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StoreCategory(tt.text, storeType))
		})
	}
}

func TestStoreCategoryIgnoresNonStoreTypes(t *testing.T) {
	assert.Equal(t, constants.StoreCategoryNone, StoreCategory("재활용", bikeType))
}
