package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
)

var (
	bikeType = constants.ActivityType{
		ID:       constants.ActivityBike,
		Label:    "자전거 이용",
		Keywords: []string{"따릉이", "자전거"},
	}
	chargeType = constants.ActivityType{
		ID:       constants.ActivityCharge,
		Label:    "충전",
		Keywords: []string{"충전", "kwh"},
	}
	storeType = constants.ActivityType{
		ID:              constants.ActivityStore,
		Label:           "매장",
		Keywords:        []string{"제로웨이스트"},
		RecycleKeywords: []string{"재활용"},
		ZeroKeywords:    []string{"스타벅스"},
	}
)

func TestExtractDistance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"labeled with space", "이용거리 12.34km", 12.34},
		{"labeled with colon", "이용거리: 7.5km", 7.5},
		{"labeled no space before unit", "주행거리 3.20km", 3.2},
		{"bare token", "오늘 3.20km 주행", 3.2},
		{"comma decimal from ocr", "이용거리 12,3km", 12.3},
		{"prefers labeled over unrelated number", "거래 123456 이용거리 2.50km", 2.5},
		{"implausibly large is noise", "이용거리 1200km", 0},
		{"no distance token", "영수증 내용 없음", 0},
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text, bikeType)
			assert.Equal(t, tt.want, f.DistanceKm)
		})
	}
}

func TestExtractBikeNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"label and number", "자전거번호 1029", "1029"},
		{"rental label", "대여번호: 00412", "00412"},
		{"latin label", "RENT NO. 5512", "5512"},
		{"no label", "번호 없는 텍스트 1029", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text, bikeType)
			assert.Equal(t, tt.want, f.BikeNumber)
		})
	}
}

func TestExtractTimeWindow(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart string
		wantEnd   string
	}{
		{"two clock tokens", "대여 07:10 반납 07:45", "07:10", "07:45"},
		{"adjacent clock tokens", "07:10 07:45", "07:10", "07:45"},
		{"single space between labeled tokens", "대여 07:10 07:45 반납", "07:10", "07:45"},
		{"reversed order is sorted", "반납 07:45 대여 07:10", "07:10", "07:45"},
		{"full datetimes", "시작 2023-05-01 14:00 종료 2023-05-01 16:30", "2023-05-01 14:00", "2023-05-01 16:30"},
		{"single token leaves both empty", "대여 07:10", "", ""},
		{"no tokens", "텍스트만 있음", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text, bikeType)
			assert.Equal(t, tt.wantStart, f.StartTime)
			assert.Equal(t, tt.wantEnd, f.EndTime)
		})
	}
}

func TestExtractChargeAmounts(t *testing.T) {
	t.Run("energy and fee are independent scans", func(t *testing.T) {
		f := Extract("충전량 25.4kWh 결제금액 12,000원 시작 10:00 종료 11:30", chargeType)
		assert.Equal(t, 25.4, f.ChargeAmountKwh)
		assert.Equal(t, 12000.0, f.ChargeFeeWon)
	})
	t.Run("fee only", func(t *testing.T) {
		f := Extract("충전 요금 8,500원", chargeType)
		assert.Equal(t, 0.0, f.ChargeAmountKwh)
		assert.Equal(t, 8500.0, f.ChargeFeeWon)
	})
	t.Run("energy only", func(t *testing.T) {
		f := Extract("충전량 31.07 kWh", chargeType)
		assert.Equal(t, 31.07, f.ChargeAmountKwh)
		assert.Equal(t, 0.0, f.ChargeFeeWon)
	})
	t.Run("won symbol", func(t *testing.T) {
		f := Extract("₩ 9,900 결제 완료", chargeType)
		assert.Equal(t, 9900.0, f.ChargeFeeWon)
	})
}

func TestExtractStoreFields(t *testing.T) {
	t.Run("labeled merchant name", func(t *testing.T) {
		f := Extract("상호: 알맹상점 서울점\n결제금액 15,000원", storeType)
		assert.Equal(t, "알맹상점 서울점", f.MerchantName)
		assert.Equal(t, 15000.0, f.PriceWon)
	})
	t.Run("top line heuristic", func(t *testing.T) {
		f := Extract("스타벅스 강남점 승인번호 12345678 결제금액 4,500원", storeType)
		assert.Contains(t, f.MerchantName, "스타벅스")
		assert.Equal(t, "12345678", f.ApprovalNumber)
		assert.Equal(t, 4500.0, f.PriceWon)
	})
	t.Run("approval number keeps leading zeros", func(t *testing.T) {
		f := Extract("승인번호: 00123456", storeType)
		assert.Equal(t, "00123456", f.ApprovalNumber)
	})
}

func TestExtractNeverPanicsAndIsIdempotent(t *testing.T) {
	texts := []string{
		"",
		"\n\n\n",
		"의미 없는 텍스트 qwerty",
		"스타벅스 강남점 승인번호 12345678 결제금액 4,500원",
		"따릉이 이용내역 대여 07:10 반납 07:45 이용거리 3.20km 자전거번호 1029",
	}
	types := []constants.ActivityType{bikeType, chargeType, storeType}
	for _, text := range texts {
		for _, at := range types {
			first := Extract(text, at)
			second := Extract(text, at)
			assert.Equal(t, first, second, "extract must be idempotent for %q/%s", text, at.ID)
		}
	}
}

func TestExtractNoMarkersYieldsEmptyFields(t *testing.T) {
	texts := []string{
		"asdf qwer zxcv",
		"lorem ipsum nothing relevant",
		"영수증 없음 흐림",
	}
	for _, text := range texts {
		for _, at := range []constants.ActivityType{bikeType, chargeType, storeType} {
			f := Extract(text, at)
			assert.Equal(t, Fields{}, f, "%q / activity %s", text, at.ID)
		}
	}
}

func TestExtractMerchantNeedsAnotherMarker(t *testing.T) {
	t.Run("heading alone is not a merchant", func(t *testing.T) {
		f := Extract("스타벅스 강남점", storeType)
		assert.Empty(t, f.MerchantName)
	})
	t.Run("price unlocks the heading heuristic", func(t *testing.T) {
		f := Extract("스타벅스 강남점\n결제금액 4,500원", storeType)
		assert.Equal(t, "스타벅스 강남점", f.MerchantName)
	})
	t.Run("approval number unlocks it too", func(t *testing.T) {
		f := Extract("스타벅스 강남점\n승인번호 12345678", storeType)
		assert.Equal(t, "스타벅스 강남점", f.MerchantName)
	})
	t.Run("labeled merchant needs no other marker", func(t *testing.T) {
		f := Extract("상호: 알맹상점 서울점", storeType)
		assert.Equal(t, "알맹상점 서울점", f.MerchantName)
	})
}

func TestExtractBikeScenario(t *testing.T) {
	text := "따릉이 이용내역 대여 07:10 반납 07:45 이용거리 3.20km 자전거번호 1029"
	f := Extract(text, bikeType)

	require.Equal(t, 3.2, f.DistanceKm)
	require.Equal(t, "1029", f.BikeNumber)
	require.Equal(t, "07:10", f.StartTime)
	require.Equal(t, "07:45", f.EndTime)
}
