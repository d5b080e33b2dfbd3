package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
)

var (
	bikeType   = constants.ActivityType{ID: constants.ActivityBike}
	chargeType = constants.ActivityType{ID: constants.ActivityCharge}
	storeType  = constants.ActivityType{ID: constants.ActivityStore}
)

func completeBikeFields() extract.Fields {
	return extract.Fields{
		DistanceKm: 3.2,
		BikeNumber: "1029",
		StartTime:  "07:10",
		EndTime:    "07:45",
	}
}

func TestMissingBike(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*extract.Fields)
		want   []string
	}{
		{"complete", func(f *extract.Fields) {}, nil},
		{"no distance", func(f *extract.Fields) { f.DistanceKm = 0 }, []string{FieldDistance}},
		{"no bike number", func(f *extract.Fields) { f.BikeNumber = "" }, []string{FieldBikeNumber}},
		{"no start", func(f *extract.Fields) { f.StartTime = "" }, []string{FieldStartTime}},
		{"no end", func(f *extract.Fields) { f.EndTime = "" }, []string{FieldEndTime}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeBikeFields()
			tt.mutate(&f)
			assert.Equal(t, tt.want, Missing(bikeType, f))
			assert.Equal(t, len(tt.want) == 0, CanSubmit(bikeType, f))
		})
	}
}

func TestMissingCharge(t *testing.T) {
	base := extract.Fields{ChargeAmountKwh: 25.4, StartTime: "10:00", EndTime: "11:30"}

	t.Run("amount satisfies the requirement", func(t *testing.T) {
		assert.Empty(t, Missing(chargeType, base))
	})
	t.Run("fee alone also satisfies it", func(t *testing.T) {
		f := base
		f.ChargeAmountKwh = 0
		f.ChargeFeeWon = 12000
		assert.Empty(t, Missing(chargeType, f))
	})
	t.Run("neither amount nor fee", func(t *testing.T) {
		f := base
		f.ChargeAmountKwh = 0
		assert.Equal(t, []string{FieldChargeAmount}, Missing(chargeType, f))
	})
	t.Run("everything missing", func(t *testing.T) {
		assert.Equal(t,
			[]string{FieldChargeAmount, FieldStartTime, FieldEndTime},
			Missing(chargeType, extract.Fields{}))
	})
}

func TestMissingStore(t *testing.T) {
	f := extract.Fields{PriceWon: 4500, MerchantName: "스타벅스 강남점", ApprovalNumber: "12345678"}
	assert.Empty(t, Missing(storeType, f))

	f.ApprovalNumber = ""
	assert.Equal(t, []string{FieldApprovalNo}, Missing(storeType, f))

	assert.Equal(t,
		[]string{FieldPrice, FieldMerchantName, FieldApprovalNo},
		Missing(storeType, extract.Fields{}))
}

func TestMissingUnknownActivity(t *testing.T) {
	got := Missing(constants.ActivityType{ID: "walk"}, extract.Fields{})
	assert.Equal(t, []string{"activity_type"}, got)
}

func TestIncompleteMessage(t *testing.T) {
	assert.Equal(t, "", IncompleteMessage(nil))
	assert.Equal(t, "missing: distance", IncompleteMessage([]string{FieldDistance}))
	assert.Equal(t, "missing: distance, end_time", IncompleteMessage([]string{FieldDistance, FieldEndTime}))
}

func TestBuildPayloadBike(t *testing.T) {
	p := BuildPayload(bikeType, completeBikeFields(), constants.StoreCategoryNone, nil)
	bike, ok := p.(BikePayload)
	require.True(t, ok)
	assert.Equal(t, int64(1029), bike.BikeNumber)
	assert.Equal(t, 3.2, bike.Distance)
	assert.Equal(t, "07:10", bike.StartTime)
	assert.Equal(t, "07:45", bike.EndTime)
	assert.Nil(t, bike.MemberChallengeID)
}

func TestBuildPayloadChargeAmountWins(t *testing.T) {
	f := extract.Fields{ChargeAmountKwh: 25.4, ChargeFeeWon: 12000, StartTime: "10:00", EndTime: "11:30"}
	p := BuildPayload(chargeType, f, constants.StoreCategoryNone, nil)
	charge, ok := p.(ChargePayload)
	require.True(t, ok)
	assert.Equal(t, 25.4, charge.ChargeAmount)
	assert.Equal(t, 0.0, charge.ChargeFee, "fee is dropped when the energy amount is present")
}

func TestBuildPayloadChargeFeeOnly(t *testing.T) {
	f := extract.Fields{ChargeFeeWon: 12000.456}
	p := BuildPayload(chargeType, f, constants.StoreCategoryNone, nil)
	charge := p.(ChargePayload)
	assert.Equal(t, 0.0, charge.ChargeAmount)
	assert.Equal(t, 12000.46, charge.ChargeFee)
}

func TestBuildPayloadStore(t *testing.T) {
	mcID := 42
	f := extract.Fields{PriceWon: 4500, MerchantName: "알맹상점", ApprovalNumber: "00123456"}
	p := BuildPayload(storeType, f, constants.StoreCategoryZero, &mcID)
	store, ok := p.(StorePayload)
	require.True(t, ok)
	assert.Equal(t, "zero", store.Category)
	assert.Equal(t, "알맹상점", store.Name)
	assert.Equal(t, 4500.0, store.Price)
	assert.Equal(t, int64(123456), store.ApproveNum)
	require.NotNil(t, store.MemberChallengeID)
	assert.Equal(t, 42, *store.MemberChallengeID)
}

func TestBuildPayloadDoesNotValidate(t *testing.T) {
	p := BuildPayload(bikeType, extract.Fields{}, constants.StoreCategoryNone, nil)
	bike := p.(BikePayload)
	assert.Equal(t, BikePayload{}, bike)
}

func TestBuildPayloadUnknownActivity(t *testing.T) {
	assert.Nil(t, BuildPayload(constants.ActivityType{ID: "walk"}, extract.Fields{}, constants.StoreCategoryNone, nil))
}
