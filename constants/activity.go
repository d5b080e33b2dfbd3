package constants

import (
	"strings"
)

// ActivityID identifies one of the app's green-behavior categories.
type ActivityID string

const (
	// ActivityBike is public bicycle rental (distance-based).
	ActivityBike ActivityID = "bike"
	// ActivityCharge is EV or hydrogen charging (amount- or fee-based).
	ActivityCharge ActivityID = "ev"
	// ActivityStore is a zero-waste or recycling store purchase.
	ActivityStore ActivityID = "z"
)

// CarTypeHydrogen marks a charge-type activity as hydrogen rather than EV.
const CarTypeHydrogen = "H"

// StoreCategory is the detected sub-category for store-type receipts.
type StoreCategory string

// Stable values (these exact strings go into submission payloads).
const (
	StoreCategoryRecycle StoreCategory = "recycle"
	StoreCategoryZero    StoreCategory = "zero"
	StoreCategoryNone    StoreCategory = ""
)

// ActivityType is one entry of the static activity catalog. Loaded once at
// startup and never mutated afterwards.
type ActivityType struct {
	ID              ActivityID `json:"id"`
	Label           string     `json:"label"`
	Icon            string     `json:"icon,omitempty"`
	Color           string     `json:"color,omitempty"`
	Description     string     `json:"description,omitempty"`
	CarType         string     `json:"carType,omitempty"`
	Keywords        []string   `json:"keywords"`
	ZeroKeywords    []string   `json:"zeroKeywords,omitempty"`
	RecycleKeywords []string   `json:"recycleKeywords,omitempty"`
}

// IsHydrogen reports whether a charge-type entry refers to hydrogen charging.
func (a ActivityType) IsHydrogen() bool {
	return a.ID == ActivityCharge && a.CarType == CarTypeHydrogen
}

var defaultActivityTypes = []ActivityType{
	{
		ID:          ActivityBike,
		Label:       "자전거 이용",
		Icon:        "bike",
		Color:       "#2AC1BC",
		Description: "공공자전거 이용내역 인증",
		Keywords:    []string{"따릉이", "자전거", "대여", "타슈", "타랑께"},
	},
	{
		ID:          ActivityCharge,
		Label:       "전기/수소차 충전",
		Icon:        "charge",
		Color:       "#3C82F6",
		Description: "전기차·수소차 충전 영수증 인증",
		Keywords:    []string{"충전", "kwh", "전기차", "수소", "급속", "완속"},
	},
	{
		ID:              ActivityStore,
		Label:           "친환경 매장",
		Icon:            "store",
		Color:           "#22A06B",
		Description:     "제로웨이스트/재활용 매장 결제 인증",
		Keywords:        []string{"제로웨이스트", "재활용"},
		RecycleKeywords: []string{"재활용", "리사이클", "녹색가게", "새활용"},
		ZeroKeywords:    []string{"제로웨이스트", "리필", "알맹상점", "무포장"},
	},
}

// DefaultActivityTypes returns a copy of the compiled-in catalog. Callers may
// replace it with a file-based catalog at startup.
func DefaultActivityTypes() []ActivityType {
	out := make([]ActivityType, len(defaultActivityTypes))
	copy(out, defaultActivityTypes)
	return out
}

// ActivityIDs lists the stable activity identifiers.
func ActivityIDs() []string {
	ids := make([]string, len(defaultActivityTypes))
	for i, a := range defaultActivityTypes {
		ids[i] = string(a.ID)
	}
	return ids
}

// CanonicalizeActivityID maps loose user/API input onto a known ActivityID.
func CanonicalizeActivityID(input string) (ActivityID, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]ActivityID{
		"bicycle":  ActivityBike,
		"따릉이":      ActivityBike,
		"electric": ActivityCharge,
		"h2":       ActivityCharge,
		"hydrogen": ActivityCharge,
		"charge":   ActivityCharge,
		"store":    ActivityStore,
		"zero":     ActivityStore,
		"recycle":  ActivityStore,
	}

	if id, ok := synonyms[normalized]; ok {
		return id, true
	}

	for _, a := range defaultActivityTypes {
		if normalized == strings.ToLower(string(a.ID)) {
			return a.ID, true
		}
	}

	return "", false
}
