// Package gate decides whether an extraction attempt carries enough data to
// submit, and shapes the per-activity payload for the verification API.
package gate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
)

// Payload field names reported back to the user when absent.
const (
	FieldDistance     = "distance"
	FieldBikeNumber   = "bike_number"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldChargeAmount = "charge_amount_or_fee"
	FieldPrice        = "price"
	FieldMerchantName = "merchant_name"
	FieldApprovalNo   = "approval_number"
)

// BikePayload matches the verification endpoint's bike-rental body.
type BikePayload struct {
	BikeNumber        int64   `json:"bike_number"`
	Distance          float64 `json:"distance"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	MemberChallengeID *int    `json:"memberChallengeId,omitempty"`
}

// ChargePayload matches the EV/H2 charging body. Exactly one of
// ChargeAmount/ChargeFee is non-zero: the energy amount wins when both were
// extracted.
type ChargePayload struct {
	ChargeAmount      float64 `json:"chargeAmount"`
	ChargeFee         float64 `json:"chargeFee"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	MemberChallengeID *int    `json:"memberChallengeId,omitempty"`
}

// StorePayload matches the zero-waste/recycling purchase body.
type StorePayload struct {
	Category          string  `json:"category"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	ApproveNum        int64   `json:"approveNum"`
	MemberChallengeID *int    `json:"memberChallengeId,omitempty"`
}

// Missing returns exactly the required fields absent from the extraction,
// per activity type. Empty result means the attempt is submittable.
func Missing(at constants.ActivityType, f extract.Fields) []string {
	var missing []string
	switch at.ID {
	case constants.ActivityBike:
		if f.DistanceKm <= 0 {
			missing = append(missing, FieldDistance)
		}
		if f.BikeNumber == "" {
			missing = append(missing, FieldBikeNumber)
		}
		if f.StartTime == "" {
			missing = append(missing, FieldStartTime)
		}
		if f.EndTime == "" {
			missing = append(missing, FieldEndTime)
		}
	case constants.ActivityCharge:
		if f.ChargeAmountKwh <= 0 && f.ChargeFeeWon <= 0 {
			missing = append(missing, FieldChargeAmount)
		}
		if f.StartTime == "" {
			missing = append(missing, FieldStartTime)
		}
		if f.EndTime == "" {
			missing = append(missing, FieldEndTime)
		}
	case constants.ActivityStore:
		if f.PriceWon <= 0 {
			missing = append(missing, FieldPrice)
		}
		if f.MerchantName == "" {
			missing = append(missing, FieldMerchantName)
		}
		if f.ApprovalNumber == "" {
			missing = append(missing, FieldApprovalNo)
		}
	default:
		missing = append(missing, "activity_type")
	}
	return missing
}

// CanSubmit reports whether every required field for the activity is present.
func CanSubmit(at constants.ActivityType, f extract.Fields) bool {
	return len(Missing(at, f)) == 0
}

// IncompleteMessage renders the user-facing "missing: ..." line. The client
// computes this itself instead of waiting for the backend to enumerate it.
func IncompleteMessage(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("missing: %s", strings.Join(missing, ", "))
}

// BuildPayload shapes the request body for the verification endpoint. It does
// not validate: an incomplete extraction yields a zeroed payload, which the
// backend is expected to reject. Numeric fields are rounded to 2 decimals.
func BuildPayload(at constants.ActivityType, f extract.Fields, category constants.StoreCategory, memberChallengeID *int) any {
	switch at.ID {
	case constants.ActivityBike:
		return BikePayload{
			BikeNumber:        digitsToInt(f.BikeNumber),
			Distance:          extract.Round2(f.DistanceKm),
			StartTime:         f.StartTime,
			EndTime:           f.EndTime,
			MemberChallengeID: memberChallengeID,
		}
	case constants.ActivityCharge:
		amount := extract.Round2(f.ChargeAmountKwh)
		fee := extract.Round2(f.ChargeFeeWon)
		if amount > 0 {
			fee = 0
		}
		return ChargePayload{
			ChargeAmount:      amount,
			ChargeFee:         fee,
			StartTime:         f.StartTime,
			EndTime:           f.EndTime,
			MemberChallengeID: memberChallengeID,
		}
	case constants.ActivityStore:
		return StorePayload{
			Category:          string(category),
			Name:              f.MerchantName,
			Price:             extract.Round2(f.PriceWon),
			ApproveNum:        digitsToInt(f.ApprovalNumber),
			MemberChallengeID: memberChallengeID,
		}
	default:
		return nil
	}
}

func digitsToInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
