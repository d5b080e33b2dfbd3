package extract

// Fields is the accumulator for one verification attempt. Zero values mean
// "not found": extraction degrades to partial results and never fails
// outright; completeness is judged later by the submission gate.
type Fields struct {
	DistanceKm      float64 `json:"distance_km,omitempty"`
	ChargeAmountKwh float64 `json:"charge_amount_kwh,omitempty"`
	ChargeFeeWon    float64 `json:"charge_fee_won,omitempty"`
	PriceWon        float64 `json:"price_won,omitempty"`
	ApprovalNumber  string  `json:"approval_number,omitempty"`
	BikeNumber      string  `json:"bike_number,omitempty"`
	MerchantName    string  `json:"merchant_name,omitempty"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
}
