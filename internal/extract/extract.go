package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/greenmap-app/greenmap-verify/constants"
)

// MaxPlausibleDistanceKm rejects obvious extraction noise (a transaction id
// read as a distance). Larger matches are treated as not-found.
const MaxPlausibleDistanceKm = 500

// Ordering matters: labeled patterns run before bare ones so that unrelated
// numbers on the receipt (transaction ids, card digits) don't win.
var (
	reDistanceLabeled = regexp.MustCompile(`(?i)(?:이용\s*거리|주행\s*거리|운동\s*거리|라이딩\s*거리)\s*[:：]?\s*([\d,]+(?:[.,]\d+)?)\s*(?:km|㎞)`)
	reDistanceBare    = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:km|㎞)`)

	reEnergyAmount = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:kwh|㎾h)`)

	reWonLabeled = regexp.MustCompile(`(?:결제\s*금액|승인\s*금액|충전\s*요금|판매\s*금액|합\s*계|총\s*액)\s*[:：]?\s*(?:₩\s*)?([\d,]+)\s*(?:원)?`)
	reWonBare    = regexp.MustCompile(`(?:₩\s*([\d,]+)|([\d,]+)\s*원)`)

	reApprovalNo = regexp.MustCompile(`(?i)(?:승인\s*번호|승인\s*NO|approval\s*(?:no\.?)?)\s*[:：.]?\s*(\d{6,16})`)
	reBikeNo     = regexp.MustCompile(`(?i)(?:자전거\s*(?:번호)?|대여\s*번호|기기\s*번호|rent(?:al)?\s*(?:no\.?)?)\s*[:：.]?\s*(\d{3,8})`)

	reMerchantLabeled = regexp.MustCompile(`(?:상호명?|가맹점명?|매장명)\s*[:：]?\s*(\S.*)`)
	// Labels and digit runs end the usable part of a heading line.
	reMerchantStop = regexp.MustCompile(`\s*(?:승인|결제|금액|카드|거래|일시|날짜|전화|대표|사업자|₩|\d{2,}).*$`)

	reDateTime  = regexp.MustCompile(`\d{4}[-./]\d{1,2}[-./]\d{1,2}[ T]?(?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?`)
	reClockOnly = regexp.MustCompile(`(?:^|[^\d:])((?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?)(?:[^\d:]|$)`)

	reDigitsOnly = regexp.MustCompile(`^[\d\s.,:\-₩원]*$`)
)

// Extract pulls the activity-relevant fields out of recognized receipt text.
// It is pure and idempotent; anything it cannot find stays zero-valued.
func Extract(text string, at constants.ActivityType) Fields {
	var f Fields
	if strings.TrimSpace(text) == "" {
		return f
	}

	switch at.ID {
	case constants.ActivityBike:
		f.DistanceKm = scanDistance(text)
		f.BikeNumber = scanLabeledDigits(text, reBikeNo)
		f.StartTime, f.EndTime = scanTimeWindow(text)
	case constants.ActivityCharge:
		f.ChargeAmountKwh = scanEnergy(text)
		f.ChargeFeeWon = scanWon(text)
		f.StartTime, f.EndTime = scanTimeWindow(text)
	case constants.ActivityStore:
		f.PriceWon = scanWon(text)
		f.ApprovalNumber = scanLabeledDigits(text, reApprovalNo)
		f.MerchantName = scanMerchant(text, f.PriceWon > 0 || f.ApprovalNumber != "")
	}
	return f
}

func scanDistance(text string) float64 {
	for _, re := range []*regexp.Regexp{reDistanceLabeled, reDistanceBare} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := parseNumber(m[1])
		if !ok || v <= 0 || v > MaxPlausibleDistanceKm {
			continue
		}
		return Round2(v)
	}
	return 0
}

func scanEnergy(text string) float64 {
	m := reEnergyAmount.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, ok := parseNumber(m[1])
	if !ok || v <= 0 {
		return 0
	}
	return Round2(v)
}

func scanWon(text string) float64 {
	if m := reWonLabeled.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok && v > 0 {
			return Round2(v)
		}
	}
	if m := reWonBare.FindStringSubmatch(text); m != nil {
		tok := m[1]
		if tok == "" {
			tok = m[2]
		}
		if v, ok := parseNumber(tok); ok && v > 0 {
			return Round2(v)
		}
	}
	return 0
}

func scanLabeledDigits(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func scanMerchant(text string, hasReceiptMarker bool) string {
	if m := reMerchantLabeled.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(reMerchantStop.ReplaceAllString(m[1], ""))
		if name != "" {
			return name
		}
	}
	// Top-of-receipt heuristic: the first line that still says something
	// after labels and digit runs are cut off. Only applied when another
	// receipt marker was found, so marker-free text stays fully empty.
	if !hasReceiptMarker {
		return ""
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || reDigitsOnly.MatchString(line) {
			continue
		}
		name := strings.TrimSpace(reMerchantStop.ReplaceAllString(line, ""))
		if name != "" && !reDigitsOnly.MatchString(name) {
			return name
		}
	}
	return ""
}

// scanTimeWindow looks for two datetime-like tokens bounding the activity.
// A lone token is ambiguous, so both bounds stay empty rather than guessing.
func scanTimeWindow(text string) (start, end string) {
	type stamp struct {
		raw string
		at  time.Time
	}
	var stamps []stamp

	for _, tok := range reDateTime.FindAllString(text, -1) {
		if t, ok := parseStamp(tok); ok {
			stamps = append(stamps, stamp{raw: tok, at: t})
		}
	}
	if len(stamps) < 2 {
		stamps = stamps[:0]
		for _, tok := range findClockTokens(text) {
			if t, ok := parseClock(tok); ok {
				stamps = append(stamps, stamp{raw: tok, at: t})
			}
		}
	}
	if len(stamps) < 2 {
		return "", ""
	}

	first, second := stamps[0], stamps[1]
	if second.at.Before(first.at) {
		first, second = second, first
	}
	return first.raw, second.raw
}

// findClockTokens collects bare HH:MM(:SS) tokens. The search resumes at the
// end of the captured token, not the whole match, so one boundary character
// can serve two adjacent tokens ("07:10 07:45").
func findClockTokens(text string) []string {
	var out []string
	for i := 0; i < len(text); {
		loc := reClockOnly.FindStringSubmatchIndex(text[i:])
		if loc == nil {
			break
		}
		out = append(out, text[i+loc[2]:i+loc[3]])
		i += loc[3]
	}
	return out
}

var stampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseStamp(tok string) (time.Time, bool) {
	norm := strings.NewReplacer(".", "-", "/", "-").Replace(tok)
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseClock(tok string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, tok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
