package extract

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber converts a matched numeric token to a float64. It tolerates
// thousands separators, stray currency/unit markers and comma decimals;
// failed parses report ok=false, never an error.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "₩원 ")
	if s == "" {
		return 0, false
	}
	// "1,234" is a thousands separator; "12,3" is an OCR'd decimal comma.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		parts := strings.Split(s, ",")
		grouped := true
		for i, p := range parts {
			if i > 0 && len(p) != 3 {
				grouped = false
				break
			}
		}
		if grouped {
			s = strings.Join(parts, "")
		} else if len(parts) == 2 {
			s = parts[0] + "." + parts[1]
		} else {
			return 0, false
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Round2 rounds to two decimal places, the precision used in payloads.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
