package ocr

import (
	"regexp"
	"strings"
)

var (
	reWon      = regexp.MustCompile(`[₩]\s*[\d,]+|[\d,]+\s*원`)
	reDistUnit = regexp.MustCompile(`\d+(\.\d+)?\s*km`)
	reEnergy   = regexp.MustCompile(`\d+(\.\d+)?\s*kwh`)
	reApproval = regexp.MustCompile(`승인\s*번호`)
	reClock    = regexp.MustCompile(`\b([01]?\d|2[0-3]):[0-5]\d\b`)
)

func hasWonPattern(s string) bool      { return reWon.MatchString(s) }
func hasDistancePattern(s string) bool { return reDistUnit.MatchString(s) }
func hasEnergyPattern(s string) bool   { return reEnergy.MatchString(s) }
func hasApprovalPattern(s string) bool { return reApproval.MatchString(s) }
func hasClockPattern(s string) bool    { return reClock.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common green-receipt artifacts (amounts, distances,
	// charge units, approval labels, times). Each adds a little.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasWonPattern(txtL) {
		score += 0.2
	}
	if hasDistancePattern(txtL) || hasEnergyPattern(txtL) {
		score += 0.2
	}
	if hasApprovalPattern(txt) {
		score += 0.15
	}
	if hasClockPattern(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
