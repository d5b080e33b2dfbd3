// Package classify decides whether recognized receipt text belongs to an
// activity category. Matching is case-insensitive substring only; tolerance
// for OCR noise is the keyword catalog's job, not this algorithm's.
package classify

import (
	"strings"

	"github.com/greenmap-app/greenmap-verify/constants"
)

// Matches reports whether any of the activity's keywords occur in the text.
// This is the gate between "recognized successfully" and "retake the photo"
// for bike and charge activities.
func Matches(text string, at constants.ActivityType) bool {
	return containsAny(text, at.Keywords)
}

// StoreCategory disambiguates store-type receipts. Recycle keywords are
// checked first and win when both sets match.
func StoreCategory(text string, at constants.ActivityType) constants.StoreCategory {
	if at.ID != constants.ActivityStore {
		return constants.StoreCategoryNone
	}
	if containsAny(text, at.RecycleKeywords) {
		return constants.StoreCategoryRecycle
	}
	if containsAny(text, at.ZeroKeywords) {
		return constants.StoreCategoryZero
	}
	return constants.StoreCategoryNone
}

func containsAny(text string, keywords []string) bool {
	if text == "" || len(keywords) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
