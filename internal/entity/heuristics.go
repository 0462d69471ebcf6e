// ABOUTME: Offline rule-based entity classifier; first matching rule wins
// ABOUTME: Order: empty, place words, acronym, company suffix, person name shape, single token, other

package entity

import (
	"regexp"
	"strings"
)

var (
	placeWords     = regexp.MustCompile(`\b(?:city|state|country|borough|bronx|nyc|new york)\b`)
	acronym        = regexp.MustCompile(`^[A-Z]{2,10}$`)
	companySuffix  = regexp.MustCompile(`\b(?:inc|corp|llc|ltd|company)\b|\bco\.`)
	personNameLike = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)+$`)
)

// Heuristic classifies entity text without calling any model.
func Heuristic(entity string) Classification {
	s := strings.TrimSpace(entity)
	if s == "" {
		return Classification{Label: LabelOther, Confidence: 0.0}
	}

	low := strings.ToLower(s)
	switch {
	case placeWords.MatchString(low):
		return Classification{Label: LabelPlace, Confidence: 0.80}
	case acronym.MatchString(strings.ReplaceAll(s, " ", "")):
		return Classification{Label: LabelOrganization, Confidence: 0.70}
	case companySuffix.MatchString(low):
		return Classification{Label: LabelCompany, Confidence: 0.85}
	case personNameLike.MatchString(s):
		return Classification{Label: LabelPerson, Confidence: 0.70}
	case len(strings.Fields(s)) == 1:
		return Classification{Label: LabelProduct, Confidence: 0.60}
	default:
		return Classification{Label: LabelOther, Confidence: 0.50}
	}
}
