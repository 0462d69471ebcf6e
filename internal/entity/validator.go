// ABOUTME: Validator agent: the heuristic classifier behind a result-or-error contract
// ABOUTME: Never calls the model; used standalone and as a cross-check for classify_text

package entity

import "strings"

// Validation is the validator's outcome. Exactly one of Parsed and Error is set.
type Validation struct {
	Parsed *Classification `json:"parsed,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Validate classifies entity heuristically. Blank input is "Missing entity".
func Validate(entity string) Validation {
	s := strings.TrimSpace(entity)
	if s == "" {
		return Validation{Error: "Missing entity"}
	}
	c := Heuristic(s)
	return Validation{Parsed: &c}
}
