// ABOUTME: Defensive JSON object extraction from free-form model replies
// ABOUTME: Strips <think> reasoning blocks, then decodes the first-brace..last-brace span

package intent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	thinkBlock  = regexp.MustCompile(`(?s)<think>.*?</think>`)
	thinkMarker = "<think>"
)

// ParseError reports a model reply that holds no decodable JSON object.
type ParseError struct {
	Raw    string // reply as received
	Reason string
	Err    error // decoding error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// StripReasoning removes <think>...</think> blocks (across lines) and any
// unpaired <think> marker, then trims whitespace.
func StripReasoning(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(thinkBlock.ReplaceAllString(s, ""))
	s = strings.ReplaceAll(s, thinkMarker, "")
	return strings.TrimSpace(s)
}

// ExtractJSONObject decodes the span from the first '{' to the last '}' of
// the reasoning-stripped reply.
func ExtractJSONObject(raw string) (map[string]any, error) {
	s := StripReasoning(raw)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, &ParseError{Raw: raw, Reason: fmt.Sprintf("no JSON object found in: %s", s)}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(s[start:end+1]), &obj); err != nil {
		return nil, &ParseError{Raw: raw, Reason: "invalid JSON object", Err: err}
	}
	return obj, nil
}
