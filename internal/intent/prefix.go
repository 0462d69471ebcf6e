// ABOUTME: Deterministic command routing: summarize:, todos:, "extract todos from", rewrite:
// ABOUTME: Case-insensitive; first match wins; the trimmed remainder is the file path

package intent

import (
	"regexp"
	"strings"
)

// prefixRule is one colon command such as "todos:".
type prefixRule struct {
	prefix string
	action Action
}

var (
	summarizeRule = prefixRule{"summarize:", ActionSummarize}
	todosRule     = prefixRule{"todos:", ActionTodos}
	rewriteRule   = prefixRule{"rewrite:", ActionRewrite}

	extractTodosPhrase = regexp.MustCompile(`(?i)extract todos from`)
)

func (r prefixRule) match(text string) (string, bool) {
	if len(text) < len(r.prefix) || !strings.EqualFold(text[:len(r.prefix)], r.prefix) {
		return "", false
	}
	return strings.TrimSpace(text[len(r.prefix):]), true
}

func (r prefixRule) decision(path string) Decision {
	if path == "" {
		return Decision{Source: SourcePrefix, Error: "Missing file path after " + r.prefix}
	}
	return Decision{Action: r.action, FilePath: path, Source: SourcePrefix}
}

// MatchPrefix applies the deterministic rules to already-trimmed text.
// The phrase rule is checked after todos: and before rewrite:.
func MatchPrefix(text string) (Decision, bool) {
	for _, r := range []prefixRule{summarizeRule, todosRule} {
		if path, ok := r.match(text); ok {
			return r.decision(path), true
		}
	}

	if loc := extractTodosPhrase.FindStringIndex(text); loc != nil {
		path := strings.TrimSpace(text[loc[1]:])
		if path == "" {
			return Decision{Source: SourcePrefix, Error: "Missing file path after 'extract todos from'"}, true
		}
		return Decision{Action: ActionTodos, FilePath: path, Source: SourcePrefix}, true
	}

	if path, ok := rewriteRule.match(text); ok {
		return rewriteRule.decision(path), true
	}
	return Decision{}, false
}
