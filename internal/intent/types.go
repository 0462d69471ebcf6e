// ABOUTME: Routing types: the Action enum, where a decision came from, and the Decision record
// ABOUTME: A Decision carries either an action (plus optional file path) or a user-facing error

package intent

// Action is the downstream branch chosen for a request.
type Action string

const (
	ActionSummarize    Action = "summarize"
	ActionTodos        Action = "todos"
	ActionRewrite      Action = "rewrite"
	ActionClassifyText Action = "classify_text"
)

// Actions lists every valid action in declaration order.
var Actions = []Action{ActionSummarize, ActionTodos, ActionRewrite, ActionClassifyText}

// ParseAction maps an exact action name to its Action.
func ParseAction(s string) (Action, bool) {
	for _, a := range Actions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// IsFileAction reports whether the action is served by the file agent.
func (a Action) IsFileAction() bool {
	return a == ActionSummarize || a == ActionTodos || a == ActionRewrite
}

// Source records how a decision was reached.
type Source string

const (
	SourcePrefix   Source = "prefix"   // deterministic command prefix
	SourceModel    Source = "model"    // model intent JSON
	SourceFallback Source = "fallback" // unparseable model reply, defaulted to classify_text
	SourceInput    Source = "input"    // rejected before any routing
)

// Decision is the router's verdict for one request. Exactly one of Action
// and Error is set.
type Decision struct {
	Action   Action `json:"action,omitempty"`
	FilePath string `json:"file_path,omitempty"`
	Note     string `json:"note,omitempty"`
	Source   Source `json:"source"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the decision short-circuits dispatch.
func (d Decision) Failed() bool {
	return d.Error != ""
}
