// ABOUTME: File agent modes and the per-run FileTask record
// ABOUTME: A finished task carries either a result or an error, never both

package fileagent

// Mode selects the action applied to a file.
type Mode string

const (
	ModeSummarize Mode = "summarize"
	ModeTodos     Mode = "todos"
	ModeRewrite   Mode = "rewrite"
)

// Modes lists the supported modes.
var Modes = []Mode{ModeSummarize, ModeTodos, ModeRewrite}

// ParseMode maps an exact mode name to its Mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// FileTask is the state of one file agent run. The read step fills FileText;
// the selected action fills Result or Error.
type FileTask struct {
	Mode     Mode   `json:"mode"`
	FilePath string `json:"file_path"`
	FileText string `json:"-"`
	Result   string `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the run ended in an error.
func (t FileTask) Failed() bool {
	return t.Error != ""
}

func (t FileTask) withError(msg string) FileTask {
	t.Result = ""
	t.Error = msg
	return t
}

func (t FileTask) withResult(out string) FileTask {
	t.Result = out
	t.Error = ""
	return t
}
