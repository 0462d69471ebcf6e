// ABOUTME: Router agent: decide an action, dispatch to the file agent or classify_text, cross-check
// ABOUTME: Each Run is independent and tagged with a request id for logs

package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mauromedda/pi-assist-go/internal/entity"
	"github.com/mauromedda/pi-assist-go/internal/fileagent"
	"github.com/mauromedda/pi-assist-go/internal/intent"
	"github.com/mauromedda/pi-assist-go/internal/llm"
	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
	"github.com/mauromedda/pi-assist-go/internal/telemetry"
)

// Response is the outcome of one routed request. Exactly one of Result and
// Error is set. Classification and Validation accompany classify_text results.
type Response struct {
	RequestID      string                 `json:"request_id"`
	Action         intent.Action          `json:"action,omitempty"`
	Source         intent.Source          `json:"source,omitempty"`
	FilePath       string                 `json:"file_path,omitempty"`
	Result         string                 `json:"result,omitempty"`
	Error          string                 `json:"error,omitempty"`
	Classification *entity.Classification `json:"classification,omitempty"`
	Validation     *entity.Validation     `json:"validation,omitempty"`
}

// Failed reports whether the request ended in an error.
func (r Response) Failed() bool {
	return r.Error != ""
}

// Agreement reports whether the heuristic cross-check picked the same label
// as the model. It is false when no cross-check ran.
func (r Response) Agreement() bool {
	return r.Classification != nil && r.Validation != nil && r.Validation.Parsed != nil &&
		r.Validation.Parsed.Label == r.Classification.Label
}

// Options tunes a RouterAgent.
type Options struct {
	// CrossCheck runs the heuristic validator after a successful classify_text.
	CrossCheck bool
	// Dir resolves relative file paths; empty means the working directory.
	Dir string
}

// RouterAgent routes free-form requests.
type RouterAgent struct {
	router     *intent.Router
	files      *fileagent.Agent
	classifier *entity.ModelClassifier
	metrics    *telemetry.Metrics
	opts       Options
}

// New wires a router agent around one model collaborator. metrics may be nil.
func New(chat llm.Chatter, catalog *prompts.Catalog, metrics *telemetry.Metrics, opts Options) (*RouterAgent, error) {
	router, err := intent.NewRouter(chat, catalog)
	if err != nil {
		return nil, err
	}
	classifier, err := entity.NewModelClassifier(chat, catalog)
	if err != nil {
		return nil, err
	}
	files := fileagent.New(chat, catalog, metrics)
	files.Dir = opts.Dir

	return &RouterAgent{
		router:     router,
		files:      files,
		classifier: classifier,
		metrics:    metrics,
		opts:       opts,
	}, nil
}

// Files exposes the file agent used for file actions.
func (a *RouterAgent) Files() *fileagent.Agent {
	return a.files
}

// Run routes request and executes the chosen action. A non-nil error is a
// model transport failure; everything else is reported in Response.Error.
func (a *RouterAgent) Run(ctx context.Context, request string) (Response, error) {
	resp := Response{RequestID: uuid.NewString()}

	d, err := a.router.Decide(ctx, request)
	if err != nil {
		a.metrics.RecordRoute("none", "error")
		return resp, fmt.Errorf("request %s: %w", resp.RequestID, err)
	}
	resp.Action, resp.Source, resp.FilePath = d.Action, d.Source, d.FilePath

	action := string(d.Action)
	if d.Failed() {
		action = "none"
	}
	a.metrics.RecordRoute(action, string(d.Source))
	pilog.Debugw("routed", "request_id", resp.RequestID, "action", action, "source", d.Source, "file_path", d.FilePath)

	if d.Failed() {
		resp.Error = d.Error
		return resp, nil
	}

	if d.Action == intent.ActionClassifyText {
		return a.classify(ctx, resp, request)
	}
	return a.runFile(ctx, resp, d)
}

func (a *RouterAgent) runFile(ctx context.Context, resp Response, d intent.Decision) (Response, error) {
	path := strings.TrimSpace(d.FilePath)
	if path == "" {
		resp.Error = "Missing file_path"
		return resp, nil
	}
	if _, ok := fileagent.ParseMode(string(d.Action)); !ok {
		resp.Error = fmt.Sprintf("Bad mode for file agent: %s", d.Action)
		return resp, nil
	}

	task, err := a.files.Run(ctx, string(d.Action), path)
	if err != nil {
		return resp, fmt.Errorf("request %s: %w", resp.RequestID, err)
	}
	if task.Failed() {
		resp.Error = task.Error
		return resp, nil
	}
	resp.Result = task.Result
	return resp, nil
}

func (a *RouterAgent) classify(ctx context.Context, resp Response, request string) (Response, error) {
	res, err := a.classifier.Classify(ctx, request)
	if err != nil {
		return resp, fmt.Errorf("request %s: %w", resp.RequestID, err)
	}
	if res.Error != "" {
		resp.Error = res.Error
		return resp, nil
	}
	resp.Result = res.Result
	resp.Classification = res.Parsed

	if !a.opts.CrossCheck {
		return resp, nil
	}
	v := entity.Validate(request)
	resp.Validation = &v
	a.metrics.RecordValidation(resp.Agreement())
	pilog.Debugw("cross-check", "request_id", resp.RequestID, "model", res.Parsed.Label, "heuristic", labelOf(v), "agree", resp.Agreement())
	return resp, nil
}

func labelOf(v entity.Validation) entity.Label {
	if v.Parsed == nil {
		return ""
	}
	return v.Parsed.Label
}
