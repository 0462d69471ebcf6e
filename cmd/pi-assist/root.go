// ABOUTME: Root command and shared startup: .env, settings, logging, model selection, agents
// ABOUTME: Commands marked offline skip model setup and never need a credential

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-assist-go/internal/assistant"
	"github.com/mauromedda/pi-assist-go/internal/config"
	"github.com/mauromedda/pi-assist-go/internal/llm"
	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
	"github.com/mauromedda/pi-assist-go/internal/telemetry"
	"github.com/mauromedda/pi-assist-go/pkg/ai"
	"github.com/mauromedda/pi-assist-go/pkg/ai/provider/google"
	"github.com/mauromedda/pi-assist-go/pkg/ai/provider/openai"
)

const annotationOffline = "offline"

type cliFlags struct {
	model       string
	provider    string
	baseURL     string
	metricsFile string
	promptsFile string
	verbose     bool
	noValidate  bool
	json        bool
}

// chatFactory builds the model collaborator for a resolved selection.
type chatFactory func(sel *config.Selection, metrics *telemetry.Metrics) (llm.Chatter, error)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags   cliFlags
	dir     string
	newChat chatFactory

	settings    *config.Settings
	metrics     *telemetry.Metrics
	metricsFile string
	agent       *assistant.RouterAgent
	printer     *printer
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, newChat: providerChat}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pi-assist",
		Short: "Route requests to a file agent, an entity classifier or a validator",
		Long: `pi-assist routes free-form requests to one of a few small agents.

Run without arguments for an interactive menu:
  1. file agent       summarize, extract TODOs from, or rewrite a file
  2. router agent     free text such as "summarize: notes.md" or "OpenAI"
  3. validator agent  offline heuristic entity label`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runMenu,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.model, "model", "", "model identifier (overrides HF_MODEL and settings)")
	pf.StringVar(&a.flags.provider, "provider", "", "model provider: huggingface, openai or gemini")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "custom API base URL")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.StringVar(&a.flags.promptsFile, "prompts", "", "YAML file overriding built-in prompts")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&a.flags.noValidate, "no-validate", false, "skip the heuristic cross-check of classifications")
	pf.BoolVar(&a.flags.json, "json", false, "print results as JSON")

	root.AddCommand(a.fileCmd(), a.routeCmd(), a.validateCmd(), versionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.flags.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}
	if a.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		a.dir = wd
	}

	if err := config.LoadDotEnv(config.DotEnvFile(a.dir)); err != nil {
		return err
	}
	settings, err := config.Load(a.dir)
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}
	if settings.LogLevel != "" && !a.flags.verbose {
		lvl, err := pilog.ParseLevel(settings.LogLevel)
		if err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		pilog.SetLevel(lvl)
	}

	a.settings = settings
	a.metrics = telemetry.NewMetrics()
	a.metricsFile = a.flags.metricsFile
	if a.metricsFile == "" {
		a.metricsFile = settings.MetricsFile
	}
	a.printer = newPrinter(a.out, a.flags.json)

	if _, ok := cmd.Annotations[annotationOffline]; ok || cmd.Name() == "help" {
		return nil
	}
	return a.buildAgent()
}

func (a *app) buildAgent() error {
	catalog, err := prompts.Load(a.flags.promptsFile)
	if err != nil {
		return err
	}
	sel, err := config.Select(a.settings, config.Overrides{
		Provider: a.flags.provider,
		Model:    a.flags.model,
		BaseURL:  a.flags.baseURL,
	})
	if err != nil {
		return err
	}
	chat, err := a.newChat(sel, a.metrics)
	if err != nil {
		return err
	}
	agent, err := assistant.New(chat, catalog, a.metrics, assistant.Options{
		CrossCheck: a.settings.ShouldValidate() && !a.flags.noValidate,
		Dir:        a.dir,
	})
	if err != nil {
		return err
	}
	a.agent = agent
	pilog.Debug("model: %s via %s (%s)", sel.Model.ID, sel.Provider, sel.BaseURL)
	return nil
}

// finish flushes metrics and logs. It runs even when the command failed.
func (a *app) finish() {
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		pilog.Warn("%v", err)
	}
	_ = pilog.Sync()
}

// providerChat registers the built-in providers with the selected credential
// and binds the selected model to one of them.
func providerChat(sel *config.Selection, metrics *telemetry.Metrics) (llm.Chatter, error) {
	key := sel.APIKey
	ai.RegisterProvider(ai.ApiOpenAI, func(baseURL string) ai.ApiProvider {
		return openai.New(key, baseURL)
	})
	ai.RegisterProvider(ai.ApiGoogle, func(baseURL string) ai.ApiProvider {
		return google.New(key, baseURL)
	})

	provider := ai.GetProvider(sel.Model.Api, sel.BaseURL)
	if provider == nil {
		return nil, fmt.Errorf("no provider registered for API %q", sel.Model.Api)
	}
	return llm.NewClient(provider, sel.Model, metrics), nil
}
