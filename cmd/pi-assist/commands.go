// ABOUTME: Non-interactive subcommands: file, route, validate, version
// ABOUTME: Each runs one agent once and prints its structured outcome

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-assist-go/internal/entity"
)

func (a *app) fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <summarize|todos|rewrite> <path>",
		Short: "Run the file agent on one file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.agent.Files().Run(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.printer.fileTask(task)
		},
	}
}

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <request...>",
		Short: "Route a free-form request through the router agent",
		Example: `  pi-assist route "todos: main.go"
  pi-assist route extract todos from ./notes.md
  pi-assist route OpenAI`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.agent.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printer.response(resp)
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "validate <entity...>",
		Short:       "Label an entity with the offline heuristic classifier",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.printer.validation(entity.Validate(strings.Join(args, " ")))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pi-assist %s (%s) built %s\n", version, commit, date)
		},
	}
}
