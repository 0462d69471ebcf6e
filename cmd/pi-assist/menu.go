// ABOUTME: Interactive 3-way agent menu: a Bubble Tea list on a terminal, numbered prompt otherwise
// ABOUTME: After a choice, fields are read line by line and the agent runs once

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-assist-go/internal/entity"
)

type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceFile
	choiceRouter
	choiceValidator
)

type menuItem struct {
	label       string
	description string
	choice      menuChoice
}

var menuItems = []menuItem{
	{"File agent", "summarize, extract TODOs from, or rewrite a file", choiceFile},
	{"Router agent", "free text, e.g. 'summarize:notes.md' or 'OpenAI'", choiceRouter},
	{"Validator agent", "offline heuristic entity label", choiceValidator},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// menuModel is a Bubble Tea model for picking one agent.
type menuModel struct {
	items    []menuItem
	selected int
	chosen   menuChoice
	done     bool
	width    int
}

func newMenuModel() menuModel {
	return menuModel{items: menuItems}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j", "tab":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
		case "enter":
			m.chosen = m.items[m.selected].choice
			m.done = true
			return m, tea.Quit
		case "1", "2", "3":
			i := int(msg.Runes[0] - '1')
			if i < len(m.items) {
				m.selected = i
				m.chosen = m.items[i].choice
				m.done = true
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("Choose an agent"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := fmt.Sprintf("%d. %-16s %s", i+1, item.label, item.description)
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width - 2).Render(line)
		}
		if i == m.selected {
			b.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	b.WriteString(menuHintStyle.Render("\n↑/↓ move · enter select · 1-3 pick · q quit"))
	return b.String()
}

// lineReader prompts for and reads trimmed input lines.
type lineReader struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func (r *lineReader) ask(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

func parseChoice(s string) menuChoice {
	switch strings.TrimSpace(s) {
	case "1":
		return choiceFile
	case "2":
		return choiceRouter
	case "3":
		return choiceValidator
	}
	return choiceNone
}

func (a *app) chooseAgent(lines *lineReader) (menuChoice, error) {
	_, inTTY := terminalFd(a.in)
	_, outTTY := terminalFd(a.out)
	if inTTY && outTTY {
		final, err := tea.NewProgram(newMenuModel(), tea.WithInput(a.in), tea.WithOutput(a.out)).Run()
		if err != nil {
			return choiceNone, fmt.Errorf("menu: %w", err)
		}
		return final.(menuModel).chosen, nil
	}

	fmt.Fprintln(a.out, "Choose: 1=file agent  2=router agent  3=validator agent")
	s, err := lines.ask("> ")
	if err != nil {
		return choiceNone, err
	}
	if c := parseChoice(s); c != choiceNone {
		return c, nil
	}
	return choiceNone, a.printer.errorLine(fmt.Sprintf("Unknown choice %q", s))
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	lines := &lineReader{out: a.out, scanner: bufio.NewScanner(a.in)}
	err := a.menu(cmd, lines)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		return nil
	}
	return err
}

func (a *app) menu(cmd *cobra.Command, lines *lineReader) error {
	choice, err := a.chooseAgent(lines)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	switch choice {
	case choiceFile:
		mode, err := lines.ask("mode (summarize/todos/rewrite): ")
		if err != nil {
			return err
		}
		path, err := lines.ask("file path: ")
		if err != nil {
			return err
		}
		task, err := a.agent.Files().Run(ctx, mode, path)
		if err != nil {
			return err
		}
		return a.printer.fileTask(task)

	case choiceRouter:
		request, err := lines.ask("Ask something (e.g. 'summarize:path' or 'OpenAI'): ")
		if err != nil {
			return err
		}
		resp, err := a.agent.Run(ctx, request)
		if err != nil {
			return err
		}
		return a.printer.response(resp)

	case choiceValidator:
		for {
			e, err := lines.ask("Entity to classify: ")
			if err != nil {
				return err
			}
			if e != "" {
				return a.printer.validation(entity.Validate(e))
			}
			fmt.Fprintln(a.out, "Please type something (e.g., OpenAI, Elon Musk, New York City).")
		}
	}
	return nil
}
