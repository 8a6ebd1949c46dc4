// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     tui
// Description: Interactive calculator (REPL) built on bubbletea
// Author:      Mike Stoffels
// Created:     2026-10-05
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/internal/evaluator"
)

// View represents the tabs of the TUI
type View int

const (
	ViewCalc View = iota
	ViewOperations
	ViewSettings
)

const viewCount = 3

// Entry is one evaluated line in the history
type Entry struct {
	Input    string
	Output   string
	Sentinel bool
	Err      bool
	System   bool
}

// EvaluatorChangedMsg replaces the evaluator, for example after the
// configuration file was reloaded. Err reports a failed reload; the
// current evaluator stays active then.
type EvaluatorChangedMsg struct {
	Evaluator *evaluator.Evaluator
	Source    string
	Err       error
}

// evalResultMsg carries the outcome of one evaluation back into Update
type evalResultMsg struct {
	input   string
	outcome evaluator.Outcome
	err     error
}

// Model is the main TUI model
type Model struct {
	view   View
	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	evaluator *evaluator.Evaluator
	logger    *mdwlog.Logger

	entries    []Entry
	history    []string
	historyPos int
}

// NewModel creates a TUI model evaluating lines with ev. A nil logger
// disables logging.
func NewModel(ev *evaluator.Evaluator, logger *mdwlog.Logger) Model {
	if logger == nil {
		logger = mdwlog.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "z.B. add 1 2 3 precision=2"
	ti.Prompt = "› "
	ti.CharLimit = 512
	ti.Width = 76
	ti.Focus()

	return Model{
		view:      ViewCalc,
		input:     ti,
		evaluator: ev,
		logger:    logger.WithName("tui"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % viewCount
			m.updateContent()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			m.history = append(m.history, input)
			m.historyPos = len(m.history)
			return m.runCommand(input)

		case "up":
			if m.historyPos > 0 {
				m.historyPos--
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.historyPos < len(m.history)-1 {
				m.historyPos++
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			} else {
				m.historyPos = len(m.history)
				m.input.Reset()
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-9)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 9
		}
		m.input.Width = msg.Width - 8
		m.updateContent()

	case evalResultMsg:
		m.entries = append(m.entries, m.entryFor(msg))
		m.updateContent()
		return m, nil

	case EvaluatorChangedMsg:
		m.applyEvaluator(msg)
		m.updateContent()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runCommand handles the built-in commands and hands everything else to
// the evaluator
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "quit", "exit", "beenden":
		return m, tea.Quit
	case "clear", "leeren":
		m.entries = nil
		m.updateContent()
		return m, nil
	case "help", "hilfe", "?":
		m.view = ViewOperations
		m.updateContent()
		return m, nil
	}
	return m, m.evaluate(input)
}

func (m Model) evaluate(input string) tea.Cmd {
	ev := m.evaluator
	return func() tea.Msg {
		outcome, err := ev.EvalLine(input)
		return evalResultMsg{input: input, outcome: outcome, err: err}
	}
}

func (m Model) entryFor(msg evalResultMsg) Entry {
	if msg.err != nil {
		m.logger.Debug("evaluation failed", mdwlog.Fields{
			"input":      msg.input,
			"error":      msg.err.Error(),
			"error_code": mdwerror.GetCode(msg.err).String(),
		})
		return Entry{Input: msg.input, Output: describeError(msg.err), Err: true}
	}
	return Entry{
		Input:    msg.input,
		Output:   msg.outcome.String(),
		Sentinel: msg.outcome.IsSentinel(),
	}
}

func (m *Model) applyEvaluator(msg EvaluatorChangedMsg) {
	if msg.Err != nil {
		m.logger.LogError(msg.Err, mdwlog.Fields{"source": msg.Source})
		m.entries = append(m.entries, Entry{
			Input:  "Konfiguration " + msg.Source,
			Output: describeError(msg.Err),
			Err:    true,
			System: true,
		})
		return
	}
	if msg.Evaluator == nil {
		return
	}

	m.evaluator = msg.Evaluator
	m.logger.Info("evaluator replaced", mdwlog.Fields{"source": msg.Source})
	m.entries = append(m.entries, Entry{
		Input:  "Konfiguration " + msg.Source,
		Output: "neu geladen",
		System: true,
	})
}

func describeError(err error) string {
	if code := mdwerror.GetCode(err); code != "" && code != mdwerror.CodeUnknown {
		return fmt.Sprintf("%s [%s]", err.Error(), code)
	}
	return err.Error()
}

// Entries returns the evaluated lines in order
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}

	var content string
	switch m.view {
	case ViewCalc:
		content = m.renderEntries()
	case ViewOperations:
		content = renderOperations()
	case ViewSettings:
		content = m.renderSettings()
	}
	m.viewport.SetContent(content)
	if m.view == ViewCalc {
		m.viewport.GotoBottom()
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	if m.view == ViewCalc {
		s.WriteString(FocusedInputStyle.Render(m.input.View()))
		s.WriteString("\n")
	}
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"Rechner", "Operationen", "Einstellungen"}
	rendered := make([]string, 0, len(tabs))

	for i, tab := range tabs {
		if View(i) == m.view {
			rendered = append(rendered, ActiveTabStyle.Render(tab))
		} else {
			rendered = append(rendered, TabStyle.Render(tab))
		}
	}

	title := RenderTitle("mCALC")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		return SystemMessageStyle.Render("Gib eine Rechnung ein, z.B. \"div 10 4\" oder \"sin 90 unit=degree\".")
	}

	var s strings.Builder
	for _, e := range m.entries {
		if e.System && !e.Err {
			s.WriteString(SystemMessageStyle.Render(e.Input + " " + e.Output))
			s.WriteString("\n")
			continue
		}
		s.WriteString(InputLineStyle.Render("› " + e.Input))
		s.WriteString("\n")
		switch {
		case e.Err:
			s.WriteString(RenderError(e.Output))
		case e.Sentinel:
			s.WriteString(SentinelStyle.Render(e.Output))
		default:
			s.WriteString(ResultStyle.Render("= " + e.Output))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func renderOperations() string {
	var s strings.Builder
	s.WriteString(SubtitleStyle.Render("Verfügbare Operationen"))
	s.WriteString("\n\n")

	for _, op := range evaluator.Operations() {
		s.WriteString(fmt.Sprintf("  %-34s %s\n", KeyStyle.Render(op.Usage), op.Description))
	}

	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Optionen: precision=<n> round=off float=true unit=<rad|deg|grad> base=<b> strict=true"))
	return s.String()
}

func (m Model) renderSettings() string {
	settings := m.evaluator.Settings()

	precision := "keine Rundung"
	if p, ok := settings.Precision(); ok {
		precision = fmt.Sprintf("%d Stellen", p)
	}

	rows := []string{
		fmt.Sprintf("Genauigkeit:   %s", precision),
		fmt.Sprintf("Gleitkomma:    %t", settings.ForceFloat()),
		fmt.Sprintf("Winkeleinheit: %s", settings.AngleUnit()),
		fmt.Sprintf("Log-Basis:     %g", settings.Base()),
	}
	return BoxStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderFooter() string {
	status := StatusBarStyle.Render(fmt.Sprintf("%d Berechnungen", len(m.entries)))
	help := RenderHelp("Enter: berechnen • ↑/↓: Verlauf • Tab: Ansicht • Ctrl+L: leeren • Esc: beenden")
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}

// Run starts the TUI on the alternate screen. Messages from updates are
// forwarded into the running program; updates may be nil.
func Run(ev *evaluator.Evaluator, logger *mdwlog.Logger, updates <-chan EvaluatorChangedMsg) error {
	p := tea.NewProgram(NewModel(ev, logger), tea.WithAltScreen())

	if updates != nil {
		done := make(chan struct{})
		defer close(done)
		go func() {
			for {
				select {
				case msg, ok := <-updates:
					if !ok {
						return
					}
					p.Send(msg)
				case <-done:
					return
				}
			}
		}()
	}

	_, err := p.Run()
	return err
}
