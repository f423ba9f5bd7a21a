// Package tui is the interactive terminal shell around the advisor: the
// user describes a spot (hole cards, board, stakes) and gets equity plus
// EV/EU per action rendered in place.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
)

// scenario is the spot being analysed
type scenario struct {
	hole      []deck.Card
	board     []deck.Card
	opponents int
	trials    int
	pot       float64
	call      float64
	raise     float64
	foldProb  float64
	riskStyle float64
	seed      int64
}

// adviceMsg carries an advisory result back into the update loop
type adviceMsg struct {
	advice *advisor.Advice
	err    error
}

// Model is the Bubble Tea model for the advisor shell
type Model struct {
	advisor *advisor.Advisor
	logger  *log.Logger

	input    textinput.Model
	scenario scenario
	advice   *advisor.Advice
	errText  string
	running  bool
	quitting bool
	width    int
}

// New creates the TUI model with the given defaults
func New(adv *advisor.Advisor, logger *log.Logger, opponents, trials int, riskStyle float64) *Model {
	ti := textinput.New()
	ti.Placeholder = "hole AsKd | board 7h8h9h | pot 100 | call 20 | raise 50 | go"
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		advisor: adv,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
		scenario: scenario{
			opponents: opponents,
			trials:    trials,
			riskStyle: riskStyle,
		},
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m.handleCommand(line)
		}

	case adviceMsg:
		m.running = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			m.advice = msg.advice
			m.errText = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	fail := func(format string, a ...any) (tea.Model, tea.Cmd) {
		m.errText = fmt.Sprintf(format, a...)
		return m, nil
	}
	arg := func() string {
		if len(args) == 0 {
			return ""
		}
		return args[0]
	}

	switch cmd {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit

	case "hole":
		cards, err := deck.ParseCards(strings.Join(args, ""))
		if err != nil {
			return fail("hole: %v", err)
		}
		if len(cards) != 2 {
			return fail("hole needs exactly 2 cards, got %d", len(cards))
		}
		m.scenario.hole = cards

	case "board":
		if arg() == "" {
			m.scenario.board = nil
			break
		}
		cards, err := deck.ParseCards(strings.Join(args, ""))
		if err != nil {
			return fail("board: %v", err)
		}
		if len(cards) > 5 {
			return fail("board takes at most 5 cards, got %d", len(cards))
		}
		m.scenario.board = cards

	case "pot", "call", "raise", "foldp", "risk":
		v, err := strconv.ParseFloat(arg(), 64)
		if err != nil {
			return fail("%s: expected a number", cmd)
		}
		switch cmd {
		case "pot":
			m.scenario.pot = v
		case "call":
			m.scenario.call = v
		case "raise":
			m.scenario.raise = v
		case "foldp":
			m.scenario.foldProb = v
		case "risk":
			m.scenario.riskStyle = v
		}

	case "opps", "trials", "seed":
		v, err := strconv.ParseInt(arg(), 10, 64)
		if err != nil {
			return fail("%s: expected an integer", cmd)
		}
		switch cmd {
		case "opps":
			m.scenario.opponents = int(v)
		case "trials":
			m.scenario.trials = int(v)
		case "seed":
			m.scenario.seed = v
		}

	case "go", "run":
		if len(m.scenario.hole) != 2 {
			return fail("set hole cards first (e.g. 'hole AsKd')")
		}
		m.running = true
		m.errText = ""
		return m, m.runAdvice()

	default:
		return fail("unknown command %q (hole, board, pot, call, raise, opps, foldp, risk, trials, seed, go, quit)", cmd)
	}

	m.errText = ""
	return m, nil
}

func (m *Model) runAdvice() tea.Cmd {
	req := advisor.Request{
		Hole:      m.scenario.hole,
		Board:     m.scenario.board,
		Opponents: m.scenario.opponents,
		Trials:    m.scenario.trials,
		Seed:      m.scenario.seed,
		Pot:       m.scenario.pot,
		Call:      m.scenario.call,
		Raise:     m.scenario.raise,
		FoldProb:  m.scenario.foldProb,
		RiskStyle: m.scenario.riskStyle,
	}
	adv := m.advisor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		advice, err := adv.Advise(ctx, req)
		return adviceMsg{advice: advice, err: err}
	}
}

// View renders the shell
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("holdem advisor"))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.renderScenario()))
	b.WriteString("\n")

	switch {
	case m.running:
		b.WriteString(helpStyle.Render("running simulation..."))
		b.WriteString("\n")
	case m.advice != nil:
		b.WriteString(panelStyle.Render(m.renderAdvice()))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter a command, 'go' to analyse, esc to quit"))
	return b.String()
}

func (m *Model) renderScenario() string {
	s := m.scenario
	rows := []string{
		labelStyle.Render("hole  ") + renderCards(s.hole),
		labelStyle.Render("board ") + renderCards(s.board),
		fmt.Sprintf("%s pot %.0f  call %.0f  raise %.0f",
			labelStyle.Render("chips "), s.pot, s.call, s.raise),
		fmt.Sprintf("%s %d opponents  fold-prob %.2f  risk %.1f  trials %d",
			labelStyle.Render("model "), s.opponents, s.foldProb, s.riskStyle, s.trials),
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderAdvice() string {
	a := m.advice
	var rows []string

	if a.HandDesc != "" {
		rows = append(rows, labelStyle.Render("hand   ")+valueStyle.Render(a.HandDesc))
	}
	rows = append(rows,
		fmt.Sprintf("%s win %.1f%%  tie %.1f%%  lose %.1f%%  (%d trials)",
			labelStyle.Render("equity"),
			a.Equity.Win*100, a.Equity.Tie*100, a.Equity.Lose*100, a.Equity.Trials),
		fmt.Sprintf("%s fold %+.2f  call %+.2f  raise %+.2f",
			labelStyle.Render("ev    "),
			a.Decision.EVFold, a.Decision.EVCall, a.Decision.EVRaise),
		fmt.Sprintf("%s fold %+.2f  call %+.2f  raise %+.2f",
			labelStyle.Render("eu    "),
			a.Decision.EUFold, a.Decision.EUCall, a.Decision.EURaise),
		labelStyle.Render("advice ")+recommendStyle.Render(strings.ToUpper(a.Decision.Recommended.String())),
	)
	return strings.Join(rows, "\n")
}

func renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return helpStyle.Render("(none)")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = redCardStyle.Render(c.String())
		} else {
			parts[i] = blackCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
