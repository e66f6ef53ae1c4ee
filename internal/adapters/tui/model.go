// Package tui is the terminal front end: a scrolling command log, the garden grid
// and a prompt, driven by bubbletea. All game rules live in the usecase session.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/ports"
	"svw.info/verdant/internal/usecase"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 12 // title, board, status and prompt
	rainWidth     = 17
)

type nextRoundMsg struct{}

// Options configures the model. Store may be nil.
type Options struct {
	Delay    time.Duration
	Settings domain.Settings
	Store    ports.SettingsStore
	Logger   *zap.Logger
}

type Model struct {
	session *usecase.Session
	store   ports.SettingsStore
	prefs   domain.Settings
	styles  Styles
	log     *zap.Logger
	delay   time.Duration

	input    textinput.Model
	viewport viewport.Model
	lines    []string

	pending  bool // a submit finished; the next round is scheduled
	won      bool
	rain     rain
	quitting bool
}

// New wraps a started session.
func New(s *usecase.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "plant corn a1"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		session:  s,
		store:    opts.Store,
		prefs:    opts.Settings,
		styles:   NewStyles(opts.Settings.Theme),
		log:      logger,
		delay:    opts.Delay,
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
	}
	m.print(welcome...)
	m.print(roundBanner(s)...)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.input.Width = max(msg.Width-4, 10)
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			return m.execute(line)
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case nextRoundMsg:
		return m.beginNextRound()

	case rainTickMsg:
		if !m.rain.active {
			return m, nil
		}
		m.rain.frame++
		return m, rainTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sections []string
	sections = append(sections, m.styles.Title.Render("verdant"))
	if m.rain.active {
		for _, l := range m.rain.render(rainWidth) {
			sections = append(sections, m.styles.Rain.Render(l))
		}
	}
	sections = append(sections,
		m.renderBoard(),
		m.renderStatus(),
		m.viewport.View(),
		m.input.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBoard() string {
	b := m.session.Board()
	var rows []string
	rows = append(rows, m.styles.Label.Render("  A B C"))
	for r := 0; r < domain.GridSize; r++ {
		cells := make([]string, domain.GridSize)
		for c := 0; c < domain.GridSize; c++ {
			cells[c] = m.styles.Plant(b[r*domain.GridSize+c])
		}
		rows = append(rows, m.styles.Label.Render(fmt.Sprintf("%d ", r+1))+strings.Join(cells, " "))
	}
	return m.styles.Board.Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatus() string {
	if m.pending {
		if m.won {
			return m.styles.Success.Render("Round cleared! Preparing the next round...")
		}
		return m.styles.Failure.Render("Round lost. Preparing the next round...")
	}
	return m.styles.Status.Render(fmt.Sprintf("Round %d  Seeds %d/%d  Plants: %s",
		m.session.Round(), m.session.Seeds(), m.session.SeedBudget(), allowed(m.session)))
}

// print appends lines to the scrollback and keeps the newest in view.
func (m *Model) print(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) clear() {
	m.lines = nil
	m.viewport.SetContent("")
}

func (m Model) beginNextRound() (tea.Model, tea.Cmd) {
	m.pending = false
	m.rain.active = false
	if err := m.session.NextRound(); err != nil {
		m.log.Error("next round failed", zap.Error(err))
		m.print("Could not start the next round: " + err.Error())
		return m, nil
	}
	if m.session.Round() != 1 {
		m.clear()
	}
	m.print(roundBanner(m.session)...)
	return m, nil
}

func (m Model) scheduleNextRound() tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return nextRoundMsg{} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return nextRoundMsg{} })
}

func rainTick() tea.Cmd {
	return tea.Tick(rainInterval, func(time.Time) tea.Msg { return rainTickMsg{} })
}
