package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/generator"
	"svw.info/verdant/internal/hint"
	"svw.info/verdant/internal/infrastructure/storage"
	"svw.info/verdant/internal/solver"
	"svw.info/verdant/internal/usecase"
	"svw.info/verdant/internal/validator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	model   Model
	session *usecase.Session
	store   *storage.Settings
	solver  *solver.BacktrackingSolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	v := validator.New()
	sol := solver.NewBacktrackingSolver(v)
	store := storage.NewSettings(nil, nil)
	svc := usecase.NewService(generator.NewRuleGenerator(11), v, sol, hint.NewPlanner(sol), store)
	s, err := usecase.NewSession(svc, usecase.SessionOptions{})
	require.NoError(t, err)
	return &fixture{
		model:   New(s, Options{Settings: domain.DefaultSettings(), Store: store}),
		session: s,
		store:   store,
		solver:  sol,
	}
}

// typeLine enters a command as if typed at the prompt.
func (f *fixture) typeLine(t *testing.T, line string) tea.Cmd {
	t.Helper()
	f.model.input.SetValue(line)
	next, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.model = next.(Model)
	return cmd
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func (f *fixture) output() string { return strings.Join(f.model.lines, "\n") }

func (f *fixture) last() string { return f.model.lines[len(f.model.lines)-1] }

// plantSolution fills the board with a valid arrangement found by the solver.
func (f *fixture) plantSolution(t *testing.T) {
	t.Helper()
	p := domain.Puzzle{Seeds: f.session.SeedBudget(), Rules: f.session.Rules(), Required: f.session.Required()}
	b, _, err := f.solver.Solve(context.Background(), &p, nil)
	require.NoError(t, err)
	for i, plant := range b {
		if plant != domain.NoPlant {
			f.typeLine(t, "plant "+plant.String()+" "+domain.IndexToCoord(i))
		}
	}
}

// plantViolation fills the board so the first rule is broken.
func (f *fixture) plantViolation(t *testing.T) {
	t.Helper()
	r := f.session.Rules()[0]
	second := "c3"
	if !r.MustBeAdjacent {
		second = "b1"
	}
	f.typeLine(t, "plant "+r.Plant1.String()+" a1")
	f.typeLine(t, "plant "+r.Plant2.String()+" "+second)
	f.typeLine(t, "plant "+r.Plant1.String()+" a3")
}

func TestWelcomeAndFirstRound(t *testing.T) {
	f := newFixture(t)
	out := f.output()
	assert.Contains(t, out, "=== How to Play ===")
	assert.Contains(t, out, "=== Round 1 ===")
	assert.Contains(t, out, "You have 3 seeds to plant.")
	assert.Contains(t, out, f.session.Rules()[0].String())
	assert.NotNil(t, f.model.Init())
}

func TestPlantMessages(t *testing.T) {
	f := newFixture(t)
	p := f.session.Required()[0]

	f.typeLine(t, "plant "+strings.ToLower(p.String())+" b2")
	assert.Equal(t, "Planted "+p.String()+" at B2. 2 seeds remaining.", f.last())
	assert.Equal(t, p, f.session.Board()[4])

	f.typeLine(t, "plant "+p.String()+" b2")
	assert.Equal(t, "This spot is already occupied!", f.last())

	f.typeLine(t, "plant "+p.String()+" d9")
	assert.Equal(t, "Invalid coordinates! Use A1-C3.", f.last())

	f.typeLine(t, "plant carrot a1")
	assert.Contains(t, f.last(), "Allowed plants: ")

	f.typeLine(t, "plant corn")
	assert.Contains(t, f.last(), "usage: plant")

	f.typeLine(t, "dance")
	assert.Contains(t, f.last(), "Invalid command!")
}

func TestCheckBeforeAllSeeds(t *testing.T) {
	f := newFixture(t)
	cmd := f.typeLine(t, "check")
	assert.Nil(t, cmd)
	assert.Equal(t, "You must plant all seeds before checking!", f.last())
}

func TestSuccessfulRoundAdvances(t *testing.T) {
	f := newFixture(t)
	f.plantSolution(t)
	cmd := f.typeLine(t, "check")
	require.NotNil(t, cmd)
	assert.Equal(t, "Success! Moving to next round...", f.last())
	assert.True(t, f.model.pending)
	assert.True(t, f.model.rain.active)
	assert.Contains(t, f.model.View(), "Preparing the next round")

	f.send(rainTickMsg{})
	assert.Equal(t, 1, f.model.rain.frame)

	f.typeLine(t, "plant corn a1")
	assert.Equal(t, "The round is over; the next one is on its way.", f.last())

	f.send(nextRoundMsg{})
	assert.False(t, f.model.pending)
	assert.False(t, f.model.rain.active)
	assert.Equal(t, 2, f.session.Round())
	assert.Equal(t, "=== Round 2 ===", f.model.lines[0], "terminal is cleared after round 1")
	assert.Nil(t, f.send(rainTickMsg{}), "rain stops with the new round")
}

func TestFailedRoundStartsOver(t *testing.T) {
	f := newFixture(t)
	f.plantViolation(t)
	cmd := f.typeLine(t, "check")
	require.NotNil(t, cmd)
	assert.Contains(t, f.output(), "Rule failed: ")
	assert.Equal(t, "Failed! Starting over from round 1...", f.last())
	assert.False(t, f.model.rain.active)
	assert.Contains(t, f.model.View(), "Round lost.")

	// with no delay configured the command delivers the next round immediately
	msg := cmd()
	require.IsType(t, nextRoundMsg{}, msg)
	f.send(msg)
	assert.Equal(t, 1, f.session.Round())
	assert.Equal(t, domain.Board{}, f.session.Board())
}

func TestUndoRestartAndHint(t *testing.T) {
	f := newFixture(t)
	f.typeLine(t, "undo")
	assert.Equal(t, "Nothing to undo.", f.last())

	p := f.session.Required()[0]
	f.typeLine(t, "plant "+p.String()+" a1")
	f.typeLine(t, "undo")
	assert.Equal(t, "Took back the last planting. 3 seeds remaining.", f.last())
	assert.Equal(t, domain.Board{}, f.session.Board())

	rules := f.session.Rules()
	f.typeLine(t, "plant "+p.String()+" a1")
	f.typeLine(t, "restart")
	assert.Equal(t, "Replanting round 1 with the same rules.", f.last())
	assert.Equal(t, rules, f.session.Rules())
	assert.Equal(t, 3, f.session.Seeds())

	f.typeLine(t, "hint")
	assert.True(t, strings.HasPrefix(f.last(), "Hint: try planting "), f.last())
}

func TestRulesHelpAndClear(t *testing.T) {
	f := newFixture(t)
	f.typeLine(t, "rules")
	assert.Equal(t, f.session.Rules()[0].String(), f.last())

	f.typeLine(t, "help")
	assert.Equal(t, "Coordinates: A1-C3", f.last())
	assert.Contains(t, f.output(), "Allowed plants: "+f.session.Required()[0].String())

	f.typeLine(t, "clear")
	assert.Empty(t, f.model.lines)
}

func TestTogglesPersistSettings(t *testing.T) {
	f := newFixture(t)
	f.typeLine(t, "theme")
	assert.Equal(t, "Switched to the dark theme.", f.last())
	assert.True(t, f.model.styles.Dark)

	f.typeLine(t, "rain")
	assert.Equal(t, "Rain effect off.", f.last())

	got, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Theme: domain.ThemeDark, Rain: false}, got)

	// without rain a win schedules only the round transition
	f.plantSolution(t)
	f.typeLine(t, "check")
	assert.False(t, f.model.rain.active)
}

func TestWindowResizeAndView(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, f.model.viewport.Width)
	assert.Equal(t, 40-chromeHeight, f.model.viewport.Height)

	view := f.model.View()
	assert.Contains(t, view, "A B C")
	assert.Contains(t, view, "Round 1")
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	cmd := f.typeLine(t, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", f.model.View())

	f = newFixture(t)
	cmd = f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRainRender(t *testing.T) {
	r := rain{active: true}
	first := r.render(rainWidth)
	require.Len(t, first, rainRows)
	for _, l := range first {
		assert.Len(t, l, rainWidth)
	}
	r.frame++
	second := r.render(rainWidth)
	assert.Equal(t, first[0], second[1], "drops fall one row per frame")
	assert.Nil(t, r.render(0))
}
