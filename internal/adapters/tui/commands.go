package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"svw.info/verdant/internal/command"
	"svw.info/verdant/internal/domain"
)

const hintTimeout = 2 * time.Second

// execute runs one typed line against the session.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	m.print("> " + line)
	cmd, err := command.Parse(line)
	if err != nil {
		if errors.Is(err, command.ErrUsage) {
			m.print("Invalid command! " + err.Error())
		} else {
			m.print(`Invalid command! Use format: plant <type> <coordinate> (e.g. "plant corn a1") or type "help"`)
		}
		return m, nil
	}

	switch cmd.Kind {
	case command.Plant:
		return m.plant(cmd.Plant, cmd.Coord)
	case command.Check:
		return m.check()
	case command.Rules:
		m.print("Current Round Rules:")
		m.print(ruleLines(m.session)...)
	case command.Help:
		m.print(helpText(m.session)...)
	case command.Clear:
		m.clear()
	case command.Undo:
		if err := m.session.Undo(); err != nil {
			m.print(describe(err, m))
			break
		}
		m.print(fmt.Sprintf("Took back the last planting. %d seeds remaining.", m.session.Seeds()))
	case command.Restart:
		if err := m.session.Restart(); err != nil {
			m.print(describe(err, m))
			break
		}
		m.print(fmt.Sprintf("Replanting round %d with the same rules.", m.session.Round()))
	case command.Hint:
		ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
		h, ok, err := m.session.Hint(ctx)
		cancel()
		switch {
		case err != nil:
			m.print(describe(err, m))
		case !ok:
			m.print("No hint available: this garden cannot be completed. Try undo or restart.")
		default:
			m.print("Hint: " + h.Message + ".")
		}
	case command.Rain:
		m.prefs.Rain = !m.prefs.Rain
		m.saveSettings()
		m.print(fmt.Sprintf("Rain effect %s.", onOff(m.prefs.Rain)))
	case command.Theme:
		if m.prefs.Theme == domain.ThemeDark {
			m.prefs.Theme = domain.ThemeLight
		} else {
			m.prefs.Theme = domain.ThemeDark
		}
		m.styles = NewStyles(m.prefs.Theme)
		m.saveSettings()
		m.print(fmt.Sprintf("Switched to the %s theme.", m.prefs.Theme))
	case command.Quit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) plant(name, coord string) (tea.Model, tea.Cmd) {
	if err := m.session.Place(name, coord); err != nil {
		m.print(describe(err, m))
		return m, nil
	}
	p, _ := domain.ParsePlant(name)
	m.print(fmt.Sprintf("Planted %s at %s. %d seeds remaining.", p, strings.ToUpper(coord), m.session.Seeds()))
	return m, nil
}

func (m Model) check() (tea.Model, tea.Cmd) {
	out, err := m.session.Submit()
	var ve *domain.ViolationError
	switch {
	case err == nil:
		m.print("Success! Moving to next round...")
		m.pending, m.won = true, true
		if m.prefs.Rain {
			m.rain = rain{active: true}
			return m, tea.Batch(m.scheduleNextRound(), rainTick())
		}
		return m, m.scheduleNextRound()
	case errors.As(err, &ve):
		m.print("Rule failed: " + ve.Result.Reason() + ".")
		if out.NextRound == domain.CheckpointRound {
			m.print(fmt.Sprintf("Failed! Continuing from round %d...", out.NextRound))
		} else {
			m.print("Failed! Starting over from round 1...")
		}
		m.pending, m.won = true, false
		return m, m.scheduleNextRound()
	default:
		m.print(describe(err, m))
		return m, nil
	}
}

func (m *Model) saveSettings() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(context.Background(), m.prefs); err != nil {
		m.log.Warn("failed to save settings", zap.Error(err))
	}
}

// describe turns a session error into the message shown to the player.
func describe(err error, m Model) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPlant):
		return "You can only plant plants involved in the current round's rules! Allowed plants: " + allowed(m.session)
	case errors.Is(err, domain.ErrInvalidCoordinate):
		return "Invalid coordinates! Use A1-C3."
	case errors.Is(err, domain.ErrCellOccupied):
		return "This spot is already occupied!"
	case errors.Is(err, domain.ErrNoSeedsLeft):
		return `No more seeds left! Type "check" to verify your garden.`
	case errors.Is(err, domain.ErrIncompleteSubmission):
		return "You must plant all seeds before checking!"
	case errors.Is(err, domain.ErrNothingToUndo):
		return "Nothing to undo."
	case errors.Is(err, domain.ErrRoundOver):
		return "The round is over; the next one is on its way."
	}
	m.log.Error("unexpected session error", zap.Error(err))
	return "Something went wrong: " + err.Error()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
