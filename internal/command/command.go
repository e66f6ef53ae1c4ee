// Package command turns a typed line into a game command. It only checks the
// shape of the input; plant names and coordinates are validated by the session.
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New(`usage: plant <type> <coordinate> (e.g. "plant corn a1")`)
)

type Kind int

const (
	Unknown Kind = iota
	Plant
	Check
	Rules
	Help
	Clear
	Undo
	Restart
	Hint
	Rain
	Theme
	Quit
)

var keywords = map[string]Kind{
	"plant":   Plant,
	"check":   Check,
	"submit":  Check,
	"rules":   Rules,
	"help":    Help,
	"clear":   Clear,
	"undo":    Undo,
	"restart": Restart,
	"hint":    Hint,
	"rain":    Rain,
	"theme":   Theme,
	"quit":    Quit,
	"exit":    Quit,
}

// Command is one parsed line. Plant and Coord are set for Plant commands only.
type Command struct {
	Kind  Kind
	Plant string
	Coord string
}

// Parse tokenizes a line case-insensitively.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	kind, ok := keywords[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if kind == Plant {
		if len(fields) != 3 {
			return Command{}, ErrUsage
		}
		return Command{Kind: Plant, Plant: fields[1], Coord: fields[2]}, nil
	}
	if len(fields) > 1 {
		return Command{}, fmt.Errorf("%w: %q takes no arguments", ErrUnknownCommand, fields[0])
	}
	return Command{Kind: kind}, nil
}
