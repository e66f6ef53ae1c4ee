package domain

import (
	"fmt"
	"strings"
)

// Plant is one of the five placeable plant types. The zero value marks an empty cell.
type Plant uint8

const (
	NoPlant Plant = iota
	Corn
	Lettuce
	Eggplant
	Tomato
	Potato
)

// Palette lists every plant in draw order.
var Palette = [...]Plant{Corn, Lettuce, Eggplant, Tomato, Potato}

var plantNames = [...]string{
	NoPlant:  "",
	Corn:     "Corn",
	Lettuce:  "Lettuce",
	Eggplant: "Eggplant",
	Tomato:   "Tomato",
	Potato:   "Potato",
}

func (p Plant) String() string {
	if !p.Valid() && p != NoPlant {
		return fmt.Sprintf("Plant(%d)", uint8(p))
	}
	return plantNames[p]
}

// Valid reports whether p is a palette plant.
func (p Plant) Valid() bool { return p >= Corn && p <= Potato }

// Initial is the one-letter board glyph, '.' for an empty cell.
func (p Plant) Initial() byte {
	if !p.Valid() {
		return '.'
	}
	return plantNames[p][0]
}

// ParsePlant resolves a plant name case-insensitively.
func ParsePlant(name string) (Plant, error) {
	n := strings.TrimSpace(name)
	for _, p := range Palette {
		if strings.EqualFold(n, plantNames[p]) {
			return p, nil
		}
	}
	return NoPlant, fmt.Errorf("%w: %q", ErrInvalidPlant, name)
}

// plantByInitial maps a board glyph back to its plant.
func plantByInitial(c byte) (Plant, bool) {
	up := strings.ToUpper(string(c))
	for _, p := range Palette {
		if plantNames[p][:1] == up {
			return p, true
		}
	}
	return NoPlant, false
}

// MarshalText encodes a plant by name.
func (p Plant) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a plant name; the empty string is an empty cell.
func (p *Plant) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = NoPlant
		return nil
	}
	v, err := ParsePlant(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// FailureKind classifies why a board did not pass.
type FailureKind int

const (
	NoFailure         FailureKind = iota
	MissingPlant                  // a required plant is absent from the board
	MissingNeighbor               // an occurrence lacks a required neighbour
	ForbiddenNeighbor             // two plants touch that must not
)
