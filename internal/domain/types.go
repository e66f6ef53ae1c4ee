package domain

import (
	"fmt"
	"strings"
)

// Board holds one plant (or none) per grid cell, indexed row-major.
type Board [CellCount]Plant

// Count returns the number of planted cells.
func (b *Board) Count() int {
	n := 0
	for _, p := range b {
		if p != NoPlant {
			n++
		}
	}
	return n
}

// Contains reports whether p is planted anywhere.
func (b *Board) Contains(p Plant) bool {
	for _, v := range b {
		if v == p {
			return true
		}
	}
	return false
}

// Positions returns the indices holding p in ascending order.
func (b *Board) Positions(p Plant) []int {
	var out []int
	for i, v := range b {
		if v == p {
			out = append(out, i)
		}
	}
	return out
}

// String renders the board as three rows of initials, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < GridSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < GridSize; c++ {
			sb.WriteByte(b[r*GridSize+c].Initial())
		}
	}
	return sb.String()
}

// ParseBoard reads nine cells written as plant initials or '.'/'_' for empty.
// Separators '/', '|', ',' and whitespace are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for k := 0; k < len(s); k++ {
		c := s[k]
		switch c {
		case '/', '|', ',', ' ', '\t', '\n':
			continue
		}
		if i >= CellCount {
			return Board{}, fmt.Errorf("board %q: more than %d cells", s, CellCount)
		}
		if c != '.' && c != '_' {
			p, ok := plantByInitial(c)
			if !ok {
				return Board{}, fmt.Errorf("board %q: %w: %q", s, ErrInvalidPlant, string(c))
			}
			b[i] = p
		}
		i++
	}
	if i != CellCount {
		return Board{}, fmt.Errorf("board %q: got %d cells, want %d", s, i, CellCount)
	}
	return b, nil
}

// Rule binds two distinct plants to a required or forbidden adjacency.
type Rule struct {
	Plant1         Plant `json:"plant1" yaml:"plant1"`
	Plant2         Plant `json:"plant2" yaml:"plant2"`
	MustBeAdjacent bool  `json:"mustBeAdjacent" yaml:"mustBeAdjacent"`
}

// SamePair reports whether both rules name the same unordered pair of plants.
func (r Rule) SamePair(o Rule) bool {
	return (r.Plant1 == o.Plant1 && r.Plant2 == o.Plant2) ||
		(r.Plant1 == o.Plant2 && r.Plant2 == o.Plant1)
}

// Conflicts reports whether o contradicts r.
func (r Rule) Conflicts(o Rule) bool {
	return r.SamePair(o) && r.MustBeAdjacent != o.MustBeAdjacent
}

func (r Rule) String() string {
	verb := "cannot be"
	if r.MustBeAdjacent {
		verb = "must be"
	}
	return fmt.Sprintf("%s %s adjacent to %s", r.Plant1, verb, r.Plant2)
}

// Puzzle is one round's rule set together with the plants it requires.
type Puzzle struct {
	Round    int     `json:"round" yaml:"round"`
	Seeds    int     `json:"seeds" yaml:"seeds"`
	Rules    []Rule  `json:"rules" yaml:"rules"`
	Required []Plant `json:"required" yaml:"required"`
}

// Requires reports whether p belongs to the round's roster.
func (p *Puzzle) Requires(plant Plant) bool {
	for _, r := range p.Required {
		if r == plant {
			return true
		}
	}
	return false
}

// RequiredNames lists the roster as display names.
func (p *Puzzle) RequiredNames() []string {
	out := make([]string, len(p.Required))
	for i, r := range p.Required {
		out[i] = r.String()
	}
	return out
}

// CheckResult is the checker verdict. On failure it identifies the first violated
// constraint; RuleIndex and Cell are -1 when they do not apply.
type CheckResult struct {
	Pass      bool        `json:"pass"`
	Kind      FailureKind `json:"kind,omitempty"`
	RuleIndex int         `json:"ruleIndex"`
	Rule      Rule        `json:"rule"`
	Plant     Plant       `json:"plant,omitempty"`
	Cell      int         `json:"cell"`
}

// Passed is the verdict for a board satisfying every constraint.
func Passed() CheckResult { return CheckResult{Pass: true, RuleIndex: -1, Cell: -1} }

// Reason describes the failure in player-facing words; empty on pass.
func (r CheckResult) Reason() string {
	switch r.Kind {
	case MissingPlant:
		return fmt.Sprintf("missing required plant %s", r.Plant)
	case MissingNeighbor:
		other := r.Rule.Plant2
		if r.Plant == r.Rule.Plant2 {
			other = r.Rule.Plant1
		}
		return fmt.Sprintf("every %s must be adjacent to a %s (%s has none)", r.Plant, other, IndexToCoord(r.Cell))
	case ForbiddenNeighbor:
		return fmt.Sprintf("%s cannot be adjacent to %s (%s)", r.Rule.Plant1, r.Rule.Plant2, IndexToCoord(r.Cell))
	}
	return ""
}

// Hint suggests a single placement.
type Hint struct {
	Plant   Plant  `json:"plant"`
	Cell    int    `json:"cell"`
	Message string `json:"message,omitempty"`
}

// Settings are the player's presentation preferences.
type Settings struct {
	Theme string `yaml:"theme"`
	Rain  bool   `yaml:"rain"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultSettings returns light theme with rain enabled.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, Rain: true}
}
