package solver

import (
	"errors"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/ports"
)

// ErrUnsolvable is returned when no board using every seed satisfies the rules.
var ErrUnsolvable = errors.New("no valid planting exists")

// BacktrackingSolver searches cell by cell for a planting that passes the checker.
type BacktrackingSolver struct {
	Checker ports.Checker
}

func NewBacktrackingSolver(c ports.Checker) *BacktrackingSolver {
	return &BacktrackingSolver{Checker: c}
}

// --- helpers used by Solve ---

// forbidden reports whether planting p at cell touches an already planted
// partner of a must-not-be-adjacent rule.
func forbidden(b *domain.Board, rules []domain.Rule, cell int, p domain.Plant) bool {
	for _, r := range rules {
		if r.MustBeAdjacent {
			continue
		}
		var other domain.Plant
		switch p {
		case r.Plant1:
			other = r.Plant2
		case r.Plant2:
			other = r.Plant1
		default:
			continue
		}
		for _, n := range domain.Neighbors(cell) {
			if b[n] == other {
				return true
			}
		}
	}
	return false
}

// missing counts roster plants not yet on the board.
func missing(b *domain.Board, required []domain.Plant) int {
	n := 0
	for _, p := range required {
		if !b.Contains(p) {
			n++
		}
	}
	return n
}
