package validator

import (
	"svw.info/verdant/internal/domain"
)

// RuleChecker evaluates a completed board against a round's rules.
type RuleChecker struct{}

func New() *RuleChecker { return &RuleChecker{} }

// Check reports the first failing constraint. Required plants are checked first in
// roster order, then each rule in order, scanning cells from A1 to C3.
func (v *RuleChecker) Check(b *domain.Board, rules []domain.Rule, required []domain.Plant) domain.CheckResult {
	// coverage
	for _, p := range required {
		if !b.Contains(p) {
			return domain.CheckResult{Kind: domain.MissingPlant, Plant: p, RuleIndex: -1, Cell: -1}
		}
	}
	// adjacency
	for i, r := range rules {
		pos1 := b.Positions(r.Plant1)
		pos2 := b.Positions(r.Plant2)
		if r.MustBeAdjacent {
			if cell, ok := allTouch(pos1, pos2); !ok {
				return domain.CheckResult{Kind: domain.MissingNeighbor, RuleIndex: i, Rule: r, Plant: r.Plant1, Cell: cell}
			}
			if cell, ok := allTouch(pos2, pos1); !ok {
				return domain.CheckResult{Kind: domain.MissingNeighbor, RuleIndex: i, Rule: r, Plant: r.Plant2, Cell: cell}
			}
			continue
		}
		for _, a := range pos1 {
			for _, b := range pos2 {
				if domain.IsAdjacent(a, b) {
					return domain.CheckResult{Kind: domain.ForbiddenNeighbor, RuleIndex: i, Rule: r, Plant: r.Plant1, Cell: a}
				}
			}
		}
	}
	return domain.Passed()
}

// allTouch returns the first cell in from with no neighbour in to.
func allTouch(from, to []int) (int, bool) {
	for _, a := range from {
		found := false
		for _, b := range to {
			if domain.IsAdjacent(a, b) {
				found = true
				break
			}
		}
		if !found {
			return a, false
		}
	}
	return -1, true
}
