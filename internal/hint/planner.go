package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/ports"
	"svw.info/verdant/internal/solver"
)

// Planner suggests placements taken from a solver completion of the current board.
type Planner struct {
	Solver ports.Solver
}

func NewPlanner(s ports.Solver) *Planner { return &Planner{Solver: s} }

// Hint returns the first empty cell, in index order, that some valid completion
// of b plants. found is false when b is already full or cannot be completed.
func (h *Planner) Hint(ctx context.Context, p *domain.Puzzle, b *domain.Board) (domain.Hint, bool, error) {
	if b.Count() >= p.Seeds {
		return domain.Hint{}, false, nil
	}
	full, _, err := h.Solver.Solve(ctx, p, b)
	if errors.Is(err, solver.ErrUnsolvable) {
		return domain.Hint{}, false, nil
	}
	if err != nil {
		return domain.Hint{}, false, err
	}
	for i := range b {
		if b[i] != domain.NoPlant || full[i] == domain.NoPlant {
			continue
		}
		return domain.Hint{
			Plant:   full[i],
			Cell:    i,
			Message: fmt.Sprintf("try planting %s at %s", full[i], domain.IndexToCoord(i)),
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
