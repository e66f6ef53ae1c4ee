package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/ports"
)

// Solve extends from (nil means an empty board) to a board that plants exactly
// p.Seeds cells, uses only roster plants and passes the checker. Cells already
// planted are kept as they are.
func (s *BacktrackingSolver) Solve(ctx context.Context, p *domain.Puzzle, from *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	var grid domain.Board
	if from != nil {
		grid = *from
	}
	planted := grid.Count()
	if planted > p.Seeds {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: %d plants exceed %d seeds", ErrUnsolvable, planted, p.Seeds)
	}
	nodes := 0
	var dfs func(cell, left int) bool
	dfs = func(cell, left int) bool {
		if ctx.Err() != nil {
			return false
		}
		nodes++
		if missing(&grid, p.Required) > left {
			return false
		}
		if cell == domain.CellCount {
			return left == 0 && s.Checker.Check(&grid, p.Rules, p.Required).Pass
		}
		if grid[cell] != domain.NoPlant {
			return dfs(cell+1, left)
		}
		if left > 0 {
			for _, plant := range p.Required {
				if forbidden(&grid, p.Rules, cell, plant) {
					continue
				}
				grid[cell] = plant
				if dfs(cell+1, left-1) {
					return true
				}
				grid[cell] = domain.NoPlant
			}
		}
		// leave the cell empty only if the remaining cells can still take every seed
		if domain.CellCount-cell-1 >= left {
			return dfs(cell+1, left)
		}
		return false
	}
	ok := dfs(0, p.Seeds-planted)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := grid
	return &out, st, nil
}
