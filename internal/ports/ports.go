package ports

import (
	"context"
	"time"

	"svw.info/verdant/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator draws the rule set for a round. It always returns a usable puzzle.
type Generator interface {
	Generate(round, seeds int) domain.Puzzle
}

// Checker decides whether a completed board satisfies a rule set.
type Checker interface {
	Check(b *domain.Board, rules []domain.Rule, required []domain.Plant) domain.CheckResult
}

// Solver completes a board so that it passes the checker using every seed.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle, from *domain.Board) (*domain.Board, Stats, error)
}

// Hinter suggests the next placement toward a valid board.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, b *domain.Board) (domain.Hint, bool, error)
}

// SettingsStore persists presentation preferences. Game progress is never stored.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}
