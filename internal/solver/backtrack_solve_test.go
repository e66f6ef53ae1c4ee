package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/generator"
	"svw.info/verdant/internal/validator"
)

var sample = domain.Puzzle{
	Round: 3,
	Seeds: 5,
	Rules: []domain.Rule{
		{Plant1: domain.Corn, Plant2: domain.Tomato, MustBeAdjacent: true},
		{Plant1: domain.Potato, Plant2: domain.Lettuce, MustBeAdjacent: false},
		{Plant1: domain.Tomato, Plant2: domain.Potato, MustBeAdjacent: true},
	},
	Required: []domain.Plant{domain.Corn, domain.Tomato, domain.Potato, domain.Lettuce},
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	v := validator.New()
	s := NewBacktrackingSolver(v)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &sample, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if out.Count() != sample.Seeds {
		t.Fatalf("planted %d cells, want %d: %s", out.Count(), sample.Seeds, out)
	}
	for i, p := range out {
		if p != domain.NoPlant && !sample.Requires(p) {
			t.Fatalf("cell %d holds off-roster plant %s", i, p)
		}
	}
	if res := v.Check(out, sample.Rules, sample.Required); !res.Pass {
		t.Fatalf("solution %s fails: %s", out, res.Reason())
	}
	t.Logf("Solved in %v, nodes=%d: %s", st.Duration, st.Nodes, out)
}

func TestSolveKeepsPlantedCells(t *testing.T) {
	s := NewBacktrackingSolver(validator.New())
	from := domain.Board{8: domain.Lettuce}
	out, _, err := s.Solve(context.Background(), &sample, &from)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out[8] != domain.Lettuce {
		t.Fatalf("pre-planted cell changed: %s", out)
	}
	if from.Count() != 1 {
		t.Fatalf("input board mutated: %s", &from)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	s := NewBacktrackingSolver(validator.New())
	// Two seeds cannot cover a three-plant roster.
	p := domain.Puzzle{
		Seeds: 2,
		Rules: []domain.Rule{
			{Plant1: domain.Corn, Plant2: domain.Tomato, MustBeAdjacent: true},
			{Plant1: domain.Corn, Plant2: domain.Lettuce, MustBeAdjacent: true},
		},
		Required: []domain.Plant{domain.Corn, domain.Tomato, domain.Lettuce},
	}
	_, _, err := s.Solve(context.Background(), &p, nil)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable, got %v", err)
	}

	over := domain.Board{0: domain.Corn, 1: domain.Tomato, 2: domain.Lettuce}
	_, _, err = s.Solve(context.Background(), &p, &over)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable for overplanted board, got %v", err)
	}
}

func TestSolveCanceled(t *testing.T) {
	s := NewBacktrackingSolver(validator.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := s.Solve(ctx, &sample, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSolveGeneratedRounds(t *testing.T) {
	g := generator.NewRuleGenerator(2024)
	s := NewBacktrackingSolver(validator.New())
	solved := 0
	for round := 1; round <= 5; round++ {
		p := g.Generate(round, domain.SeedBudget(round))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		out, _, err := s.Solve(ctx, &p, nil)
		cancel()
		switch {
		case err == nil:
			solved++
			if out.Count() != p.Seeds {
				t.Fatalf("round %d: planted %d, want %d", round, out.Count(), p.Seeds)
			}
		case errors.Is(err, ErrUnsolvable), errors.Is(err, context.DeadlineExceeded):
			// rule sets are heuristic; rare unsatisfiable draws are allowed
			t.Logf("round %d: %v", round, err)
		default:
			t.Fatalf("round %d: %v", round, err)
		}
	}
	if solved == 0 {
		t.Fatalf("no generated round was solvable")
	}
}
