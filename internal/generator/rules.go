package generator

import (
	"svw.info/verdant/internal/domain"
)

// Generate draws min(round, 3) rules for a round played with the given seed budget.
// Each slot gets up to maxAttempts random candidates; when none is acceptable a
// must-be-adjacent fallback is used, so Generate always terminates.
func (g *RuleGenerator) Generate(round, seeds int) domain.Puzzle {
	n := domain.RuleCount(round)
	p := domain.Puzzle{
		Round:    round,
		Seeds:    seeds,
		Rules:    make([]domain.Rule, 0, n),
		Required: make([]domain.Plant, 0, len(domain.Palette)),
	}
	for len(p.Rules) < n {
		r, ok := g.draw(p.Rules, p.Required, seeds)
		if !ok {
			r = g.fallback(p.Rules)
		}
		p.Rules = append(p.Rules, r)
		p.Required = addRequired(p.Required, r.Plant1, r.Plant2)
	}
	return p
}

func (g *RuleGenerator) draw(rules []domain.Rule, required []domain.Plant, seeds int) (domain.Rule, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		r := domain.Rule{
			Plant1:         g.pick(),
			Plant2:         g.pick(),
			MustBeAdjacent: g.rng.Float64() < 0.5,
		}
		if r.Plant1 == r.Plant2 || conflicts(r, rules) || !withinBudget(r, required, seeds) {
			continue
		}
		return r, true
	}
	return domain.Rule{}, false
}

// fallback picks a random pair and forces it to must-be-adjacent. Partners that
// would contradict an accepted must-not rule are skipped.
func (g *RuleGenerator) fallback(rules []domain.Rule) domain.Rule {
	first := g.pick()
	others := make([]domain.Plant, 0, len(domain.Palette)-1)
	for _, p := range domain.Palette {
		if p == first {
			continue
		}
		if conflicts(domain.Rule{Plant1: first, Plant2: p, MustBeAdjacent: true}, rules) {
			continue
		}
		others = append(others, p)
	}
	return domain.Rule{
		Plant1:         first,
		Plant2:         others[g.rng.Intn(len(others))],
		MustBeAdjacent: true,
	}
}

func conflicts(r domain.Rule, rules []domain.Rule) bool {
	for _, o := range rules {
		if r.Conflicts(o) {
			return true
		}
	}
	return false
}

// withinBudget counts the already required plants this candidate does not name
// and holds that count to seeds-2.
func withinBudget(r domain.Rule, required []domain.Plant, seeds int) bool {
	n := 0
	for _, p := range required {
		if p != r.Plant1 && p != r.Plant2 {
			n++
		}
	}
	return n <= seeds-2
}

func addRequired(required []domain.Plant, plants ...domain.Plant) []domain.Plant {
	for _, p := range plants {
		seen := false
		for _, q := range required {
			if q == p {
				seen = true
				break
			}
		}
		if !seen {
			required = append(required, p)
		}
	}
	return required
}
