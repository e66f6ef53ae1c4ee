package generator

import (
	"math/rand"

	"svw.info/verdant/internal/domain"
)

// maxAttempts bounds the draws per rule slot before falling back.
const maxAttempts = 100

// RuleGenerator draws round rule sets from its own random source.
type RuleGenerator struct {
	rng *rand.Rand
}

// NewRuleGenerator seeds a generator; equal seeds give equal sequences of rounds.
func NewRuleGenerator(seed int64) *RuleGenerator {
	return &RuleGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *RuleGenerator) pick() domain.Plant {
	return domain.Palette[g.rng.Intn(len(domain.Palette))]
}
