package domain

const (
	MaxRules        = 3
	MaxSeeds        = 8
	CheckpointAt    = 6 // rounds past this restart at CheckpointRound
	CheckpointRound = 7
)

// RuleCount is the number of rules drawn for a round.
func RuleCount(round int) int {
	return min(round, MaxRules)
}

// SeedBudget is the number of placements allowed in a round.
func SeedBudget(round int) int {
	return min(round+2, MaxSeeds)
}

// RoundAfterFailure returns the round a failed submission restarts from.
func RoundAfterFailure(round int) int {
	if round > CheckpointAt {
		return CheckpointRound
	}
	return 1
}
