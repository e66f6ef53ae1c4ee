package domain

import "errors"

// Player-facing outcomes. None of them leaves a session unusable.
var (
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrInvalidPlant         = errors.New("invalid plant")
	ErrCellOccupied         = errors.New("cell already occupied")
	ErrNoSeedsLeft          = errors.New("no seeds left")
	ErrIncompleteSubmission = errors.New("seeds remain unplanted")
	ErrRuleViolation        = errors.New("rule violation")
	ErrNothingToUndo        = errors.New("nothing to undo")
	ErrRoundOver            = errors.New("round is over")
)

// ViolationError carries the checker verdict of a failed submission.
type ViolationError struct {
	Result CheckResult
}

func (e *ViolationError) Error() string {
	return ErrRuleViolation.Error() + ": " + e.Result.Reason()
}

func (e *ViolationError) Unwrap() error { return ErrRuleViolation }
