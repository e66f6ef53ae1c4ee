package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"svw.info/verdant/internal/domain"
)

// Session is one player's game: the round counter, its rules, the board and the
// undo history. It is driven by a single caller and is not safe for concurrent use.
type Session struct {
	ID string

	svc     *Service
	log     *zap.Logger
	round   int
	puzzle  domain.Puzzle
	board   domain.Board
	seeds   int
	history *History
	over    bool // set by Submit, cleared by NextRound
}

type SessionOptions struct {
	UndoCapacity int
	Logger       *zap.Logger
}

// Outcome describes a submission. NextRound is the round the caller should set up
// with Session.NextRound once any transition has finished.
type Outcome struct {
	Passed    bool
	Result    domain.CheckResult
	Round     int
	NextRound int
}

// NewSession starts a game at round 1.
func NewSession(svc *Service, opts SessionOptions) (*Session, error) {
	if svc == nil || svc.Generator == nil || svc.Checker == nil {
		return nil, errNotConfigured
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	s := &Session{
		ID:      id,
		svc:     svc,
		log:     logger.With(zap.String("session", id)),
		history: NewHistory(opts.UndoCapacity),
	}
	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start resets progress to round 1 and draws its rules.
func (s *Session) Start() error {
	s.round = 1
	return s.NextRound()
}

// NextRound draws fresh rules for the current round number and clears the board.
func (s *Session) NextRound() error {
	p, err := s.svc.GenerateRound(s.round)
	if err != nil {
		return err
	}
	s.puzzle = p
	s.reset()
	s.log.Info("round started",
		zap.Int("round", s.round),
		zap.Int("seeds", s.seeds),
		zap.Int("rules", len(p.Rules)),
		zap.Strings("required", p.RequiredNames()),
	)
	return nil
}

// Restart replays the current round with the same rules on an empty board.
func (s *Session) Restart() error {
	if s.over {
		return domain.ErrRoundOver
	}
	s.reset()
	s.log.Info("round restarted", zap.Int("round", s.round))
	return nil
}

func (s *Session) reset() {
	s.board = domain.Board{}
	s.seeds = s.puzzle.Seeds
	s.history.Clear()
	s.over = false
}

// Place plants the named plant at a coordinate such as "B2".
func (s *Session) Place(name, coord string) error {
	if s.over {
		return domain.ErrRoundOver
	}
	plant, err := domain.ParsePlant(name)
	if err != nil || !s.puzzle.Requires(plant) {
		s.log.Debug("placement rejected", zap.String("plant", name), zap.String("reason", "roster"))
		return s.rosterError(name)
	}
	idx, err := domain.CoordToIndex(coord)
	if err != nil {
		s.log.Debug("placement rejected", zap.String("coord", coord), zap.Error(err))
		return err
	}
	return s.PlaceAt(plant, idx)
}

// PlaceAt plants p at cell idx after the roster, cell and seed admission checks.
// A rejected placement leaves the board unchanged.
func (s *Session) PlaceAt(p domain.Plant, idx int) error {
	if s.over {
		return domain.ErrRoundOver
	}
	if !s.puzzle.Requires(p) {
		return s.rosterError(p.String())
	}
	if idx < 0 || idx >= domain.CellCount {
		return fmt.Errorf("%w: cell %d", domain.ErrInvalidCoordinate, idx)
	}
	if s.board[idx] != domain.NoPlant {
		return fmt.Errorf("%w: %s holds %s", domain.ErrCellOccupied, domain.IndexToCoord(idx), s.board[idx])
	}
	if s.seeds <= 0 {
		return domain.ErrNoSeedsLeft
	}
	s.history.Push(Snapshot{Board: s.board, Seeds: s.seeds})
	s.board[idx] = p
	s.seeds--
	s.log.Debug("planted",
		zap.Stringer("plant", p),
		zap.String("coord", domain.IndexToCoord(idx)),
		zap.Int("seeds_left", s.seeds),
	)
	return nil
}

func (s *Session) rosterError(name string) error {
	return fmt.Errorf("%w: %s is not in this round's rules (allowed: %s)",
		domain.ErrInvalidPlant, name, strings.Join(s.puzzle.RequiredNames(), ", "))
}

// Undo restores the board and seed count from before the latest placement.
func (s *Session) Undo() error {
	if s.over {
		return domain.ErrRoundOver
	}
	snap, ok := s.history.Pop()
	if !ok {
		return domain.ErrNothingToUndo
	}
	s.board = snap.Board
	s.seeds = snap.Seeds
	s.log.Debug("undo", zap.Int("seeds_left", s.seeds))
	return nil
}

// Submit checks a completed board. On success the round counter advances; on a
// violation it falls back to round 1, or to the checkpoint round past round 6, and
// a *domain.ViolationError is returned alongside the outcome.
func (s *Session) Submit() (Outcome, error) {
	if s.over {
		return Outcome{}, domain.ErrRoundOver
	}
	if s.seeds > 0 {
		return Outcome{}, fmt.Errorf("%w: %d left", domain.ErrIncompleteSubmission, s.seeds)
	}
	res, err := s.svc.CheckBoard(&s.board, &s.puzzle)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Passed: res.Pass, Result: res, Round: s.round}
	s.over = true
	if res.Pass {
		s.round++
		out.NextRound = s.round
		s.log.Info("round passed", zap.Int("round", out.Round), zap.String("board", s.board.String()))
		return out, nil
	}
	s.round = domain.RoundAfterFailure(s.round)
	out.NextRound = s.round
	s.log.Info("round failed",
		zap.Int("round", out.Round),
		zap.Int("next_round", out.NextRound),
		zap.String("board", s.board.String()),
		zap.String("reason", res.Reason()),
	)
	return out, &domain.ViolationError{Result: res}
}

// Hint suggests a placement that keeps the board completable.
func (s *Session) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if s.over {
		return domain.Hint{}, false, domain.ErrRoundOver
	}
	return s.svc.Hint(ctx, &s.puzzle, &s.board)
}

func (s *Session) Round() int               { return s.round }
func (s *Session) Seeds() int               { return s.seeds }
func (s *Session) SeedBudget() int          { return s.puzzle.Seeds }
func (s *Session) Board() domain.Board      { return s.board }
func (s *Session) Rules() []domain.Rule     { return slices.Clone(s.puzzle.Rules) }
func (s *Session) Required() []domain.Plant { return slices.Clone(s.puzzle.Required) }
func (s *Session) Over() bool               { return s.over }
func (s *Session) UndoDepth() int           { return s.history.Len() }
