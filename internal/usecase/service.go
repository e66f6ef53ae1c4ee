package usecase

import (
	"context"
	"errors"

	"svw.info/verdant/internal/domain"
	"svw.info/verdant/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Checker   ports.Checker
	Solver    ports.Solver
	Hinter    ports.Hinter
	Settings  ports.SettingsStore
}

func NewService(g ports.Generator, c ports.Checker, s ports.Solver, h ports.Hinter, st ports.SettingsStore) *Service {
	return &Service{Generator: g, Checker: c, Solver: s, Hinter: h, Settings: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// GenerateRound draws the rule set for a round with its standard seed budget.
func (u *Service) GenerateRound(round int) (domain.Puzzle, error) {
	if u.Generator == nil {
		return domain.Puzzle{}, errNotConfigured
	}
	return u.Generator.Generate(round, domain.SeedBudget(round)), nil
}

func (u *Service) CheckBoard(b *domain.Board, p *domain.Puzzle) (domain.CheckResult, error) {
	if u.Checker == nil {
		return domain.CheckResult{}, errNotConfigured
	}
	return u.Checker.Check(b, p.Rules, p.Required), nil
}

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle, from *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p, from)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p, b)
}

// Settings persistence. Without a store the defaults are used and nothing is saved.
func (u *Service) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if u.Settings == nil {
		return domain.DefaultSettings(), nil
	}
	return u.Settings.Load(ctx)
}
func (u *Service) SaveSettings(ctx context.Context, s domain.Settings) error {
	if u.Settings == nil {
		return nil
	}
	return u.Settings.Save(ctx, s)
}
