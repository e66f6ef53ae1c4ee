package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/verdant/internal/domain"
)

const solveTimeout = 10 * time.Second

func (a *app) rulesCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rules dealt for a round",
		Long: `Deals the rules for one round and prints them with the seed budget.
Pass --seed to make the deal reproducible.

Example:
  verdant rules --round 3 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if round < 1 {
				return fmt.Errorf("--round must be at least 1, got %d", round)
			}
			seed := a.resolvedSeed()
			p, err := a.service(seed, nil).GenerateRound(round)
			if err != nil {
				return err
			}
			printPuzzle(cmd.OutOrStdout(), &p, seed)
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 1, "round number")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var (
		round int
		board string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a planted board against a round's rules",
		Long: `Deals the rules for a round (use the same --seed as "rules") and checks a board.
The board lists nine cells row by row as plant initials (C, L, E, T, P) or '.'.

Example:
  verdant check --round 1 --seed 42 --board "C../.T./C.."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if round < 1 {
				return fmt.Errorf("--round must be at least 1, got %d", round)
			}
			b, err := domain.ParseBoard(board)
			if err != nil {
				return err
			}
			seed := a.resolvedSeed()
			svc := a.service(seed, nil)
			p, err := svc.GenerateRound(round)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printPuzzle(out, &p, seed)
			if n := b.Count(); n != p.Seeds {
				return fmt.Errorf("%w: board plants %d of %d seeds", domain.ErrIncompleteSubmission, n, p.Seeds)
			}
			for i, plant := range b {
				if plant != domain.NoPlant && !p.Requires(plant) {
					return fmt.Errorf("%w: %s at %s is not in this round's rules", domain.ErrInvalidPlant, plant, domain.IndexToCoord(i))
				}
			}
			res, err := svc.CheckBoard(&b, &p)
			if err != nil {
				return err
			}
			a.logger.Debug("board checked", zap.String("board", b.String()), zap.Bool("pass", res.Pass))
			if !res.Pass {
				fmt.Fprintf(out, "FAIL: %s\n", res.Reason())
				return &domain.ViolationError{Result: res}
			}
			fmt.Fprintln(out, "PASS")
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 1, "round number")
	cmd.Flags().StringVar(&board, "board", "", "nine cells, e.g. \"C../.T./C..\"")
	_ = cmd.MarkFlagRequired("board")
	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a valid planting for a round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if round < 1 {
				return fmt.Errorf("--round must be at least 1, got %d", round)
			}
			seed := a.resolvedSeed()
			svc := a.service(seed, nil)
			p, err := svc.GenerateRound(round)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printPuzzle(out, &p, seed)

			ctx, cancel := context.WithTimeout(cmdContext(cmd), solveTimeout)
			defer cancel()
			b, st, err := svc.Solve(ctx, &p, nil)
			a.logger.Debug("solve finished", zap.Int("nodes", st.Nodes), zap.Duration("dur", st.Duration), zap.Error(err))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Solution:")
			printBoard(out, b)
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 1, "round number")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to --config",
		Long: `Writes the configuration currently in effect (defaults, file, environment and
flags) as YAML to the --config path. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat config: %w", err)
			}
			if err := a.cfg.Save(a.configPath); err != nil {
				return err
			}
			a.logger.Info("config written", zap.String("path", a.configPath))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printPuzzle(w io.Writer, p *domain.Puzzle, seed int64) {
	fmt.Fprintf(w, "Round %d (seed %d): %d seeds\n", p.Round, seed, p.Seeds)
	fmt.Fprintln(w, "Rules:")
	for _, r := range p.Rules {
		fmt.Fprintf(w, "  %s\n", r)
	}
	fmt.Fprintf(w, "Allowed plants: %s\n", strings.Join(p.RequiredNames(), ", "))
}

func printBoard(w io.Writer, b *domain.Board) {
	fmt.Fprintln(w, "   A B C")
	for r := 0; r < domain.GridSize; r++ {
		cells := make([]string, domain.GridSize)
		for c := 0; c < domain.GridSize; c++ {
			cells[c] = string(b[r*domain.GridSize+c].Initial())
		}
		fmt.Fprintf(w, "%d  %s\n", r+1, strings.Join(cells, " "))
	}
}
