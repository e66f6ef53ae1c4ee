package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/verdant/internal/adapters/tui"
	"svw.info/verdant/internal/config"
	"svw.info/verdant/internal/generator"
	"svw.info/verdant/internal/hint"
	"svw.info/verdant/internal/infrastructure/storage"
	"svw.info/verdant/internal/logging"
	"svw.info/verdant/internal/ports"
	"svw.info/verdant/internal/solver"
	"svw.info/verdant/internal/usecase"
	"svw.info/verdant/internal/validator"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool
	seed       int64

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "verdant",
		Short: "A 3x3 garden puzzle: plant seeds so every adjacency rule holds",
		Long: `verdant deals a few rules each round such as "Corn must be adjacent to Tomato"
or "Potato cannot be adjacent to Lettuce" (diagonals count). Plant every seed on the
3x3 grid, then check your garden. Win to advance; lose and you start over, from
round 7 once you have made it past round 6.

Run without arguments to start the interactive game.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = a.seed
			}
			a.cfg = cfg

			// The interactive game owns the terminal; log only to a file there.
			if isPlay(cmd) && cfg.LogFile == "" && !a.verbose {
				a.logger = zap.NewNop()
				return nil
			}
			a.logger, err = logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Verbose: a.verbose})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "verdant.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed for rule generation (0 = time based)")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Start the interactive game",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return a.runPlay(cmd) },
		},
		a.rulesCmd(),
		a.checkCmd(),
		a.solveCmd(),
		a.configCmd(),
	)
	return root
}

func isPlay(cmd *cobra.Command) bool {
	return cmd.Name() == "play" || !cmd.HasParent()
}

// resolvedSeed returns the configured seed, picking a time-based one for 0.
func (a *app) resolvedSeed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return time.Now().UnixNano()
}

// service wires providers into the use case layer.
func (a *app) service(seed int64, settings ports.SettingsStore) *usecase.Service {
	v := validator.New()
	s := solver.NewBacktrackingSolver(v)
	return usecase.NewService(generator.NewRuleGenerator(seed), v, s, hint.NewPlanner(s), settings)
}

func (a *app) runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	settings, err := storage.Open(a.cfg.SettingsApp, a.logger)
	if err != nil {
		a.logger.Warn("settings will not persist", zap.Error(err))
	}
	seed := a.resolvedSeed()
	svc := a.service(seed, settings)

	prefs, err := svc.LoadSettings(ctx)
	if err != nil {
		a.logger.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	if !a.cfg.Rain {
		prefs.Rain = false
	}
	delay, _ := a.cfg.Delay()

	session, err := usecase.NewSession(svc, usecase.SessionOptions{
		UndoCapacity: a.cfg.UndoCapacity,
		Logger:       a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	a.logger.Info("game started", zap.String("session", session.ID), zap.Int64("seed", seed))

	model := tui.New(session, tui.Options{
		Delay:    delay,
		Settings: prefs,
		Store:    settings,
		Logger:   a.logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
