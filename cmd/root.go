package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dimaq12/minesweaper/config"
	"github.com/dimaq12/minesweaper/game"
)

// newRootCmd builds the root command with its own flag set and viper
// instance.
func newRootCmd() *cobra.Command {
	var configFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "minesweaper",
		Short: "Play minesweeper in the terminal",
		Long: `Play minesweeper in the terminal.

Move with the arrow keys, Enter or left click opens a cell, 'f' or right
click flags it, 'r' starts over, 1-5 switch level and 'q' quits.

Examples:
  minesweaper --level 2
  minesweaper --side 12 --hazards 30
  minesweaper --config sweeper.yaml --log-file sweeper.log`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return runGame(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file (YAML, JSON or TOML)")
	rootCmd.Flags().IntP("level", "l", 0, "Difficulty level 1-5 (asks when unset)")
	rootCmd.Flags().Int("hazards", 0, "Mines on a custom board")
	rootCmd.Flags().Int("side", 0, "Side length of a custom board")
	rootCmd.Flags().Int64("seed", 0, "Seed for reproducible boards (0 = random)")
	rootCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-file", "", "Write logs to this file")

	for key, flag := range map[string]string{
		"level":     "level",
		"hazards":   "hazards",
		"side":      "side",
		"seed":      "seed",
		"log_level": "log-level",
		"log_file":  "log-file",
	} {
		if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, cfg *config.Config) error {
	log, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	d, err := resolveDifficulty(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, errQuit) {
		fmt.Fprintln(cmd.OutOrStdout(), "Quitting...")
		return nil
	}
	if err != nil {
		return err
	}

	session, err := game.NewSession(d, game.WithSeed(cfg.Seed), game.WithLogger(log))
	if err != nil {
		return err
	}

	renderer := game.NewRenderer()
	controller := game.NewGameController(session, renderer, log)
	app := tview.NewApplication()
	controller.StartGame()
	controller.Bind(app)

	if err := app.SetRoot(renderer.Root(), true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	switch session.Outcome() {
	case game.Won:
		fmt.Fprintln(cmd.OutOrStdout(), "Congratulations! You won the game!")
	case game.Lost:
		fmt.Fprintln(cmd.OutOrStdout(), "Game Over! You hit a mine.")
	}
	return nil
}
