package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-capy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W   - Hop (mouse click works too)
  Enter/Space  - Start
  P            - Pause
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.capy/screenshots
  Q/Ctrl+C     - Quit

Logs go to ~/.capy/capy.log while the game is running.

Examples:
  capy play
  capy play --seed 42
  capy play --tps 30 --config ./my-capy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := openSession(logger, width, height)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := tui.Options{
		Player: s.player,
		Logger: logger,
	}
	if s.store != nil {
		opts.History = s.store
	}
	return tui.Run(s.game, s.rt, opts)
}
