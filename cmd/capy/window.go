package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-capy/internal/platform/window"
)

var (
	flagScale float64
	flagDebug bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W   - Hop (left click and touch work too)
  Enter        - Start
  P            - Pause
  R/Enter      - Restart (after game over)
  Q/Esc        - Quit

Image assets listed under "assets" in the config replace the procedural
art when all of them load.

Examples:
  capy window
  capy window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show TPS and the active skin")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	s, err := openSession(logger, 0, 0)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := window.Options{
		Player: s.player,
		Logger: logger,
		Scale:  flagScale,
		Debug:  flagDebug,
	}
	if s.store != nil {
		opts.History = s.store
	}
	return window.Run(s.game, s.rt, opts)
}
