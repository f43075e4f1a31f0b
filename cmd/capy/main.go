// capy is a side-scrolling arcade game: hop a capybara through the cypress
// trees of a swamp and collect hearts on the way.
//
// Usage:
//
//	capy                  - Play in the terminal (same as capy play)
//	capy play             - Play in the terminal
//	capy window           - Play in a desktop window
//	capy scores           - Print best values and the top runs
//	capy board            - Interactive scoreboard
//	capy config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.capy/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible obstacle layouts
//	--tps <rate>        - Simulation steps per second (default: 60)
//	--db <path>         - Database path (default: ~/.capy/capy.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--sound             - Play sound cues through the speaker
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
	"github.com/vovakirdan/flappy-capy/internal/sound"
	"github.com/vovakirdan/flappy-capy/internal/sound/speakerout"
	"github.com/vovakirdan/flappy-capy/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTPS      int
	flagDBPath   string
	flagLogLevel string
	flagSound    bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "capy",
	Short: "Flappy Capy - hop a capybara through the swamp",
	Long: `Flappy Capy is a side-scrolling arcade game. The capybara falls under
gravity, hops on a key press and has to pass through the gaps between
cypress trees. Hearts hanging in the gaps are a bonus.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  scores   - Print best values and the top runs
  board    - Interactive scoreboard
  config   - Print the effective configuration

Examples:
  capy
  capy window --sound
  capy play --seed 42
  capy scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", config.BaseTickRate, "Simulation steps per second")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.capy/capy.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume in [0, 1]")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "capy",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.capy/capy.log for appending. Terminal frontends log
// there so the alternate screen is not corrupted.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot expand home directory: %w", err)
	}
	dir := filepath.Join(home, ".capy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "capy.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads and validates the game config. An invalid file is
// refused before any frontend starts.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// session holds everything a frontend needs for one program run.
type session struct {
	game   *capy.Game
	rt     core.RuntimeConfig
	store  *storage.Store // nil when the database could not be opened
	player sound.Player
	logger *log.Logger
	sound  bool
}

// openSession loads the config, opens the database and the speaker, and
// builds the game. Persistence and sound failures degrade, they never stop
// the game.
func openSession(logger *log.Logger, screenW, screenH int) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	rt := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagTPS,
		Seed:     flagSeed,
	}
	if rt.TickRate <= 0 {
		rt.TickRate = config.BaseTickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	s := &session{rt: rt, logger: logger, player: sound.Nop{}}

	var bests storage.BestStore = storage.NewMemoryStore()
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open database, bests are kept in memory", "error", err)
	} else {
		s.store = store
		bests = store
	}

	if flagSound {
		engine, err := speakerout.Start(flagVolume)
		if err != nil {
			logger.Warn("could not start sound", "error", err)
		} else {
			s.player = engine
			s.sound = true
		}
	}

	s.game = capy.New(cfg, rt, capy.NewRecords(bests, logger))
	logger.Debug("session ready", "seed", rt.Seed, "tps", rt.TickRate, "db", s.store != nil, "sound", s.sound)
	return s, nil
}

// Close releases the database and the speaker.
func (s *session) Close() {
	if s.sound {
		speakerout.Stop()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close database", "error", err)
		}
	}
}
