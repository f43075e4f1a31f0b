package capy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-capy/internal/storage"
)

// Summary is the end-of-run result shown on the game-over panel.
type Summary struct {
	Score         int
	Hearts        int
	Cause         Cause
	BestScore     int
	BestHearts    int
	NewBestScore  bool
	NewBestHearts bool
}

// Record reports whether either best was beaten.
func (s Summary) Record() bool {
	return s.NewBestScore || s.NewBestHearts
}

// Lines returns the panel text, one entry per line.
func (s Summary) Lines() []string {
	score := fmt.Sprintf("Score: %d", s.Score)
	if s.NewBestScore {
		score += " NEW RECORD!"
	}
	hearts := fmt.Sprintf("Hearts: %d", s.Hearts)
	if s.NewBestHearts {
		hearts += " NEW RECORD!"
	}
	return []string{score, hearts}
}

// Records tracks the two persisted bests for a process lifetime.
// Bests are read once at construction; writes happen only when a run
// ends with a strictly greater value.
type Records struct {
	store      storage.BestStore
	logger     *log.Logger
	bestScore  int
	bestHearts int
}

// NewRecords loads the bests from store. A nil store keeps bests in memory
// only. Read failures are logged and treated as no prior best.
func NewRecords(store storage.BestStore, logger *log.Logger) *Records {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}

	r := &Records{store: store, logger: logger}
	r.bestScore = r.load(storage.KeyBestScore)
	r.bestHearts = r.load(storage.KeyBestHearts)
	return r
}

// load reads one slot, falling back to 0.
func (r *Records) load(key string) int {
	v, err := r.store.Best(key)
	if err != nil {
		r.logger.Warn("cannot load best, starting from zero", "key", key, "err", err)
		return 0
	}
	if v < 0 {
		r.logger.Warn("ignoring negative best", "key", key, "value", v)
		return 0
	}
	return v
}

// Best returns the current best score and heart count.
func (r *Records) Best() (score, hearts int) {
	return r.bestScore, r.bestHearts
}

// Finish compares a finished run against the bests, persists any strictly
// greater value and returns the summary. A tie is not a record.
func (r *Records) Finish(score, hearts int, cause Cause) Summary {
	sum := Summary{Score: score, Hearts: hearts, Cause: cause}

	if score > r.bestScore {
		r.bestScore = score
		r.save(storage.KeyBestScore, score)
		sum.NewBestScore = score > 0
	}
	if hearts > r.bestHearts {
		r.bestHearts = hearts
		r.save(storage.KeyBestHearts, hearts)
		sum.NewBestHearts = hearts > 0
	}

	sum.BestScore = r.bestScore
	sum.BestHearts = r.bestHearts
	return sum
}

// save writes a best value. Failures never reach the player.
func (r *Records) save(key string, value int) {
	if err := r.store.SetBest(key, value); err != nil {
		r.logger.Warn("cannot save best", "key", key, "value", value, "err", err)
		return
	}
	r.logger.Debug("new best saved", "key", key, "value", value)
}
