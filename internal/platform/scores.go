// Package platform holds what the presentation backends share.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// ScoreKeeper saves the score of each run of a game once: when the run is
// over, or when the player quits with a positive score.
type ScoreKeeper struct {
	store  *storage.Store
	game   registry.Game
	logger *log.Logger
	saved  bool
}

// NewScoreKeeper returns a keeper for game. A nil store or a game that is
// not a registry.Scorer makes every call a no-op.
func NewScoreKeeper(store *storage.Store, game registry.Game, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &ScoreKeeper{store: store, game: game, logger: logger}
}

// Observe is called after every tick. It saves a finished run and notices
// when a new one starts.
func (k *ScoreKeeper) Observe(ticks uint64) {
	s, ok := k.game.(registry.Scorer)
	if !ok {
		return
	}
	switch {
	case s.Over():
		k.save(s, ticks)
	case k.saved:
		k.saved = false
	}
}

// Finish saves the current run when the player quits.
func (k *ScoreKeeper) Finish(ticks uint64) {
	s, ok := k.game.(registry.Scorer)
	if !ok || (!s.Over() && s.Score() <= 0) {
		return
	}
	k.save(s, ticks)
}

func (k *ScoreKeeper) save(s registry.Scorer, ticks uint64) {
	if k.store == nil || k.saved {
		return
	}
	if _, err := k.store.SaveScore(k.game.ID(), s.Score(), ticks); err != nil {
		k.logger.Error("cannot save score", "game", k.game.ID(), "error", err)
		return
	}
	k.saved = true
	k.logger.Info("score saved", "game", k.game.ID(), "score", s.Score(), "ticks", ticks)
}

// Saved reports whether the current run's score is stored.
func (k *ScoreKeeper) Saved() bool {
	return k.saved
}
