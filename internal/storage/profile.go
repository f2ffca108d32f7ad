package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Profile adapts a Store to flappy.BestScoreStore for one player profile.
// Failures are logged and swallowed: a broken database costs the player their
// best score, never the game. A Profile with a nil store keeps nothing.
type Profile struct {
	store  *Store
	name   string
	logger *log.Logger
}

// Ensure Profile implements BestScoreStore
var _ flappy.BestScoreStore = (*Profile)(nil)

// NewProfile returns the best-score view of the named profile.
func NewProfile(store *Store, name string, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.Default()
	}
	return &Profile{store: store, name: name, logger: logger}
}

// Name returns the profile name.
func (p *Profile) Name() string { return p.name }

// LoadBestScore implements flappy.BestScoreStore.
func (p *Profile) LoadBestScore() int {
	if p.store == nil {
		return 0
	}
	score, err := p.store.BestScore(p.name)
	if err != nil {
		p.logger.Warn("cannot load best score", "profile", p.name, "err", err)
		return 0
	}
	return score
}

// SaveBestScore implements flappy.BestScoreStore.
func (p *Profile) SaveBestScore(score int) {
	if p.store == nil {
		return
	}
	saved, err := p.store.SaveBestScore(p.name, score)
	if err != nil {
		p.logger.Warn("cannot save best score", "profile", p.name, "score", score, "err", err)
		return
	}
	if saved {
		p.logger.Debug("best score saved", "profile", p.name, "score", score)
	}
}
