package lexicon

import (
	"log/slog"
	"sync"
)

// Store guards the active lexicon so the watcher can swap it while a
// session reads it.
type Store struct {
	mu     sync.RWMutex
	active *Lexicon
	logger *slog.Logger
}

func NewStore(initial *Lexicon, logger *slog.Logger) *Store {
	if initial == nil {
		initial = Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{active: initial, logger: logger}
}

// Current returns the active lexicon. Callers treat it as read-only.
func (s *Store) Current() *Lexicon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Reload replaces the active lexicon from path. A file that fails to load
// keeps the previous lexicon in place.
func (s *Store) Reload(path string) error {
	loaded, err := LoadFile(path)
	if err != nil {
		s.logger.Warn("lexicon reload failed, keeping previous lists", "path", path, "error", err)
		return err
	}
	s.mu.Lock()
	s.active = loaded
	s.mu.Unlock()
	s.logger.Info("lexicon reloaded",
		"path", path,
		"categories", len(loaded.Categories),
		"use_cases", len(loaded.UseCases),
		"features", len(loaded.Features),
		"brands", len(loaded.Brands))
	return nil
}
