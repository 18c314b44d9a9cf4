// ABOUTME: Thread-safe shared config snapshot
// ABOUTME: Hands settings between the TUI loop and pick execution

package config

import "sync"

// SharedConfig is a mutex-guarded config snapshot. The TUI updates it
// on every settings change; whoever executes a pick reads a consistent
// copy.
type SharedConfig struct {
	mu  sync.RWMutex
	cfg Config
}

// Get returns a copy of the current config.
func (s *SharedConfig) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// Update replaces the stored config.
func (s *SharedConfig) Update(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
}
