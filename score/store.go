package score

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Store persists the leaderboard between sessions
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config selects and locates the score backend
type Config struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// ValidBackend reports whether name is a known backend
func ValidBackend(name string) bool {
	switch strings.ToLower(name) {
	case BackendMemory, BackendFile, BackendSQLite:
		return true
	}
	return false
}

// Open creates a store from configuration
func Open(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("score store %q: empty path", cfg.Backend)
		}
		return NewFileStore(cfg.Path), nil
	case BackendSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("score store %q: empty path", cfg.Backend)
		}
		return OpenSQLStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown score backend: %s", cfg.Backend)
	}
}

// Close releases the store if it holds resources
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
