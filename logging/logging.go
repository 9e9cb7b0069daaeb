package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/sky-dodger/parameter"
)

// Config controls file logging, stdout belongs to the terminal UI
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a JSON-lines file logger, or a Nop logger when disabled
// An existing log over parameter.LogMaxSize is moved aside with a timestamp suffix first
func Setup(cfg Config) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, parameter.LogFileName)
	if err := rotate(logPath); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	logger.Info().Str("level", level.String()).Msg("Logging started")
	return logger, f, nil
}

func rotate(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= parameter.LogMaxSize {
		return nil
	}
	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(logPath, ext), time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
