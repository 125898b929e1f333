// Package logging sends logrus output to a file so it does not draw over
// the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"traxor/internal/config"
)

// FileName is the log file name inside the log directory
const FileName = "traxor.log"

// Dir returns the directory the log file goes in
func Dir(cfg config.LogConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "traxor"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate log directory: %w", err)
	}
	return filepath.Join(dir, "traxor"), nil
}

// Setup points the standard logrus logger at the log file with a JSON
// formatter. The caller closes the returned file on exit.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	dir, err := Dir(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Configure(log.StandardLogger(), f, level)
	return f, nil
}

// Configure sets output, formatter and level on logger
func Configure(logger *log.Logger, out io.Writer, level log.Level) {
	logger.SetOutput(out)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetLevel(level)
}
