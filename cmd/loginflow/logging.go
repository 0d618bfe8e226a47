package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/loginflow/internal/config"
)

// newLogger returns a logger writing to the configured file. The terminal
// belongs to the program, so with no path configured records are dropped.
func newLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if lc.Level != "" {
		if err := level.UnmarshalText([]byte(strings.TrimSpace(lc.Level))); err != nil {
			return nil, nil, fmt.Errorf("log.level: %w", err)
		}
	}
	if strings.TrimSpace(lc.Path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(lc.Path, "loginflow")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
