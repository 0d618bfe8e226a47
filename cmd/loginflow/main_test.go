package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/loginflow/internal/config"
	"github.com/jask/loginflow/internal/flow"
)

func TestDescribeOutcome(t *testing.T) {
	tests := []struct {
		outcome flow.Outcome
		url     string
		want    string
	}{
		{flow.OutcomeNone, "https://x", ""},
		{flow.OutcomeRetry, "", "retry requested"},
		{flow.OutcomeFeedback, "https://x", "feedback requested: https://x"},
		{flow.OutcomeFeedback, "", "feedback requested"},
		{flow.OutcomeSignup, "", "sign up selected"},
		{flow.OutcomeLogin, "", "log in selected"},
	}
	for _, tt := range tests {
		if got := describeOutcome(tt.outcome, tt.url); got != tt.want {
			t.Errorf("describeOutcome(%q, %q) = %q, want %q", tt.outcome, tt.url, got, tt.want)
		}
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loginflow.log")
	logger, closeLog, err := newLogger(config.LogConfig{Path: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "screen", "intro")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), "msg=kept screen=intro")
}

func TestNewLoggerWithoutPathDiscards(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	logger.Info("nowhere")
	closeLog()
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
}

func TestConfigShowUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LOGINFLOW_CONFIG", "")
	path := filepath.Join(dir, "loginflow.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nstart_screen = \"failure\"\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "show"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), `ui.start_screen = "failure"`)
	require.True(t, strings.HasPrefix(out.String(), "log.path"))
}
