package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/loginflow/internal/flow"
)

func runScreen(cmd *cobra.Command, kind flow.ScreenKind) error {
	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	screen := flow.Build(kind, flow.Options{Flags: introFlags(cmd)})
	host := flow.NewHost(screen, logger)

	p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "screen", string(kind), "err", err)
		return fmt.Errorf("run %s: %w", kind, err)
	}

	if msg := describeOutcome(host.Outcome(), cfg.Feedback.URL); msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}

func describeOutcome(o flow.Outcome, feedbackURL string) string {
	switch o {
	case flow.OutcomeRetry:
		return "retry requested"
	case flow.OutcomeFeedback:
		if feedbackURL == "" {
			return "feedback requested"
		}
		return "feedback requested: " + feedbackURL
	case flow.OutcomeSignup:
		return "sign up selected"
	case flow.OutcomeLogin:
		return "log in selected"
	default:
		return ""
	}
}
