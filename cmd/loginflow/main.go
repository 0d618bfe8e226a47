package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/loginflow/internal/config"
	"github.com/jask/loginflow/internal/flow"
)

var (
	configPath string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "loginflow [splash|failure|intro]",
	Short:         "Terminal screens for the sign-in entry flow",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg = c
		return nil
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := flow.ParseScreen(cfg.UI.StartScreen)
		if err != nil {
			return fmt.Errorf("ui.start_screen: %w", err)
		}
		return runScreen(cmd, kind)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/loginflow/config.toml)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
