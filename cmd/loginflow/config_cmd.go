package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/loginflow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "log.path = %q\n", cfg.Log.Path)
		fmt.Fprintf(out, "log.level = %q\n", cfg.Log.Level)
		fmt.Fprintf(out, "feedback.url = %q\n", cfg.Feedback.URL)
		fmt.Fprintf(out, "ui.start_screen = %q\n", cfg.UI.StartScreen)
		fmt.Fprintf(out, "intro.just_revoked_self = %q\n", cfg.Intro.JustRevokedSelf)
		fmt.Fprintf(out, "intro.just_deleted_self = %q\n", cfg.Intro.JustDeletedSelf)
		fmt.Fprintf(out, "intro.just_login_from_revoked_device = %t\n", cfg.Intro.JustLoginFromRevokedDevice)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
