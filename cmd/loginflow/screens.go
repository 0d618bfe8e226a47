package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/loginflow/internal/flow"
	"github.com/jask/loginflow/internal/login"
)

var (
	revokedSelf   string
	deletedSelf   string
	revokedDevice bool
)

var splashCmd = &cobra.Command{
	Use:   "splash",
	Short: "Show the startup screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd, flow.ScreenSplash)
	},
}

var failureCmd = &cobra.Command{
	Use:   "failure",
	Short: "Show the connectivity failure screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd, flow.ScreenFailure)
	},
}

var introCmd = &cobra.Command{
	Use:   "intro",
	Short: "Show the sign-up and log-in screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd, flow.ScreenIntro)
	},
}

func init() {
	introCmd.Flags().StringVar(&revokedSelf, "revoked-self", "", "name of the device just revoked")
	introCmd.Flags().StringVar(&deletedSelf, "deleted-self", "", "name of the account just deleted")
	introCmd.Flags().BoolVar(&revokedDevice, "revoked-device", false, "this device was revoked elsewhere")

	rootCmd.AddCommand(splashCmd, failureCmd, introCmd)
}

// introFlags merges configured status flags with any set on the command line.
func introFlags(cmd *cobra.Command) login.StatusFlags {
	f := login.StatusFlags{
		JustRevokedSelf:            cfg.Intro.JustRevokedSelf,
		JustDeletedSelf:            cfg.Intro.JustDeletedSelf,
		JustLoginFromRevokedDevice: cfg.Intro.JustLoginFromRevokedDevice,
	}
	flags := cmd.Flags()
	if flags.Changed("revoked-self") {
		f.JustRevokedSelf = revokedSelf
	}
	if flags.Changed("deleted-self") {
		f.JustDeletedSelf = deletedSelf
	}
	if flags.Changed("revoked-device") {
		f.JustLoginFromRevokedDevice = revokedDevice
	}
	return f
}
