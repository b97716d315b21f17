package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/all-dot-files/timer/internal/timer"
)

// now is replaced in tests
var now = time.Now

var startCmd = &cobra.Command{
	Use:   "start NAME",
	Short: "Start a timer named NAME",
	Long: `Start a timer named NAME.

Fails without touching the state file if a timer is already running, even when
NAME differs from the running timer.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return cmd.Root().Help()
		}

		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		t, started, err := svc.Start(args[0])
		if err != nil {
			return err
		}
		if !started {
			printf(cmd, "Timer %s currently running\n", t.Name)
		}
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current timer",
	Long:  `Stop the current timer and append "NAME: <elapsed time>" to the state file.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		if _, stopped, err := svc.Stop(); err != nil {
			return err
		} else if !stopped {
			printf(cmd, "No current timer\n")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current timer",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		current, err := svc.Current()
		if err != nil {
			return err
		}
		if current == nil {
			printf(cmd, "No current timer\n")
			return nil
		}

		printf(cmd, "Timer %s running for%s\n", current.Name, timer.FormatDuration(svc.Elapsed(current)))
		return nil
	},
}
