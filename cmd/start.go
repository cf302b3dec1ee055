package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/tracker"
)

func newStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start tracking time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStart(cmd)
		},
	}
}

func (a *app) runStart(cmd *cobra.Command) error {
	status, err := a.tracker.Start()
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to start session")
		return storageFailure(err)
	}

	start, running, err := a.tracker.Current()
	if err != nil {
		return storageFailure(err)
	}

	msg, err := startMessage(status, start, running)
	if err != nil {
		return err
	}
	c := color.New(color.FgGreen)
	if status == tracker.AlreadyRunning {
		c = color.New(color.FgYellow)
	}
	c.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

// startMessage describes the outcome of Start. running is false when the
// lockfile was removed between Start and reading it back.
func startMessage(status tracker.StartStatus, start model.Timestamp, running bool) (string, error) {
	if !running {
		return "", errors.New(`session ended while starting; run "track start" again`)
	}
	switch status {
	case tracker.Started:
		return fmt.Sprintf("Started tracking at %s", start.Time().Local().Format("15:04:05")), nil
	default:
		return fmt.Sprintf("Already tracking since %s", start.Time().Local().Format("2006-01-02 15:04:05")), nil
	}
}
