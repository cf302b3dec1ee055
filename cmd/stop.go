package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/timecalc"
	"github.com/Tiliavir/track/internal/tracker"
)

func newStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session and record it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStop(cmd)
		},
	}
}

func (a *app) runStop(cmd *cobra.Command) error {
	rec, err := a.tracker.Stop()
	if errors.Is(err, tracker.ErrNotRunning) {
		return errors.New("no active session to stop")
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to stop session")
		return storageFailure(err)
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Stopped tracking. Elapsed: %s\n", timecalc.FormatElapsed(rec.Elapsed()))
	return nil
}
