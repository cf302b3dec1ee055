package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/timecalc"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *app) runStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	start, running, err := a.tracker.Current()
	if err != nil {
		return storageFailure(err)
	}
	if !running {
		fmt.Fprintln(out, "Not running.")
		return nil
	}

	color.New(color.FgGreen, color.Bold).Fprintln(out, "Running:")
	fmt.Fprintf(out, "  Since: %s\n", start.Time().Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(model.Now().Sub(start)))
	return nil
}
