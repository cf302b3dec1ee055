package cmd

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/timecalc"
)

var (
	dateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List completed sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *app) runList(cmd *cobra.Command) error {
	seq, err := a.tracker.Records()
	if err != nil {
		return storageFailure(err)
	}
	printList(cmd.OutOrStdout(), slices.Collect(seq))
	return nil
}

// printList groups records by local start date and prints them.
func printList(w io.Writer, records []model.TimeRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return
	}

	var currentDay string
	var total time.Duration
	for _, r := range records {
		start := r.Start.Time().Local()
		day := start.Format("2006-01-02")
		if day != currentDay {
			fmt.Fprintln(w, dateStyle.Render(day))
			currentDay = day
		}

		fmt.Fprintf(w, "  %s–%s  %s\n",
			start.Format("15:04:05"),
			r.End.Time().Local().Format("15:04:05"),
			durationStyle.Render(timecalc.FormatElapsed(r.Elapsed())),
		)
		total += r.Elapsed()
	}

	fmt.Fprintf(w, "%s %s in %d session(s)\n",
		totalStyle.Render("Total:"), timecalc.FormatElapsed(total), len(records))
}
