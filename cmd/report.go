package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/report"
	"github.com/Tiliavir/track/internal/timecalc"
)

type reportFlags struct {
	last   time.Duration
	format string
}

func newReportCmd(a *app) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show total tracked time within a recent window",
		Long: `Sum the duration of every completed session that started within the
window. Sessions that started before the window are not counted, even if
they ended inside it. A running session is not counted until stopped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, f)
		},
	}
	cmd.Flags().DurationVar(&f.last, "last", 0, "Window length, e.g. 8h or 30m (default from config, 24h)")
	cmd.Flags().StringVar(&f.format, "format", "hms", "Output format: hms, text, json")
	return cmd
}

type reportJSON struct {
	WindowSeconds int64  `json:"window_seconds"`
	Cutoff        string `json:"cutoff"`
	TotalMS       int64  `json:"total_ms"`
	Sessions      int    `json:"sessions"`
}

func (a *app) runReport(cmd *cobra.Command, f *reportFlags) error {
	out := cmd.OutOrStdout()

	window := a.cfg.Report.Window
	if cmd.Flags().Changed("last") {
		window = f.last
	}
	if window <= 0 {
		return fmt.Errorf("invalid --last value %s: must be positive", window)
	}

	switch f.format {
	case "hms", "text", "json":
	default:
		return fmt.Errorf("unsupported format: %s (supported: hms, text, json)", f.format)
	}

	summary, err := report.New(a.tracker, nil).Summarize(report.Last(window))
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to build report")
		return storageFailure(err)
	}

	switch f.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reportJSON{
			WindowSeconds: int64(window / time.Second),
			Cutoff:        summary.Cutoff.String(),
			TotalMS:       summary.Total.Milliseconds(),
			Sessions:      summary.Sessions,
		})
	case "text":
		fmt.Fprintf(out, "%s: %s across %d session(s)\n",
			summary.Window, timecalc.FormatDuration(summary.Total), summary.Sessions)
	default:
		fmt.Fprintln(out, timecalc.FormatDurationHHMMSS(summary.Total))
	}
	return nil
}
