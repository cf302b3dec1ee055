package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export completed sessions to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := export.NewExporter(format)
			if err != nil {
				return err
			}
			seq, err := a.tracker.Records()
			if err != nil {
				return storageFailure(err)
			}
			return exporter.Export(slices.Collect(seq), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv, yaml")
	return cmd
}
