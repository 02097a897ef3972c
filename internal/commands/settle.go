package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitbill/internal/input"
	"github.com/mmynk/splitbill/internal/report"
)

func newSettleCommand(opts *options) *cobra.Command {
	var file string
	var export string

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle a group read from a CSV or YAML file",
		Example: `  splitbill settle --file trip.csv
  splitbill settle --file trip.yaml --export trip.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettle(cmd, opts, file, export)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "group file (.csv with name,amount columns, or .yaml) (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVarP(&export, "export", "o", "", "also write the report to this file (.csv, .xlsx or .pdf)")

	return cmd
}

func runSettle(cmd *cobra.Command, opts *options, file, export string) error {
	var format report.Format
	if export != "" {
		var err error
		if format, err = report.FormatFromPath(export); err != nil {
			return err
		}
	}

	group, err := input.Load(file)
	if err != nil {
		return err
	}

	r := report.ForGroup(group)
	if err := r.WriteText(cmd.OutOrStdout(), opts.currency); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if export == "" {
		return nil
	}

	f, err := os.Create(export)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := r.Export(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	slog.Info("Report exported", "path", export, "format", format)
	return nil
}
