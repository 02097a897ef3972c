// Package commands wires the splitbill command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitbill/internal/config"
	"github.com/mmynk/splitbill/internal/console"
	"github.com/mmynk/splitbill/internal/report"
	"github.com/mmynk/splitbill/pkg/logging"
)

// Version will be set via ldflags during build.
var Version = "dev"

// options are shared by every subcommand.
type options struct {
	currency string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it collects the group interactively.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "splitbill",
		Short:   "Split a shared expense evenly and settle up with as few payments as possible",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
			if !cmd.Flags().Changed("currency") {
				opts.currency = cfg.Currency
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.currency, "currency", "", "symbol printed before amounts (default from CURRENCY_SYMBOL)")

	rootCmd.AddCommand(newSettleCommand(opts))

	return rootCmd
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, report.Banner())

	group, err := console.NewCollector(cmd.InOrStdin(), out).Collect()
	if err != nil {
		return fmt.Errorf("collecting group: %w", err)
	}

	return report.ForGroup(group).WriteText(out, opts.currency)
}
