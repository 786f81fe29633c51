package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/commission/internal/importer"
	"github.com/cleared-dev/commission/internal/ledger"
	"github.com/cleared-dev/commission/internal/processor"
)

func newCalculateCommand(opts *rootOptions) *cobra.Command {
	var format string
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "calculate <input.csv>",
		Short: "Print the commission for every operation in a CSV file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, opts, args[0], format, ledgerPath)
		},
	}

	cmd.Flags().StringVar(&format, "format", "paysera", "input format")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "append computed fees to this CSV ledger")

	return cmd
}

func runCalculate(cmd *cobra.Command, opts *rootOptions, input, format, ledgerPath string) error {
	cfg, log, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	registry := importer.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	var r io.Reader
	if input == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	svc := processor.FromConfig(cfg, log)
	outcomes, err := svc.Run(parser, r, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if ledgerPath != "" {
		runID := uuid.New()
		if err := ledger.Append(ledgerPath, processor.LedgerEntries(runID, outcomes)); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
		log.Info().Str("run_id", runID.String()).Str("path", ledgerPath).Int("entries", len(outcomes)).Msg("ledger updated")
	}

	return nil
}
