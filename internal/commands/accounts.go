package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/runlog"
	"github.com/cleared-dev/ledgerload/internal/sqlgen"
)

func newAccountsCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "accounts [input]",
		Short: "Generate account INSERT statements from a chart-of-accounts export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Accounts.Input
			if len(args) > 0 {
				input = args[0]
			}
			if output == "" {
				output = a.cfg.Accounts.Output
			}
			return a.runAccounts(input, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SQL file")

	return cmd
}

func (a *app) runAccounts(input, output string) error {
	chart, err := a.readChart(input)
	if err != nil {
		return err
	}

	accts := chart.Sorted()
	err = sqlgen.WriteFile(output, func(w io.Writer) error {
		return sqlgen.WriteAccounts(w, accts)
	})
	if err != nil {
		return err
	}

	a.log.Info().Int("accounts", len(accts)).Str("output", output).Msg("accounts converted")
	a.record(runlog.NewEntry(runlog.PipelineAccounts, input, output, len(accts), 0))

	fmt.Printf("Generated %d INSERT statements\n", len(accts))
	fmt.Printf("Output written to: %s\n", output)
	return nil
}
