package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/runlog"
	"github.com/cleared-dev/ledgerload/internal/sqlgen"
)

func newJournalsCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "journals [input]",
		Short: "Generate journal and entry INSERT statements from a ledger export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Journals.Input
			if len(args) > 0 {
				input = args[0]
			}
			if output == "" {
				output = a.cfg.Journals.Output
			}
			return a.runJournals(input, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SQL file")

	return cmd
}

func (a *app) runJournals(input, output string) error {
	journals, err := a.readJournals(input)
	if err != nil {
		return err
	}

	var stats sqlgen.JournalStats
	err = sqlgen.WriteFile(output, func(w io.Writer) error {
		var err error
		stats, err = sqlgen.WriteJournals(w, journals)
		return err
	})
	if err != nil {
		return err
	}

	a.log.Info().Int("journals", stats.Journals).Int("entries", stats.Entries).
		Int("singles", stats.Singles).Str("output", output).Msg("journals converted")
	a.record(runlog.NewEntry(runlog.PipelineJournals, input, output, stats.Journals, stats.Entries))

	fmt.Printf("Generated %d journals with %d total entries\n", stats.Journals, stats.Entries)
	fmt.Printf("Output written to: %s\n", output)
	if stats.Singles > 0 {
		fmt.Printf("Note: %d single entries were written with their entry INSERT commented out; link them with a procedural pass or use 'ledgerload load'\n", stats.Singles)
	}
	return nil
}
