package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/config"
	"github.com/cleared-dev/ledgerload/internal/runlog"
)

func newRunsCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past conversions from the run log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRuns(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show at most n most recent runs (0 = all)")

	return cmd
}

func (a *app) runRuns(limit int) error {
	if a.cfg.RunLog == "" {
		return errors.New("no run log configured: set run_log in " + config.DefaultPath)
	}

	entries, err := runlog.Read(a.cfg.RunLog)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tRUN\tPIPELINE\tINPUT\tOUTPUT\tRECORDS\tENTRIES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			e.Timestamp.Local().Format(time.DateTime), e.RunID.String()[:8], e.Pipeline, e.Input, e.Output, e.Records, e.Entries)
	}
	return tw.Flush()
}
