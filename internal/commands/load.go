package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/loader"
	"github.com/cleared-dev/ledgerload/internal/logger"
	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/runlog"
)

func newLoadCommand(a *app) *cobra.Command {
	var accountsPath, journalsPath, databaseURL string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Insert accounts and journals directly into PostgreSQL in one transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if databaseURL == "" {
				databaseURL = a.cfg.Database.URL
			}
			return a.runLoad(cmd.Context(), accountsPath, journalsPath, databaseURL)
		},
	}

	cmd.Flags().StringVar(&accountsPath, "accounts", "", "chart-of-accounts export")
	cmd.Flags().StringVar(&journalsPath, "journals", "", "ledger export")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (default from config or DATABASE_URL)")

	return cmd
}

func (a *app) runLoad(ctx context.Context, accountsPath, journalsPath, databaseURL string) error {
	if accountsPath == "" && journalsPath == "" {
		return errors.New("nothing to load: pass --accounts and/or --journals")
	}
	if databaseURL == "" {
		return errors.New("no database URL: pass --database-url or set LEDGERLOAD_DATABASE_URL")
	}

	// Read everything before connecting so input errors never open a transaction.
	var accts []model.Account
	if accountsPath != "" {
		chart, err := a.readChart(accountsPath)
		if err != nil {
			return err
		}
		accts = chart.Sorted()
	}
	var journals []model.Journal
	if journalsPath != "" {
		var err error
		journals, err = a.readJournals(journalsPath)
		if err != nil {
			return err
		}
	}

	pool, err := loader.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	l := loader.New(logger.FromContext(ctx))
	var ar loader.AccountsResult
	var jr loader.JournalsResult
	err = loader.Run(ctx, pool, func(q loader.Querier) error {
		var err error
		if accountsPath != "" {
			if ar, err = l.LoadAccounts(ctx, q, accts); err != nil {
				return err
			}
		}
		if journalsPath != "" {
			if jr, err = l.LoadJournals(ctx, q, journals); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if accountsPath != "" {
		a.record(runlog.NewEntry(runlog.PipelineLoad, accountsPath, "database", ar.Inserted, 0))
		fmt.Printf("Loaded %d accounts (%d linked to a parent, %d parents unresolved)\n", ar.Inserted, ar.Linked, len(ar.Unresolved))
	}
	if journalsPath != "" {
		a.record(runlog.NewEntry(runlog.PipelineLoad, journalsPath, "database", jr.Journals, jr.Entries))
		fmt.Printf("Loaded %d journals with %d total entries\n", jr.Journals, jr.Entries)
	}
	return nil
}
