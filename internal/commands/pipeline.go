package commands

import (
	"fmt"

	"github.com/cleared-dev/ledgerload/internal/accounts"
	"github.com/cleared-dev/ledgerload/internal/journal"
	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/runlog"
	"github.com/cleared-dev/ledgerload/internal/tabular"
)

func (a *app) registry() *tabular.Registry {
	return tabular.DefaultRegistry(a.cfg.Sheet)
}

// readChart reads an accounts export and builds its hierarchy.
func (a *app) readChart(path string) (*accounts.Chart, error) {
	tbl, err := a.registry().ReadFile(path)
	if err != nil {
		return nil, err
	}
	chart, err := accounts.Build(tbl, a.log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if n := chart.Duplicates(); n > 0 {
		a.log.Warn().Int("count", n).Msg("duplicate account codes ignored, first row kept")
	}
	return chart, nil
}

// readJournals reads a journal export, groups its lines and logs lossy groupings.
func (a *app) readJournals(path string) ([]model.Journal, error) {
	tbl, err := a.registry().ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := journal.ParseLines(tbl, a.cfg.JournalPrefix, a.log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	g := journal.NewGrouper(a.cfg.JournalPrefix)
	for _, l := range lines {
		g.Add(l)
	}
	for _, f := range g.Inspect() {
		a.log.Warn().Str("journal", f.Journal).Int("row", f.Row).Str("field", f.Field).
			Str("kept", f.Kept).Str("dropped", f.Dropped).Msg("journal lines disagree, first entry kept")
	}
	return g.Journals(), nil
}

// record appends a run to the configured run log. A failure is logged, not returned.
func (a *app) record(e runlog.Entry) {
	if a.cfg.RunLog == "" {
		return
	}
	if err := runlog.Append(a.cfg.RunLog, []runlog.Entry{e}); err != nil {
		a.log.Warn().Err(err).Str("path", a.cfg.RunLog).Msg("run log not updated")
	}
}
