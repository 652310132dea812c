package journal

import (
	"slices"
	"strings"

	"github.com/cleared-dev/ledgerload/internal/id"
	"github.com/cleared-dev/ledgerload/internal/model"
)

// DescriptionSeparator joins the distinct entry descriptions of a journal.
const DescriptionSeparator = " | "

// Grouper partitions lines into journals by journal number. Lines without
// a number are kept apart, each becoming its own journal.
type Grouper struct {
	prefix   string
	numbered map[int][]model.Line
	singles  []model.Line
}

// NewGrouper creates a Grouper; prefix is used to render journal codes.
func NewGrouper(prefix string) *Grouper {
	return &Grouper{prefix: prefix, numbered: make(map[int][]model.Line)}
}

// Group is a convenience wrapper that adds all lines and returns the journals.
func Group(lines []model.Line, prefix string) []model.Journal {
	g := NewGrouper(prefix)
	for _, l := range lines {
		g.Add(l)
	}
	return g.Journals()
}

// Add appends a line to its journal. Lines with no amount are ignored.
func (g *Grouper) Add(l model.Line) {
	if l.IsEmpty() {
		return
	}
	if !l.HasNumber {
		g.singles = append(g.singles, l)
		return
	}
	g.numbered[l.Number] = append(g.numbered[l.Number], l)
}

// Journals returns the numbered journals in ascending number order followed
// by one journal per unnumbered line, in source order.
func (g *Grouper) Journals() []model.Journal {
	numbers := g.numbers()
	out := make([]model.Journal, 0, len(numbers)+len(g.singles))
	for _, n := range numbers {
		out = append(out, g.numberedJournal(n, g.numbered[n]))
	}
	for _, l := range g.singles {
		out = append(out, singleJournal(l))
	}
	return out
}

func (g *Grouper) numbers() []int {
	numbers := make([]int, 0, len(g.numbered))
	for n := range g.numbered {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// numberedJournal takes date, statement and purpose from the first line.
func (g *Grouper) numberedJournal(n int, lines []model.Line) model.Journal {
	first := lines[0]
	j := model.Journal{
		Number:    n,
		Code:      id.FormatJournalCode(g.prefix, n),
		Date:      first.Date,
		Statement: first.Statement,
		Purpose:   first.Purpose,
	}

	var descs []string
	for _, l := range lines {
		j.Entries = append(j.Entries, l.Entry())
		if l.Description != "" && !slices.Contains(descs, l.Description) {
			descs = append(descs, l.Description)
		}
	}
	j.Description = strings.Join(descs, DescriptionSeparator)
	return j
}

func singleJournal(l model.Line) model.Journal {
	return model.Journal{
		Single:      true,
		Description: l.Description,
		Date:        l.Date,
		Statement:   l.Statement,
		Purpose:     l.Purpose,
		Entries:     []model.JournalEntry{l.Entry()},
	}
}
