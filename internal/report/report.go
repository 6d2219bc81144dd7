// Package report exports a battle's engagement history as a printable PDF
// or as a spreadsheet.
package report

import (
	"fmt"
	"strings"
	"time"

	"wargame/internal/journal"
)

// Battle is the data a report is rendered from.
type Battle struct {
	Name      string
	Created   time.Time
	Generated time.Time
	Entries   []journal.Entry
	Stats     journal.Stats
}

// FromJournal collects a named battle, or the rolling buffer for Unsaved.
func FromJournal(j *journal.Journal, name string, now time.Time) (Battle, error) {
	entries, ok := j.Entries(name)
	if !ok {
		return Battle{}, fmt.Errorf("%w: %q", journal.ErrUnknownBattle, name)
	}
	stats, _ := j.Stats(name)
	b := Battle{Name: name, Generated: now, Entries: entries, Stats: stats}
	if named, ok := j.Battle(name); ok {
		b.Created = named.Created
	}
	return b, nil
}

var headers = []string{
	"#", "Time", "Score 1", "Score 2",
	"Side 1 before", "Side 1 after", "Side 2 before", "Side 2 after",
	"Exp 1", "Exp 2", "Units 1", "Units 2", "Tactical",
}

// rows flattens entries into cells in header order.
func rows(entries []journal.Entry) [][]any {
	out := make([][]any, 0, len(entries))
	for i, e := range entries {
		out = append(out, []any{
			i + 1,
			e.At.Format("2006-01-02 15:04"),
			e.Score1, e.Score2,
			e.People1Before, e.People1After,
			e.People2Before, e.People2After,
			yesNo(e.Exp1), yesNo(e.Exp2),
			units(e.Units1), units(e.Units2),
			tactical(e),
		})
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func units(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func tactical(e journal.Entry) string {
	if e.TacticalTier == 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", e.TacticalTier, e.TacticalLabel)
}

// Filename is the download name for a battle report.
func Filename(name, ext string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	return "battle-" + name + "." + ext
}

