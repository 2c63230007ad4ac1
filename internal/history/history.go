// Package history records completed conversions so users can inspect what
// the tool produced and when.
package history

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/andrechen77/icoraw/internal/config"
	"github.com/andrechen77/icoraw/internal/paths"
)

// Record describes one completed conversion.
type Record struct {
	Source   string // input path as given on the command line
	Format   string // detected format ("ico", "png", ...)
	Width    int
	Height   int
	Bytes    int           // length of the flattened buffer
	Duration time.Duration // decode + flatten time
}

// Entry is a stored record with its timestamp.
type Entry struct {
	Time time.Time
	Record
}

// FormatCount is one row of a per-format summary.
type FormatCount struct {
	Format string
	Count  int
}

// Store abstracts history storage. FileStore appends to a flat log file;
// SQLiteStore keeps a queryable database.
type Store interface {
	Log(rec Record) error
	Entries(days int) ([]Entry, error)       // parsed entries, 0 = all
	Summary(days int) ([]FormatCount, error) // per-format conversion counts
	Clean(days int) (int, error)             // remove old entries, return removed count
	Clear() error                            // delete all data
	Path() string
}

// Open returns the store for the configured backend, rooted in dir.
func Open(kind, dir string) (Store, error) {
	if kind == config.StoreSQLite {
		return NewSQLiteStore(filepath.Join(dir, paths.HistoryDBName))
	}
	return NewFileStore(filepath.Join(dir, paths.HistoryFileName)), nil
}

// DayCutoff returns midnight N days ago (inclusive) in the local timezone.
// For days=1 it returns today at midnight, for days=7 it returns 6 days ago, etc.
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// filterSince drops entries older than cutoff. Entries are stored in
// insertion order, so the suffix after the first match is kept whole.
func filterSince(entries []Entry, cutoff time.Time) []Entry {
	for i, e := range entries {
		if !e.Time.Before(cutoff) {
			return entries[i:]
		}
	}
	return nil
}

// summarize aggregates entries into per-format counts, most frequent first.
func summarize(entries []Entry) []FormatCount {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if _, seen := counts[e.Format]; !seen {
			order = append(order, e.Format)
		}
		counts[e.Format]++
	}

	out := make([]FormatCount, 0, len(order))
	for _, f := range order {
		out = append(out, FormatCount{Format: f, Count: counts[f]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
