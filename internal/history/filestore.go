package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andrechen77/icoraw/internal/paths"
)

// FileStore implements Store using a flat log file, one line per conversion:
//
//	<RFC3339 ts>  source="…"  format=png  size=32x32  bytes=4096  duration=12ms
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Log(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
	if err != nil {
		return err
	}
	defer file.Close()

	ts := time.Now().Format(time.RFC3339)
	_, err = fmt.Fprintf(file, "%s  source=%q  format=%s  size=%dx%d  bytes=%d  duration=%s\n",
		ts, rec.Source, rec.Format, rec.Width, rec.Height, rec.Bytes,
		rec.Duration.Round(time.Millisecond))
	return err
}

func (f *FileStore) Entries(days int) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	entries := parseLines(string(data))
	if days <= 0 {
		return entries, nil
	}
	return filterSince(entries, DayCutoff(days)), nil
}

func (f *FileStore) Summary(days int) ([]FormatCount, error) {
	entries, err := f.Entries(days)
	if err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

func (f *FileStore) Clean(days int) (int, error) {
	entries, err := f.Entries(0)
	if err != nil {
		return 0, err
	}
	kept := filterSince(entries, DayCutoff(days))
	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	var b strings.Builder
	for _, e := range kept {
		fmt.Fprintf(&b, "%s  source=%q  format=%s  size=%dx%d  bytes=%d  duration=%s\n",
			e.Time.Format(time.RFC3339), e.Source, e.Format, e.Width, e.Height,
			e.Bytes, e.Duration.Round(time.Millisecond))
	}
	if err := paths.AtomicWrite(f.path, []byte(b.String())); err != nil {
		return 0, err
	}
	return removed, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// parseLines parses log lines into entries. Malformed lines are silently
// skipped so a damaged log never blocks reads.
func parseLines(content string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if e, ok := parseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func parseLine(line string) (Entry, bool) {
	fields := strings.Split(line, "  ")
	if len(fields) < 2 {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return Entry{}, false
	}

	e := Entry{Time: ts}
	for _, field := range fields[1:] {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "source":
			if s, err := strconv.Unquote(val); err == nil {
				e.Source = s
			}
		case "format":
			e.Format = val
		case "size":
			w, h, ok := strings.Cut(val, "x")
			if !ok {
				return Entry{}, false
			}
			e.Width, _ = strconv.Atoi(w)
			e.Height, _ = strconv.Atoi(h)
		case "bytes":
			e.Bytes, _ = strconv.Atoi(val)
		case "duration":
			if d, err := time.ParseDuration(val); err == nil {
				e.Duration = d
			}
		}
	}
	return e, true
}
