package history

import (
	"testing"
	"time"
)

func TestDayCutoffToday(t *testing.T) {
	cutoff := DayCutoff(1)
	now := time.Now()
	if cutoff.Year() != now.Year() || cutoff.YearDay() != now.YearDay() {
		t.Errorf("DayCutoff(1) = %v, want today at midnight", cutoff)
	}
	if cutoff.Hour() != 0 || cutoff.Minute() != 0 {
		t.Errorf("DayCutoff(1) not at midnight: %v", cutoff)
	}
}

func TestDayCutoffWeek(t *testing.T) {
	cutoff := DayCutoff(7)
	want := DayCutoff(1).AddDate(0, 0, -6)
	if !cutoff.Equal(want) {
		t.Errorf("DayCutoff(7) = %v, want %v", cutoff, want)
	}
}

func TestFilterSince(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Time: now.Add(-48 * time.Hour)},
		{Time: now.Add(-1 * time.Hour)},
		{Time: now},
	}
	got := filterSince(entries, now.Add(-2*time.Hour))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	if got := filterSince(entries, now.Add(time.Hour)); got != nil {
		t.Fatalf("expected nil for future cutoff, got %v", got)
	}
}

func TestSummarizeOrdering(t *testing.T) {
	entries := []Entry{
		{Record: Record{Format: "png"}},
		{Record: Record{Format: "ico"}},
		{Record: Record{Format: "ico"}},
	}
	sum := summarize(entries)
	if len(sum) != 2 {
		t.Fatalf("expected 2 formats, got %d", len(sum))
	}
	if sum[0].Format != "ico" || sum[0].Count != 2 {
		t.Errorf("sum[0] = %+v, want ico×2", sum[0])
	}
}

func TestOpenFileBackend(t *testing.T) {
	s, err := Open("file", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("expected *FileStore, got %T", s)
	}
}

func TestOpenSQLiteBackend(t *testing.T) {
	s, err := Open("sqlite", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.(*SQLiteStore).Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("expected *SQLiteStore, got %T", s)
	}
}
