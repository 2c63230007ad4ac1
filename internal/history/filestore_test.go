package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

func tempFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "history.log"))
}

func sampleRecord() Record {
	return Record{
		Source:   "testdata/app icon.ico",
		Format:   "ico",
		Width:    32,
		Height:   32,
		Bytes:    4096,
		Duration: 12 * time.Millisecond,
	}
}

func TestFileStoreLogAndEntries(t *testing.T) {
	s := tempFileStore(t)

	if err := s.Log(sampleRecord()); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Source != "testdata/app icon.ico" {
		t.Errorf("source = %q (spaces must survive the round trip)", e.Source)
	}
	if e.Format != "ico" || e.Width != 32 || e.Height != 32 || e.Bytes != 4096 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Duration != 12*time.Millisecond {
		t.Errorf("duration = %s, want 12ms", e.Duration)
	}
}

func TestFileStoreEntriesMissingFile(t *testing.T) {
	s := tempFileStore(t)
	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if entries != nil {
		t.Fatalf("expected nil entries, got %v", entries)
	}
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	s := tempFileStore(t)
	if err := s.Log(sampleRecord()); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprintln(f, "garbage line with no timestamp")
	f.Close()

	entries, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after malformed line, got %d", len(entries))
	}
}

func TestFileStoreSummary(t *testing.T) {
	s := tempFileStore(t)
	for i := 0; i < 3; i++ {
		if err := s.Log(sampleRecord()); err != nil {
			t.Fatal(err)
		}
	}
	png := sampleRecord()
	png.Format = "png"
	if err := s.Log(png); err != nil {
		t.Fatal(err)
	}

	sum, err := s.Summary(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum) != 2 {
		t.Fatalf("expected 2 formats, got %d", len(sum))
	}
	if sum[0].Format != "ico" || sum[0].Count != 3 {
		t.Errorf("top format = %+v, want ico×3", sum[0])
	}
	if sum[1].Format != "png" || sum[1].Count != 1 {
		t.Errorf("second format = %+v, want png×1", sum[1])
	}
}

func TestFileStoreClean(t *testing.T) {
	s := tempFileStore(t)

	// One old entry written by hand, one fresh entry via Log.
	old := time.Now().AddDate(0, 0, -30).Format(time.RFC3339)
	line := fmt.Sprintf("%s  source=%q  format=png  size=1x1  bytes=4  duration=1ms\n", old, "old.png")
	if err := os.WriteFile(s.Path(), []byte(line), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Log(sampleRecord()); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Clean(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	entries, _ := s.Entries(0)
	if len(entries) != 1 || entries[0].Format != "ico" {
		t.Fatalf("unexpected entries after clean: %v", entries)
	}
}

func TestFileStoreClear(t *testing.T) {
	s := tempFileStore(t)
	if err := s.Log(sampleRecord()); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatal("expected log file removed")
	}

	// Clearing an already-missing log is not an error.
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
}
