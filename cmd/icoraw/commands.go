package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrechen77/icoraw/internal/config"
	"github.com/andrechen77/icoraw/internal/history"
	"github.com/andrechen77/icoraw/internal/paths"
	"github.com/andrechen77/icoraw/internal/preview"
	"github.com/andrechen77/icoraw/internal/rawimg"
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func convertCmd(args []string, configPath string, opts runOpts) {
	if len(args) > 1 {
		fatal("expected at most one input path\nRun 'icoraw help' for usage.")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("%v", err)
	}

	input := config.DefaultInput
	if len(args) == 1 {
		input = args[0]
	}
	output := cfg.Output
	if opts.Out != "" {
		output = opts.Out
	}

	start := time.Now()
	raw, err := rawimg.Convert(input)
	if err != nil {
		fatal("%v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Width: %d, Height: %d\n", raw.Width, raw.Height)
	fmt.Printf("Raw RGBA8 data (first 64 bytes): %s\n", raw.Snippet(64))

	if err := paths.AtomicWrite(output, raw.Pix); err != nil {
		fatal("write %s: %v", output, err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(raw.Pix), output)

	if opts.Preview || cfg.Preview {
		preview.Show(raw.Image())
	}

	if opts.Log || cfg.History {
		recordConversion(cfg, history.Record{
			Source:   input,
			Format:   raw.Format,
			Width:    raw.Width,
			Height:   raw.Height,
			Bytes:    len(raw.Pix),
			Duration: elapsed,
		})
	}
}

// recordConversion is best-effort: a broken history store never fails a
// conversion that already succeeded.
func recordConversion(cfg config.Config, rec history.Record) {
	store, err := history.Open(cfg.HistoryStore, paths.DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	defer closeStore(store)

	if err := store.Log(rec); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}

func closeStore(s history.Store) {
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
}
