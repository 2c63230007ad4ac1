package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/andrechen77/icoraw/internal/config"
	"github.com/andrechen77/icoraw/internal/history"
	"github.com/andrechen77/icoraw/internal/paths"
)

func historyCmd(args []string, configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("%v", err)
	}
	store, err := history.Open(cfg.HistoryStore, paths.DataDir())
	if err != nil {
		fatal("%v", err)
	}
	defer closeStore(store)

	if len(args) > 0 {
		switch args[0] {
		case "summary":
			historySummary(store, args[1:])
			return
		case "clear":
			if err := store.Clear(); err != nil {
				fatal("%v", err)
			}
			fmt.Println("History cleared.")
			return
		case "clean":
			historyClean(store, args[1:])
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fatal("count must be a positive integer")
		}
		count = n
	}

	entries, err := store.Entries(0)
	if err != nil {
		fatal("%v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No conversions recorded. Enable history with --log or \"history\": true in config.")
		return
	}
	if len(entries) > count {
		entries = entries[len(entries)-count:]
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %s  %dx%d  %d bytes  %s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Source, e.Format,
			e.Width, e.Height, e.Bytes, e.Duration.Round(time.Millisecond))
	}
}

func historySummary(store history.Store, args []string) {
	days := 7
	if len(args) > 0 {
		if args[0] == "all" {
			days = 0
		} else {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				fatal("days must be a positive integer or \"all\"")
			}
			days = n
		}
	}

	sum, err := store.Summary(days)
	if err != nil {
		fatal("%v", err)
	}
	if len(sum) == 0 {
		fmt.Println("No conversions recorded.")
		return
	}

	if days == 0 {
		fmt.Println("Conversions (all time):")
	} else {
		fmt.Printf("Conversions (last %d days):\n", days)
	}
	for _, fc := range sum {
		fmt.Printf("  %-6s %d\n", fc.Format, fc.Count)
	}
}

func historyClean(store history.Store, args []string) {
	days := 30
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fatal("days must be a positive integer")
		}
		days = n
	}

	removed, err := store.Clean(days)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Removed %d entries older than %d days.\n", removed, days)
}
