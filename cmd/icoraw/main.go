package main

import (
	"fmt"
	"os"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// runOpts holds flag values for the convert path.
type runOpts struct {
	Out     string // --out override for the output file name
	Preview bool   // --preview
	Log     bool   // --log forces history recording on
}

func main() {
	opts, configPath, rest, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(rest) > 0 {
		switch rest[0] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		case "history":
			historyCmd(rest[1:], configPath)
			return
		}
	}
	convertCmd(rest, configPath, opts)
}

// parseArgs splits flags from positional arguments.
func parseArgs(args []string) (runOpts, string, []string, error) {
	var opts runOpts
	configPath := ""

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				return opts, "", nil, fmt.Errorf("--out requires a file name")
			}
			opts.Out = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, "", nil, fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		case "--preview", "-p":
			opts.Preview = true
		case "--log":
			opts.Log = true
		default:
			filtered = append(filtered, args[i])
		}
	}
	return opts, configPath, filtered, nil
}

func printUsage() {
	fmt.Print(`icoraw - decode an icon image into raw RGBA8 pixel bytes

Usage:
  icoraw [flags] [path]           convert an image (default: your-icon.ico)
  icoraw history [n]              show the last n recorded conversions (default 10)
  icoraw history summary [days]   per-format conversion counts (default 7, or "all")
  icoraw history clean [days]     drop entries older than days (default 30)
  icoraw history clear            delete all recorded history
  icoraw version                  print version information

Flags:
  -o, --out <file>      output file name (default output.rgba8)
  -p, --preview         render the decoded image in the terminal
      --log             record this conversion in the history
  -c, --config <file>   explicit config file path

The output file holds width*height*4 bytes: one R,G,B,A byte quadruple per
pixel, rows top to bottom, pixels left to right, no header.
`)
}

func printVersion() {
	fmt.Printf("icoraw %s (built %s)\n", version, buildDate)
}
