package main

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	opts, configPath, rest, err := parseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Out != "" || opts.Preview || opts.Log || configPath != "" {
		t.Errorf("unexpected defaults: %+v config=%q", opts, configPath)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %v, want empty", rest)
	}
}

func TestParseArgsFlagsAndPositional(t *testing.T) {
	opts, configPath, rest, err := parseArgs([]string{
		"--out", "pixels.bin", "-p", "--log", "-c", "cfg.json", "app.ico",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Out != "pixels.bin" {
		t.Errorf("Out = %q", opts.Out)
	}
	if !opts.Preview || !opts.Log {
		t.Errorf("flags not set: %+v", opts)
	}
	if configPath != "cfg.json" {
		t.Errorf("configPath = %q", configPath)
	}
	if len(rest) != 1 || rest[0] != "app.ico" {
		t.Errorf("rest = %v, want [app.ico]", rest)
	}
}

func TestParseArgsFlagAfterPositional(t *testing.T) {
	opts, _, rest, err := parseArgs([]string{"app.ico", "--preview"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Preview {
		t.Error("flag after positional not parsed")
	}
	if len(rest) != 1 || rest[0] != "app.ico" {
		t.Errorf("rest = %v", rest)
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	if _, _, _, err := parseArgs([]string{"--out"}); err == nil {
		t.Error("expected error for --out without value")
	}
	if _, _, _, err := parseArgs([]string{"--config"}); err == nil {
		t.Error("expected error for --config without value")
	}
}
