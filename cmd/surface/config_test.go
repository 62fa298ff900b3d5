package main

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Interval != 200*time.Millisecond {
		t.Errorf("Interval = %s, want 200ms", cfg.Interval)
	}
	if cfg.Format != "json" || cfg.MaxFrame != 1024 {
		t.Errorf("Format/MaxFrame = %q/%d, want json/1024", cfg.Format, cfg.MaxFrame)
	}
	if cfg.Listen != "" || cfg.PreviewAddr != "" || cfg.ReportUnknown {
		t.Errorf("unexpected non-default config: %+v", cfg)
	}
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SURFACE_FORMAT", "msgpack")
	t.Setenv("SURFACE_INTERVAL", "1s")
	t.Setenv("SURFACE_REPORT_UNKNOWN", "true")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-interval", "50ms", "-listen", ":7000"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Format != "msgpack" {
		t.Fatalf("expected env format, got %q", cfg.Format)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Fatalf("expected flag interval, got %s", cfg.Interval)
	}
	if cfg.Listen != ":7000" || !cfg.ReportUnknown {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero interval", []string{"-interval", "0s"}},
		{"negative frame", []string{"-max-frame", "-1"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(discard{})
			if _, err := ParseConfig(fs, tt.args); err == nil {
				t.Errorf("ParseConfig(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("SURFACE_MAX_FRAME", "lots")
	if _, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
