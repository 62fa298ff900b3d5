package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds device runtime configuration.
type Config struct {
	Layout        string        `env:"SURFACE_LAYOUT"`
	Interval      time.Duration `env:"SURFACE_INTERVAL" envDefault:"200ms"`
	Format        string        `env:"SURFACE_FORMAT" envDefault:"json"`
	MaxFrame      int           `env:"SURFACE_MAX_FRAME" envDefault:"1024"`
	Listen        string        `env:"SURFACE_LISTEN"`
	PreviewAddr   string        `env:"SURFACE_PREVIEW_ADDR"`
	ReportUnknown bool          `env:"SURFACE_REPORT_UNKNOWN"`
}

// ParseConfig loads environment defaults into Config, then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "YAML layout file (default: built-in demo layout)")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Snapshot cadence")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Wire format: json or msgpack")
	fs.IntVar(&cfg.MaxFrame, "max-frame", cfg.MaxFrame, "Frame capacity in bytes (0: unlimited)")
	fs.StringVar(&cfg.Listen, "listen", cfg.Listen, "TCP address to serve one client at a time (default: stdio)")
	fs.StringVar(&cfg.PreviewAddr, "preview", cfg.PreviewAddr, "HTTP address for the HTML preview (default: off)")
	fs.BoolVar(&cfg.ReportUnknown, "report-unknown", cfg.ReportUnknown, "Answer updates for unknown ids with an error")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if c.MaxFrame < 0 {
		return errors.New("max-frame must not be negative")
	}
	return nil
}
