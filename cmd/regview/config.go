package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/regview/regview-go/pkg/bits"
)

// Config holds the viewer configuration.
type Config struct {
	ConfigFile  string `yaml:"-"`
	Base        string `yaml:"base"`
	Swap        string `yaml:"swap"`
	Reset       string `yaml:"reset"`
	LogLevel    string `yaml:"log_level"`
	Trace       string `yaml:"trace"`
	ShowDoc     bool   `yaml:"show_doc"`
	IndentWidth int    `yaml:"indent_width"`
	Exec        string `yaml:"-"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Base:        "hex",
		Swap:        "none",
		LogLevel:    "warn",
		ShowDoc:     true,
		IndentWidth: 2,
	}
}

// registerFlags binds cfg to fs.
func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&cfg.Base, "base", cfg.Base, "Display base: hex, bin, dec")
	fs.StringVar(&cfg.Swap, "swap", cfg.Swap, "Swap mode: none, byte, word")
	fs.StringVar(&cfg.Reset, "reset", cfg.Reset, "Reset state to apply to every register after loading")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.Trace, "trace", cfg.Trace, "Write a session trace to this file")
	fs.BoolVar(&cfg.ShowDoc, "doc", cfg.ShowDoc, "Show element and field documentation")
	fs.IntVar(&cfg.IndentWidth, "indent", cfg.IndentWidth, "Spaces per indent level")
	fs.StringVar(&cfg.Exec, "e", "", "Run ';'-separated commands and exit instead of starting the shell")
}

// loadConfigFile merges the YAML file at path into cfg. Values already set
// on the command line win over the file.
func loadConfigFile(path string, cfg *Config, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fileCfg := *cfg
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	set := func(flagName string, dst *string, v string) {
		if !explicit[flagName] {
			*dst = v
		}
	}
	set("base", &cfg.Base, fileCfg.Base)
	set("swap", &cfg.Swap, fileCfg.Swap)
	set("reset", &cfg.Reset, fileCfg.Reset)
	set("log-level", &cfg.LogLevel, fileCfg.LogLevel)
	set("trace", &cfg.Trace, fileCfg.Trace)
	if !explicit["doc"] {
		cfg.ShowDoc = fileCfg.ShowDoc
	}
	if !explicit["indent"] {
		cfg.IndentWidth = fileCfg.IndentWidth
	}
	return nil
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func validateConfig(cfg *Config) (bits.Base, bits.Swap, error) {
	base, err := bits.ParseBaseName(cfg.Base)
	if err != nil {
		return 0, 0, err
	}
	swap, err := bits.ParseSwap(cfg.Swap)
	if err != nil {
		return 0, 0, err
	}
	if cfg.IndentWidth < 0 {
		return 0, 0, fmt.Errorf("indent must not be negative, got %d", cfg.IndentWidth)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return 0, 0, err
	}
	return base, swap, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
}
