// Command regview is an interactive register description viewer.
//
// It loads a register description file, resolves addresses, widths and
// reset values, and opens a shell for browsing the element tree and editing
// register and field values.
//
// Usage:
//
//	regview [flags] <file.yaml>
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-base string       Display base: hex, bin, dec (default "hex")
//	-swap string       Swap mode: none, byte, word (default "none")
//	-reset string      Reset state to apply to every register after loading
//	-log-level string  Log level: debug, info, warn, error (default "warn")
//	-trace string      Write a session trace to this file
//	-doc               Show element and field documentation (default true)
//	-indent int        Spaces per indent level (default 2)
//	-e string          Run ';'-separated commands and exit
//
// Examples:
//
//	# Browse a design
//	regview design.yaml
//
//	# Print one register in binary and exit
//	regview -base bin -e "show /blkA/regA0" design.yaml
//
//	# Record the session for regview-log
//	regview -trace session.rvlog design.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/regview/regview-go/cmd/regview/interactive"
	"github.com/regview/regview-go/pkg/design"
	"github.com/regview/regview-go/pkg/inspect"
	"github.com/regview/regview-go/pkg/loader"
	"github.com/regview/regview-go/pkg/log"
	"github.com/regview/regview-go/pkg/session"
)

func main() {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("regview", flag.ExitOnError)
	registerFlags(fs, &cfg)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  regview [flags] <file.yaml>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if cfg.ConfigFile != "" {
		if err := loadConfigFile(cfg.ConfigFile, &cfg, explicitFlags(fs)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: description file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := run(cfg, fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, path string) error {
	base, swap, err := validateConfig(&cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := parseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	d, err := loader.LoadFile(ctx, path, loader.Options{Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("design loaded", "file", path, "elements", d.Len())

	var fileLogger *log.FileLogger
	if cfg.Trace != "" {
		fileLogger, err = log.NewFileLogger(cfg.Trace)
		if err != nil {
			return fmt.Errorf("failed to open trace file: %w", err)
		}
		defer fileLogger.Close()
	}
	var trace log.Logger = log.NoopLogger{}
	if fileLogger != nil || level <= slog.LevelDebug {
		var slogTrace log.Logger
		if level <= slog.LevelDebug {
			slogTrace = log.NewSlogAdapter(logger)
		}
		var fileTrace log.Logger
		if fileLogger != nil {
			fileTrace = fileLogger
		}
		trace = log.NewMultiLogger(fileTrace, slogTrace)
	}

	scfg := session.DefaultConfig()
	scfg.Base = base
	scfg.Swap = swap
	scfg.Source = path
	scfg.Logger = logger
	scfg.Trace = trace
	sess := session.New(d, scfg)

	if cfg.Reset != "" {
		if err := applyResetEverywhere(sess, cfg.Reset); err != nil {
			return err
		}
	}

	formatter := inspect.NewFormatter()
	formatter.ShowDoc = cfg.ShowDoc
	formatter.IndentWidth = cfg.IndentWidth

	sh := interactive.NewShell(sess, formatter, os.Stdout)

	if cfg.Exec != "" {
		for _, line := range strings.Split(cfg.Exec, ";") {
			if quit := sh.Execute(line); quit {
				break
			}
		}
		if sh.Failed() {
			return fmt.Errorf("one or more commands failed")
		}
		return nil
	}

	if reg := sess.FirstRegister(); reg != nil {
		sh.Execute("cd " + inspectPath(reg.ID))
		sh.Execute("show")
	}
	return sh.Run(ctx)
}

// applyResetEverywhere selects state name on every register that declares it.
func applyResetEverywhere(sess *session.Session, name string) error {
	applied := 0
	for _, e := range sess.Design().Elements() {
		if !e.IsRegister() {
			continue
		}
		states, err := sess.ResetStates(e.ID)
		if err != nil {
			return err
		}
		for _, s := range states {
			if s == name {
				if err := sess.SelectReset(e.ID, name); err != nil {
					return err
				}
				applied++
				break
			}
		}
	}
	if applied == 0 {
		return fmt.Errorf("%w: no register declares %q", design.ErrUnknownResetState, name)
	}
	return nil
}

func inspectPath(id string) string {
	return (&inspect.Path{ElementID: id}).String()
}
