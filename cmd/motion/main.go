// Package main is the entry point for the motion command-line host.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/motion/internal/config"
	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/engine/buffer"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/logging"
	"github.com/dshills/motion/internal/protocol"
	"github.com/dshills/motion/internal/script"
	"github.com/dshills/motion/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options are the parsed command-line flags.
type Options struct {
	ConfigPath string
	LogLevel   string
	Schema     bool
	TUI        bool
	Watch      bool
	ScriptPath string
	Request    string
	At         string
	Write      bool
	Print      bool
	File       string
}

func main() {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, opts, os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.BoolVar(&opts.Schema, "schema", false, "Print the JSON schema of a request and exit")
	flag.BoolVar(&opts.TUI, "tui", false, "Edit the file interactively in the terminal")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the config file when it changes (with -tui)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Run a YAML (.yaml, .yml) or Lua (.lua) script")
	flag.StringVar(&opts.ScriptPath, "s", "", "Run a script (shorthand)")
	flag.StringVar(&opts.Request, "request", "", "Run a JSON request or array of requests; - reads stdin")
	flag.StringVar(&opts.Request, "r", "", "Run a JSON request (shorthand)")
	flag.StringVar(&opts.At, "at", "", "Initial cursors as line:character pairs, comma separated")
	flag.BoolVar(&opts.Write, "write", false, "Write the edited document back to the file")
	flag.BoolVar(&opts.Write, "w", false, "Write the edited document back (shorthand)")
	flag.BoolVar(&opts.Print, "print", false, "Print the document with | cursor marks after running")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "motion - text motions and multi-cursor editing\n\n")
		fmt.Fprintf(os.Stderr, "Usage: motion [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  motion -schema                                  Print the request schema\n")
		fmt.Fprintf(os.Stderr, "  motion -tui notes.txt                           Edit a file\n")
		fmt.Fprintf(os.Stderr, "  motion -s edits.yaml -w notes.txt               Apply a script in place\n")
		fmt.Fprintf(os.Stderr, "  motion -r '{\"command\":\"increment\"}' -at 2:0 -print notes.txt\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("motion %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file may be given\n")
		os.Exit(1)
	}
	opts.File = flag.Arg(0)
	return opts
}

func run(ctx context.Context, opts Options, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := execute(ctx, opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, opts Options, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.Schema {
		schema, err := protocol.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(schema))
		return err
	}

	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel(), Output: stderr, Prefix: "motion"})
	d, err := dispatcher.New(cfg.DispatcherConfig(), dispatcher.WithLogger(logger))
	if err != nil {
		return err
	}

	var sc *script.Script
	if isYAML(opts.ScriptPath) {
		if sc, err = script.LoadYAML(opts.ScriptPath); err != nil {
			return err
		}
	}

	h, err := openHost(opts, sc)
	if err != nil {
		return err
	}

	if opts.TUI {
		if opts.Watch && opts.ConfigPath != "" {
			w, err := config.Watch(loader, func(c config.Config) {
				logger.SetLevel(c.LogLevel())
				logger.Info("config reloaded from %s", opts.ConfigPath)
			}, config.WithErrorHandler(func(err error) {
				logger.Warn("config reload: %v", err)
			}))
			if err != nil {
				return err
			}
			defer w.Close()
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating terminal: %w", err)
		}
		if err := tui.New(screen, h, d, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		runner := script.NewRunner(d, logger)
		if err := runBatch(ctx, opts, runner, h, sc, stdin, stdout); err != nil {
			return err
		}
	}

	if opts.Print {
		if _, err := fmt.Fprintln(stdout, h.Marked()); err != nil {
			return err
		}
	}
	if opts.Write && opts.File != "" {
		return writeFile(opts.File, h.Text())
	}
	return nil
}

// runBatch runs the script or requests and prints one encoded result per
// command.
func runBatch(ctx context.Context, opts Options, runner *script.Runner, h *host.Memory, sc *script.Script, stdin io.Reader, stdout io.Writer) error {
	var results []handler.Result
	var runErr error

	switch {
	case sc != nil:
		results, runErr = runner.Run(ctx, h, sc)
	case opts.ScriptPath != "":
		engine := script.NewLua(runner, script.WithOutput(stdout))
		defer engine.Close()
		results, runErr = engine.RunFile(ctx, h, opts.ScriptPath)
	case opts.Request != "":
		data := []byte(opts.Request)
		if opts.Request == "-" {
			var err error
			if data, err = io.ReadAll(stdin); err != nil {
				return fmt.Errorf("reading request: %w", err)
			}
		}
		reqs, err := protocol.ParseRequests(data)
		if err != nil {
			return err
		}
		results, runErr = runner.Run(ctx, h, &script.Script{Name: "request", Steps: reqs})
	default:
		return nil
	}

	for _, res := range results {
		out, err := protocol.EncodeResult(res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, string(out)); err != nil {
			return err
		}
	}
	return runErr
}

// openHost builds the document from the file, or from the script's text
// when no file is given.
func openHost(opts Options, sc *script.Script) (*host.Memory, error) {
	hostOpts := []host.Option{host.WithClipboard(host.DefaultClipboard())}

	var h *host.Memory
	switch {
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil && !(errors.Is(err, os.ErrNotExist) && opts.TUI) {
			return nil, fmt.Errorf("reading %s: %w", opts.File, err)
		}
		// The buffer keeps the file's line ending for -write.
		buf, err := buffer.NewBufferFromReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		h = host.NewMemory(buf, hostOpts...)
	case sc != nil && sc.Text != "":
		h = host.NewMemoryFromMarked(sc.Text, hostOpts...)
	default:
		h = host.NewMemoryFromString("", hostOpts...)
	}

	if opts.At != "" {
		sels, err := parseCursors(opts.At)
		if err != nil {
			return nil, err
		}
		h.SetSelections(sels)
	}
	return h, nil
}

// parseCursors parses "line:character[,line:character...]".
func parseCursors(s string) ([]text.Selection, error) {
	var sels []text.Selection
	for _, part := range strings.Split(s, ",") {
		lineStr, charStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid cursor %q: want line:character", part)
		}
		line, err := strconv.Atoi(lineStr)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor %q: %w", part, err)
		}
		char, err := strconv.Atoi(charStr)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor %q: %w", part, err)
		}
		sels = append(sels, text.NewCursor(text.Pos(line, char)))
	}
	return sels, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func writeFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
