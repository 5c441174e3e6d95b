// Package logging builds the charm logger shared by the command-line tools.
package logging

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
	now func() time.Time
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			// put back the partial line
			t.buf.WriteString(line)
			break
		}
		ts := t.now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return n, err
		}
	}
	return n, nil
}

// terminalWriter exposes an Fd method so charm's TTY detection still works
// through wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// Options controls New.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose bool
	// File, when set, receives a copy of every log line (opened for append).
	File string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New returns a logger and a close function for the optional log file. An
// unknown level falls back to info with a warning; a log file that cannot be
// opened is reported and skipped.
func New(opts Options) (*log.Logger, func() error) {
	out := opts.Out
	fd := os.Stderr.Fd()
	if out == nil {
		out = os.Stderr
	}
	closer := func() error { return nil }

	var fileErr error
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(out, f)
			closer = f.Close
		} else {
			fileErr = err
		}
	}

	tw := &timestampWriter{w: out, now: time.Now}
	logger := log.New(&terminalWriter{w: tw, fd: fd})

	level, known := parseLevel(opts.Level)
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	if !known {
		logger.Warn("unknown log_level in config, defaulting to info", "provided", opts.Level)
	}
	if fileErr != nil {
		logger.Warn("log_file could not be opened; logging to stderr only", "path", opts.File, "err", fileErr)
	}
	return logger, closer
}

func parseLevel(s string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	default:
		return log.InfoLevel, false
	}
}
