// Package logging provides the structured logger shared by diabot commands.
//
// Output is logfmt on stderr until Configure is called.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Values for the "source" key attached by Logger.
const (
	SourceApp     = "app"
	SourceCommand = "command"
)

var (
	mu   sync.RWMutex
	root = newRoot(os.Stderr, log.InfoLevel)
)

func newRoot(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFunction:    log.NowUTC,
		TimeFormat:      time.RFC3339,
	})
}

// Configure replaces the root logger with one writing to w at the named level.
// Loggers handed out earlier keep their old settings.
func Configure(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	mu.Lock()
	defer mu.Unlock()
	root = newRoot(w, lvl)
	return nil
}

// Logger returns a child of the root logger tagged with source.
func Logger(source string) *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With("source", source)
}
