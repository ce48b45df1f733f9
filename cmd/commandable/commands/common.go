// Package commands provides CLI command handlers for commandable.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/interceptor"
	"github.com/erraggy/commandable/internal/config"
	"github.com/erraggy/commandable/internal/dummy"
)

// NewLogger builds the structured logger described by cfg, writing to w.
func NewLogger(cfg config.Config, w io.Writer) (interceptor.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == config.FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return interceptor.NewSlogAdapter(slog.New(handler)), nil
}

// NewDummySet builds the bundled dummy command set backed by an in-memory
// controller. Every dispatch is traced and logged.
func NewDummySet(logger interceptor.Logger) (*command.Set, error) {
	set, err := dummy.NewCommandSet(dummy.NewMemoryController())
	if err != nil {
		return nil, fmt.Errorf("build command set: %w", err)
	}
	set.AddInterceptor(interceptor.Tracing(nil))
	set.AddInterceptor(interceptor.Logging(logger))
	return set, nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", path)
	}
	return nil
}
