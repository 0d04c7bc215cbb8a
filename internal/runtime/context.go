// Package runtime provides application runtime context for Nudge.
package runtime

import (
	"os"

	"github.com/nudge-cli/nudge/internal/engine"
	apperrors "github.com/nudge-cli/nudge/internal/errors"
	"github.com/nudge-cli/nudge/internal/output"
	"github.com/nudge-cli/nudge/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Engine    *engine.Engine
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("NUDGE_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	var db *storage.DB
	var err error
	if opts.InMemory {
		db, err = storage.OpenInMemory()
	} else {
		db, err = storage.Open(opts.DBPath)
	}
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:        db,
		Engine:    engine.New(db),
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// FormatError renders an error for the terminal, appending the
// suggestion for user errors.
func FormatError(err error) string {
	if ue, ok := apperrors.AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Error() + "\n  hint: " + ue.Suggestion
	}
	return err.Error()
}
