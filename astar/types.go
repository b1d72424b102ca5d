package astar

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// ErrNilGrid indicates that a nil *maze.Grid was passed to New.
var ErrNilGrid = errors.New("astar: grid is nil")

// Options configures an Engine.
type Options struct {
	// Logger receives debug records for each search.
	Logger *slog.Logger
	// Ctx bounds a search; it is checked once per frontier pop.
	Ctx context.Context
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext bounds every search of the engine by ctx. A nil ctx keeps
// the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a discarding logger and a background
// context.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ctx:    context.Background(),
	}
}

// Result is the outcome of Search together with frontier statistics.
type Result struct {
	Path     Path // empty when Found is false
	Found    bool
	Expanded int // nodes popped and closed
	Pushed   int // nodes pushed onto the frontier, the seed included
	Stale    int // popped entries dropped because their cell was already closed
}
