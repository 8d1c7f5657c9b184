package mino

import (
	"errors"
	"io"
	"log"
)

var (
	// ErrInvalidOrder is returned by Generate when the order is not
	// positive or its bounding box has no slots. The previous set is kept.
	ErrInvalidOrder = errors.New("mino: invalid order")

	// ErrEmptySet is returned when the cursor is used on a set with no
	// pieces.
	ErrEmptySet = errors.New("mino: piece set is empty")
)

// Option configures a PieceSet.
type Option func(*Options)

// Options holds the configurable parameters of a PieceSet.
type Options struct {
	// Logger receives one line per generation pass. Defaults to a logger
	// that discards output.
	Logger *log.Logger

	// Reflections makes mirror images count as the same piece. Off by
	// default: only rotations and translations are compared.
	Reflections bool
}

// DefaultOptions returns Options with a discarding logger and rotation-only
// comparison.
func DefaultOptions() Options {
	return Options{
		Logger:      log.New(io.Discard, "", 0),
		Reflections: false,
	}
}

// WithLogger sets the logger for generation passes. A nil logger has no
// effect.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReflections treats mirror images as duplicates.
func WithReflections() Option {
	return func(o *Options) {
		o.Reflections = true
	}
}
