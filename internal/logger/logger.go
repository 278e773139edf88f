// Package logger builds the application's zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Build configures a logger destination.
type Build struct {
	writer io.Writer
	path   string
}

// New starts a logger build writing to stderr.
func New() *Build {
	return &Build{writer: os.Stderr}
}

// FromPath directs output to an append-only file.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

// FromWriter directs output to the given writer.
func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// Make finishes the build.
func (b *Build) Make() (zerolog.Logger, error) {
	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), err
		}
		w = zerolog.SyncWriter(f)
	}
	return zerolog.New(w).With().Timestamp().Logger(), nil
}
