// Package logging configures the logrus loggers used across topcorr.
//
// Library packages default to Discard so they stay silent unless a caller
// passes a logger through their WithLogger option; the CLI builds its
// logger with New from config and flags.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrFormat indicates an unknown log format.
var ErrFormat = errors.New("logging: unknown format")

// Discard returns a logger that drops every entry.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// New builds a logger writing to w at the given level ("debug", "info", ...)
// in the given format (FormatText or FormatJSON).
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return l, nil
}

// OrDiscard returns l, or Discard() when l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}

	return l
}
