// Package logging builds the logrus loggers shared by the player
// components.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops everything. Components fall back to
// it when no logger is configured.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New returns a text logger writing to w at the named level ("debug",
// "info", ...). A nil writer selects stderr.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}

// Component returns a child logger tagged with the component name.
func Component(l logrus.FieldLogger, name string) logrus.FieldLogger {
	if l == nil {
		l = Discard()
	}
	return l.WithField("component", name)
}
