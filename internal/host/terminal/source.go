package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/logging"
)

// Source polls a screen and emits player events.
type Source struct {
	screen tcell.Screen
	tr     *Translator
	log    logrus.FieldLogger
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithTranslator replaces the default translator.
func WithTranslator(tr *Translator) SourceOption {
	return func(s *Source) {
		if tr != nil {
			s.tr = tr
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) SourceOption {
	return func(s *Source) {
		s.log = logging.Component(l, "terminal")
	}
}

// NewSource creates a source for an initialised screen. The caller owns
// the screen and must call Fini on it.
func NewSource(screen tcell.Screen, opts ...SourceOption) *Source {
	s := &Source{
		screen: screen,
		tr:     NewTranslator(),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translator returns the translator in use.
func (s *Source) Translator() *Translator {
	return s.tr
}

// Run polls until ctx is done or the screen is finalised, calling emit for
// every player event on the calling goroutine. It returns ctx.Err() when
// cancelled and nil when the screen was finalised.
func (s *Source) Run(ctx context.Context, emit func(input.PlayerEvent)) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil)) // wake PollEvent
		case <-stop:
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		events := s.tr.Translate(ev)
		if len(events) == 0 {
			s.log.WithField("event", fmt.Sprintf("%T", ev)).Debug("terminal event ignored")
			continue
		}
		for _, pe := range events {
			emit(pe)
		}
	}
}
