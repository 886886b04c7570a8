package record

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dshills/clipevent/internal/input"
)

// FormatVersion is the recording format written by Encode.
const FormatVersion = 1

// Recording is a captured event stream.
type Recording struct {
	Version int       `yaml:"version"`
	Session uuid.UUID `yaml:"session"`
	Created time.Time `yaml:"created"`
	Events  []Entry   `yaml:"events"`
}

// New returns an empty recording with a fresh session id.
func New(created time.Time) *Recording {
	return &Recording{
		Version: FormatVersion,
		Session: uuid.New(),
		Created: created,
	}
}

// Duration returns the offset of the last event.
func (r *Recording) Duration() time.Duration {
	if len(r.Events) == 0 {
		return 0
	}
	return r.Events[len(r.Events)-1].At
}

// Entry is one event and its offset from the start of the recording.
type Entry struct {
	At    time.Duration
	Event input.PlayerEvent
}

type envelope struct {
	At    string          `yaml:"at"`
	Kind  input.EventKind `yaml:"kind"`
	Event *yaml.Node      `yaml:"event,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (e Entry) MarshalYAML() (any, error) {
	if e.Event == nil {
		return nil, ErrMissingEvent
	}
	env := envelope{At: e.At.String(), Kind: e.Event.Kind()}
	if !isEmptyEvent(e.Event.Kind()) {
		var node yaml.Node
		if err := node.Encode(e.Event); err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.Event.Kind(), err)
		}
		node.Style = yaml.FlowStyle
		env.Event = &node
	}
	return env, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var env envelope
	if err := value.Decode(&env); err != nil {
		return err
	}
	at, err := time.ParseDuration(env.At)
	if err != nil {
		return fmt.Errorf("line %d: at: %w", value.Line, err)
	}
	ev, err := decodeEvent(env.Kind, env.Event)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	e.At = at
	e.Event = ev
	return nil
}

func isEmptyEvent(k input.EventKind) bool {
	switch k {
	case input.KindMouseLeave, input.KindFocusGained, input.KindFocusLost:
		return true
	}
	return false
}

// decodeEvent builds the concrete event for kind from its payload.
func decodeEvent(kind input.EventKind, node *yaml.Node) (input.PlayerEvent, error) {
	switch kind {
	case input.KindMouseLeave:
		return input.MouseLeave{}, nil
	case input.KindFocusGained:
		return input.FocusGained{}, nil
	case input.KindFocusLost:
		return input.FocusLost{}, nil
	}
	if node == nil {
		return nil, fmt.Errorf("%s: %w", kind, ErrMissingEvent)
	}

	var (
		ev  input.PlayerEvent
		err error
	)
	switch kind {
	case input.KindKeyDown:
		ev, err = decodeAs[input.KeyDown](node)
	case input.KindKeyUp:
		ev, err = decodeAs[input.KeyUp](node)
	case input.KindMouseMove:
		ev, err = decodeAs[input.MouseMove](node)
	case input.KindMouseUp:
		ev, err = decodeAs[input.MouseUp](node)
	case input.KindMouseDown:
		ev, err = decodeAs[input.MouseDown](node)
	case input.KindMouseWheel:
		ev, err = decodeAs[input.MouseWheel](node)
	case input.KindGamepadButtonDown:
		ev, err = decodeAs[input.GamepadButtonDown](node)
	case input.KindGamepadButtonUp:
		ev, err = decodeAs[input.GamepadButtonUp](node)
	case input.KindTextInput:
		ev, err = decodeAs[input.TextInput](node)
	case input.KindTextControl:
		ev, err = decodeAs[input.TextControl](node)
	case input.KindIme:
		ev, err = decodeAs[input.Ime](node)
	default:
		return nil, fmt.Errorf("%w: %s", input.ErrUnknownEventKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return ev, nil
}

func decodeAs[T input.PlayerEvent](node *yaml.Node) (input.PlayerEvent, error) {
	var v T
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode writes the recording as YAML.
func Encode(w io.Writer, r *Recording) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML recording.
func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if r.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	return &r, nil
}
