package input

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/logging"
)

// Manager converts player events into input events and tracks input state.
//
// Process must be called from a single goroutine. The pressed-key queries
// are safe to call from any goroutine.
type Manager struct {
	mu          sync.RWMutex
	pressed     map[key.KeyCode]struct{}
	lastKeyCode key.KeyCode

	clicks  *mouse.ClickTracker
	mapping gamepad.Mapping
	hooks   *HookManager
	metrics *Metrics
	log     logrus.FieldLogger
	now     func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithGamepadMapping sets the gamepad-to-key mapping. Without one, gamepad
// events are dropped.
func WithGamepadMapping(m gamepad.Mapping) ManagerOption {
	return func(mgr *Manager) {
		mgr.mapping = m.Clone()
	}
}

// WithClickThresholds sets the double-click time and distance.
func WithClickThresholds(maxTime time.Duration, maxDistance float64) ManagerOption {
	return func(mgr *Manager) {
		mgr.clicks = mouse.NewClickTracker(maxTime, maxDistance)
	}
}

// WithHooks sets the hook manager.
func WithHooks(h *HookManager) ManagerOption {
	return func(mgr *Manager) {
		mgr.hooks = h
	}
}

// WithMetrics sets the metrics tracker.
func WithMetrics(m *Metrics) ManagerOption {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) ManagerOption {
	return func(mgr *Manager) {
		mgr.log = l
	}
}

// WithClock replaces time.Now for click detection.
func WithClock(now func() time.Time) ManagerOption {
	return func(mgr *Manager) {
		mgr.now = now
	}
}

// NewManager creates a manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		pressed: make(map[key.KeyCode]struct{}),
		clicks:  mouse.NewClickTracker(0, 0),
		hooks:   NewHookManager(),
		metrics: NewMetrics(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logging.Discard()
	}
	return m
}

// Hooks returns the hook manager.
func (m *Manager) Hooks() *HookManager {
	return m.hooks
}

// Metrics returns the metrics tracker.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// SetGamepadMapping replaces the gamepad mapping.
func (m *Manager) SetGamepadMapping(mapping gamepad.Mapping) {
	m.mapping = mapping.Clone()
}

// SetClickThresholds replaces the click tracker.
func (m *Manager) SetClickThresholds(maxTime time.Duration, maxDistance float64) {
	m.clicks = mouse.NewClickTracker(maxTime, maxDistance)
}

// Process converts a player event. It returns false when the event was
// consumed by a hook or has no input form (an unmapped gamepad button).
func (m *Manager) Process(ev PlayerEvent) (InputEvent, bool) {
	if ev == nil {
		return nil, false
	}
	start := time.Now()

	if m.hooks.RunPreEvent(ev) {
		m.metrics.RecordHookConsumption()
		return nil, false
	}

	out := m.convert(ev)
	m.hooks.RunPostEvent(ev, out)

	if out == nil {
		m.metrics.RecordDropped()
		m.log.WithField("kind", ev.Kind()).Debug("input event dropped")
		return nil, false
	}
	m.metrics.RecordEvent(ev.Kind(), time.Since(start))
	return out, true
}

func (m *Manager) convert(ev PlayerEvent) InputEvent {
	switch e := ev.(type) {
	case KeyDown:
		code := e.Key.KeyCode()
		ch, hasChar := e.Key.Character()
		m.press(code)
		return KeyDownInput{KeyCode: code, Char: ch, HasChar: hasChar, Modifiers: e.Modifiers}
	case KeyUp:
		code := e.Key.KeyCode()
		ch, hasChar := e.Key.Character()
		m.release(code)
		return KeyUpInput{KeyCode: code, Char: ch, HasChar: hasChar, Modifiers: e.Modifiers}
	case MouseMove:
		return MouseMoveInput{X: e.X, Y: e.Y}
	case MouseDown:
		m.press(e.Button.KeyCode())
		index := 0
		if e.Index != nil {
			index = *e.Index
		} else {
			index = m.clicks.Record(e.Button, mouse.Position{X: e.X, Y: e.Y}, m.now())
			m.metrics.RecordClickAssigned()
		}
		return MouseDownInput{X: e.X, Y: e.Y, Button: e.Button, Index: index}
	case MouseUp:
		m.release(e.Button.KeyCode())
		return MouseUpInput{X: e.X, Y: e.Y, Button: e.Button}
	case MouseLeave:
		return MouseLeaveInput{}
	case MouseWheel:
		return MouseWheelInput{Delta: e.Delta}
	case GamepadButtonDown:
		code, ok := m.mapping.KeyCode(e.Button)
		if !ok {
			return nil
		}
		m.press(code)
		return KeyDownInput{KeyCode: code}
	case GamepadButtonUp:
		code, ok := m.mapping.KeyCode(e.Button)
		if !ok {
			return nil
		}
		m.release(code)
		return KeyUpInput{KeyCode: code}
	case TextInput:
		return TextInputInput{Codepoint: e.Codepoint}
	case TextControl:
		return TextControlInput{Code: e.Code}
	case Ime:
		return ImeInput{Event: e.Event}
	case FocusGained:
		return FocusGainedInput{}
	case FocusLost:
		m.releaseAll()
		return FocusLostInput{}
	}
	return nil
}

func (m *Manager) press(code key.KeyCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code != key.CodeUnknown {
		m.pressed[code] = struct{}{}
	}
	m.lastKeyCode = code
}

func (m *Manager) release(code key.KeyCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pressed, code)
}

func (m *Manager) releaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.pressed)
}

// IsKeyDown reports whether a key or mouse button is held.
func (m *Manager) IsKeyDown(code key.KeyCode) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pressed[code]
	return ok
}

// LastKeyCode returns the most recently pressed key code.
func (m *Manager) LastKeyCode() key.KeyCode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastKeyCode
}

// PressedKeys returns the held keys in ascending order.
func (m *Manager) PressedKeys() []key.KeyCode {
	m.mu.RLock()
	codes := make([]key.KeyCode, 0, len(m.pressed))
	for c := range m.pressed {
		codes = append(codes, c)
	}
	m.mu.RUnlock()
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
