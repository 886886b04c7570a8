package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
	"github.com/dshills/clipevent/internal/logging"
	"github.com/dshills/clipevent/internal/script"
)

// Config holds every player setting.
type Config struct {
	Mouse    MouseConfig    `toml:"mouse"`
	Keyboard KeyboardConfig `toml:"keyboard"`
	Gamepad  GamepadConfig  `toml:"gamepad"`
	Script   ScriptConfig   `toml:"script"`
	Logging  LoggingConfig  `toml:"logging"`
}

// MouseConfig configures click detection.
type MouseConfig struct {
	// DoubleClickTime is the longest gap between presses of one
	// multi-click.
	DoubleClickTime Duration `toml:"double_click_time"`

	// DoubleClickDistance is the farthest, in pixels, the pointer may
	// move between presses of one multi-click.
	DoubleClickDistance float64 `toml:"double_click_distance"`
}

// KeyboardConfig configures keyboard shortcuts.
type KeyboardConfig struct {
	// CommandModifier is Ctrl, or Meta on macOS-style platforms.
	CommandModifier key.Modifier `toml:"command_modifier"`
}

// GamepadConfig configures gamepad to key translation.
type GamepadConfig struct {
	// Mapping overrides the default mapping, button name to key name.
	Mapping map[string]string `toml:"mapping"`
}

// ScriptConfig configures the Lua engine.
type ScriptConfig struct {
	CallStackSize int      `toml:"call_stack_size"`
	RegistrySize  int      `toml:"registry_size"`
	Timeout       Duration `toml:"timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Mouse: MouseConfig{
			DoubleClickTime:     Duration(mouse.DefaultDoubleClickTime),
			DoubleClickDistance: mouse.DefaultDoubleClickDistance,
		},
		Keyboard: KeyboardConfig{CommandModifier: key.ModCtrl},
		Gamepad:  GamepadConfig{Mapping: map[string]string{}},
		Script: ScriptConfig{
			CallStackSize: script.DefaultCallStackSize,
			RegistrySize:  script.DefaultRegistrySize,
			Timeout:       Duration(script.DefaultTimeout),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Mouse.DoubleClickTime < 0 {
		return &ValidationError{"mouse.double_click_time", "must not be negative"}
	}
	if c.Mouse.DoubleClickDistance < 0 {
		return &ValidationError{"mouse.double_click_distance", "must not be negative"}
	}
	if m := c.Keyboard.CommandModifier; m != key.ModCtrl && m != key.ModMeta {
		return &ValidationError{"keyboard.command_modifier", fmt.Sprintf("must be Ctrl or Meta, got %q", m)}
	}
	if _, err := gamepad.ParseMapping(c.Gamepad.Mapping); err != nil {
		return &ValidationError{"gamepad.mapping", err.Error()}
	}
	if c.Script.CallStackSize < 0 {
		return &ValidationError{"script.call_stack_size", "must not be negative"}
	}
	if c.Script.RegistrySize < 0 {
		return &ValidationError{"script.registry_size", "must not be negative"}
	}
	if c.Script.Timeout < 0 {
		return &ValidationError{"script.timeout", "must not be negative"}
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{"logging.level", err.Error()}
	}
	return nil
}

// GamepadMapping returns the default mapping with the configured
// overrides applied.
func (c *Config) GamepadMapping() (gamepad.Mapping, error) {
	overrides, err := gamepad.ParseMapping(c.Gamepad.Mapping)
	if err != nil {
		return nil, err
	}
	m := gamepad.DefaultMapping().Clone()
	for b, code := range overrides {
		m[b] = code
	}
	return m, nil
}

// ManagerOptions returns input manager options for these settings.
func (c *Config) ManagerOptions() ([]input.ManagerOption, error) {
	mapping, err := c.GamepadMapping()
	if err != nil {
		return nil, err
	}
	return []input.ManagerOption{
		input.WithGamepadMapping(mapping),
		input.WithClickThresholds(time.Duration(c.Mouse.DoubleClickTime), c.Mouse.DoubleClickDistance),
	}, nil
}

// Shortcuts returns the text editing shortcuts for these settings.
func (c *Config) Shortcuts() text.Shortcuts {
	return text.Shortcuts{Command: c.Keyboard.CommandModifier}
}

// ScriptOptions returns script engine options for these settings.
func (c *Config) ScriptOptions() []script.Option {
	return []script.Option{
		script.WithCallStackSize(c.Script.CallStackSize),
		script.WithRegistrySize(c.Script.RegistrySize),
		script.WithTimeout(time.Duration(c.Script.Timeout)),
	}
}

// Logger builds a logger at the configured level writing to w.
func (c *Config) Logger(w io.Writer) (*logrus.Logger, error) {
	return logging.New(w, c.Logging.Level)
}

// Duration is a time.Duration read from TOML as a Go duration string
// ("250ms") or a bare integer of milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the duration in Go syntax.
func (d Duration) String() string {
	return time.Duration(d).String()
}
