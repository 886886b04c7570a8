package config

import (
	"strconv"
	"strings"
)

// envLoader reads CLIPEVENT_ style overrides.
type envLoader struct {
	prefix  string
	environ func() []string
	mapping map[string]string // Env var -> setting path
}

func newEnvLoader(prefix string, environ func() []string) *envLoader {
	return &envLoader{
		prefix:  prefix,
		environ: environ,
		mapping: map[string]string{
			prefix + "LOG_LEVEL": "logging.level",
		},
	}
}

// load returns the overrides as a nested map.
func (l *envLoader) load() map[string]any {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, ok := l.mapping[name]
		if !ok {
			path, ok = l.envToPath(name)
		}
		if !ok {
			continue
		}
		if strings.HasPrefix(path, "gamepad.mapping.") {
			setByPath(config, path, value)
		} else {
			setByPath(config, path, parseValue(value))
		}
	}
	return config
}

// envToPath converts CLIPEVENT_MOUSE_DOUBLE_CLICK_TIME to
// mouse.double_click_time and CLIPEVENT_GAMEPAD_MAPPING_LEFT_TRIGGER to
// gamepad.mapping.left-trigger.
func (l *envLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	if button, ok := strings.CutPrefix(name, "gamepad_mapping_"); ok {
		if button == "" {
			return "", false
		}
		return "gamepad.mapping." + strings.ReplaceAll(button, "_", "-"), true
	}
	section, setting, ok := strings.Cut(name, "_")
	if !ok || section == "" || setting == "" {
		return "", false
	}
	return section + "." + setting, true
}

// parseValue converts numbers and booleans; everything else stays a
// string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
