package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultEnvPrefix prefixes environment overrides.
const DefaultEnvPrefix = "CLIPEVENT_"

type loadOptions struct {
	envPrefix string
	useEnv    bool
	environ   func() []string
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithoutEnv ignores the environment.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// WithEnviron reads the environment from fn instead of os.Environ.
func WithEnviron(fn func() []string) LoadOption {
	return func(o *loadOptions) {
		o.environ = fn
	}
}

// Load reads the TOML file at path over the defaults and applies the
// environment. A missing file is not an error; an empty path skips the
// file.
func Load(path string, opts ...LoadOption) (*Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		data = b
	}
	return load(path, data, opts)
}

// LoadReader reads TOML from r over the defaults and applies the
// environment.
func LoadReader(r io.Reader, opts ...LoadOption) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return load("<reader>", data, opts)
}

func load(source string, data []byte, opts []LoadOption) (*Config, error) {
	o := loadOptions{envPrefix: DefaultEnvPrefix, useEnv: true, environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := parse(source, data)
	if err != nil {
		return nil, err
	}
	if o.useEnv {
		raw = deepMerge(raw, newEnvLoader(o.envPrefix, o.environ).load())
	}

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse parses TOML data into a map.
func parse(source string, data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	if len(data) == 0 {
		return raw, nil
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	return raw, nil
}

// decode applies the merged settings to cfg, rejecting unknown keys.
func decode(raw map[string]any, cfg *Config) error {
	b, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			keys := make([]string, 0, len(sme.Errors))
			for _, e := range sme.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strings.Join(keys, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return nil
}

// deepMerge recursively merges src into dst. Maps merge; other values in
// src replace those in dst.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for k, sv := range src {
		sm, srcIsMap := sv.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[k] = deepMerge(dm, sm)
			continue
		}
		dst[k] = sv
	}
	return dst
}
