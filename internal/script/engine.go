package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/logging"
)

// Default limits.
const (
	DefaultTimeout = time.Second
)

// DefaultCallStackSize and DefaultRegistrySize are gopher-lua's defaults.
var (
	DefaultCallStackSize = lua.CallStackSize
	DefaultRegistrySize  = lua.RegistrySize
)

type object struct {
	name      string
	table     *lua.LTable
	keyPress  map[key.ButtonKeyCode][]*lua.LFunction
	listeners map[string][]*lua.LFunction
}

// Engine runs Lua handlers for bound display objects.
type Engine struct {
	L *lua.LState

	mu      sync.Mutex
	objects map[clip.Handle]*object
	tables  map[*lua.LTable]clip.Handle
	closed  bool

	timeout       time.Duration
	callStackSize int
	registrySize  int
	log           logrus.FieldLogger
	onError       func(error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithCallStackSize sets the Lua call stack size.
func WithCallStackSize(n int) Option {
	return func(e *Engine) {
		e.callStackSize = n
	}
}

// WithRegistrySize sets the Lua registry (data stack) size.
func WithRegistrySize(n int) Option {
	return func(e *Engine) {
		e.registrySize = n
	}
}

// WithLogger sets the logger. Lua's print writes to it at info level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = logging.Component(l, "script")
	}
}

// WithErrorHandler sets a function called with every handler error raised
// while handling events.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Engine) {
		e.onError = fn
	}
}

// NewEngine creates an engine with a fresh sandboxed state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		objects:       make(map[clip.Handle]*object),
		tables:        make(map[*lua.LTable]clip.Handle),
		timeout:       DefaultTimeout,
		callStackSize: DefaultCallStackSize,
		registrySize:  DefaultRegistrySize,
		log:           logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.L = lua.NewState(lua.Options{
		SkipOpenLibs:  true,
		CallStackSize: e.callStackSize,
		RegistrySize:  e.registrySize,
	})
	openSafeLibraries(e.L)
	e.installAPI()
	return e
}

// openSafeLibraries opens the base, table, string and math libraries and
// removes everything that loads code from outside.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (e *Engine) installAPI() {
	e.L.SetGlobal("print", e.L.NewFunction(e.luaPrint))
	e.L.SetGlobal("on_key_press", e.L.NewFunction(e.luaOnKeyPress))
	e.L.SetGlobal("add_event_listener", e.L.NewFunction(e.luaAddEventListener))
	e.L.SetGlobal("remove_event_listener", e.L.NewFunction(e.luaRemoveEventListener))
}

// DoString runs a chunk of Lua.
func (e *Engine) DoString(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	fn, err := e.L.LoadString(code)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return e.call(fn)
}

// DoFile runs a Lua file.
func (e *Engine) DoFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	fn, err := e.L.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return e.call(fn)
}

// Global returns a global variable.
func (e *Engine) Global(name string) lua.LValue {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return lua.LNil
	}
	return e.L.GetGlobal(name)
}

// Close releases the Lua state. It is safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	clear(e.objects)
	clear(e.tables)
	return nil
}

// call runs fn with args under the timeout. The caller holds mu.
func (e *Engine) call(fn lua.LValue, args ...lua.LValue) (err error) {
	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.L.SetContext(ctx)
		defer e.L.RemoveContext()

		defer func() {
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w after %s: %v", ErrTimeout, e.timeout, err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
}

func (e *Engine) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	e.log.Info(strings.Join(parts, "\t"))
	return 0
}
