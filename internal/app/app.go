// Package app wires the player's components together: configuration,
// logging, the input manager, the display tree and its router, the script
// engine, host notifications and recording.
//
// A Player is fed host events through Feed, from one goroutine:
//
//	p, err := app.New(app.Options{ConfigPath: "clipevent.toml"})
//	if err != nil {
//	    return err
//	}
//	defer p.Shutdown()
//	p.Feed(ctx, input.MouseMove{X: 30, Y: 30})
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/config"
	"github.com/dshills/clipevent/internal/dispatch"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/notify"
	"github.com/dshills/clipevent/internal/record"
	"github.com/dshills/clipevent/internal/script"
)

// Options configures a Player.
type Options struct {
	// ConfigPath is the TOML settings file. Empty uses defaults and the
	// environment only.
	ConfigPath string

	// Watch reloads ConfigPath when it changes.
	Watch bool

	// LogLevel overrides the configured level when set.
	LogLevel string

	// LogOutput receives log lines; nil selects stderr.
	LogOutput io.Writer

	// Scene is the initial display tree. Nil loads ScenePath, or the
	// default scene when ScenePath is empty too.
	Scene     *Scene
	ScenePath string

	// ScriptPath and ScriptSource are Lua run after the scene is bound,
	// file first.
	ScriptPath   string
	ScriptSource string

	// Record captures every host event fed to the player.
	Record bool

	// Observer is called after every delivery.
	Observer dispatch.Observer

	// LoadOptions are passed to the config loader.
	LoadOptions []config.LoadOption
}

// Player is one running player instance.
type Player struct {
	// mu serialises event processing with config reloads, which arrive on
	// the watcher goroutine.
	mu sync.Mutex

	opts   Options
	cfg    *config.Config
	log    *logrus.Logger
	closed bool

	manager  *input.Manager
	tree     *dispatch.MemoryTree
	router   *dispatch.Router
	engine   *script.Engine
	notifier *notify.Notifier
	recorder *record.Recorder
	watcher  *config.Watcher

	fields map[clip.Handle]Object
	focus  focusState
}

// New creates a player and starts its components.
func New(opts Options) (*Player, error) {
	p := &Player{
		opts:   opts,
		fields: make(map[clip.Handle]Object),
	}
	if err := p.bootstrap(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

// bootstrap initializes all components in dependency order.
func (p *Player) bootstrap() error {
	var err error

	// 1. Config
	p.cfg, err = config.Load(p.opts.ConfigPath, p.opts.LoadOptions...)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if p.opts.LogLevel != "" {
		p.cfg.Logging.Level = p.opts.LogLevel
	}

	// 2. Logging
	p.log, err = p.cfg.Logger(p.opts.LogOutput)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Notifications
	p.notifier = notify.New(notify.WithLogger(p.log))

	// 4. Input manager
	managerOpts, err := p.cfg.ManagerOptions()
	if err != nil {
		return &InitError{Component: "input", Err: err}
	}
	managerOpts = append(managerOpts, input.WithLogger(p.log))
	p.manager = input.NewManager(managerOpts...)
	p.manager.Hooks().RegisterWithOptions(input.LoggingHook{Log: p.log.WithField("component", "input")}, "log", input.HookPriorityLow)
	if p.opts.Record {
		p.recorder = record.NewRecorder()
		p.manager.Hooks().RegisterWithOptions(p.recorder, "record", input.HookPriorityHigh)
	}

	// 5. Script engine
	scriptOpts := append(p.cfg.ScriptOptions(), script.WithLogger(p.log))
	p.engine = script.NewEngine(scriptOpts...)

	// 6. Display tree
	scene, err := p.scene()
	if err != nil {
		return &InitError{Component: "scene", Err: err}
	}
	p.tree = dispatch.NewMemoryTree(scene.Name)
	if _, err := p.engine.Bind(p.tree.Root(), scene.Name); err != nil {
		return &InitError{Component: "scene", Err: err}
	}
	err = scene.build(p.tree, func(h clip.Handle, o Object) error {
		if _, err := p.engine.Bind(h, o.Name); err != nil {
			return &SceneError{Object: o.Name, Err: err}
		}
		node, _ := p.tree.Node(h)
		node.Handler = p.engine.Handle
		if o.Editable {
			p.fields[h] = o
		}
		return nil
	})
	if err != nil {
		return &InitError{Component: "scene", Err: err}
	}
	if root, ok := p.tree.Node(p.tree.Root()); ok {
		root.Handler = p.engine.Handle
	}

	// 7. Scripts
	if p.opts.ScriptPath != "" {
		if err := p.engine.DoFile(p.opts.ScriptPath); err != nil {
			return &InitError{Component: "script", Err: err}
		}
	}
	if p.opts.ScriptSource != "" {
		if err := p.engine.DoString(p.opts.ScriptSource); err != nil {
			return &InitError{Component: "script", Err: err}
		}
	}

	// 8. Router
	routerOpts := []dispatch.Option{dispatch.WithLogger(p.log)}
	if p.opts.Observer != nil {
		routerOpts = append(routerOpts, dispatch.WithObserver(p.opts.Observer))
	}
	p.router = dispatch.NewRouter(p.tree, routerOpts...)
	p.router.Send(context.Background(), clip.New(clip.KindLoad), p.tree.Root())

	// 9. Config watcher
	if p.opts.Watch && p.opts.ConfigPath != "" {
		p.watcher, err = config.NewWatcher(p.opts.ConfigPath, p.reload,
			config.WithWatchLogger(p.log),
			config.WithLoadOptions(p.opts.LoadOptions...))
		if err != nil {
			return &InitError{Component: "config watcher", Err: err}
		}
	}

	p.log.WithFields(logrus.Fields{
		"scene":   scene.Name,
		"objects": p.tree.Len(),
		"record":  p.opts.Record,
	}).Info("player started")
	return nil
}

func (p *Player) scene() (*Scene, error) {
	switch {
	case p.opts.Scene != nil:
		return p.opts.Scene, nil
	case p.opts.ScenePath != "":
		return LoadScene(p.opts.ScenePath)
	default:
		return DefaultScene(), nil
	}
}

// Feed processes one host event and dispatches the result. It reports
// whether any object handled it.
func (p *Player) Feed(ctx context.Context, ev input.PlayerEvent) (clip.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return clip.NotHandled, ErrClosed
	}
	out, ok := p.manager.Process(ev)
	if !ok {
		return clip.NotHandled, nil
	}
	res := p.router.Dispatch(ctx, out)
	p.updateFocus(out)
	return res, ctx.Err()
}

// Tick starts a new frame: every object receives EnterFrame.
func (p *Player) Tick(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	p.router.Send(ctx, clip.New(clip.KindEnterFrame), p.tree.Root())
	return ctx.Err()
}

// reload applies settings from the watcher.
func (p *Player) reload(cfg *config.Config, err error) {
	if err != nil {
		p.log.WithError(err).Warn("config reload failed; keeping previous settings")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if err := p.applyConfig(cfg); err != nil {
		p.log.WithError(err).Warn("config reload rejected")
		return
	}
	p.log.Info("config reloaded")
}

// applyConfig swaps in settings that can change while running. Script
// limits apply to the next engine only.
func (p *Player) applyConfig(cfg *config.Config) error {
	mapping, err := cfg.GamepadMapping()
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if p.opts.LogLevel != "" {
		level = p.opts.LogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	p.manager.SetGamepadMapping(mapping)
	p.manager.SetClickThresholds(time.Duration(cfg.Mouse.DoubleClickTime), cfg.Mouse.DoubleClickDistance)
	p.log.SetLevel(lvl)
	p.cfg = cfg
	return nil
}

// Config returns the active settings.
func (p *Player) Config() *config.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Logger returns the player's logger.
func (p *Player) Logger() *logrus.Logger {
	return p.log
}

// Tree returns the display tree.
func (p *Player) Tree() *dispatch.MemoryTree {
	return p.tree
}

// Router returns the event router.
func (p *Player) Router() *dispatch.Router {
	return p.router
}

// Manager returns the input manager.
func (p *Player) Manager() *input.Manager {
	return p.manager
}

// Engine returns the script engine.
func (p *Player) Engine() *script.Engine {
	return p.engine
}

// Notifier returns the host notification channel. Notifications are sent
// while Feed holds the player lock, so sinks must not call back into the
// player.
func (p *Player) Notifier() *notify.Notifier {
	return p.notifier
}

// Recording returns a copy of the events recorded so far.
func (p *Player) Recording() (*record.Recording, error) {
	if p.recorder == nil {
		return nil, ErrNotRecording
	}
	return p.recorder.Recording(), nil
}

// SaveRecording writes the recording to path.
func (p *Player) SaveRecording(path string) (err error) {
	rec, err := p.Recording()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return record.Encode(f, rec)
}

// Shutdown stops every component. It is safe to call more than once.
func (p *Player) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.router != nil {
		p.router.Send(context.Background(), clip.New(clip.KindUnload), p.tree.Root())
	}
	p.mu.Unlock()

	var errs []error
	if p.watcher != nil {
		errs = append(errs, p.watcher.Close())
	}
	if p.notifier != nil {
		p.notifier.Close()
	}
	if p.engine != nil {
		errs = append(errs, p.engine.Close())
	}
	if err := errors.Join(errs...); err != nil && p.log != nil {
		p.log.WithError(err).Warn("shutdown")
	}
}
