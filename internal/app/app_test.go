package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/config"
	"github.com/dshills/clipevent/internal/dispatch"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/notify"
	"github.com/dshills/clipevent/internal/record"
)

func newPlayer(t *testing.T, opts Options) *Player {
	t.Helper()
	opts.LogOutput = io.Discard
	opts.LoadOptions = append(opts.LoadOptions, config.WithoutEnv())
	p, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(p.Shutdown)
	return p
}

func click(t *testing.T, p *Player, x, y float64) {
	t.Helper()
	ctx := context.Background()
	for _, ev := range []input.PlayerEvent{
		input.MouseMove{X: x, Y: y},
		input.MouseDown{X: x, Y: y, Button: mouse.ButtonLeft},
		input.MouseUp{X: x, Y: y, Button: mouse.ButtonLeft},
	} {
		if _, err := p.Feed(ctx, ev); err != nil {
			t.Fatalf("Feed(%s): %v", input.Describe(ev), err)
		}
	}
}

func luaStrings(t *testing.T, v lua.LValue) []string {
	t.Helper()
	tbl, ok := v.(*lua.LTable)
	if !ok {
		t.Fatalf("expected table, got %s", v.Type())
	}
	var out []string
	for i := 1; i <= tbl.Len(); i++ {
		out = append(out, tbl.RawGetInt(i).String())
	}
	return out
}

func TestNewDefaultScene(t *testing.T) {
	p := newPlayer(t, Options{})

	if got := p.Tree().Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	for _, name := range []string{"background", "button", "field"} {
		if _, ok := p.Tree().Find(name); !ok {
			t.Errorf("Find(%q) failed", name)
		}
	}
	if p.Config().Logging.Level != "info" {
		t.Errorf("level = %q, want info", p.Config().Logging.Level)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		component string
	}{
		{
			name:      "bad log level",
			opts:      Options{LogLevel: "loud"},
			component: "logging",
		},
		{
			name:      "duplicate object",
			opts:      Options{Scene: &Scene{Name: "stage", Objects: []Object{{Name: "a"}, {Name: "a"}}}},
			component: "scene",
		},
		{
			name:      "script error",
			opts:      Options{ScriptSource: "this is not lua"},
			component: "script",
		},
		{
			name:      "missing scene file",
			opts:      Options{ScenePath: filepath.Join(t.TempDir(), "none.yaml")},
			component: "scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.LogOutput = io.Discard
			tt.opts.LoadOptions = []config.LoadOption{config.WithoutEnv()}
			_, err := New(tt.opts)
			var ie *InitError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InitError, got %v", err)
			}
			if ie.Component != tt.component {
				t.Errorf("component = %q, want %q", ie.Component, tt.component)
			}
		})
	}

	_, err := New(Options{
		LogOutput:   io.Discard,
		LoadOptions: []config.LoadOption{config.WithoutEnv()},
		Scene:       &Scene{Name: "stage", Objects: []Object{{Name: "a"}, {Name: "a"}}},
	})
	if !errors.Is(err, ErrDuplicateObject) {
		t.Errorf("expected ErrDuplicateObject, got %v", err)
	}
}

func TestFeedRunsScripts(t *testing.T) {
	p := newPlayer(t, Options{ScriptSource: `
log = {}
function button:onLoad() table.insert(log, "load") end
function button:onRollOver() table.insert(log, "over") end
function button:onPress() table.insert(log, "press") end
function button:onRelease() table.insert(log, "release") end
function stage:onEnterFrame() table.insert(log, "frame") end
`})

	click(t, p, 30, 30)
	if err := p.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	got := luaStrings(t, p.Engine().Global("log"))
	want := []string{"load", "over", "press", "release", "frame"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("log = %v, want %v", got, want)
	}
	if s := p.Router().Stats(); s.Handled < 4 {
		t.Errorf("Handled = %d, want at least 4", s.Handled)
	}
}

func TestObserver(t *testing.T) {
	var kinds []clip.Kind
	p := newPlayer(t, Options{Observer: func(d dispatch.Delivery) {
		if d.Event.Kind == clip.KindPress {
			kinds = append(kinds, d.Event.Kind)
		}
	}})
	click(t, p, 30, 30)
	if len(kinds) != 1 {
		t.Errorf("observed %d presses, want 1", len(kinds))
	}
}

func TestFocusNotifications(t *testing.T) {
	scene := &Scene{Name: "stage", Objects: []Object{
		{Name: "button", Bounds: dispatch.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Interactive: true},
		{Name: "username", Bounds: dispatch.Rect{X: 20, Y: 0, Width: 50, Height: 10}, Editable: true},
		{Name: "secret", Bounds: dispatch.Rect{X: 80, Y: 0, Width: 50, Height: 10}, Editable: true, Password: true},
	}}
	p := newPlayer(t, Options{Scene: scene})

	var got []notify.PlayerNotification
	p.Notifier().Subscribe(func(n notify.PlayerNotification) { got = append(got, n) })

	click(t, p, 25, 5)
	click(t, p, 25, 5)
	click(t, p, 85, 5)
	click(t, p, 5, 5)

	want := []notify.PlayerNotification{
		notify.ImeReady{Purpose: notify.PurposeStandard, CursorArea: notify.ImeCursorArea{X: 20, Width: 50, Height: 10}},
		notify.ImePurposeUpdated{Purpose: notify.PurposePassword},
		notify.ImeCursorAreaUpdated{CursorArea: notify.ImeCursorArea{X: 80, Width: 50, Height: 10}},
		notify.ImeNotReady{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
	if h := p.Focused(); !h.IsZero() {
		t.Errorf("Focused() = %s, want none", h)
	}

	click(t, p, 25, 5)
	if _, err := p.Feed(context.Background(), input.FocusLost{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := got[len(got)-1].(notify.ImeNotReady); !ok {
		t.Errorf("last notification = %v, want ImeNotReady", got[len(got)-1])
	}
}

func TestRecording(t *testing.T) {
	p := newPlayer(t, Options{})
	if _, err := p.Recording(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("expected ErrNotRecording, got %v", err)
	}

	p = newPlayer(t, Options{Record: true})
	click(t, p, 30, 30)

	rec, err := p.Recording()
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Events) != 3 {
		t.Fatalf("recorded %d events, want 3", len(rec.Events))
	}

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := p.SaveRecording(path); err != nil {
		t.Fatalf("SaveRecording: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := record.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Session != rec.Session || len(decoded.Events) != 3 {
		t.Errorf("decoded %s with %d events", decoded.Session, len(decoded.Events))
	}
}

func TestApplyConfig(t *testing.T) {
	p := newPlayer(t, Options{})

	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Gamepad.Mapping = map[string]string{"south": "q"}
	if err := p.applyConfig(cfg); err != nil {
		t.Fatalf("applyConfig: %v", err)
	}
	if p.Logger().GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", p.Logger().GetLevel())
	}
	if _, err := p.Feed(context.Background(), input.GamepadButtonDown{Button: gamepad.South}); err != nil {
		t.Fatal(err)
	}
	if !p.Manager().IsKeyDown(key.CodeQ) {
		t.Error("south should press Q after reload")
	}

	bad := config.Default()
	bad.Gamepad.Mapping = map[string]string{"turbo": "q"}
	if err := p.applyConfig(bad); err == nil {
		t.Error("expected error for unknown button")
	}
	if p.Config() != cfg {
		t.Error("rejected config replaced the active one")
	}
}

func TestReloadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipevent.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := newPlayer(t, Options{ConfigPath: path})
	if p.Logger().GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %s, want warn", p.Logger().GetLevel())
	}

	p.reload(nil, errors.New("boom"))
	next := config.Default()
	next.Logging.Level = "error"
	p.reload(next, nil)
	if p.Logger().GetLevel() != logrus.ErrorLevel {
		t.Errorf("level = %s, want error", p.Logger().GetLevel())
	}
}

func TestShutdown(t *testing.T) {
	var unloads int
	p := newPlayer(t, Options{Observer: func(d dispatch.Delivery) {
		if d.Event.Kind == clip.KindUnload {
			unloads++
		}
	}})
	engine := p.Engine()
	p.Shutdown()
	p.Shutdown()

	if unloads != p.Tree().Len() {
		t.Errorf("Unload delivered %d times, want %d", unloads, p.Tree().Len())
	}

	if _, err := p.Feed(context.Background(), input.MouseMove{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Feed after Shutdown: %v", err)
	}
	if err := p.Tick(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Tick after Shutdown: %v", err)
	}
	if v := engine.Global("stage"); v != lua.LNil {
		t.Errorf("engine still open: stage = %v", v)
	}
}

func TestReadScene(t *testing.T) {
	src := `
name: root
objects:
  - name: panel
    bounds: {x: 0, y: 0, width: 100, height: 100}
    children:
      - name: ok
        bounds: {x: 10, y: 10, width: 20, height: 10}
        interactive: true
`
	s, err := ReadScene(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadScene: %v", err)
	}
	if s.Name != "root" || len(s.Objects) != 1 || len(s.Objects[0].Children) != 1 {
		t.Fatalf("unexpected scene %+v", s)
	}

	p := newPlayer(t, Options{Scene: s})
	h, ok := p.Tree().Find("ok")
	if !ok {
		t.Fatal("ok not built")
	}
	if got := p.Tree().HitTest(15, 15); got != h {
		t.Errorf("HitTest = %s, want %s", got, h)
	}

	for _, bad := range []string{
		"",
		"name: x\nobjects:\n  - name: a\n    colour: red\n",
	} {
		if _, err := ReadScene(strings.NewReader(bad)); err == nil {
			t.Errorf("ReadScene(%q) should fail", bad)
		}
	}
}
