package script

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
)

func handles(n int) []clip.Handle {
	arena := clip.NewArena[int]()
	hs := make([]clip.Handle, n)
	for i := range hs {
		hs[i] = arena.Insert(i)
	}
	return hs
}

func newEngine(t *testing.T, opts ...Option) (*Engine, []clip.Handle) {
	t.Helper()
	e := NewEngine(opts...)
	t.Cleanup(func() { _ = e.Close() })

	hs := handles(2)
	if _, err := e.Bind(hs[0], "button"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if _, err := e.Bind(hs[1], "other"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return e, hs
}

func mustDo(t *testing.T, e *Engine, code string) {
	t.Helper()
	if err := e.DoString(code); err != nil {
		t.Fatalf("DoString: %v", err)
	}
}

func globalNumber(t *testing.T, e *Engine, name string) float64 {
	t.Helper()
	v, ok := e.Global(name).(lua.LNumber)
	if !ok {
		t.Fatalf("global %s = %v, want number", name, e.Global(name))
	}
	return float64(v)
}

func TestMethodSlot(t *testing.T) {
	e, hs := newEngine(t)
	mustDo(t, e, `
		function button:onRelease()
			released = (released or 0) + 1
			who = self.name
		end
	`)

	tests := []struct {
		name string
		ev   clip.ClipEvent
		want clip.Result
	}{
		{"method present", clip.Release(0), clip.Handled},
		{"method absent", clip.Press(0), clip.NotHandled},
		{"kind without method", clip.New(clip.KindMouseUpInside), clip.NotHandled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Handle(hs[0], tt.ev); got != tt.want {
				t.Errorf("Handle(%s) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}

	if got := globalNumber(t, e, "released"); got != 1 {
		t.Errorf("released = %v, want 1", got)
	}
	if got := e.Global("who").String(); got != "button" {
		t.Errorf("self.name = %q, want button", got)
	}
}

func TestKeyPressKeyedByCode(t *testing.T) {
	e, hs := newEngine(t)
	mustDo(t, e, `
		on_key_press(button, "<Enter>", function(self) enter = true end)
		on_key_press(button, 97, function(self) a = true end)
		on_key_press(button, "B", function(self) b = true end)
	`)

	if got := e.Handle(hs[0], clip.KeyPress(key.ButtonA)); got != clip.Handled {
		t.Fatalf("KeyPress(a) = %v, want handled", got)
	}
	if e.Global("a") != lua.LTrue {
		t.Error("a handler did not run")
	}
	if e.Global("enter") != lua.LNil || e.Global("b") != lua.LNil {
		t.Error("handlers for other codes ran")
	}

	if got := e.Handle(hs[0], clip.KeyPress(key.ButtonReturn)); got != clip.Handled {
		t.Errorf("KeyPress(Enter) = %v, want handled", got)
	}
	if got := e.Handle(hs[0], clip.KeyPress(key.ButtonTab)); got != clip.NotHandled {
		t.Errorf("KeyPress(Tab) = %v, want not handled", got)
	}
	if got := e.Handle(hs[1], clip.KeyPress(key.ButtonA)); got != clip.NotHandled {
		t.Errorf("KeyPress on other object = %v, want not handled", got)
	}
}

func TestKeyPressBadCode(t *testing.T) {
	e, _ := newEngine(t)
	for _, code := range []string{`"<Nope>"`, `300`, `{}`} {
		if err := e.DoString(`on_key_press(button, ` + code + `, function() end)`); err == nil {
			t.Errorf("on_key_press with %s succeeded", code)
		}
	}
	if err := e.DoString(`on_key_press({}, "a", function() end)`); err == nil {
		t.Error("on_key_press on unbound table succeeded")
	}
}

func TestEventListener(t *testing.T) {
	e, hs := newEngine(t)
	mustDo(t, e, `
		add_event_listener(button, "onPress", function(self, ev)
			press_index = ev.index
			press_type = ev.type
		end)
		add_event_listener(button, "MouseWheel", function(self, ev) wheel = ev.delta end)
		add_event_listener(button, "onRollOver", function(self, ev) peer = ev.peer.name end)
	`)

	if got := e.Handle(hs[0], clip.Press(2)); got != clip.Handled {
		t.Fatalf("Press = %v, want handled", got)
	}
	if got := globalNumber(t, e, "press_index"); got != 2 {
		t.Errorf("ev.index = %v, want 2", got)
	}
	if got := e.Global("press_type").String(); got != "Press" {
		t.Errorf("ev.type = %q, want Press", got)
	}

	e.Handle(hs[0], clip.MouseWheel(mouse.Pixels(300)))
	if got := globalNumber(t, e, "wheel"); got != 3 {
		t.Errorf("ev.delta = %v, want 3", got)
	}

	e.Handle(hs[0], clip.RollOver(hs[1]))
	if got := e.Global("peer").String(); got != "other" {
		t.Errorf("ev.peer.name = %q, want other", got)
	}
}

func TestRemoveEventListener(t *testing.T) {
	e, hs := newEngine(t)
	mustDo(t, e, `
		count = 0
		local fn = function() count = count + 1 end
		add_event_listener(button, "onRelease", fn)
		remover = function() remove_event_listener(button, "onRelease", fn) end
	`)

	e.Handle(hs[0], clip.Release(0))
	mustDo(t, e, `remover()`)
	if got := e.Handle(hs[0], clip.Release(0)); got != clip.NotHandled {
		t.Errorf("after removal Handle = %v, want not handled", got)
	}
	if got := globalNumber(t, e, "count"); got != 1 {
		t.Errorf("count = %v, want 1", got)
	}
}

func TestHandlerError(t *testing.T) {
	var reported []error
	e, hs := newEngine(t, WithErrorHandler(func(err error) { reported = append(reported, err) }))
	mustDo(t, e, `function button:onPress() error("broken") end`)

	if got := e.Handle(hs[0], clip.Press(0)); got != clip.NotHandled {
		t.Errorf("failing handler = %v, want not handled", got)
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	var herr *HandlerError
	if !errors.As(reported[0], &herr) {
		t.Fatalf("error %T is not a *HandlerError", reported[0])
	}
	if herr.Object != "button" || herr.Slot != "onPress" {
		t.Errorf("HandlerError = %+v", herr)
	}
}

func TestTimeout(t *testing.T) {
	e, hs := newEngine(t, WithTimeout(20*time.Millisecond))

	err := e.DoString(`while true do end`)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("DoString = %v, want ErrTimeout", err)
	}

	var reported error
	e.onError = func(err error) { reported = err }
	mustDo(t, e, `function button:onPress() while true do end end`)
	e.Handle(hs[0], clip.Press(0))
	if !errors.Is(reported, ErrTimeout) {
		t.Errorf("handler error = %v, want ErrTimeout", reported)
	}

	// The state stays usable.
	mustDo(t, e, `ok = 1`)
}

func TestSandbox(t *testing.T) {
	e, _ := newEngine(t)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os", "debug"} {
		if v := e.Global(name); v != lua.LNil {
			t.Errorf("%s = %v, want nil", name, v)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if v := e.Global(name); v == lua.LNil {
			t.Errorf("%s missing", name)
		}
	}
}

func TestPrintLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e, _ := newEngine(t, WithLogger(logger))

	mustDo(t, e, `print("hello", 42)`)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("print did not log")
	}
	if entry.Message != "hello\t42" || entry.Level != logrus.InfoLevel {
		t.Errorf("entry = %q at %s", entry.Message, entry.Level)
	}
	if entry.Data["component"] != "script" {
		t.Errorf("component = %v, want script", entry.Data["component"])
	}
}

func TestCallOnData(t *testing.T) {
	e, hs := newEngine(t)
	mustDo(t, e, `
		function button:onData() data = "slot" end
		add_event_listener(button, "onData", function(self, ev) data_type = ev.type end)
		function other:onData() error("bad data") end
	`)

	if err := e.CallOnData(hs[0]); err != nil {
		t.Fatalf("CallOnData: %v", err)
	}
	if got := e.Global("data").String(); got != "slot" {
		t.Errorf("data = %q", got)
	}
	if got := e.Global("data_type").String(); got != "Data" {
		t.Errorf("ev.type = %q, want Data", got)
	}

	var herr *HandlerError
	if err := e.CallOnData(hs[1]); !errors.As(err, &herr) {
		t.Errorf("CallOnData(other) = %v, want *HandlerError", err)
	}
}

func TestBindUnbind(t *testing.T) {
	e, hs := newEngine(t)

	if _, err := e.Bind(hs[0], "again"); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("second Bind = %v, want ErrAlreadyBound", err)
	}

	mustDo(t, e, `function button:onPress() end`)
	if err := e.Unbind(hs[0]); err != nil {
		t.Fatalf("Unbind: %v", err)
	}
	if got := e.Handle(hs[0], clip.Press(0)); got != clip.NotHandled {
		t.Errorf("Handle after Unbind = %v", got)
	}
	if v := e.Global("button"); v != lua.LNil {
		t.Errorf("global button = %v after Unbind", v)
	}
	if err := e.Unbind(hs[0]); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("second Unbind = %v, want ErrUnknownObject", err)
	}
	if err := e.CallOnData(hs[0]); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("CallOnData = %v, want ErrUnknownObject", err)
	}
}

func TestClosed(t *testing.T) {
	e, hs := newEngine(t)
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := e.DoString(`x = 1`); !errors.Is(err, ErrClosed) {
		t.Errorf("DoString = %v, want ErrClosed", err)
	}
	if got := e.Handle(hs[0], clip.Press(0)); got != clip.NotHandled {
		t.Errorf("Handle = %v", got)
	}
}
