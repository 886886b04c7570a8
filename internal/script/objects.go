package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/input/key"
)

// Bind exposes the object h to Lua as a table stored in the global name.
// The table's "name" field holds the name too.
func (e *Engine) Bind(h clip.Handle, name string) (*lua.LTable, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	if _, ok := e.objects[h]; ok {
		return nil, fmt.Errorf("bind %s as %q: %w", h, name, ErrAlreadyBound)
	}

	tbl := e.L.NewTable()
	tbl.RawSetString("name", lua.LString(name))
	e.objects[h] = &object{
		name:      name,
		table:     tbl,
		keyPress:  make(map[key.ButtonKeyCode][]*lua.LFunction),
		listeners: make(map[string][]*lua.LFunction),
	}
	e.tables[tbl] = h
	e.L.SetGlobal(name, tbl)
	return tbl, nil
}

// Unbind forgets h and every handler registered for it. The Lua table
// stays reachable from scripts that kept it but no longer receives
// events.
func (e *Engine) Unbind(h clip.Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[h]
	if !ok {
		return fmt.Errorf("unbind %s: %w", h, ErrUnknownObject)
	}
	delete(e.objects, h)
	delete(e.tables, obj.table)
	if !e.closed && e.L.GetGlobal(obj.name) == obj.table {
		e.L.SetGlobal(obj.name, lua.LNil)
	}
	return nil
}

// Object returns the Lua table bound to h.
func (e *Engine) Object(h clip.Handle) (*lua.LTable, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[h]
	if !ok {
		return nil, false
	}
	return obj.table, true
}

// OnKeyPress registers fn for key presses of code on h.
func (e *Engine) OnKeyPress(h clip.Handle, code key.ButtonKeyCode, fn *lua.LFunction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[h]
	if !ok {
		return fmt.Errorf("on key press %s: %w", h, ErrUnknownObject)
	}
	obj.keyPress[code] = append(obj.keyPress[code], fn)
	return nil
}

// AddEventListener registers fn under a method name (or kind name for
// kinds without one) on h.
func (e *Engine) AddEventListener(h clip.Handle, name string, fn *lua.LFunction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.objects[h]
	if !ok {
		return fmt.Errorf("add listener %s: %w", h, ErrUnknownObject)
	}
	obj.listeners[name] = append(obj.listeners[name], fn)
	return nil
}

// objectFor resolves a Lua table to its bound object. The caller holds mu.
func (e *Engine) objectFor(tbl *lua.LTable) (*object, bool) {
	h, ok := e.tables[tbl]
	if !ok {
		return nil, false
	}
	obj, ok := e.objects[h]
	return obj, ok
}

func (e *Engine) luaOnKeyPress(L *lua.LState) int {
	obj, ok := e.objectFor(L.CheckTable(1))
	if !ok {
		L.ArgError(1, "object is not bound")
	}
	code := checkButtonKeyCode(L, 2)
	fn := L.CheckFunction(3)
	obj.keyPress[code] = append(obj.keyPress[code], fn)
	return 0
}

func (e *Engine) luaAddEventListener(L *lua.LState) int {
	obj, ok := e.objectFor(L.CheckTable(1))
	if !ok {
		L.ArgError(1, "object is not bound")
	}
	name := L.CheckString(2)
	fn := L.CheckFunction(3)
	obj.listeners[name] = append(obj.listeners[name], fn)
	return 0
}

func (e *Engine) luaRemoveEventListener(L *lua.LState) int {
	obj, ok := e.objectFor(L.CheckTable(1))
	if !ok {
		L.ArgError(1, "object is not bound")
	}
	name := L.CheckString(2)
	fn := L.CheckFunction(3)

	fns := obj.listeners[name]
	for i, f := range fns {
		if f == fn {
			obj.listeners[name] = append(fns[:i:i], fns[i+1:]...)
			break
		}
	}
	return 0
}

// checkButtonKeyCode reads a key-press code given as a number or a name.
func checkButtonKeyCode(L *lua.LState, n int) key.ButtonKeyCode {
	switch v := L.CheckAny(n).(type) {
	case lua.LNumber:
		if v >= 0 && v <= 255 && v == lua.LNumber(int(v)) {
			if code, ok := key.ButtonKeyCodeFromUint8(uint8(v)); ok {
				return code
			}
		}
		L.ArgError(n, fmt.Sprintf("invalid key-press code %v", v))
	case lua.LString:
		if code, ok := key.ButtonKeyCodeFromName(string(v)); ok {
			return code
		}
		L.ArgError(n, fmt.Sprintf("unknown key %q", string(v)))
	default:
		L.TypeError(n, lua.LTNumber)
	}
	return key.ButtonUnknown
}
