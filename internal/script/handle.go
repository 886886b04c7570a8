package script

import (
	"errors"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/clipevent/internal/clip"
)

// Handle runs the handlers h has for ev. The event counts as handled when
// at least one handler ran without error. It has the signature of a
// dispatch handler.
func (e *Engine) Handle(h clip.Handle, ev clip.ClipEvent) clip.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return clip.NotHandled
	}
	obj, ok := e.objects[h]
	if !ok {
		return clip.NotHandled
	}

	ran := false
	run := func(slot string, fn lua.LValue, args ...lua.LValue) {
		if err := e.call(fn, args...); err != nil {
			e.report(&HandlerError{Object: obj.name, Slot: slot, Err: err})
			return
		}
		ran = true
	}

	if ev.Kind == clip.KindKeyPress {
		for _, fn := range slices.Clone(obj.keyPress[ev.KeyCode]) {
			run("<"+ev.KeyCode.String()+">", fn, obj.table)
		}
	} else if name, ok := ev.MethodName(); ok {
		if fn, ok := e.L.GetField(obj.table, name).(*lua.LFunction); ok {
			run(name, fn, obj.table)
		}
	}

	slot := listenerSlot(ev.Kind)
	if fns := obj.listeners[slot]; len(fns) > 0 {
		evt := e.eventTable(ev)
		for _, fn := range slices.Clone(fns) {
			run(slot, fn, obj.table, evt)
		}
	}

	return clip.ResultFromBool(ran)
}

// CallOnData runs h's onData slot and "onData" listeners.
func (e *Engine) CallOnData(h clip.Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	obj, ok := e.objects[h]
	if !ok {
		return ErrUnknownObject
	}

	var errs []error
	if fn, ok := e.L.GetField(obj.table, clip.DataMethodName).(*lua.LFunction); ok {
		if err := e.call(fn, obj.table); err != nil {
			errs = append(errs, &HandlerError{Object: obj.name, Slot: clip.DataMethodName, Err: err})
		}
	}
	if fns := obj.listeners[clip.DataMethodName]; len(fns) > 0 {
		evt := e.eventTable(clip.New(clip.KindData))
		for _, fn := range slices.Clone(fns) {
			if err := e.call(fn, obj.table, evt); err != nil {
				errs = append(errs, &HandlerError{Object: obj.name, Slot: clip.DataMethodName, Err: err})
			}
		}
	}
	return errors.Join(errs...)
}

// listenerSlot is the name listeners for k register under.
func listenerSlot(k clip.Kind) string {
	if name, ok := k.MethodName(); ok {
		return name
	}
	if k == clip.KindData {
		return clip.DataMethodName
	}
	return k.String()
}

// eventTable describes ev to Lua listeners. The caller holds mu.
func (e *Engine) eventTable(ev clip.ClipEvent) *lua.LTable {
	t := e.L.NewTable()
	t.RawSetString("type", lua.LString(ev.Kind.String()))
	t.RawSetString("delivery", lua.LString(ev.Delivery().String()))

	switch ev.Kind {
	case clip.KindPress, clip.KindRelease:
		t.RawSetString("index", lua.LNumber(ev.Index))
	case clip.KindKeyPress:
		t.RawSetString("key_code", lua.LNumber(ev.KeyCode.ToUint8()))
		t.RawSetString("key", lua.LString(ev.KeyCode.String()))
	case clip.KindMouseWheel:
		t.RawSetString("delta", lua.LNumber(ev.Delta.Lines()))
	}

	if ev.Kind.HasPeer() {
		if peer, ok := e.objects[ev.Peer]; ok {
			t.RawSetString("peer", peer.table)
		}
	}
	return t
}

func (e *Engine) report(err error) {
	e.log.WithError(err).Warn("handler failed")
	if e.onError != nil {
		e.onError(err)
	}
}
