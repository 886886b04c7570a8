package app

import (
	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/notify"
)

// focusState is the editable object holding keyboard focus.
type focusState struct {
	target  clip.Handle
	purpose notify.ImePurpose
}

// Focused returns the editable object with keyboard focus, or the zero
// handle.
func (p *Player) Focused() clip.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focus.target
}

// updateFocus moves keyboard focus after a primary press and tells the
// host whether it should enable its input method.
func (p *Player) updateFocus(out input.InputEvent) {
	switch e := out.(type) {
	case input.MouseDownInput:
		if e.Button != mouse.ButtonLeft {
			return
		}
		target, _ := p.router.Pressed(mouse.ButtonLeft)
		if _, editable := p.fields[target]; !editable || !p.resolves(target) {
			p.blur()
			return
		}
		p.focusOn(target)
	case input.FocusLostInput:
		p.blur()
	}
}

func (p *Player) resolves(h clip.Handle) bool {
	_, ok := p.tree.Node(h)
	return ok
}

func (p *Player) focusOn(h clip.Handle) {
	field := p.fields[h]
	purpose := notify.PurposeStandard
	if field.Password {
		purpose = notify.PurposePassword
	}
	node, _ := p.tree.Node(h)
	area := notify.ImeCursorArea{
		X:      node.Bounds.X,
		Y:      node.Bounds.Y,
		Width:  node.Bounds.Width,
		Height: node.Bounds.Height,
	}

	prev := p.focus
	p.focus = focusState{target: h, purpose: purpose}
	switch {
	case prev.target.IsZero():
		p.notifier.Notify(notify.ImeReady{Purpose: purpose, CursorArea: area})
	case prev.target == h:
		return
	default:
		if prev.purpose != purpose {
			p.notifier.Notify(notify.ImePurposeUpdated{Purpose: purpose})
		}
		p.notifier.Notify(notify.ImeCursorAreaUpdated{CursorArea: area})
	}
}

func (p *Player) blur() {
	if p.focus.target.IsZero() {
		return
	}
	p.focus = focusState{}
	p.notifier.Notify(notify.ImeNotReady{})
}
