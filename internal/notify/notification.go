// Package notify carries notifications from the player back to its host.
//
// The player tells the host when text input needs an input method: an
// editable text field gaining focus produces ImeReady with the field's
// purpose and caret area, and losing focus produces ImeNotReady. Hosts
// subscribe to a Notifier to receive them.
package notify

import "fmt"

// PlayerNotification is a message from the player to the host. The set of
// implementations is closed; today every notification is an
// ImeNotification.
type PlayerNotification interface {
	isPlayerNotification()
}

// ImeNotification tells the host how to drive its input method.
type ImeNotification interface {
	PlayerNotification
	isImeNotification()
}

// ImePurpose hints what kind of text is being entered.
type ImePurpose uint8

const (
	// PurposeStandard is ordinary text.
	PurposeStandard ImePurpose = iota
	// PurposePassword is hidden text; input methods should not learn it.
	PurposePassword
)

// String returns the purpose name.
func (p ImePurpose) String() string {
	switch p {
	case PurposeStandard:
		return "standard"
	case PurposePassword:
		return "password"
	default:
		return fmt.Sprintf("ImePurpose(%d)", uint8(p))
	}
}

// ImeCursorArea is the caret rectangle in host logical pixels, used to
// place the input method's candidate window.
type ImeCursorArea struct {
	X, Y          float64
	Width, Height float64
}

// ImeReady enables the input method.
type ImeReady struct {
	Purpose    ImePurpose
	CursorArea ImeCursorArea
}

// ImePurposeUpdated changes the purpose of an enabled input method.
type ImePurposeUpdated struct {
	Purpose ImePurpose
}

// ImeCursorAreaUpdated moves the caret rectangle.
type ImeCursorAreaUpdated struct {
	CursorArea ImeCursorArea
}

// ImeNotReady disables the input method.
type ImeNotReady struct{}

func (ImeReady) isPlayerNotification()             {}
func (ImePurposeUpdated) isPlayerNotification()    {}
func (ImeCursorAreaUpdated) isPlayerNotification() {}
func (ImeNotReady) isPlayerNotification()          {}

func (ImeReady) isImeNotification()             {}
func (ImePurposeUpdated) isImeNotification()    {}
func (ImeCursorAreaUpdated) isImeNotification() {}
func (ImeNotReady) isImeNotification()          {}

// Describe renders a notification for logs.
func Describe(n PlayerNotification) string {
	switch v := n.(type) {
	case ImeReady:
		return fmt.Sprintf("ime_ready %s %+v", v.Purpose, v.CursorArea)
	case ImePurposeUpdated:
		return fmt.Sprintf("ime_purpose_updated %s", v.Purpose)
	case ImeCursorAreaUpdated:
		return fmt.Sprintf("ime_cursor_area_updated %+v", v.CursorArea)
	case ImeNotReady:
		return "ime_not_ready"
	}
	return "<nil>"
}
