package text

import "fmt"

// ControlCode is a text-editing command.
type ControlCode uint8

// Control codes.
const (
	MoveLeft ControlCode = iota
	MoveLeftWord
	MoveLeftLine
	MoveLeftDocument
	MoveRight
	MoveRightWord
	MoveRightLine
	MoveRightDocument
	SelectLeft
	SelectLeftWord
	SelectLeftLine
	SelectLeftDocument
	SelectRight
	SelectRightWord
	SelectRightLine
	SelectRightDocument
	SelectAll
	Copy
	Paste
	Cut
	Backspace
	BackspaceWord
	Enter
	Delete
	DeleteWord
)

const controlCodeCount = DeleteWord + 1

var controlCodeNames = [controlCodeCount]string{
	MoveLeft:            "MoveLeft",
	MoveLeftWord:        "MoveLeftWord",
	MoveLeftLine:        "MoveLeftLine",
	MoveLeftDocument:    "MoveLeftDocument",
	MoveRight:           "MoveRight",
	MoveRightWord:       "MoveRightWord",
	MoveRightLine:       "MoveRightLine",
	MoveRightDocument:   "MoveRightDocument",
	SelectLeft:          "SelectLeft",
	SelectLeftWord:      "SelectLeftWord",
	SelectLeftLine:      "SelectLeftLine",
	SelectLeftDocument:  "SelectLeftDocument",
	SelectRight:         "SelectRight",
	SelectRightWord:     "SelectRightWord",
	SelectRightLine:     "SelectRightLine",
	SelectRightDocument: "SelectRightDocument",
	SelectAll:           "SelectAll",
	Copy:                "Copy",
	Paste:               "Paste",
	Cut:                 "Cut",
	Backspace:           "Backspace",
	BackspaceWord:       "BackspaceWord",
	Enter:               "Enter",
	Delete:              "Delete",
	DeleteWord:          "DeleteWord",
}

// AllControlCodes returns every control code in declaration order.
func AllControlCodes() []ControlCode {
	codes := make([]ControlCode, controlCodeCount)
	for i := range codes {
		codes[i] = ControlCode(i)
	}
	return codes
}

// IsEditInput reports whether the code modifies text: Paste, Cut, Enter,
// Backspace, BackspaceWord, Delete and DeleteWord.
func (c ControlCode) IsEditInput() bool {
	switch c {
	case Paste, Cut, Enter, Backspace, BackspaceWord, Delete, DeleteWord:
		return true
	default:
		return false
	}
}

// IsSelection reports whether the code extends the selection.
func (c ControlCode) IsSelection() bool {
	return c >= SelectLeft && c <= SelectAll
}

// String returns the code name.
func (c ControlCode) String() string {
	if c < controlCodeCount {
		return controlCodeNames[c]
	}
	return fmt.Sprintf("ControlCode(%d)", uint8(c))
}

// ParseControlCode parses a code name.
func ParseControlCode(s string) (ControlCode, error) {
	for i, name := range controlCodeNames {
		if name == s {
			return ControlCode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownControlCode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c ControlCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ControlCode) UnmarshalText(text []byte) error {
	parsed, err := ParseControlCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
