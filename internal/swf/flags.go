package swf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrShortBuffer is returned when a flag field is truncated.
var ErrShortBuffer = errors.New("swf: clip event flags truncated")

// ClipEventFlag is a set of clip event bits.
type ClipEventFlag uint32

// Clip event flag bits.
const (
	// First byte.
	FlagLoad ClipEventFlag = 1 << iota
	FlagEnterFrame
	FlagUnload
	FlagMouseMove
	FlagMouseDown
	FlagMouseUp
	FlagKeyDown
	FlagKeyUp

	// Second byte.
	FlagData
	FlagInitialize
	FlagPress
	FlagRelease
	FlagReleaseOutside
	FlagRollOver
	FlagRollOut
	FlagDragOver

	// Third byte, SWF 6 and later.
	FlagDragOut
	FlagKeyPress
	FlagConstruct
)

// FlagNone is the empty set.
const FlagNone ClipEventFlag = 0

// AllFlags is the union of every defined bit. Bits outside this set are
// reserved by the format.
const AllFlags = FlagLoad | FlagEnterFrame | FlagUnload | FlagMouseMove |
	FlagMouseDown | FlagMouseUp | FlagKeyDown | FlagKeyUp |
	FlagData | FlagInitialize | FlagPress | FlagRelease |
	FlagReleaseOutside | FlagRollOver | FlagRollOut | FlagDragOver |
	FlagDragOut | FlagKeyPress | FlagConstruct

var flagNames = []struct {
	flag ClipEventFlag
	name string
}{
	{FlagLoad, "Load"},
	{FlagEnterFrame, "EnterFrame"},
	{FlagUnload, "Unload"},
	{FlagMouseMove, "MouseMove"},
	{FlagMouseDown, "MouseDown"},
	{FlagMouseUp, "MouseUp"},
	{FlagKeyDown, "KeyDown"},
	{FlagKeyUp, "KeyUp"},
	{FlagData, "Data"},
	{FlagInitialize, "Initialize"},
	{FlagPress, "Press"},
	{FlagRelease, "Release"},
	{FlagReleaseOutside, "ReleaseOutside"},
	{FlagRollOver, "RollOver"},
	{FlagRollOut, "RollOut"},
	{FlagDragOver, "DragOver"},
	{FlagDragOut, "DragOut"},
	{FlagKeyPress, "KeyPress"},
	{FlagConstruct, "Construct"},
}

// Has returns true if every bit of other is set in f.
func (f ClipEventFlag) Has(other ClipEventFlag) bool {
	return f&other == other
}

// Intersects returns true if f and other share at least one bit.
func (f ClipEventFlag) Intersects(other ClipEventFlag) bool {
	return f&other != 0
}

// IsEmpty returns true if no bits are set.
func (f ClipEventFlag) IsEmpty() bool {
	return f == FlagNone
}

// IsValid returns true if f contains only defined bits.
func (f ClipEventFlag) IsValid() bool {
	return f&^AllFlags == 0
}

// Truncate drops reserved bits.
func (f ClipEventFlag) Truncate() ClipEventFlag {
	return f & AllFlags
}

// String returns the set bits joined with "|", e.g. "Press|Release".
func (f ClipEventFlag) String() string {
	if f == FlagNone {
		return "None"
	}

	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ AllFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// FlagFromName returns the single flag with the given name.
func FlagFromName(name string) (ClipEventFlag, bool) {
	for _, fn := range flagNames {
		if strings.EqualFold(fn.name, name) {
			return fn.flag, true
		}
	}
	return FlagNone, false
}

// FlagFieldSize returns the byte size of the CLIPEVENTFLAGS field for a
// given SWF version.
func FlagFieldSize(version uint8) int {
	if version <= 5 {
		return 2
	}
	return 4
}

// ParseClipEventFlags decodes a CLIPEVENTFLAGS field. SWF 5 files use two
// bytes, later versions four. Reserved bits are dropped.
// It returns the flags and the number of bytes consumed.
func ParseClipEventFlags(data []byte, version uint8) (ClipEventFlag, int, error) {
	size := FlagFieldSize(version)
	if len(data) < size {
		return FlagNone, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, size, len(data))
	}

	var raw uint32
	if size == 2 {
		raw = uint32(binary.LittleEndian.Uint16(data))
	} else {
		raw = binary.LittleEndian.Uint32(data)
	}
	return ClipEventFlag(raw).Truncate(), size, nil
}

// AppendClipEventFlags encodes f in the field width used by version.
// Bits that do not fit the SWF 5 field are dropped.
func AppendClipEventFlags(dst []byte, f ClipEventFlag, version uint8) []byte {
	f = f.Truncate()
	if FlagFieldSize(version) == 2 {
		return binary.LittleEndian.AppendUint16(dst, uint16(f))
	}
	return binary.LittleEndian.AppendUint32(dst, uint32(f))
}
