package clip

import "testing"

func TestArenaInsertGet(t *testing.T) {
	a := NewArena[string]()
	h := a.Insert("root")
	if h.IsZero() {
		t.Fatal("Insert returned the zero handle")
	}
	if v, ok := a.Get(h); !ok || v != "root" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if _, ok := a.Get(Handle{}); ok {
		t.Error("zero handle should not resolve")
	}
	if !a.Set(h, "stage") {
		t.Fatal("Set failed")
	}
	if v, _ := a.Get(h); v != "stage" {
		t.Errorf("Get after Set = %q", v)
	}
}

func TestArenaStaleHandle(t *testing.T) {
	a := NewArena[int]()
	old := a.Insert(1)
	if !a.Remove(old) {
		t.Fatal("Remove failed")
	}
	if a.Contains(old) || a.Remove(old) || a.Set(old, 5) {
		t.Error("removed handle should not resolve")
	}

	reused := a.Insert(2)
	if reused == old {
		t.Fatal("reused slot should get a new generation")
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle resolved to the new occupant")
	}
	if v, ok := a.Get(reused); !ok || v != 2 {
		t.Errorf("Get(reused) = %d, %v", v, ok)
	}
}

func TestArenaAll(t *testing.T) {
	a := NewArena[string]()
	x := a.Insert("x")
	a.Insert("y")
	a.Insert("z")
	a.Remove(x)

	var got []string
	for h, v := range a.All() {
		if !a.Contains(h) {
			t.Errorf("All yielded dead handle %v", h)
		}
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != "y" || got[1] != "z" || a.Len() != 2 {
		t.Errorf("All() = %v, Len() = %d", got, a.Len())
	}
}

func TestHandleString(t *testing.T) {
	if (Handle{}).String() != "none" {
		t.Error("zero handle should render as none")
	}
	a := NewArena[int]()
	if got := a.Insert(0).String(); got != "#0.1" {
		t.Errorf("first handle = %q, want #0.1", got)
	}
}
