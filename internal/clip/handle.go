package clip

import (
	"fmt"
	"iter"
)

// Handle refers to an object in an Arena without owning it. The zero
// Handle refers to nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle refers to nothing.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String renders the handle as "#index.generation" or "none".
func (h Handle) String() string {
	if h.IsZero() {
		return "none"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena stores objects addressed by Handles. Removing an object bumps its
// slot's generation, so every outstanding handle to it stops resolving
// even after the slot is reused.
//
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.value = v
	s.live = true
	a.count++
	return Handle{index: idx, gen: s.gen}
}

// Get returns the object for h. It returns false for the zero handle and
// for handles whose object was removed.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.valid(h) {
		return zero, false
	}
	return a.slots[h.index].value, true
}

// Contains reports whether h still resolves.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.valid(h)
}

// Set replaces the object for a live handle.
func (a *Arena[T]) Set(h Handle, v T) bool {
	if !a.valid(h) {
		return false
	}
	a.slots[h.index].value = v
	return true
}

// Remove deletes the object for h, invalidating every copy of h.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.valid(h) {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Len returns the number of live objects.
func (a *Arena[T]) Len() int {
	return a.count
}

// All iterates over live objects in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Handle{index: uint32(i), gen: s.gen}, s.value) {
				return
			}
		}
	}
}

func (a *Arena[T]) valid(h Handle) bool {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.live && s.gen == h.gen
}
