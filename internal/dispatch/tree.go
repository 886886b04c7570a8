package dispatch

import (
	"fmt"
	"slices"

	"github.com/dshills/clipevent/internal/clip"
)

// Tree is the display tree events are delivered into.
type Tree interface {
	// Root returns the root object.
	Root() clip.Handle

	// Children returns the children of h in front-to-back render order.
	Children(h clip.Handle) []clip.Handle

	// HitTest returns the topmost interactive object at the point, or the
	// zero handle.
	HitTest(x, y float64) clip.Handle

	// Handle delivers ev to h. Handles that no longer resolve report
	// NotHandled.
	Handle(h clip.Handle, ev clip.ClipEvent) clip.Result
}

// Rect is an axis-aligned rectangle in stage coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// Node is an object in a MemoryTree.
type Node struct {
	Name        string
	Bounds      Rect
	Interactive bool
	Handler     HandlerFunc

	parent   clip.Handle
	children []clip.Handle
}

// MemoryTree is a Tree kept in memory. Objects live in a clip.Arena, so
// handles to removed objects stop resolving.
//
// MemoryTree is not safe for concurrent use.
type MemoryTree struct {
	nodes *clip.Arena[*Node]
	root  clip.Handle
}

// NewMemoryTree creates a tree with a non-interactive root.
func NewMemoryTree(rootName string) *MemoryTree {
	t := &MemoryTree{nodes: clip.NewArena[*Node]()}
	t.root = t.nodes.Insert(&Node{Name: rootName})
	return t
}

// Root returns the root object.
func (t *MemoryTree) Root() clip.Handle {
	return t.root
}

// Add inserts node as the frontmost child of parent.
func (t *MemoryTree) Add(parent clip.Handle, node *Node) (clip.Handle, error) {
	p, ok := t.nodes.Get(parent)
	if !ok {
		return clip.Handle{}, fmt.Errorf("add %q under %s: %w", node.Name, parent, ErrUnknownNode)
	}
	node.parent = parent
	node.children = nil
	h := t.nodes.Insert(node)
	p.children = slices.Insert(p.children, 0, h)
	return h, nil
}

// Remove deletes h and its subtree.
func (t *MemoryTree) Remove(h clip.Handle) error {
	if h == t.root {
		return ErrRemoveRoot
	}
	n, ok := t.nodes.Get(h)
	if !ok {
		return fmt.Errorf("remove %s: %w", h, ErrUnknownNode)
	}
	if p, ok := t.nodes.Get(n.parent); ok {
		p.children = slices.DeleteFunc(p.children, func(c clip.Handle) bool { return c == h })
	}
	t.removeSubtree(h)
	return nil
}

func (t *MemoryTree) removeSubtree(h clip.Handle) {
	n, ok := t.nodes.Get(h)
	if !ok {
		return
	}
	for _, c := range n.children {
		t.removeSubtree(c)
	}
	t.nodes.Remove(h)
}

// Node returns the node for h.
func (t *MemoryTree) Node(h clip.Handle) (*Node, bool) {
	return t.nodes.Get(h)
}

// Find returns the first node with the given name in pre-order.
func (t *MemoryTree) Find(name string) (clip.Handle, bool) {
	var found clip.Handle
	t.walk(t.root, func(h clip.Handle, n *Node) bool {
		if n.Name == name {
			found = h
			return false
		}
		return true
	})
	return found, !found.IsZero()
}

// Name returns the name of h, or its handle string when it does not
// resolve.
func (t *MemoryTree) Name(h clip.Handle) string {
	if n, ok := t.nodes.Get(h); ok {
		return n.Name
	}
	return h.String()
}

// Len returns the number of live nodes, the root included.
func (t *MemoryTree) Len() int {
	return t.nodes.Len()
}

// Children returns the children of h, front to back.
func (t *MemoryTree) Children(h clip.Handle) []clip.Handle {
	n, ok := t.nodes.Get(h)
	if !ok {
		return nil
	}
	return slices.Clone(n.children)
}

// HitTest returns the deepest, frontmost interactive node containing the
// point.
func (t *MemoryTree) HitTest(x, y float64) clip.Handle {
	return t.hitTest(t.root, x, y)
}

func (t *MemoryTree) hitTest(h clip.Handle, x, y float64) clip.Handle {
	n, ok := t.nodes.Get(h)
	if !ok {
		return clip.Handle{}
	}
	for _, c := range n.children {
		if hit := t.hitTest(c, x, y); !hit.IsZero() {
			return hit
		}
	}
	if n.Interactive && n.Bounds.Contains(x, y) {
		return h
	}
	return clip.Handle{}
}

// Handle delivers ev to the node's handler.
func (t *MemoryTree) Handle(h clip.Handle, ev clip.ClipEvent) clip.Result {
	n, ok := t.nodes.Get(h)
	if !ok || n.Handler == nil {
		return clip.NotHandled
	}
	return n.Handler(h, ev)
}

func (t *MemoryTree) walk(h clip.Handle, fn func(clip.Handle, *Node) bool) bool {
	n, ok := t.nodes.Get(h)
	if !ok {
		return true
	}
	if !fn(h, n) {
		return false
	}
	for _, c := range n.children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}
