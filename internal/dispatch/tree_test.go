package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/clipevent/internal/clip"
)

func TestMemoryTreeFrontToBack(t *testing.T) {
	tree := NewMemoryTree("stage")
	back, err := tree.Add(tree.Root(), &Node{Name: "back"})
	require.NoError(t, err)
	front, err := tree.Add(tree.Root(), &Node{Name: "front"})
	require.NoError(t, err)

	assert.Equal(t, []clip.Handle{front, back}, tree.Children(tree.Root()))
	assert.Equal(t, 3, tree.Len())
}

func TestMemoryTreeHitTest(t *testing.T) {
	tree := NewMemoryTree("stage")
	under, _ := tree.Add(tree.Root(), &Node{Name: "under", Bounds: Rect{Width: 100, Height: 100}, Interactive: true})
	over, _ := tree.Add(tree.Root(), &Node{Name: "over", Bounds: Rect{X: 10, Y: 10, Width: 10, Height: 10}, Interactive: true})
	group, _ := tree.Add(tree.Root(), &Node{Name: "group", Bounds: Rect{Width: 100, Height: 100}})
	leaf, _ := tree.Add(group, &Node{Name: "leaf", Bounds: Rect{X: 50, Y: 50, Width: 5, Height: 5}, Interactive: true})

	tests := []struct {
		name string
		x, y float64
		want clip.Handle
	}{
		{"front sibling wins", 15, 15, over},
		{"back sibling", 5, 5, under},
		{"nested child", 52, 52, leaf},
		{"right edge exclusive", 20, 15, under},
		{"nothing", 200, 200, clip.Handle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.HitTest(tt.x, tt.y))
		})
	}
}

func TestMemoryTreeRemove(t *testing.T) {
	tree := NewMemoryTree("stage")
	group, _ := tree.Add(tree.Root(), &Node{Name: "group"})
	leaf, _ := tree.Add(group, &Node{Name: "leaf"})

	require.NoError(t, tree.Remove(group))
	_, ok := tree.Node(leaf)
	assert.False(t, ok, "subtree removed")
	assert.Empty(t, tree.Children(tree.Root()))
	assert.Equal(t, 1, tree.Len())

	assert.ErrorIs(t, tree.Remove(group), ErrUnknownNode)
	assert.ErrorIs(t, tree.Remove(tree.Root()), ErrRemoveRoot)

	_, err := tree.Add(group, &Node{Name: "orphan"})
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestMemoryTreeFind(t *testing.T) {
	tree := NewMemoryTree("stage")
	group, _ := tree.Add(tree.Root(), &Node{Name: "group"})
	leaf, _ := tree.Add(group, &Node{Name: "leaf"})

	got, ok := tree.Find("leaf")
	require.True(t, ok)
	assert.Equal(t, leaf, got)
	assert.Equal(t, "leaf", tree.Name(leaf))

	_, ok = tree.Find("missing")
	assert.False(t, ok)
}

func TestMemoryTreeHandleWithoutHandler(t *testing.T) {
	tree := NewMemoryTree("stage")
	assert.Equal(t, clip.NotHandled, tree.Handle(tree.Root(), clip.New(clip.KindLoad)))
}
