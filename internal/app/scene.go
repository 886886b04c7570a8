package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/dispatch"
)

// Scene describes the display objects a player starts with.
//
//	name: stage
//	objects:
//	  - name: button
//	    bounds: {x: 10, y: 10, width: 80, height: 24}
//	    interactive: true
//	  - name: field
//	    bounds: {x: 10, y: 50, width: 200, height: 24}
//	    interactive: true
//	    editable: true
//
// Objects are listed back to front; the last one is drawn on top.
type Scene struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
}

// Object is one scene object.
type Object struct {
	Name        string        `yaml:"name"`
	Bounds      dispatch.Rect `yaml:"bounds"`
	Interactive bool          `yaml:"interactive"`

	// Editable objects take keyboard focus when pressed and ask the host
	// for an input method.
	Editable bool `yaml:"editable"`

	// Password selects the password input purpose for editable objects.
	Password bool `yaml:"password"`

	Children []Object `yaml:"children"`
}

// DefaultScene is used when no scene is configured.
func DefaultScene() *Scene {
	return &Scene{
		Name: "stage",
		Objects: []Object{
			{Name: "background", Bounds: dispatch.Rect{Width: 800, Height: 600}},
			{Name: "button", Bounds: dispatch.Rect{X: 20, Y: 20, Width: 120, Height: 40}, Interactive: true},
			{Name: "field", Bounds: dispatch.Rect{X: 20, Y: 80, Width: 240, Height: 30}, Interactive: true, Editable: true},
		},
	}
}

// ReadScene decodes a YAML scene. Unknown fields are rejected.
func ReadScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode scene: empty document")
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if s.Name == "" {
		s.Name = "stage"
	}
	return &s, nil
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// build adds the scene's objects to tree, calling visit for each.
func (s *Scene) build(tree *dispatch.MemoryTree, visit func(clip.Handle, Object) error) error {
	seen := map[string]bool{s.Name: true}
	var add func(parent clip.Handle, objs []Object) error
	add = func(parent clip.Handle, objs []Object) error {
		for _, o := range objs {
			if o.Name == "" {
				return &SceneError{Object: o.Name, Err: errors.New("missing name")}
			}
			if seen[o.Name] {
				return &SceneError{Object: o.Name, Err: ErrDuplicateObject}
			}
			seen[o.Name] = true
			if o.Bounds.Width < 0 || o.Bounds.Height < 0 {
				return &SceneError{Object: o.Name, Err: errors.New("negative size")}
			}

			h, err := tree.Add(parent, &dispatch.Node{
				Name:        o.Name,
				Bounds:      o.Bounds,
				Interactive: o.Interactive || o.Editable,
			})
			if err != nil {
				return err
			}
			if err := visit(h, o); err != nil {
				return err
			}
			if err := add(h, o.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return add(tree.Root(), s.Objects)
}
