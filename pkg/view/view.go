// Package view renders geralt output into named, read-only buffers and
// keeps the cursor stable across full-content refreshes.
package view

import (
	"fmt"
	"regexp"

	"tableflip.dev/geraltui/pkg/task"
)

// Kind selects between the two render behaviors.
type Kind int

const (
	// Main is the three-section overview buffer.
	Main Kind = iota
	// Scoped restricts the view to the subtree under one task.
	Scoped
)

// Descriptor is the typed identity of a view. It replaces the old trick
// of parsing the root task id back out of the display name: the name is
// derived from the descriptor, never the other way around.
type Descriptor struct {
	Kind Kind
	Root task.ID
}

func MainView() Descriptor {
	return Descriptor{Kind: Main}
}

func ScopedView(id task.ID) Descriptor {
	return Descriptor{Kind: Scoped, Root: id}
}

const namePrefix = "*geralt"

var nameRe = regexp.MustCompile(`^\*geralt tree: (\d+)\*$`)

// Name returns the display name of the view, e.g. "*geralt tree: 42*".
func (d Descriptor) Name() string {
	if d.Kind == Scoped {
		return fmt.Sprintf("%s tree: %d*", namePrefix, d.Root)
	}
	return namePrefix + "*"
}

// ParseName recovers a descriptor from a display name. Kept for the
// round trip with Name; refresh dispatches on the descriptor itself.
func ParseName(name string) (Descriptor, bool) {
	if name == namePrefix+"*" {
		return MainView(), true
	}
	if m := nameRe.FindStringSubmatch(name); m != nil {
		id, err := task.ParseID(m[1])
		if err != nil {
			return Descriptor{}, false
		}
		return ScopedView(id), true
	}
	return Descriptor{}, false
}
