package depm

import "strings"

// Path is a resolved, hygiene-free item path: one or more name segments.
// Unlike ast.Path it carries no source position and is freely copyable.
type Path struct {
	Segments []string
}

// NewPath creates a path from the given segments.
func NewPath(segments ...string) Path {
	return Path{Segments: segments}
}

// PathFromName creates a single-segment path referencing the given name.
func PathFromName(name string) Path {
	return Path{Segments: []string{name}}
}

// IsSingle returns whether the path is a single unqualified segment.
func (p Path) IsSingle() bool {
	return len(p.Segments) == 1
}

func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}
