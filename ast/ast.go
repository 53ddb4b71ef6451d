package ast

import "sable/report"

// The abstract interface for all syntax tree nodes.  Nodes are always handled
// by pointer: the pointer identity of a node is stable for the lifetime of the
// tree and is what the lowering source map keys on.
type Node interface {
	// The text span of the node.
	Span() *report.TextSpan
}

// A utility base struct for all syntax tree nodes.
type NodeBase struct {
	// The span over which the node occurs.
	span *report.TextSpan
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb *NodeBase) Span() *report.TextSpan {
	return nb.span
}

// -----------------------------------------------------------------------------

// NameRef is a reference to a name: a single identifier token.
type NameRef struct {
	NodeBase

	Name string
}

// Path is a possibly-qualified name: one or more `.`-separated segments.
type Path struct {
	NodeBase

	Segments []string
}

// IsSingle returns whether the path is a single unqualified segment.
func (p *Path) IsSingle() bool {
	return len(p.Segments) == 1
}

// -----------------------------------------------------------------------------

// Attr is an attribute attached to an item or record field.  The only
// attribute the lowering stage interprets is `cfg`, which conditions the
// annotated construct on the crate's build configuration.
type Attr struct {
	NodeBase

	// The attribute name, eg. `cfg`.
	Name string

	// The configuration flag tested by a `cfg` attribute.
	Flag string

	// The expected value of the flag, for `cfg(flag = "value")` forms.
	Value    string
	HasValue bool
}
