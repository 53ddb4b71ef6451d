package ast

// Type represents a type annotation node.  The lowering stage does not
// interpret types; it converts them to compact references for later stages.
type Type interface {
	Node

	typeNode()
}

// TypeBase is the base struct for all type annotations.
type TypeBase struct {
	NodeBase
}

func (tb *TypeBase) typeNode() {}

// -----------------------------------------------------------------------------

// PathType is a named type, eg. `foo.Bar`.
type PathType struct {
	TypeBase

	Path *Path
}

// RefType is a reference type, eg. `&T` or `&mut T`.
type RefType struct {
	TypeBase

	Mut  bool
	Elem Type
}

// TupleType is a tuple type, eg. `(A, B)`.
type TupleType struct {
	TypeBase

	Elems []Type
}

// SliceType is a slice type, eg. `[T]`.
type SliceType struct {
	TypeBase

	Elem Type
}

// InferType is the inference placeholder `_`.
type InferType struct {
	TypeBase
}
