package hir

import (
	"sable/ast"
	"sable/depm"
)

// Enumeration of type reference kinds.
type TypeRefKind int

const (
	TypeRefMissing = TypeRefKind(iota) // absent or unrecognized type annotation
	TypeRefInfer
	TypeRefPath
	TypeRefRef
	TypeRefTuple
	TypeRefSlice
)

// TypeRef is a compact, position-free rendition of a type annotation.  The
// lowering stage does not interpret types; it preserves their structure for
// type inference.
type TypeRef struct {
	Kind  TypeRefKind
	Path  depm.Path
	Elems []TypeRef
	Mut   bool
}

// TypeRefFromAST converts a type annotation to a type reference.  A nil
// annotation yields the missing kind.
func TypeRefFromAST(t ast.Type) TypeRef {
	switch v := t.(type) {
	case *ast.PathType:
		if v.Path == nil {
			return TypeRef{Kind: TypeRefMissing}
		}

		return TypeRef{Kind: TypeRefPath, Path: depm.NewPath(v.Path.Segments...)}
	case *ast.RefType:
		return TypeRef{Kind: TypeRefRef, Elems: []TypeRef{TypeRefFromAST(v.Elem)}, Mut: v.Mut}
	case *ast.TupleType:
		elems := make([]TypeRef, len(v.Elems))
		for i, elem := range v.Elems {
			elems[i] = TypeRefFromAST(elem)
		}

		return TypeRef{Kind: TypeRefTuple, Elems: elems}
	case *ast.SliceType:
		return TypeRef{Kind: TypeRefSlice, Elems: []TypeRef{TypeRefFromAST(v.Elem)}}
	case *ast.InferType:
		return TypeRef{Kind: TypeRefInfer}
	default:
		return TypeRef{Kind: TypeRefMissing}
	}
}

// OptTypeRefFromAST converts an optional type annotation, preserving absence
// as nil rather than as the missing kind.
func OptTypeRefFromAST(t ast.Type) *TypeRef {
	if t == nil {
		return nil
	}

	tr := TypeRefFromAST(t)
	return &tr
}
