package ast

// Pat represents a pattern node.  All pattern nodes implement the `Pat`
// interface.
type Pat interface {
	Node

	patNode()
}

// PatBase is the base struct for all patterns.
type PatBase struct {
	NodeBase
}

func (pb *PatBase) patNode() {}

// -----------------------------------------------------------------------------

// WildPat is the wildcard pattern `_`.
type WildPat struct {
	PatBase
}

// RestPat is the rest pattern `..` occurring outside a slice pattern.
type RestPat struct {
	PatBase
}

// BindPat is a name in pattern position.  Without annotations or a
// sub-pattern, whether it introduces a fresh binding or references an existing
// item is decided during lowering by name resolution.
type BindPat struct {
	PatBase

	Name *NameRef
	Mut  bool
	Ref  bool
	Sub  Pat
}

// PathPat is an explicitly qualified path in pattern position.
type PathPat struct {
	PatBase

	Path *Path
}

// LiteralPat is a literal in pattern position.
type LiteralPat struct {
	PatBase

	Lit *Literal
}

// -----------------------------------------------------------------------------

// ParenPat is a parenthesized pattern.
type ParenPat struct {
	PatBase

	Inner Pat
}

// TuplePat destructures a tuple, eg. `(a, b)`.
type TuplePat struct {
	PatBase

	Args []Pat
}

// TupleStructPat destructures a tuple struct or tuple enum variant, eg.
// `Some(x)`.
type TupleStructPat struct {
	PatBase

	Path *Path
	Args []Pat
}

// RecordPatField is an explicit `name: pat` entry of a record pattern.
type RecordPatField struct {
	NodeBase

	Name *NameRef
	Pat  Pat
}

// RecordPatFieldList is the field list of a record pattern.  Binds holds the
// shorthand `Point { x }` entries; Fields holds the explicit `x: pat` entries.
type RecordPatFieldList struct {
	NodeBase

	Binds  []*BindPat
	Fields []*RecordPatField
}

// RecordPat destructures a record struct or record enum variant.  FieldList is
// nil when the field list is missing from the source.
type RecordPat struct {
	PatBase

	Path      *Path
	FieldList *RecordPatFieldList
}

// RefPat destructures through a reference, eg. `&x` or `&mut x`.
type RefPat struct {
	PatBase

	Mut   bool
	Inner Pat
}

// SlicePat destructures a slice or array: an ordered prefix, an optional
// single rest binding, and an ordered suffix.
type SlicePat struct {
	PatBase

	Prefix []Pat
	Rest   Pat
	Suffix []Pat
}

// OrPat is an alternation of patterns, eg. `A | B`.
type OrPat struct {
	PatBase

	Pats []Pat
}

// -----------------------------------------------------------------------------
// Pattern forms not lowered yet.

// BoxPat destructures through a box.
type BoxPat struct {
	PatBase

	Inner Pat
}

// RangePat matches a range of values, eg. `1..=5`.
type RangePat struct {
	PatBase

	Op    RangeOpKind
	Start Expr
	End   Expr
}

// MacroPat is a macro invocation in pattern position.
type MacroPat struct {
	PatBase

	Call *MacroCall
}
