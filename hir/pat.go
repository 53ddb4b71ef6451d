package hir

import "sable/depm"

// Pat represents a lowered pattern node.  Like Expr, the variant set is
// closed and consumers dispatch with an exhaustive type switch.
type Pat interface {
	patNode()
}

// -----------------------------------------------------------------------------

// MissingPat is the placeholder standing in for absent, malformed, or
// unsupported pattern input.
type MissingPat struct{}

// WildPat is the wildcard pattern `_`.
type WildPat struct{}

// LitPat is a literal in pattern position.  The literal itself is an
// expression node allocated into the Body's expression arena; the pattern
// carries its id.
type LitPat struct {
	Expr ExprID
}

// Enumeration of binding modes.
type BindingMode int

const (
	BindValue = BindingMode(iota) // plain `x`
	BindMut                       // `mut x`
	BindRef                       // `ref x`
	BindRefMut                    // `ref mut x`
)

// NewBindingMode computes the binding mode from the presence of `mut` and
// `ref` annotations.
func NewBindingMode(mut, ref bool) BindingMode {
	switch {
	case mut && ref:
		return BindRefMut
	case ref:
		return BindRef
	case mut:
		return BindMut
	default:
		return BindValue
	}
}

// BindPat introduces a fresh binding, optionally constraining it with a
// nested sub-pattern (`x @ p`).  Sub is NoPat when there is no sub-pattern.
type BindPat struct {
	Name string
	Mode BindingMode
	Sub  PatID
}

// PathPat references an existing constant, enum variant, or unit/tuple
// structure rather than introducing a binding.
type PathPat struct {
	Path depm.Path
}

// -----------------------------------------------------------------------------

// TuplePat destructures a tuple.
type TuplePat struct {
	Args []PatID
}

// TupleStructPat destructures a tuple struct or tuple enum variant.  Path is
// empty when the pattern's path failed to parse.
type TupleStructPat struct {
	Path depm.Path
	Args []PatID
}

// RecordPatField is a single named sub-pattern of a record pattern.
type RecordPatField struct {
	Name string
	Pat  PatID
}

// RecordPat destructures a record struct or record enum variant.  Shorthand
// field bindings precede explicit `name: pat` entries in Fields.
type RecordPat struct {
	Path   depm.Path
	Fields []RecordPatField
}

// RefPat destructures through a reference.
type RefPat struct {
	Mut   bool
	Inner PatID
}

// SlicePat destructures a slice or array.  Rest is NoPat when there is no
// rest binding.
type SlicePat struct {
	Prefix []PatID
	Rest   PatID
	Suffix []PatID
}

// OrPat is an alternation of patterns.
type OrPat struct {
	Pats []PatID
}

// -----------------------------------------------------------------------------

func (*MissingPat) patNode()     {}
func (*WildPat) patNode()        {}
func (*LitPat) patNode()         {}
func (*BindPat) patNode()        {}
func (*PathPat) patNode()        {}
func (*TuplePat) patNode()       {}
func (*TupleStructPat) patNode() {}
func (*RecordPat) patNode()      {}
func (*RefPat) patNode()         {}
func (*SlicePat) patNode()       {}
func (*OrPat) patNode()          {}
