// Package hir provides the desugared intermediate representation produced by
// lowering one definition's body.
//
// Expression and pattern nodes live in two per-Body arenas and reference each
// other by densely packed integer ids, never by direct ownership.  Ids are
// stable for the lifetime of the Body and are what later stages (type
// inference, diagnostics, editor tooling) key their own tables on.  Ids are
// never shared between Body instances.
package hir

// ExprID identifies an expression node within a Body's expression arena.
type ExprID uint32

// PatID identifies a pattern node within a Body's pattern arena.
type PatID uint32

// Invalid ID constants (zero is sentinel).  Optional child slots hold the
// sentinel when the child is absent from the source *and* the node's meaning
// does not require a stand-in; required child slots always hold a real id,
// possibly of a Missing placeholder node.
const (
	NoExpr ExprID = 0
	NoPat  PatID  = 0
)

// IsValid returns true if the ID is valid (non-zero).
func (id ExprID) IsValid() bool { return id != NoExpr }
func (id PatID) IsValid() bool  { return id != NoPat }
