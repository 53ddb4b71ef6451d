package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// Mark is the rollback token returned by EnterExpand.  Passing it back to
// Exit restores the expander's pre-expansion context (in particular the
// current file identity), so nested expansions unwind deterministically.
type Mark struct {
	File depm.FileID
}

// Expander is the macro-expansion boundary consumed by lowering.  It also
// carries the current lowering context: the module being lowered, its crate,
// and the current file identity, which changes under macro expansion.
//
// Implementations own hygiene and recursive-expansion machinery; lowering
// only drives the enter/exit protocol and re-walks the expansion result.
type Expander interface {
	// ParsePath converts a syntax path to a resolved-form path.  The second
	// result is false if the path is malformed.
	ParsePath(p *ast.Path) (depm.Path, bool)

	// ToSource converts a syntax node to a source-map key, accounting for the
	// current macro-expansion context.
	ToSource(n ast.Node) hir.Source

	// ASTID returns the stable syntax identity of a node within its file.
	ASTID(n ast.Node) depm.AstID

	// EnterExpand attempts to expand a macro invocation, consulting the given
	// item scope for legacy macros.  On success it switches the expander's
	// current file to the expansion and returns a rollback mark along with
	// the expansion's syntax.  The final result is false if the macro does
	// not resolve or expansion fails.
	EnterExpand(db depm.DefDatabase, scope *hir.ItemScope, call *ast.MacroCall) (Mark, ast.Expr, bool)

	// Exit restores the context saved by the matching EnterExpand.
	Exit(db depm.DefDatabase, mark Mark)

	// CurrentFile returns the file identity nodes are currently lowered from.
	CurrentFile() depm.FileID

	// Module returns the module whose definition is being lowered.
	Module() depm.ModuleID

	// Crate returns the crate of that module.
	Crate() depm.CrateID
}
