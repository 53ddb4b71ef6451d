package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// maxExpansionDepth bounds nested macro expansion.  The bound exists to turn
// runaway recursive expansion into bounded partial output; invocations past
// it lower to placeholders like any other unresolvable macro.
const maxExpansionDepth = 64

// lowerMacroCall lowers a macro invocation in expression position.
//
// A macro *definition* registers the defined macro in the body's legacy-macro
// table and produces no value.  An ordinary invocation expands through the
// expander and re-enters the expression walk on the result as if it were
// written inline, then rolls the expansion context back.
func (l *Lowerer) lowerMacroCall(call *ast.MacroCall) hir.ExprID {
	if call.DefName != nil {
		def := depm.MacroDef{
			Crate: l.exp.Crate(),
			AstID: l.exp.ASTID(call),
		}
		l.body.ItemScope.DefineLegacyMacro(call.DefName.Name, def)

		return l.allocExpr(&hir.MissingExpr{}, call)
	}

	// The call's source key is computed before entering the expansion: it
	// must be relative to the pre-expansion file.
	callSrc := l.exp.ToSource(call)

	if l.expandDepth >= maxExpansionDepth {
		return l.allocExpr(&hir.MissingExpr{}, call)
	}

	mark, expansion, ok := l.exp.EnterExpand(l.db, &l.body.ItemScope, call)
	if !ok {
		return l.allocExpr(&hir.MissingExpr{}, call)
	}

	l.srcMap.RecordExpansion(callSrc, l.exp.CurrentFile())

	l.expandDepth++
	id := l.lowerExprOpt(expansion)
	l.expandDepth--

	l.exp.Exit(l.db, mark)
	return id
}
