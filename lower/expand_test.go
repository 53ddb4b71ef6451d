package lower

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sable/ast"
	"sable/depm"
	"sable/hir"
)

func TestMacroCallExpandsInPlace(t *testing.T) {
	call := macroCall("answer")
	body := blockOf(call)

	te := newTestExpander()
	te.macros["answer"] = func() ast.Expr { return intLit("42") }

	lowered, srcMap := LowerBody(depm.NewDefTable(), 1, te, nil, body)
	requireWellFormed(t, lowered, srcMap)

	block := lowered.Expr(lowered.Root).(*hir.BlockExpr)
	lit, ok := lowered.Expr(block.Tail).(*hir.LiteralExpr)
	require.True(t, ok, "expected expanded literal, got %T", lowered.Expr(block.Tail))
	require.Equal(t, "42", lit.Value)
}

func TestMacroExpansionRecordsFileMapping(t *testing.T) {
	call := macroCall("answer")
	expansion := intLit("42")

	te := newTestExpander()
	te.macros["answer"] = func() ast.Expr { return expansion }

	lowered, srcMap := LowerBody(depm.NewDefTable(), 1, te, nil, blockOf(call))
	requireWellFormed(t, lowered, srcMap)

	// The call site maps to the expansion's file.
	file, ok := srcMap.Expansion(hir.Source{File: 1, Node: call})
	require.True(t, ok)
	require.Equal(t, depm.FileID(2), file)

	// Nodes from inside the expansion are keyed to the expansion file.
	block := lowered.Expr(lowered.Root).(*hir.BlockExpr)
	src, ok := srcMap.ExprSource(block.Tail)
	require.True(t, ok)
	require.Equal(t, depm.FileID(2), src.File)
	require.Same(t, ast.Node(expansion), src.Node)
}

func TestMacroExpansionRestoresFile(t *testing.T) {
	te := newTestExpander()
	te.macros["answer"] = func() ast.Expr { return intLit("42") }

	_, srcMap := LowerBody(depm.NewDefTable(), 1, te, nil, blockOf(macroCall("answer")))

	require.Equal(t, depm.FileID(1), te.CurrentFile())
	_ = srcMap
}

func TestUnresolvedMacroCallIsMissing(t *testing.T) {
	call := macroCall("nope")

	lowered, srcMap, _ := lowerExprFor(call)
	requireWellFormed(t, lowered, srcMap)

	require.IsType(t, &hir.MissingExpr{}, lowered.Expr(lowered.Root))

	// The failed call still gets a source entry of its own.
	id, ok := srcMap.ExprForSource(hir.Source{File: 1, Node: call})
	require.True(t, ok)
	require.Equal(t, lowered.Root, id)
}

func TestMacroDefinitionRegistersLegacyMacro(t *testing.T) {
	def := &ast.MacroCall{Path: pathOf("macro_rules"), DefName: nameRef("answer")}
	call := macroCall("answer")

	te := newTestExpander()
	te.macros["answer"] = func() ast.Expr { return intLit("42") }

	body := blockOf(call, &ast.ExprStmt{Value: def})
	lowered, srcMap := LowerBody(depm.NewDefTable(), 1, te, nil, body)
	requireWellFormed(t, lowered, srcMap)

	// The definition itself lowers to a placeholder statement.
	block := lowered.Expr(lowered.Root).(*hir.BlockExpr)
	require.Len(t, block.Stmts, 1)
	stmt := block.Stmts[0].(*hir.ExprStmt)
	require.IsType(t, &hir.MissingExpr{}, lowered.Expr(stmt.Value))

	// But the macro is visible to the rest of the block.
	_, ok := lowered.ItemScope.LegacyMacro("answer")
	require.True(t, ok)
	require.IsType(t, &hir.LiteralExpr{}, lowered.Expr(block.Tail))
}

func TestRecursiveMacroExpansionTerminates(t *testing.T) {
	te := newTestExpander()
	te.macros["forever"] = func() ast.Expr { return macroCall("forever") }

	lowered, srcMap := LowerBody(depm.NewDefTable(), 1, te, nil, blockOf(macroCall("forever")))
	requireWellFormed(t, lowered, srcMap)

	// The chain bottoms out in a placeholder instead of diverging.
	block := lowered.Expr(lowered.Root).(*hir.BlockExpr)
	require.IsType(t, &hir.MissingExpr{}, lowered.Expr(block.Tail))

	// Every Enter was matched by an Exit.
	require.Equal(t, depm.FileID(1), te.CurrentFile())
}
