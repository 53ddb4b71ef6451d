package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// testExpander is a minimal in-memory Expander.  Macro expansions are
// registered per macro name as factories producing fresh syntax, and each
// successful expansion switches to a fresh file id until the matching Exit.
type testExpander struct {
	file   depm.FileID
	module depm.ModuleID
	crate  depm.CrateID

	nextFile depm.FileID

	astIDs    map[ast.Node]depm.AstID
	nextASTID depm.AstID

	macros map[string]func() ast.Expr
}

func newTestExpander() *testExpander {
	return &testExpander{
		file:     1,
		module:   1,
		crate:    1,
		nextFile: 2,
		astIDs:   make(map[ast.Node]depm.AstID),
		macros:   make(map[string]func() ast.Expr),
	}
}

func (te *testExpander) ParsePath(p *ast.Path) (depm.Path, bool) {
	if p == nil || len(p.Segments) == 0 {
		return depm.Path{}, false
	}

	return depm.NewPath(p.Segments...), true
}

func (te *testExpander) ToSource(n ast.Node) hir.Source {
	return hir.Source{File: te.file, Node: n}
}

func (te *testExpander) ASTID(n ast.Node) depm.AstID {
	if id, ok := te.astIDs[n]; ok {
		return id
	}

	te.nextASTID++
	te.astIDs[n] = te.nextASTID
	return te.nextASTID
}

func (te *testExpander) EnterExpand(_ depm.DefDatabase, scope *hir.ItemScope, call *ast.MacroCall) (Mark, ast.Expr, bool) {
	if call.Path == nil || len(call.Path.Segments) != 1 {
		return Mark{}, nil, false
	}
	name := call.Path.Segments[0]

	// Legacy macros defined earlier in the body shadow anything else.
	if scope != nil {
		if _, ok := scope.LegacyMacro(name); ok {
			if expand, ok := te.macros[name]; ok {
				return te.enter(), expand(), true
			}
		}
	}

	expand, ok := te.macros[name]
	if !ok {
		return Mark{}, nil, false
	}

	return te.enter(), expand(), true
}

func (te *testExpander) enter() Mark {
	mark := Mark{File: te.file}
	te.file = te.nextFile
	te.nextFile++
	return mark
}

func (te *testExpander) Exit(_ depm.DefDatabase, mark Mark) {
	te.file = mark.File
}

func (te *testExpander) CurrentFile() depm.FileID { return te.file }
func (te *testExpander) Module() depm.ModuleID    { return te.module }
func (te *testExpander) Crate() depm.CrateID      { return te.crate }

// -----------------------------------------------------------------------------
// Syntax builders.  Spans are irrelevant to lowering (source keys are node
// identities), so builders leave them zero.

func nameRef(name string) *ast.NameRef {
	return &ast.NameRef{Name: name}
}

func pathOf(segments ...string) *ast.Path {
	return &ast.Path{Segments: segments}
}

func pathExpr(segments ...string) *ast.PathExpr {
	return &ast.PathExpr{Path: pathOf(segments...)}
}

func intLit(value string) *ast.Literal {
	return &ast.Literal{Kind: ast.LitInt, Value: value}
}

func blockOf(tail ast.Expr, stmts ...ast.Stmt) *ast.BlockExpr {
	return &ast.BlockExpr{Stmts: stmts, Tail: tail}
}

func bindPat(name string) *ast.BindPat {
	return &ast.BindPat{Name: nameRef(name)}
}

func tupleStructPat(path *ast.Path, args ...ast.Pat) *ast.TupleStructPat {
	return &ast.TupleStructPat{Path: path, Args: args}
}

func patCond(pat ast.Pat, value ast.Expr) *ast.Condition {
	return &ast.Condition{Pat: pat, Value: value}
}

func boolCond(value ast.Expr) *ast.Condition {
	return &ast.Condition{Value: value}
}

func macroCall(name string) *ast.MacroCall {
	return &ast.MacroCall{Path: pathOf(name)}
}

// lowerExprFor is the common fixture: it lowers a body expression with an
// empty definition table and returns everything a test might inspect.
func lowerExprFor(body ast.Expr) (*hir.Body, *hir.SourceMap, *testExpander) {
	return lowerExprWith(depm.NewDefTable(), body)
}

func lowerExprWith(db depm.DefDatabase, body ast.Expr) (*hir.Body, *hir.SourceMap, *testExpander) {
	te := newTestExpander()
	lowered, srcMap := LowerBody(db, 1, te, nil, body)
	return lowered, srcMap, te
}
