// Package lower converts one definition's concrete syntax into its hir.Body
// and hir.SourceMap.
//
// Lowering is total and best-effort: malformed or absent input degrades to
// placeholder nodes with synthetic provenance and the walk continues, so a
// structurally valid Body comes back even for in-progress source text.  The
// walk is a plain recursive descent; macro expansion re-enters it on the
// expansion result under a rollback mark.
package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// Lowerer is the construct responsible for lowering one definition's body.
type Lowerer struct {
	db  depm.DefDatabase
	exp Expander

	// def is the definition whose body is being lowered.  It is the container
	// identity for items declared inside the body.
	def depm.DefID

	body   *hir.Body
	srcMap *hir.SourceMap

	// expandDepth counts nested macro expansions for the recursion guard.
	expandDepth int
}

// LowerBody lowers one definition's optional parameter list and optional body
// expression into a populated Body and its SourceMap.  It never fails: absent
// input lowers to placeholder nodes.
func LowerBody(db depm.DefDatabase, def depm.DefID, exp Expander, params *ast.ParamList, body ast.Expr) (*hir.Body, *hir.SourceMap) {
	l := &Lowerer{
		db:     db,
		exp:    exp,
		def:    def,
		body:   hir.NewBody(),
		srcMap: hir.NewSourceMap(),
	}

	return l.collect(params, body)
}

func (l *Lowerer) collect(params *ast.ParamList, body ast.Expr) (*hir.Body, *hir.SourceMap) {
	if params != nil {
		if params.Self != nil {
			selfPat := l.allocPat(&hir.BindPat{Name: "self", Mode: hir.BindValue}, params.Self)
			l.body.Params = append(l.body.Params, selfPat)
		}

		for _, param := range params.Params {
			if param.Pat == nil {
				continue
			}

			l.body.Params = append(l.body.Params, l.lowerPat(param.Pat))
		}
	}

	l.body.Root = l.lowerExprOpt(body)
	return l.body, l.srcMap
}

// -----------------------------------------------------------------------------
// Allocation.  Every node allocation goes through makeExpr/makePat, which pair
// the new id with its backward source entry, keeping the backward maps total.

// allocExpr allocates an expression lowered from the given syntax node,
// recording provenance in both directions.
func (l *Lowerer) allocExpr(e hir.Expr, node ast.Node) hir.ExprID {
	src := l.exp.ToSource(node)
	id := l.makeExpr(e, src)
	l.srcMap.RecordExpr(src, id)
	return id
}

// allocExprDesugared allocates a synthesized expression with no source of its
// own.
func (l *Lowerer) allocExprDesugared(e hir.Expr) hir.ExprID {
	return l.makeExpr(e, hir.Source{})
}

// allocExprFieldShorthand allocates the path expression desugared from a
// record-literal field shorthand.  Provenance is the field node itself, which
// is how consumers distinguish shorthand from an ordinary path.
func (l *Lowerer) allocExprFieldShorthand(e hir.Expr, field *ast.RecordField) hir.ExprID {
	src := l.exp.ToSource(field)
	id := l.makeExpr(e, src)
	l.srcMap.RecordExpr(src, id)
	return id
}

func (l *Lowerer) makeExpr(e hir.Expr, src hir.Source) hir.ExprID {
	id := l.body.AddExpr(e)
	l.srcMap.RecordExprBack(id, src)
	return id
}

// missingExpr allocates a fresh placeholder expression.  Placeholders are
// never deduplicated: two absent children yield two independent ids.
func (l *Lowerer) missingExpr() hir.ExprID {
	return l.allocExprDesugared(&hir.MissingExpr{})
}

// emptyBlock allocates a synthesized empty block.
func (l *Lowerer) emptyBlock() hir.ExprID {
	return l.allocExprDesugared(&hir.BlockExpr{})
}

// allocPat allocates a pattern lowered from the given syntax node.
func (l *Lowerer) allocPat(p hir.Pat, node ast.Node) hir.PatID {
	src := l.exp.ToSource(node)
	id := l.makePat(p, src)
	l.srcMap.RecordPat(src, id)
	return id
}

// allocPatDesugared allocates a synthesized pattern with no source of its own.
func (l *Lowerer) allocPatDesugared(p hir.Pat) hir.PatID {
	return l.makePat(p, hir.Source{})
}

func (l *Lowerer) makePat(p hir.Pat, src hir.Source) hir.PatID {
	id := l.body.AddPat(p)
	l.srcMap.RecordPatBack(id, src)
	return id
}

// missingPat allocates a fresh placeholder pattern.
func (l *Lowerer) missingPat() hir.PatID {
	return l.allocPatDesugared(&hir.MissingPat{})
}

// -----------------------------------------------------------------------------

// lowerExprOpt lowers an optional expression position: an absent expression
// yields a fresh placeholder.
func (l *Lowerer) lowerExprOpt(e ast.Expr) hir.ExprID {
	if e == nil {
		return l.missingExpr()
	}

	return l.lowerExpr(e)
}

// lowerBlockOpt lowers an optional block position.
func (l *Lowerer) lowerBlockOpt(b *ast.BlockExpr) hir.ExprID {
	if b == nil {
		return l.missingExpr()
	}

	return l.lowerBlock(b)
}

// lowerPatOpt lowers an optional pattern position.
func (l *Lowerer) lowerPatOpt(p ast.Pat) hir.PatID {
	if p == nil {
		return l.missingPat()
	}

	return l.lowerPat(p)
}
