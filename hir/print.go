package hir

import "github.com/kr/pretty"

// bodyView is the reflection-friendly shape Dump renders.
type bodyView struct {
	Params []PatID
	Root   ExprID
	Exprs  []Expr
	Pats   []Pat
}

// Dump renders a body for debugging and test failure output.  Arena slices
// are printed in allocation order, so entry i corresponds to id i+1.
func Dump(b *Body) string {
	view := bodyView{Params: b.Params, Root: b.Root}

	b.EachExpr(func(_ ExprID, e Expr) { view.Exprs = append(view.Exprs, e) })
	b.EachPat(func(_ PatID, p Pat) { view.Pats = append(view.Pats, p) })

	return pretty.Sprint(view)
}
