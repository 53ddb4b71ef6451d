package hir

import "fmt"

// Body is the lowered representation of one definition's body: the expression
// and pattern arenas, the ordered parameter patterns, the root expression
// giving the body's value, and the items declared inside the body.  A Body is
// created once per lowering invocation and is immutable thereafter.
type Body struct {
	exprs Arena[Expr]
	pats  Arena[Pat]

	// Params holds the lowered parameter patterns in declaration order.
	Params []PatID

	// Root is the body's value expression.
	Root ExprID

	// ItemScope holds the items and legacy macros declared inside the body.
	ItemScope ItemScope
}

// NewBody creates a new empty body.
func NewBody() *Body {
	return &Body{}
}

// Expr returns the expression node stored under the given id.
func (b *Body) Expr(id ExprID) Expr {
	return b.exprs.Get(uint32(id))
}

// Pat returns the pattern node stored under the given id.
func (b *Body) Pat(id PatID) Pat {
	return b.pats.Get(uint32(id))
}

// AddExpr allocates an expression node, returning its id.
func (b *Body) AddExpr(e Expr) ExprID {
	return ExprID(b.exprs.Alloc(e))
}

// AddPat allocates a pattern node, returning its id.
func (b *Body) AddPat(p Pat) PatID {
	return PatID(b.pats.Alloc(p))
}

// ValidExpr returns whether the given id is allocated in this body.
func (b *Body) ValidExpr(id ExprID) bool {
	return b.exprs.Valid(uint32(id))
}

// ValidPat returns whether the given id is allocated in this body.
func (b *Body) ValidPat(id PatID) bool {
	return b.pats.Valid(uint32(id))
}

// NumExprs returns the number of allocated expression nodes.
func (b *Body) NumExprs() int {
	return b.exprs.Len()
}

// NumPats returns the number of allocated pattern nodes.
func (b *Body) NumPats() int {
	return b.pats.Len()
}

// EachExpr calls f for each allocated expression in allocation order.
func (b *Body) EachExpr(f func(id ExprID, e Expr)) {
	b.exprs.Each(func(id uint32, e Expr) { f(ExprID(id), e) })
}

// EachPat calls f for each allocated pattern in allocation order.
func (b *Body) EachPat(f func(id PatID, p Pat)) {
	b.pats.Each(func(id uint32, p Pat) { f(PatID(id), p) })
}

// Validate checks that every id reachable from the root expression and the
// parameter patterns is allocated within this body's own arenas.  A failure
// always indicates a lowering bug, never bad input.
func (b *Body) Validate() error {
	seenExprs := make(map[ExprID]struct{})
	seenPats := make(map[PatID]struct{})

	var checkExpr func(id ExprID) error
	var checkPat func(id PatID) error

	checkExpr = func(id ExprID) error {
		if !b.ValidExpr(id) {
			return fmt.Errorf("dangling expression id %d", id)
		}
		if _, ok := seenExprs[id]; ok {
			return nil
		}
		seenExprs[id] = struct{}{}

		var err error
		WalkExprChildren(b.Expr(id), func(child ExprID) {
			if err == nil {
				err = checkExpr(child)
			}
		}, func(child PatID) {
			if err == nil {
				err = checkPat(child)
			}
		})
		return err
	}

	checkPat = func(id PatID) error {
		if !b.ValidPat(id) {
			return fmt.Errorf("dangling pattern id %d", id)
		}
		if _, ok := seenPats[id]; ok {
			return nil
		}
		seenPats[id] = struct{}{}

		var err error
		WalkPatChildren(b.Pat(id), func(child ExprID) {
			if err == nil {
				err = checkExpr(child)
			}
		}, func(child PatID) {
			if err == nil {
				err = checkPat(child)
			}
		})
		return err
	}

	for _, param := range b.Params {
		if err := checkPat(param); err != nil {
			return err
		}
	}

	return checkExpr(b.Root)
}
