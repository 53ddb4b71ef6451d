package hir

// WalkExprChildren calls exprFn for each expression id and patFn for each
// pattern id directly referenced by the given expression node.  Sentinel ids
// in absent optional child slots are skipped.  The walk is shallow: callers
// recurse themselves.
func WalkExprChildren(e Expr, exprFn func(ExprID), patFn func(PatID)) {
	visitExpr := func(id ExprID) {
		if id.IsValid() {
			exprFn(id)
		}
	}
	visitPat := func(id PatID) {
		if id.IsValid() {
			patFn(id)
		}
	}

	switch v := e.(type) {
	case *MissingExpr, *PathExpr, *LiteralExpr, *ContinueExpr:
		// no children
	case *IfExpr:
		visitExpr(v.Cond)
		visitExpr(v.Then)
		visitExpr(v.Else)
	case *BlockExpr:
		for _, stmt := range v.Stmts {
			switch s := stmt.(type) {
			case *LetStmt:
				visitPat(s.Pat)
				visitExpr(s.Init)
			case *ExprStmt:
				visitExpr(s.Value)
			}
		}
		visitExpr(v.Tail)
	case *LoopExpr:
		visitExpr(v.Body)
	case *WhileExpr:
		visitExpr(v.Cond)
		visitExpr(v.Body)
	case *ForExpr:
		visitExpr(v.Iterable)
		visitPat(v.Pat)
		visitExpr(v.Body)
	case *CallExpr:
		visitExpr(v.Callee)
		for _, arg := range v.Args {
			visitExpr(arg)
		}
	case *MethodCallExpr:
		visitExpr(v.Recv)
		for _, arg := range v.Args {
			visitExpr(arg)
		}
	case *MatchExpr:
		visitExpr(v.Scrutinee)
		for _, arm := range v.Arms {
			visitPat(arm.Pat)
			visitExpr(arm.Guard)
			visitExpr(arm.Value)
		}
	case *BreakExpr:
		visitExpr(v.Value)
	case *ReturnExpr:
		visitExpr(v.Value)
	case *RecordLitExpr:
		for _, field := range v.Fields {
			visitExpr(field.Value)
		}
		visitExpr(v.Spread)
	case *FieldExpr:
		visitExpr(v.Recv)
	case *IndexExpr:
		visitExpr(v.Base)
		visitExpr(v.Index)
	case *UnaryExpr:
		visitExpr(v.Operand)
	case *BinaryExpr:
		visitExpr(v.Lhs)
		visitExpr(v.Rhs)
	case *TupleExpr:
		for _, elem := range v.Elems {
			visitExpr(elem)
		}
	case *ArrayExpr:
		for _, elem := range v.Elems {
			visitExpr(elem)
		}
		visitExpr(v.Initializer)
		visitExpr(v.Count)
	case *RangeExpr:
		visitExpr(v.Start)
		visitExpr(v.End)
	case *RefExpr:
		visitExpr(v.Value)
	case *CastExpr:
		visitExpr(v.Value)
	case *BoxExpr:
		visitExpr(v.Value)
	case *TryExpr:
		visitExpr(v.Value)
	case *TryBlockExpr:
		visitExpr(v.Body)
	case *AwaitExpr:
		visitExpr(v.Value)
	case *LambdaExpr:
		for _, param := range v.Params {
			visitPat(param)
		}
		visitExpr(v.Body)
	}
}

// WalkPatChildren calls exprFn for each expression id and patFn for each
// pattern id directly referenced by the given pattern node.
func WalkPatChildren(p Pat, exprFn func(ExprID), patFn func(PatID)) {
	visitExpr := func(id ExprID) {
		if id.IsValid() {
			exprFn(id)
		}
	}
	visitPat := func(id PatID) {
		if id.IsValid() {
			patFn(id)
		}
	}

	switch v := p.(type) {
	case *MissingPat, *WildPat, *PathPat:
		// no children
	case *LitPat:
		visitExpr(v.Expr)
	case *BindPat:
		visitPat(v.Sub)
	case *TuplePat:
		for _, arg := range v.Args {
			visitPat(arg)
		}
	case *TupleStructPat:
		for _, arg := range v.Args {
			visitPat(arg)
		}
	case *RecordPat:
		for _, field := range v.Fields {
			visitPat(field.Pat)
		}
	case *RefPat:
		visitPat(v.Inner)
	case *SlicePat:
		for _, pre := range v.Prefix {
			visitPat(pre)
		}
		visitPat(v.Rest)
		for _, suf := range v.Suffix {
			visitPat(suf)
		}
	case *OrPat:
		for _, alt := range v.Pats {
			visitPat(alt)
		}
	}
}
