package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// lowerExpr lowers an expression and returns the id of the node it produced.
// Every expression form yields exactly one id; forms that cannot be lowered
// yield a placeholder.
func (l *Lowerer) lowerExpr(expr ast.Expr) hir.ExprID {
	switch v := expr.(type) {
	case *ast.IfExpr:
		return l.lowerIf(v)
	case *ast.BlockExpr:
		return l.lowerBlock(v)
	case *ast.LoopExpr:
		body := l.lowerBlockOpt(v.Body)
		return l.allocExpr(&hir.LoopExpr{Body: body}, v)
	case *ast.WhileExpr:
		return l.lowerWhile(v)
	case *ast.ForExpr:
		iterable := l.lowerExprOpt(v.Iterable)
		pat := l.lowerPatOpt(v.Pat)
		body := l.lowerBlockOpt(v.Body)
		return l.allocExpr(&hir.ForExpr{Iterable: iterable, Pat: pat, Body: body}, v)
	case *ast.CallExpr:
		callee := l.lowerExprOpt(v.Fn)
		return l.allocExpr(&hir.CallExpr{Callee: callee, Args: l.lowerArgList(v.Args)}, v)
	case *ast.MethodCallExpr:
		recv := l.lowerExprOpt(v.Recv)
		name := ""
		if v.Name != nil {
			name = v.Name.Name
		}
		args := l.lowerArgList(v.Args)

		var genericArgs []hir.TypeRef
		for _, targ := range v.GenericArgs {
			genericArgs = append(genericArgs, hir.TypeRefFromAST(targ))
		}

		return l.allocExpr(&hir.MethodCallExpr{
			Recv:        recv,
			Name:        name,
			Args:        args,
			GenericArgs: genericArgs,
		}, v)
	case *ast.MatchExpr:
		scrutinee := l.lowerExprOpt(v.Scrutinee)

		var arms []hir.MatchArm
		if v.Arms != nil {
			for _, arm := range v.Arms.Arms {
				guard := hir.NoExpr
				if arm.Guard != nil {
					guard = l.lowerExpr(arm.Guard)
				}

				arms = append(arms, hir.MatchArm{
					Pat:   l.lowerPatOpt(arm.Pat),
					Guard: guard,
					Value: l.lowerExprOpt(arm.Value),
				})
			}
		}

		return l.allocExpr(&hir.MatchExpr{Scrutinee: scrutinee, Arms: arms}, v)
	case *ast.PathExpr:
		if v.Path != nil {
			if path, ok := l.exp.ParsePath(v.Path); ok {
				return l.allocExpr(&hir.PathExpr{Path: path}, v)
			}
		}

		return l.allocExpr(&hir.MissingExpr{}, v)
	case *ast.ContinueExpr:
		// TODO: labels
		return l.allocExpr(&hir.ContinueExpr{}, v)
	case *ast.BreakExpr:
		value := hir.NoExpr
		if v.Value != nil {
			value = l.lowerExpr(v.Value)
		}

		return l.allocExpr(&hir.BreakExpr{Value: value}, v)
	case *ast.ReturnExpr:
		value := hir.NoExpr
		if v.Value != nil {
			value = l.lowerExpr(v.Value)
		}

		return l.allocExpr(&hir.ReturnExpr{Value: value}, v)
	case *ast.ParenExpr:
		// Parentheses allocate nothing: both spellings resolve to the inner
		// node.  The outer span is aliased onto the inner id.
		inner := l.lowerExprOpt(v.Inner)
		l.srcMap.RecordExpr(l.exp.ToSource(v), inner)
		return inner
	case *ast.RecordLit:
		return l.lowerRecordLit(v)
	case *ast.FieldExpr:
		recv := l.lowerExprOpt(v.Recv)
		name := ""
		if v.Name != nil {
			name = v.Name.Name
		}

		return l.allocExpr(&hir.FieldExpr{Recv: recv, Name: name}, v)
	case *ast.IndexExpr:
		base := l.lowerExprOpt(v.Base)
		index := l.lowerExprOpt(v.Index)
		return l.allocExpr(&hir.IndexExpr{Base: base, Index: index}, v)
	case *ast.AwaitExpr:
		value := l.lowerExprOpt(v.Value)
		return l.allocExpr(&hir.AwaitExpr{Value: value}, v)
	case *ast.TryExpr:
		value := l.lowerExprOpt(v.Value)
		return l.allocExpr(&hir.TryExpr{Value: value}, v)
	case *ast.TryBlockExpr:
		body := l.lowerBlockOpt(v.Body)
		return l.allocExpr(&hir.TryBlockExpr{Body: body}, v)
	case *ast.CastExpr:
		value := l.lowerExprOpt(v.Value)
		return l.allocExpr(&hir.CastExpr{Value: value, Type: hir.TypeRefFromAST(v.Type)}, v)
	case *ast.RefExpr:
		value := l.lowerExprOpt(v.Value)
		return l.allocExpr(&hir.RefExpr{Mut: v.Mut, Value: value}, v)
	case *ast.BoxExpr:
		value := l.lowerExprOpt(v.Value)
		return l.allocExpr(&hir.BoxExpr{Value: value}, v)
	case *ast.UnaryExpr:
		operand := l.lowerExprOpt(v.Operand)
		op, ok := unaryOpFromAST(v.Op)
		if !ok {
			return l.allocExpr(&hir.MissingExpr{}, v)
		}

		return l.allocExpr(&hir.UnaryExpr{Op: op, Operand: operand}, v)
	case *ast.BinaryExpr:
		lhs := l.lowerExprOpt(v.Lhs)
		rhs := l.lowerExprOpt(v.Rhs)
		return l.allocExpr(&hir.BinaryExpr{Op: binaryOpFromAST(v.Op), Lhs: lhs, Rhs: rhs}, v)
	case *ast.TupleExpr:
		elems := make([]hir.ExprID, len(v.Elems))
		for i, elem := range v.Elems {
			elems[i] = l.lowerExpr(elem)
		}

		return l.allocExpr(&hir.TupleExpr{Elems: elems}, v)
	case *ast.ArrayExpr:
		if v.IsRepeat {
			initializer := l.lowerExprOpt(v.Initializer)
			count := l.lowerExprOpt(v.Count)
			return l.allocExpr(&hir.ArrayExpr{IsRepeat: true, Initializer: initializer, Count: count}, v)
		}

		var elems []hir.ExprID
		for _, elem := range v.Elems {
			elems = append(elems, l.lowerExpr(elem))
		}

		return l.allocExpr(&hir.ArrayExpr{Elems: elems}, v)
	case *ast.RangeExpr:
		start := hir.NoExpr
		if v.Start != nil {
			start = l.lowerExpr(v.Start)
		}
		end := hir.NoExpr
		if v.End != nil {
			end = l.lowerExpr(v.End)
		}

		op, ok := rangeOpFromAST(v.Op)
		if !ok {
			return l.allocExpr(&hir.MissingExpr{}, v)
		}

		return l.allocExpr(&hir.RangeExpr{Op: op, Start: start, End: end}, v)
	case *ast.LambdaExpr:
		var params []hir.PatID
		var paramTypes []*hir.TypeRef
		if v.Params != nil {
			for _, param := range v.Params.Params {
				params = append(params, l.lowerPatOpt(param.Pat))
				paramTypes = append(paramTypes, hir.OptTypeRefFromAST(param.Type))
			}
		}

		body := l.lowerExprOpt(v.Body)
		return l.allocExpr(&hir.LambdaExpr{
			Params:     params,
			ParamTypes: paramTypes,
			RetType:    hir.OptTypeRefFromAST(v.RetType),
			Body:       body,
		}, v)
	case *ast.Literal:
		return l.allocExpr(lowerLiteral(v), v)
	case *ast.MacroCall:
		return l.lowerMacroCall(v)
	case *ast.LabelExpr:
		// TODO: lower labels once loops carry them
		return l.allocExpr(&hir.MissingExpr{}, v)
	default:
		return l.allocExpr(&hir.MissingExpr{}, v)
	}
}

// lowerIf lowers a conditional.  A pattern condition desugars to a match: the
// then-branch behind the pattern's arm and the else-branch (or a synthesized
// empty block) behind a sourceless catch-all arm.
func (l *Lowerer) lowerIf(v *ast.IfExpr) hir.ExprID {
	thenBranch := l.lowerBlockOpt(v.Then)

	elseBranch := hir.NoExpr
	switch {
	case v.ElseBlock != nil:
		elseBranch = l.lowerBlock(v.ElseBlock)
	case v.ElseIf != nil:
		elseBranch = l.lowerExpr(v.ElseIf)
	}

	cond := hir.NoExpr
	switch {
	case v.Cond == nil:
		cond = l.missingExpr()
	case v.Cond.Pat != nil:
		// if let -- desugar to match
		pat := l.lowerPat(v.Cond.Pat)
		scrutinee := l.lowerExprOpt(v.Cond.Value)
		catchAll := l.allocPatDesugared(&hir.WildPat{})

		if !elseBranch.IsValid() {
			elseBranch = l.emptyBlock()
		}

		arms := []hir.MatchArm{
			{Pat: pat, Value: thenBranch},
			{Pat: catchAll, Value: elseBranch},
		}
		return l.allocExpr(&hir.MatchExpr{Scrutinee: scrutinee, Arms: arms}, v)
	default:
		cond = l.lowerExprOpt(v.Cond.Value)
	}

	return l.allocExpr(&hir.IfExpr{Cond: cond, Then: thenBranch, Else: elseBranch}, v)
}

// lowerWhile lowers a conditional loop.  A pattern condition desugars to an
// unconditional loop over a match whose success arm re-enters the loop body
// and whose sourceless catch-all arm breaks.
func (l *Lowerer) lowerWhile(v *ast.WhileExpr) hir.ExprID {
	body := l.lowerBlockOpt(v.Body)

	cond := hir.NoExpr
	switch {
	case v.Cond == nil:
		cond = l.missingExpr()
	case v.Cond.Pat != nil:
		// while let -- desugar to loop + match
		pat := l.lowerPat(v.Cond.Pat)
		scrutinee := l.lowerExprOpt(v.Cond.Value)
		catchAll := l.allocPatDesugared(&hir.WildPat{})
		breakExpr := l.allocExprDesugared(&hir.BreakExpr{})

		arms := []hir.MatchArm{
			{Pat: pat, Value: body},
			{Pat: catchAll, Value: breakExpr},
		}
		match := l.allocExprDesugared(&hir.MatchExpr{Scrutinee: scrutinee, Arms: arms})
		return l.allocExpr(&hir.LoopExpr{Body: match}, v)
	default:
		cond = l.lowerExprOpt(v.Cond.Value)
	}

	return l.allocExpr(&hir.WhileExpr{Cond: cond, Body: body}, v)
}

// lowerRecordLit lowers a record literal.  Fields disabled by the crate's
// build configuration are dropped entirely, including from the source map; a
// field with a name but no value desugars to a path expression through the
// field-shorthand provenance.
func (l *Lowerer) lowerRecordLit(v *ast.RecordLit) hir.ExprID {
	cfg := l.db.CfgOptions(l.exp.Crate())

	var path depm.Path
	if v.Path != nil {
		path, _ = l.exp.ParsePath(v.Path)
	}

	var fields []hir.RecordLitField
	var fieldNodes []*ast.RecordField
	spread := hir.NoExpr

	if fl := v.FieldList; fl != nil {
		for _, field := range fl.Fields {
			if !cfgEnabled(cfg, field.Attrs) {
				continue
			}

			name := ""
			if field.Name != nil {
				name = field.Name.Name
			}

			var value hir.ExprID
			switch {
			case field.Value != nil:
				value = l.lowerExpr(field.Value)
			case field.Name != nil:
				// field shorthand
				value = l.allocExprFieldShorthand(
					&hir.PathExpr{Path: depm.PathFromName(field.Name.Name)},
					field,
				)
			default:
				value = l.missingExpr()
			}

			fields = append(fields, hir.RecordLitField{Name: name, Value: value})
			fieldNodes = append(fieldNodes, field)
		}

		if fl.Spread != nil {
			spread = l.lowerExpr(fl.Spread)
		}
	}

	id := l.allocExpr(&hir.RecordLitExpr{Path: path, Fields: fields, Spread: spread}, v)
	for i, field := range fieldNodes {
		l.srcMap.RecordField(id, i, l.exp.ToSource(field))
	}

	return id
}

// lowerArgList lowers a call argument list; a missing list lowers to no
// arguments.
func (l *Lowerer) lowerArgList(args *ast.ArgList) []hir.ExprID {
	if args == nil {
		return nil
	}

	lowered := make([]hir.ExprID, len(args.Args))
	for i, arg := range args.Args {
		lowered[i] = l.lowerExpr(arg)
	}

	return lowered
}

// cfgEnabled reports whether all cfg attributes in the list hold under the
// active build configuration.  Non-cfg attributes are ignored.
func cfgEnabled(cfg *depm.CfgOptions, attrs []*ast.Attr) bool {
	for _, attr := range attrs {
		if attr.Name != "cfg" {
			continue
		}

		if !cfg.Check(attr.Flag, attr.Value, attr.HasValue) {
			return false
		}
	}

	return true
}

// lowerLiteral converts a literal token to its node.  The token text is kept
// verbatim; decoding waits for type inference.
func lowerLiteral(lit *ast.Literal) *hir.LiteralExpr {
	return &hir.LiteralExpr{
		Kind:   litKindFromAST(lit.Kind),
		Value:  lit.Value,
		Suffix: lit.Suffix,
	}
}

func litKindFromAST(kind ast.LitKind) hir.LitKind {
	switch kind {
	case ast.LitFloat:
		return hir.LitFloat
	case ast.LitString:
		return hir.LitString
	case ast.LitByteString:
		return hir.LitByteString
	case ast.LitByte:
		return hir.LitByte
	case ast.LitChar:
		return hir.LitChar
	case ast.LitBool:
		return hir.LitBool
	default:
		return hir.LitInt
	}
}

func unaryOpFromAST(op ast.UnaryOpKind) (hir.UnaryOpKind, bool) {
	switch op {
	case ast.UopNeg:
		return hir.UnNeg, true
	case ast.UopNot:
		return hir.UnNot, true
	case ast.UopDeref:
		return hir.UnDeref, true
	default:
		return 0, false
	}
}

func rangeOpFromAST(op ast.RangeOpKind) (hir.RangeOpKind, bool) {
	switch op {
	case ast.RopExclusive:
		return hir.RangeExclusive, true
	case ast.RopInclusive:
		return hir.RangeInclusive, true
	default:
		return 0, false
	}
}

// binaryOpTable maps syntax operator kinds to their lowered kinds.  Operators
// missing from the table lower to BinInvalid, preserving the operands.
var binaryOpTable = map[ast.BinaryOpKind]hir.BinaryOpKind{
	ast.BopAdd:          hir.BinAdd,
	ast.BopSub:          hir.BinSub,
	ast.BopMul:          hir.BinMul,
	ast.BopDiv:          hir.BinDiv,
	ast.BopRem:          hir.BinRem,
	ast.BopShl:          hir.BinShl,
	ast.BopShr:          hir.BinShr,
	ast.BopBitAnd:       hir.BinBitAnd,
	ast.BopBitOr:        hir.BinBitOr,
	ast.BopBitXor:       hir.BinBitXor,
	ast.BopAnd:          hir.BinAnd,
	ast.BopOr:           hir.BinOr,
	ast.BopEq:           hir.BinEq,
	ast.BopNotEq:        hir.BinNotEq,
	ast.BopLt:           hir.BinLt,
	ast.BopLtEq:         hir.BinLtEq,
	ast.BopGt:           hir.BinGt,
	ast.BopGtEq:         hir.BinGtEq,
	ast.BopAssign:       hir.BinAssign,
	ast.BopAddAssign:    hir.BinAddAssign,
	ast.BopSubAssign:    hir.BinSubAssign,
	ast.BopMulAssign:    hir.BinMulAssign,
	ast.BopDivAssign:    hir.BinDivAssign,
	ast.BopRemAssign:    hir.BinRemAssign,
	ast.BopShlAssign:    hir.BinShlAssign,
	ast.BopShrAssign:    hir.BinShrAssign,
	ast.BopBitAndAssign: hir.BinBitAndAssign,
	ast.BopBitOrAssign:  hir.BinBitOrAssign,
	ast.BopBitXorAssign: hir.BinBitXorAssign,
}

func binaryOpFromAST(op ast.BinaryOpKind) hir.BinaryOpKind {
	return binaryOpTable[op]
}
