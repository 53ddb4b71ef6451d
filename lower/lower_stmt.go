package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// lowerBlock lowers a block expression: item scope collection first, then the
// statements in source order, then the optional tail.
func (l *Lowerer) lowerBlock(block *ast.BlockExpr) hir.ExprID {
	l.collectBlockItems(block)

	var stmts []hir.Stmt
	for _, stmt := range block.Stmts {
		switch v := stmt.(type) {
		case *ast.LetStmt:
			init := hir.NoExpr
			if v.Init != nil {
				init = l.lowerExpr(v.Init)
			}

			stmts = append(stmts, &hir.LetStmt{
				Pat:  l.lowerPatOpt(v.Pat),
				Type: hir.OptTypeRefFromAST(v.Type),
				Init: init,
			})
		case *ast.ExprStmt:
			stmts = append(stmts, &hir.ExprStmt{Value: l.lowerExprOpt(v.Value)})
		case *ast.ItemStmt:
			// handled by collectBlockItems
		}
	}

	tail := hir.NoExpr
	if block.Tail != nil {
		tail = l.lowerExpr(block.Tail)
	}

	return l.allocExpr(&hir.BlockExpr{Stmts: stmts, Tail: tail}, block)
}

// collectBlockItems gathers the items declared directly inside a block into
// the body's item scope, and registers them with the definition database so
// forward and sibling references resolve.  Extern blocks, impls, imports,
// nested modules, and macro invocations at item position are left to
// module-level resolution.
func (l *Lowerer) collectBlockItems(block *ast.BlockExpr) {
	for _, stmt := range block.Stmts {
		itemStmt, ok := stmt.(*ast.ItemStmt)
		if !ok {
			continue
		}

		var kind depm.DefKind
		var name *ast.NameRef
		switch item := itemStmt.Item.(type) {
		case *ast.FuncItem:
			kind, name = depm.DefFunc, item.Name
		case *ast.TypeAliasItem:
			kind, name = depm.DefTypeAlias, item.Name
		case *ast.ConstItem:
			kind, name = depm.DefConst, item.Name
		case *ast.StaticItem:
			kind, name = depm.DefStatic, item.Name
		case *ast.StructItem:
			kind, name = depm.DefStruct, item.Name
		case *ast.EnumItem:
			kind, name = depm.DefEnum, item.Name
		case *ast.UnionItem:
			kind, name = depm.DefUnion, item.Name
		case *ast.TraitItem:
			kind, name = depm.DefTrait, item.Name
		default:
			continue
		}

		loc := depm.ItemLoc{
			Kind:      kind,
			Container: l.def,
			AstID:     l.exp.ASTID(itemStmt.Item),
		}
		def := l.db.Intern(loc)

		l.body.ItemScope.RecordDef(def)
		if name != nil {
			// TODO: record the declared visibility; downstream visibility
			// checks currently see every block-local item as public.
			l.body.ItemScope.Declare(name.Name, def, depm.VisPublic)
			l.db.DefineDescendant(l.exp.Module(), name.Name, depm.Resolution{Kind: kind, Def: def})
		}
	}
}
