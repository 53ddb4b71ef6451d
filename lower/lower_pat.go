package lower

import (
	"sable/ast"
	"sable/depm"
	"sable/hir"
)

// lowerPat lowers a pattern and returns the id of the node it produced.
func (l *Lowerer) lowerPat(pat ast.Pat) hir.PatID {
	var pattern hir.Pat
	switch v := pat.(type) {
	case *ast.BindPat:
		pattern = l.lowerBindPat(v)
	case *ast.TupleStructPat:
		var path depm.Path
		if v.Path != nil {
			path, _ = l.exp.ParsePath(v.Path)
		}

		args := make([]hir.PatID, len(v.Args))
		for i, arg := range v.Args {
			args[i] = l.lowerPat(arg)
		}

		pattern = &hir.TupleStructPat{Path: path, Args: args}
	case *ast.RefPat:
		pattern = &hir.RefPat{Mut: v.Mut, Inner: l.lowerPatOpt(v.Inner)}
	case *ast.PathPat:
		pattern = hir.Pat(&hir.MissingPat{})
		if v.Path != nil {
			if path, ok := l.exp.ParsePath(v.Path); ok {
				pattern = &hir.PathPat{Path: path}
			}
		}
	case *ast.OrPat:
		pats := make([]hir.PatID, len(v.Pats))
		for i, alt := range v.Pats {
			pats[i] = l.lowerPat(alt)
		}

		pattern = &hir.OrPat{Pats: pats}
	case *ast.ParenPat:
		// Parenthesized patterns allocate nothing and, unlike parenthesized
		// expressions, add no alias entry.
		return l.lowerPatOpt(v.Inner)
	case *ast.TuplePat:
		args := make([]hir.PatID, len(v.Args))
		for i, arg := range v.Args {
			args[i] = l.lowerPat(arg)
		}

		pattern = &hir.TuplePat{Args: args}
	case *ast.WildPat, *ast.RestPat:
		pattern = &hir.WildPat{}
	case *ast.RecordPat:
		pattern = l.lowerRecordPat(v)
	case *ast.SlicePat:
		prefix := make([]hir.PatID, len(v.Prefix))
		for i, pre := range v.Prefix {
			prefix[i] = l.lowerPat(pre)
		}

		rest := hir.NoPat
		if v.Rest != nil {
			rest = l.lowerPat(v.Rest)
		}

		suffix := make([]hir.PatID, len(v.Suffix))
		for i, suf := range v.Suffix {
			suffix[i] = l.lowerPat(suf)
		}

		pattern = &hir.SlicePat{Prefix: prefix, Rest: rest, Suffix: suffix}
	case *ast.LiteralPat:
		// Literal patterns carry an expression payload: the literal is a real
		// expression node with its own source entry.
		if v.Lit != nil {
			exprID := l.allocExpr(lowerLiteral(v.Lit), v.Lit)
			pattern = &hir.LitPat{Expr: exprID}
		} else {
			pattern = &hir.MissingPat{}
		}
	default:
		// box, range, and macro patterns are not lowered yet
		pattern = &hir.MissingPat{}
	}

	return l.allocPat(pattern, pat)
}

// lowerBindPat lowers a name in pattern position.  A plain, unannotated name
// with no sub-pattern could equally be a single-segment path referencing an
// existing item; resolving the name decides.
func (l *Lowerer) lowerBindPat(v *ast.BindPat) hir.Pat {
	name := ""
	if v.Name != nil {
		name = v.Name.Name
	}

	mode := hir.NewBindingMode(v.Mut, v.Ref)

	sub := hir.NoPat
	if v.Sub != nil {
		sub = l.lowerPat(v.Sub)
	}

	// Annotated names and names with sub-patterns are always fresh bindings;
	// the annotations would be invalid on an item reference.
	if mode != hir.BindValue || sub.IsValid() {
		return &hir.BindPat{Name: name, Mode: mode, Sub: sub}
	}

	res, ok := l.db.ResolveValuePath(l.exp.Module(), depm.PathFromName(name), depm.ShadowOther)
	if !ok {
		return &hir.BindPat{Name: name, Mode: mode, Sub: sub}
	}

	switch res.Kind {
	case depm.DefConst:
		return &hir.PathPat{Path: depm.PathFromName(name)}
	case depm.DefVariant:
		// This is only really valid for unit variants, but shadowing other
		// enum variants with a pattern is an error anyway.
		return &hir.PathPat{Path: depm.PathFromName(name)}
	case depm.DefStruct:
		// Record structs *can* be shadowed by pattern bindings; unit and
		// tuple structs can't.
		if l.db.StructShape(res.Def) != depm.ShapeRecord {
			return &hir.PathPat{Path: depm.PathFromName(name)}
		}

		return &hir.BindPat{Name: name, Mode: mode, Sub: sub}
	default:
		// Shadowing a static is an error too, but that is a later stage's
		// diagnostic: here it stays a binding.
		return &hir.BindPat{Name: name, Mode: mode, Sub: sub}
	}
}

// lowerRecordPat lowers a record pattern: shorthand field bindings first,
// then the explicit `name: pat` entries.
func (l *Lowerer) lowerRecordPat(v *ast.RecordPat) hir.Pat {
	if v.FieldList == nil {
		return &hir.MissingPat{}
	}

	var path depm.Path
	if v.Path != nil {
		path, _ = l.exp.ParsePath(v.Path)
	}

	var fields []hir.RecordPatField
	for _, bind := range v.FieldList.Binds {
		if bind.Name == nil {
			continue
		}

		fields = append(fields, hir.RecordPatField{
			Name: bind.Name.Name,
			Pat:  l.lowerPat(bind),
		})
	}
	for _, field := range v.FieldList.Fields {
		if field.Name == nil || field.Pat == nil {
			continue
		}

		fields = append(fields, hir.RecordPatField{
			Name: field.Name.Name,
			Pat:  l.lowerPat(field.Pat),
		})
	}

	return &hir.RecordPat{Path: path, Fields: fields}
}
