package ast

// Item represents an item declaration: a definition that introduces a name
// into its enclosing scope rather than computing a value.
type Item interface {
	Node

	itemNode()
}

// ItemBase is the base struct for all item declarations.
type ItemBase struct {
	NodeBase

	// The declared visibility.  Item scope collection currently ignores this;
	// see the known gap documented in lower.
	Public bool
}

func (ib *ItemBase) itemNode() {}

// -----------------------------------------------------------------------------

// FuncItem is a function definition.  The signature and body are opaque to
// block item collection, which only records the declared name.
type FuncItem struct {
	ItemBase

	Name   *NameRef
	Params *ParamList
	Body   *BlockExpr
}

// TypeAliasItem is a type alias definition.
type TypeAliasItem struct {
	ItemBase

	Name *NameRef
	Type Type
}

// ConstItem is a constant definition.
type ConstItem struct {
	ItemBase

	Name *NameRef
	Type Type
	Init Expr
}

// StaticItem is a static definition.
type StaticItem struct {
	ItemBase

	Name *NameRef
	Type Type
	Init Expr
}

// StructItem is a structure definition.
type StructItem struct {
	ItemBase

	Name *NameRef
}

// EnumItem is an enumeration definition.
type EnumItem struct {
	ItemBase

	Name *NameRef
}

// UnionItem is an untagged union definition.
type UnionItem struct {
	ItemBase

	Name *NameRef
}

// TraitItem is a trait definition.
type TraitItem struct {
	ItemBase

	Name *NameRef
}

// -----------------------------------------------------------------------------
// Item forms skipped by block item collection: these are resolved at module
// level, never from inside a body.

// ExternBlock is a block of foreign declarations.
type ExternBlock struct {
	ItemBase

	Items []Item
}

// ImplItem is a trait or inherent implementation.
type ImplItem struct {
	ItemBase

	Type Type
}

// UseItem is an import declaration.
type UseItem struct {
	ItemBase

	Path *Path
}

// ModuleItem is a nested module declaration.
type ModuleItem struct {
	ItemBase

	Name  *NameRef
	Items []Item
}
