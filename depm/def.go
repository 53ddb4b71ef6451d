package depm

// Enumeration of definition kinds recognized by the definition database.
type DefKind int

const (
	DefFunc = DefKind(iota)
	DefTypeAlias
	DefConst
	DefStatic
	DefStruct
	DefEnum
	DefVariant
	DefUnion
	DefTrait
)

// Enumeration of structure shapes.  The shape decides whether a bare name in
// pattern position may reference the structure: unit and tuple structures can
// be named by patterns, record structures cannot.
type StructShape int

const (
	ShapeUnit = StructShape(iota)
	ShapeTuple
	ShapeRecord
)

// Visibility is the declared visibility of a definition.
type Visibility int

const (
	VisPrivate = Visibility(iota)
	VisPublic
)

// ItemLoc is the location descriptor of an item definition: the kind of item,
// the definition it is declared inside of (NoDef for module-level items), and
// the stable syntax identity of its declaration.  Interning an ItemLoc yields
// the same DefID for the same location every time.
type ItemLoc struct {
	Kind      DefKind
	Container DefID
	AstID     AstID
}

// MacroDef identifies a legacy (textual) macro definition.
type MacroDef struct {
	Crate CrateID
	AstID AstID
}
