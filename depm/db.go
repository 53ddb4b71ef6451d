package depm

// Enumeration of shadowing modes for path resolution.  Lookup of a bare name
// in pattern position uses ShadowOther so that locally shadowed prelude names
// resolve to their shadowing definition.
type ShadowMode int

const (
	ShadowModule = ShadowMode(iota)
	ShadowOther
)

// Resolution is the result of resolving a path in the value namespace.
type Resolution struct {
	Kind DefKind
	Def  DefID
}

// DefDatabase is the module/crate definition database consumed by lowering.
// Implementations must be safe for concurrent readers; lowering only ever
// reads through this interface except for Intern and DefineDescendant, which
// are additive.
type DefDatabase interface {
	// ResolveValuePath resolves a path in the value namespace of the given
	// module.  The second result is false if nothing resolved.
	ResolveValuePath(module ModuleID, path Path, shadow ShadowMode) (Resolution, bool)

	// StructShape returns the shape of a structure definition.
	StructShape(def DefID) StructShape

	// CfgOptions returns the active build configuration of a crate.
	CfgOptions(crate CrateID) *CfgOptions

	// Intern interns an item location descriptor, returning its stable
	// definition ID.  Interning the same location twice yields the same ID.
	Intern(loc ItemLoc) DefID

	// DefineDescendant registers a definition declared inside a body into the
	// module's shared tables so forward and sibling references resolve.
	DefineDescendant(module ModuleID, name string, res Resolution)
}

// -----------------------------------------------------------------------------

// DefTable is the in-memory implementation of DefDatabase.  Front ends embed
// one per workspace; tests populate one directly.
type DefTable struct {
	// interned maps item locations to their definition IDs; locs is the
	// reverse index.  IDs are assigned densely starting at 1.
	interned map[ItemLoc]DefID
	locs     []ItemLoc

	// values is the per-module value namespace.
	values map[ModuleID]map[string]Resolution

	// shapes records the shape of each structure definition.
	shapes map[DefID]StructShape

	// crates maps crates to their build configurations.
	crates map[CrateID]*CfgOptions
}

// NewDefTable creates a new empty definition table.
func NewDefTable() *DefTable {
	return &DefTable{
		interned: make(map[ItemLoc]DefID),
		values:   make(map[ModuleID]map[string]Resolution),
		shapes:   make(map[DefID]StructShape),
		crates:   make(map[CrateID]*CfgOptions),
	}
}

func (dt *DefTable) ResolveValuePath(module ModuleID, path Path, shadow ShadowMode) (Resolution, bool) {
	// Only single-segment paths resolve within one module's own namespace;
	// qualified paths require full name resolution, which is out of scope for
	// the lowering query.
	if !path.IsSingle() {
		return Resolution{}, false
	}

	res, ok := dt.values[module][path.Segments[0]]
	return res, ok
}

func (dt *DefTable) StructShape(def DefID) StructShape {
	return dt.shapes[def]
}

func (dt *DefTable) CfgOptions(crate CrateID) *CfgOptions {
	if opts, ok := dt.crates[crate]; ok {
		return opts
	}

	return NewCfgOptions()
}

func (dt *DefTable) Intern(loc ItemLoc) DefID {
	if id, ok := dt.interned[loc]; ok {
		return id
	}

	dt.locs = append(dt.locs, loc)
	id := DefID(len(dt.locs))
	dt.interned[loc] = id
	return id
}

func (dt *DefTable) DefineDescendant(module ModuleID, name string, res Resolution) {
	dt.defineValue(module, name, res)
}

// Loc returns the interned location descriptor of a definition.
func (dt *DefTable) Loc(id DefID) (ItemLoc, bool) {
	if !id.IsValid() || int(id) > len(dt.locs) {
		return ItemLoc{}, false
	}

	return dt.locs[id-1], true
}

// -----------------------------------------------------------------------------
// Population methods used by embedding front ends and tests.

// DefineValue registers a definition in a module's value namespace.
func (dt *DefTable) DefineValue(module ModuleID, name string, res Resolution) {
	dt.defineValue(module, name, res)
}

// SetStructShape records the shape of a structure definition.
func (dt *DefTable) SetStructShape(def DefID, shape StructShape) {
	dt.shapes[def] = shape
}

// SetCfgOptions installs a crate's build configuration.
func (dt *DefTable) SetCfgOptions(crate CrateID, opts *CfgOptions) {
	dt.crates[crate] = opts
}

func (dt *DefTable) defineValue(module ModuleID, name string, res Resolution) {
	ns, ok := dt.values[module]
	if !ok {
		ns = make(map[string]Resolution)
		dt.values[module] = ns
	}

	ns[name] = res
}
