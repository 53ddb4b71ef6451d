package depm

// CrateID identifies a crate within the crate graph.
type CrateID uint32

// ModuleID identifies a module within the definition database.
type ModuleID uint32

// FileID identifies a source file, real or macro-expansion-produced.
type FileID uint32

// AstID is a stable, position-independent identity for a syntax node within
// its file, assigned by the expander.
type AstID uint32

// DefID identifies an interned item definition.
type DefID uint32

// Invalid ID constants (zero is sentinel).
const (
	NoCrate  CrateID  = 0
	NoModule ModuleID = 0
	NoFile   FileID   = 0
	NoDef    DefID    = 0
)

// IsValid returns true if the ID is valid (non-zero).
func (id CrateID) IsValid() bool  { return id != NoCrate }
func (id ModuleID) IsValid() bool { return id != NoModule }
func (id FileID) IsValid() bool   { return id != NoFile }
func (id DefID) IsValid() bool    { return id != NoDef }
