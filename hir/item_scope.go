package hir

import "sable/depm"

// ScopeEntry is a named item definition visible inside a body, together with
// its recorded visibility.
type ScopeEntry struct {
	Def depm.DefID
	Vis depm.Visibility
}

// ItemScope is the per-body table of item definitions declared inside the
// body's blocks, plus the legacy macros defined by macro-definition
// invocations.  It is populated additively during lowering and never mutated
// afterwards.  The zero value is ready to use.
type ItemScope struct {
	values       map[string]ScopeEntry
	legacyMacros map[string]depm.MacroDef
	defs         []depm.DefID
}

// RecordDef registers an item definition declared in the scope, named or not.
func (s *ItemScope) RecordDef(def depm.DefID) {
	s.defs = append(s.defs, def)
}

// Declare registers a named item definition.  The definition itself must also
// be recorded with RecordDef.
func (s *ItemScope) Declare(name string, def depm.DefID, vis depm.Visibility) {
	if s.values == nil {
		s.values = make(map[string]ScopeEntry)
	}

	s.values[name] = ScopeEntry{Def: def, Vis: vis}
}

// DefineLegacyMacro registers a legacy macro definition under its name.
func (s *ItemScope) DefineLegacyMacro(name string, def depm.MacroDef) {
	if s.legacyMacros == nil {
		s.legacyMacros = make(map[string]depm.MacroDef)
	}

	s.legacyMacros[name] = def
}

// Entry looks up a named item definition.
func (s *ItemScope) Entry(name string) (ScopeEntry, bool) {
	entry, ok := s.values[name]
	return entry, ok
}

// LegacyMacro looks up a legacy macro by name.
func (s *ItemScope) LegacyMacro(name string) (depm.MacroDef, bool) {
	def, ok := s.legacyMacros[name]
	return def, ok
}

// Defs returns the definitions declared in the scope, in declaration order.
func (s *ItemScope) Defs() []depm.DefID {
	return s.defs
}

// Len returns the number of named entries in the scope.
func (s *ItemScope) Len() int {
	return len(s.values)
}
