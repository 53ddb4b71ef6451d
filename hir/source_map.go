package hir

import (
	"sable/ast"
	"sable/depm"
	"sable/report"
)

// Source is the provenance of a lowered node: the file it was lowered from
// and the syntax node it came from.  Syntax nodes are compared by pointer
// identity, which is stable for the lifetime of the tree.  The zero Source is
// the synthetic marker used for desugared and placeholder nodes.
type Source struct {
	File depm.FileID
	Node ast.Node
}

// IsSynthetic returns whether the source is the synthetic marker.
func (s Source) IsSynthetic() bool {
	return s.Node == nil
}

// FieldKey addresses one record-literal field by owning expression and field
// ordinal.
type FieldKey struct {
	Expr    ExprID
	Ordinal int
}

// SourceMap is the bidirectional index between one Body's arena ids and
// source provenance.  The backward maps are total: every allocated id has
// exactly one backward entry, either a real source or the synthetic marker.
// The forward maps may alias several sources onto one id (parenthesization)
// and carry no entries for synthetic nodes.
type SourceMap struct {
	exprFwd  map[Source]ExprID
	exprBack map[ExprID]Source

	patFwd  map[Source]PatID
	patBack map[PatID]Source

	// fields records the provenance of each record-literal field entry.
	fields map[FieldKey]Source

	// expansions records, for each lowered macro call, the file identity its
	// expansion was lowered from.
	expansions map[Source]depm.FileID
}

// NewSourceMap creates a new empty source map.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		exprFwd:    make(map[Source]ExprID),
		exprBack:   make(map[ExprID]Source),
		patFwd:     make(map[Source]PatID),
		patBack:    make(map[PatID]Source),
		fields:     make(map[FieldKey]Source),
		expansions: make(map[Source]depm.FileID),
	}
}

// -----------------------------------------------------------------------------
// Lookup.

// ExprForSource returns the expression lowered from the given source.
func (sm *SourceMap) ExprForSource(src Source) (ExprID, bool) {
	id, ok := sm.exprFwd[src]
	return id, ok
}

// ExprSource returns the real source of an expression.  The second result is
// false for synthetic nodes.
func (sm *SourceMap) ExprSource(id ExprID) (Source, bool) {
	src, ok := sm.exprBack[id]
	if !ok || src.IsSynthetic() {
		return Source{}, false
	}

	return src, true
}

// ExprMapped returns whether the expression has a backward entry at all,
// synthetic or real.  Every allocated id must.
func (sm *SourceMap) ExprMapped(id ExprID) bool {
	_, ok := sm.exprBack[id]
	return ok
}

// IsSyntheticExpr returns whether the expression was synthesized during
// desugaring rather than lowered from source.
func (sm *SourceMap) IsSyntheticExpr(id ExprID) bool {
	src, ok := sm.exprBack[id]
	return ok && src.IsSynthetic()
}

// PatForSource returns the pattern lowered from the given source.
func (sm *SourceMap) PatForSource(src Source) (PatID, bool) {
	id, ok := sm.patFwd[src]
	return id, ok
}

// PatSource returns the real source of a pattern.  The second result is false
// for synthetic nodes.
func (sm *SourceMap) PatSource(id PatID) (Source, bool) {
	src, ok := sm.patBack[id]
	if !ok || src.IsSynthetic() {
		return Source{}, false
	}

	return src, true
}

// PatMapped returns whether the pattern has a backward entry at all.
func (sm *SourceMap) PatMapped(id PatID) bool {
	_, ok := sm.patBack[id]
	return ok
}

// IsSyntheticPat returns whether the pattern was synthesized during
// desugaring rather than lowered from source.
func (sm *SourceMap) IsSyntheticPat(id PatID) bool {
	src, ok := sm.patBack[id]
	return ok && src.IsSynthetic()
}

// FieldSource returns the provenance of the sourced record-literal field with
// the given ordinal.
func (sm *SourceMap) FieldSource(id ExprID, ordinal int) (Source, bool) {
	src, ok := sm.fields[FieldKey{Expr: id, Ordinal: ordinal}]
	return src, ok
}

// Expansion returns the file identity a macro call's expansion was lowered
// from.
func (sm *SourceMap) Expansion(call Source) (depm.FileID, bool) {
	file, ok := sm.expansions[call]
	return file, ok
}

// -----------------------------------------------------------------------------
// Recording.  These methods are called during lowering only; the map is
// read-only once its Body is complete.

// RecordExpr adds a forward entry for an expression.  Later writes win: a
// parenthesized expression records the outer span onto the inner node's id.
func (sm *SourceMap) RecordExpr(src Source, id ExprID) {
	sm.exprFwd[src] = id
}

// RecordExprBack adds the backward entry for an expression.  Each id gets
// exactly one; a second write is a lowering bug.
func (sm *SourceMap) RecordExprBack(id ExprID, src Source) {
	if _, ok := sm.exprBack[id]; ok {
		report.ICE("duplicate backward source entry for expression id %d", id)
	}

	sm.exprBack[id] = src
}

// RecordPat adds a forward entry for a pattern.
func (sm *SourceMap) RecordPat(src Source, id PatID) {
	sm.patFwd[src] = id
}

// RecordPatBack adds the backward entry for a pattern.  Each id gets exactly
// one; a second write is a lowering bug.
func (sm *SourceMap) RecordPatBack(id PatID, src Source) {
	if _, ok := sm.patBack[id]; ok {
		report.ICE("duplicate backward source entry for pattern id %d", id)
	}

	sm.patBack[id] = src
}

// RecordField adds the provenance of a record-literal field.
func (sm *SourceMap) RecordField(id ExprID, ordinal int, src Source) {
	sm.fields[FieldKey{Expr: id, Ordinal: ordinal}] = src
}

// RecordExpansion records the file identity a macro call expanded into.
func (sm *SourceMap) RecordExpansion(call Source, file depm.FileID) {
	sm.expansions[call] = file
}
