package ast

// Stmt represents a statement node inside a block.
type Stmt interface {
	Node

	stmtNode()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	NodeBase
}

func (sb *StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// LetStmt is a binding statement, eg. `let x: T = e;`.  Type and Init are
// optional.
type LetStmt struct {
	StmtBase

	Pat  Pat
	Type Type
	Init Expr
}

// ExprStmt is an expression evaluated in statement position.
type ExprStmt struct {
	StmtBase

	Value Expr
}

// ItemStmt is an item declaration in statement position.  Items declared
// inside a block are gathered by item scope collection before the block's
// statements are lowered.
type ItemStmt struct {
	StmtBase

	Item Item
}
