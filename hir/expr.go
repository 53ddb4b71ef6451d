package hir

import "sable/depm"

// Expr represents a lowered expression node.  The variant set is closed: all
// expression nodes are declared in this file and consumers dispatch with an
// exhaustive type switch.
type Expr interface {
	exprNode()
}

// -----------------------------------------------------------------------------

// MissingExpr is the placeholder standing in for absent, malformed, or
// unsupported input.  Lowering is total: it allocates a fresh MissingExpr
// wherever it cannot produce a real node, and continues.
type MissingExpr struct{}

// PathExpr is a reference to a named item or local.
type PathExpr struct {
	Path depm.Path
}

// Enumeration of literal kinds.
type LitKind int

const (
	LitInt = LitKind(iota)
	LitFloat
	LitString
	LitByteString
	LitByte
	LitChar
	LitBool
)

// LiteralExpr is a literal value.  The raw token text is preserved; numeric
// decoding is deferred to type inference, which knows the expected type.
type LiteralExpr struct {
	Kind   LitKind
	Value  string
	Suffix string
}

// -----------------------------------------------------------------------------

// IfExpr is a boolean conditional.  Else is NoExpr when there is no else
// branch.  Pattern conditionals (`if let`) never lower to IfExpr; they are
// desugared to MatchExpr.
type IfExpr struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// Stmt represents a lowered statement inside a block.
type Stmt interface {
	stmtNode()
}

// LetStmt is a binding statement.  Type is nil when no type was ascribed;
// Init is NoExpr when there is no initializer.  A `let` with no initializer
// still lowers to a LetStmt, not to a placeholder.
type LetStmt struct {
	Pat  PatID
	Type *TypeRef
	Init ExprID
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Value ExprID
}

func (*LetStmt) stmtNode()  {}
func (*ExprStmt) stmtNode() {}

// BlockExpr is an ordered sequence of statements with an optional tail
// expression giving the block's value.
type BlockExpr struct {
	Stmts []Stmt
	Tail  ExprID
}

// LoopExpr is an unconditional loop.
type LoopExpr struct {
	Body ExprID
}

// WhileExpr is a boolean conditional loop.  Pattern loops (`while let`) never
// lower to WhileExpr; they are desugared to a LoopExpr over a MatchExpr.
type WhileExpr struct {
	Cond ExprID
	Body ExprID
}

// ForExpr is an iterator loop.
type ForExpr struct {
	Iterable ExprID
	Pat      PatID
	Body     ExprID
}

// -----------------------------------------------------------------------------

// CallExpr is a function call.
type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

// MethodCallExpr is a method call.  Name is "" when the method name token is
// missing.
type MethodCallExpr struct {
	Recv        ExprID
	Name        string
	Args        []ExprID
	GenericArgs []TypeRef
}

// MatchArm is one arm of a match: a pattern, an optional guard (NoExpr when
// absent), and the arm's result expression.
type MatchArm struct {
	Pat   PatID
	Guard ExprID
	Value ExprID
}

// MatchExpr matches a scrutinee against a sequence of arms.
type MatchExpr struct {
	Scrutinee ExprID
	Arms      []MatchArm
}

// -----------------------------------------------------------------------------

// ContinueExpr continues the enclosing loop.
type ContinueExpr struct{}

// BreakExpr breaks the enclosing loop; Value is NoExpr for a bare `break`.
type BreakExpr struct {
	Value ExprID
}

// ReturnExpr returns from the enclosing body; Value is NoExpr for a bare
// `return`.
type ReturnExpr struct {
	Value ExprID
}

// -----------------------------------------------------------------------------

// RecordLitField is a single lowered field initializer of a record literal.
type RecordLitField struct {
	Name  string
	Value ExprID
}

// RecordLitExpr is a record literal.  Path is empty when the literal's path
// failed to parse; Spread is NoExpr when there is no `..base` entry.  Fields
// disabled by the crate's build configuration are absent entirely.
type RecordLitExpr struct {
	Path   depm.Path
	Fields []RecordLitField
	Spread ExprID
}

// FieldExpr is a field access.  Name is "" when the field name token is
// missing.
type FieldExpr struct {
	Recv ExprID
	Name string
}

// IndexExpr is an index access.
type IndexExpr struct {
	Base  ExprID
	Index ExprID
}

// -----------------------------------------------------------------------------

// Enumeration of unary operator kinds.
type UnaryOpKind int

const (
	UnNeg = UnaryOpKind(iota)
	UnNot
	UnDeref
)

// UnaryExpr is a unary operator application.  A prefix expression whose
// operator token is missing lowers to MissingExpr, so Op is always valid.
type UnaryExpr struct {
	Op      UnaryOpKind
	Operand ExprID
}

// Enumeration of binary operator kinds.  BinInvalid records an expression
// whose operator token is missing or unrecognized; the operand ids are still
// lowered.
type BinaryOpKind int

const (
	BinInvalid = BinaryOpKind(iota)
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinRem
	BinShl
	BinShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinAnd
	BinOr
	BinEq
	BinNotEq
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinRemAssign
	BinShlAssign
	BinShrAssign
	BinBitAndAssign
	BinBitOrAssign
	BinBitXorAssign
)

// IsAssignment returns whether the operator assigns to its left operand.
func (op BinaryOpKind) IsAssignment() bool {
	return BinAssign <= op && op <= BinBitXorAssign
}

// IsComparison returns whether the operator is a comparison.
func (op BinaryOpKind) IsComparison() bool {
	return BinEq <= op && op <= BinGtEq
}

// IsLazy returns whether the operator short-circuits its right operand.
func (op BinaryOpKind) IsLazy() bool {
	return op == BinAnd || op == BinOr
}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Op  BinaryOpKind
	Lhs ExprID
	Rhs ExprID
}

// -----------------------------------------------------------------------------

// TupleExpr constructs an n-tuple.
type TupleExpr struct {
	Elems []ExprID
}

// ArrayExpr constructs an array, either from an element list or from an
// `[init; count]` repeat form.
type ArrayExpr struct {
	IsRepeat bool

	Elems []ExprID

	Initializer ExprID
	Count       ExprID
}

// Enumeration of range operator kinds.
type RangeOpKind int

const (
	RangeExclusive = RangeOpKind(iota)
	RangeInclusive
)

// RangeExpr is a range construction with optional endpoints.  A range whose
// operator token is missing lowers to MissingExpr, so Op is always valid.
type RangeExpr struct {
	Op    RangeOpKind
	Start ExprID
	End   ExprID
}

// -----------------------------------------------------------------------------

// RefExpr takes a reference to its operand.
type RefExpr struct {
	Mut   bool
	Value ExprID
}

// CastExpr converts its operand to an ascribed type.
type CastExpr struct {
	Value ExprID
	Type  TypeRef
}

// BoxExpr is a heap-allocating box expression.
type BoxExpr struct {
	Value ExprID
}

// TryExpr is the error-propagation postfix operator.
type TryExpr struct {
	Value ExprID
}

// TryBlockExpr is a try block.
type TryBlockExpr struct {
	Body ExprID
}

// AwaitExpr is a suspension point awaiting its operand.
type AwaitExpr struct {
	Value ExprID
}

// LambdaExpr is a closure literal.  ParamTypes is index-aligned with Params;
// entries are nil where no type was ascribed.  RetType is nil when no return
// type was declared.
type LambdaExpr struct {
	Params     []PatID
	ParamTypes []*TypeRef
	RetType    *TypeRef
	Body       ExprID
}

// -----------------------------------------------------------------------------

func (*MissingExpr) exprNode()    {}
func (*PathExpr) exprNode()       {}
func (*LiteralExpr) exprNode()    {}
func (*IfExpr) exprNode()         {}
func (*BlockExpr) exprNode()      {}
func (*LoopExpr) exprNode()       {}
func (*WhileExpr) exprNode()      {}
func (*ForExpr) exprNode()        {}
func (*CallExpr) exprNode()       {}
func (*MethodCallExpr) exprNode() {}
func (*MatchExpr) exprNode()      {}
func (*ContinueExpr) exprNode()   {}
func (*BreakExpr) exprNode()      {}
func (*ReturnExpr) exprNode()     {}
func (*RecordLitExpr) exprNode()  {}
func (*FieldExpr) exprNode()      {}
func (*IndexExpr) exprNode()      {}
func (*UnaryExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*TupleExpr) exprNode()      {}
func (*ArrayExpr) exprNode()      {}
func (*RangeExpr) exprNode()      {}
func (*RefExpr) exprNode()        {}
func (*CastExpr) exprNode()       {}
func (*BoxExpr) exprNode()        {}
func (*TryExpr) exprNode()        {}
func (*TryBlockExpr) exprNode()   {}
func (*AwaitExpr) exprNode()      {}
func (*LambdaExpr) exprNode()     {}
