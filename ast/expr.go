package ast

// Expr represents an expression node.  All expression nodes implement the
// `Expr` interface.
type Expr interface {
	Node

	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	NodeBase
}

func (eb *ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

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

// Literal represents a single literal value.
type Literal struct {
	ExprBase

	Kind  LitKind
	Value string

	// The type suffix attached to a numeric literal, eg. `1u8`.
	Suffix string
}

// PathExpr is a reference to a named item or local, eg. `a.b.c`.
type PathExpr struct {
	ExprBase

	Path *Path
}

// -----------------------------------------------------------------------------

// Condition is the condition position of an `if` or `while`.  When Pat is
// non-nil, the condition is a pattern condition (`if let`/`while let`)
// matching Pat against Value.  Otherwise it is an ordinary boolean condition
// on Value alone.
type Condition struct {
	NodeBase

	Pat   Pat
	Value Expr
}

// IfExpr represents a conditional expression.  Exactly one of ElseBlock and
// ElseIf may be non-nil; both nil means there is no else branch.
type IfExpr struct {
	ExprBase

	Cond      *Condition
	Then      *BlockExpr
	ElseBlock *BlockExpr
	ElseIf    *IfExpr
}

// BlockExpr is a brace-delimited sequence of statements with an optional
// trailing tail expression giving the block's value.
type BlockExpr struct {
	ExprBase

	Stmts []Stmt
	Tail  Expr
}

// LoopExpr is an unconditional loop.
type LoopExpr struct {
	ExprBase

	Body *BlockExpr
}

// WhileExpr is a conditional loop.  As with IfExpr, the condition may carry a
// pattern (`while let`).
type WhileExpr struct {
	ExprBase

	Cond *Condition
	Body *BlockExpr
}

// ForExpr is an iterator loop binding Pat to each element of Iterable.
type ForExpr struct {
	ExprBase

	Pat      Pat
	Iterable Expr
	Body     *BlockExpr
}

// -----------------------------------------------------------------------------

// ArgList is a parenthesized, comma-separated argument list.
type ArgList struct {
	NodeBase

	Args []Expr
}

// CallExpr is a function call expression.  Args is nil when the argument list
// itself is missing from the source.
type CallExpr struct {
	ExprBase

	Fn   Expr
	Args *ArgList
}

// MethodCallExpr is a method call expression, eg. `x.f(y)`.
type MethodCallExpr struct {
	ExprBase

	Recv        Expr
	Name        *NameRef
	Args        *ArgList
	GenericArgs []Type
}

// FieldExpr is a field access expression, eg. `x.f`.
type FieldExpr struct {
	ExprBase

	Recv Expr
	Name *NameRef
}

// IndexExpr is an index expression, eg. `x[i]`.
type IndexExpr struct {
	ExprBase

	Base  Expr
	Index Expr
}

// -----------------------------------------------------------------------------

// MatchArm is a single arm of a match expression.
type MatchArm struct {
	NodeBase

	Pat   Pat
	Guard Expr
	Value Expr
}

// MatchArmList is the brace-delimited list of a match expression's arms.
type MatchArmList struct {
	NodeBase

	Arms []*MatchArm
}

// MatchExpr matches a scrutinee expression against a sequence of arms.  Arms
// is nil when the arm list is missing from the source.
type MatchExpr struct {
	ExprBase

	Scrutinee Expr
	Arms      *MatchArmList
}

// -----------------------------------------------------------------------------

// ContinueExpr continues the enclosing loop.
type ContinueExpr struct {
	ExprBase

	Label string
}

// BreakExpr breaks the enclosing loop with an optional value.
type BreakExpr struct {
	ExprBase

	Value Expr
}

// ReturnExpr returns from the enclosing function with an optional value.
type ReturnExpr struct {
	ExprBase

	Value Expr
}

// -----------------------------------------------------------------------------

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	ExprBase

	Inner Expr
}

// TupleExpr is an n-tuple of expressions.
type TupleExpr struct {
	ExprBase

	Elems []Expr
}

// ArrayExpr is an array literal.  It is either an element list, eg.
// `[a, b, c]`, or a repeat form, eg. `[init; count]`.
type ArrayExpr struct {
	ExprBase

	IsRepeat bool

	// Element-list form.
	Elems []Expr

	// Repeat form.
	Initializer Expr
	Count       Expr
}

// -----------------------------------------------------------------------------

// RecordField is a single field initializer of a record literal.  A field with
// a name but no value is the field-shorthand form `Point { x }`.
type RecordField struct {
	NodeBase

	Name  *NameRef
	Value Expr
	Attrs []*Attr
}

// RecordFieldList is the brace-delimited field list of a record literal,
// including an optional spread/base expression `..base`.
type RecordFieldList struct {
	NodeBase

	Fields []*RecordField
	Spread Expr
}

// RecordLit is a record (named-field) literal, eg. `Point { x: 1, y: 2 }`.
// FieldList is nil when the field list is missing from the source.
type RecordLit struct {
	ExprBase

	Path      *Path
	FieldList *RecordFieldList
}

// -----------------------------------------------------------------------------

// Enumeration of unary operator kinds.
type UnaryOpKind int

const (
	UopInvalid = UnaryOpKind(iota) // missing/unrecognized operator token
	UopNeg
	UopNot
	UopDeref
)

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	ExprBase

	Op      UnaryOpKind
	Operand Expr
}

// Enumeration of binary operator kinds.
type BinaryOpKind int

const (
	BopInvalid = BinaryOpKind(iota) // missing/unrecognized operator token
	BopAdd
	BopSub
	BopMul
	BopDiv
	BopRem
	BopShl
	BopShr
	BopBitAnd
	BopBitOr
	BopBitXor
	BopAnd
	BopOr
	BopEq
	BopNotEq
	BopLt
	BopLtEq
	BopGt
	BopGtEq
	BopAssign
	BopAddAssign
	BopSubAssign
	BopMulAssign
	BopDivAssign
	BopRemAssign
	BopShlAssign
	BopShrAssign
	BopBitAndAssign
	BopBitOrAssign
	BopBitXorAssign
)

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	ExprBase

	Op  BinaryOpKind
	Lhs Expr
	Rhs Expr
}

// Enumeration of range operator kinds.
type RangeOpKind int

const (
	RopInvalid = RangeOpKind(iota) // missing/unrecognized operator token
	RopExclusive
	RopInclusive
)

// RangeExpr is a range expression with optional endpoints, eg. `a..b`.
type RangeExpr struct {
	ExprBase

	Op    RangeOpKind
	Start Expr
	End   Expr
}

// -----------------------------------------------------------------------------

// RefExpr takes a reference to its operand, eg. `&x` or `&mut x`.
type RefExpr struct {
	ExprBase

	Mut   bool
	Value Expr
}

// CastExpr converts its operand to an ascribed type, eg. `x as T`.
type CastExpr struct {
	ExprBase

	Value Expr
	Type  Type
}

// BoxExpr is a heap-allocating box expression.
type BoxExpr struct {
	ExprBase

	Value Expr
}

// TryExpr is the error-propagation postfix operator, eg. `x?`.
type TryExpr struct {
	ExprBase

	Value Expr
}

// TryBlockExpr is a try block, scoping error propagation to its body.
type TryBlockExpr struct {
	ExprBase

	Body *BlockExpr
}

// AwaitExpr is a suspension point awaiting its operand.
type AwaitExpr struct {
	ExprBase

	Value Expr
}

// -----------------------------------------------------------------------------

// LambdaExpr is a closure literal.
type LambdaExpr struct {
	ExprBase

	Params  *ParamList
	RetType Type
	Body    Expr
}

// SelfParam is the receiver parameter of a method.
type SelfParam struct {
	NodeBase

	Mut bool
	Ref bool
}

// Param is a single (pattern, optional ascribed type) parameter.
type Param struct {
	NodeBase

	Pat  Pat
	Type Type
}

// ParamList is a function or closure parameter list.
type ParamList struct {
	NodeBase

	Self   *SelfParam
	Params []*Param
}

// -----------------------------------------------------------------------------

// LabelExpr is a loop label.  Labels are not lowered yet.
type LabelExpr struct {
	ExprBase

	Name string
}

// MacroCall is a macro invocation.  It may occur in expression, item, or
// pattern position.  When DefName is non-nil the call is itself a legacy
// macro *definition*, registering DefName rather than producing a value.
type MacroCall struct {
	ExprBase

	Path    *Path
	DefName *NameRef

	// The raw token text of the macro's argument list.  The lowering stage
	// never interprets this; it is carried for the expander.
	Tokens string
}

func (mc *MacroCall) itemNode() {}
