package ast

import "github.com/ImOnALampshade/brandy/internal/token"

// Module is the root of a translation unit's tree: its top-level
// declared symbols and its top-level statements, in source order.
type Module struct {
	Base
	Symbols    []Node
	Statements []Node
}

// Scope owns a statement sequence. Its symbol table is attached by the
// symbol-table-filler semantic pass via a side table (internal/sema),
// not stored on the node itself, so the AST stays pure syntax.
type Scope struct {
	Base
	Statements []Node
}

// TypeRef is a dotted type name, walked component-by-component to a type
// symbol by the resolver. It has no AST children; its components are
// tokens.
type TypeRef struct {
	Base
	Components []token.Token
}

// --- declarations ---

// Label names a goto target.
type Label struct {
	Base
	Name       token.Token
	Doc        token.Token
	Attributes []Node
}

// Class declares a user type, optionally with one or more base classes
// and a member list (functions, vars, properties, nested classes).
type Class struct {
	Base
	Name        token.Token
	Doc         token.Token
	Attributes  []Node
	BaseClasses []Node // TypeRef entries
	Members     []Node
}

// Function declares a named or anonymous-in-a-class function: a
// parameter list, an optional declared return type, and a body scope.
type Function struct {
	Base
	Name       token.Token
	Doc        token.Token
	Attributes []Node
	Parameters []Node // Parameter entries
	ReturnType Node    // TypeRef, nil if inferred
	InnerScope Node    // *Scope
}

// Var declares a variable with an optional declared type and an optional
// initializer.
type Var struct {
	Base
	Name         token.Token
	Doc          token.Token
	Attributes   []Node
	Type         Node // TypeRef, nil if inferred from InitialValue
	InitialValue Node // expression, nil if uninitialized
}

// Parameter is a function/lambda parameter; it reuses Var's shape (a
// declared type and, for defaulted parameters, an initial value used as
// the default) exactly as the original compiler's parameter_node
// extends var_node.
type Parameter struct {
	Var
}

// Property declares a name with a type and a getter and/or setter scope.
type Property struct {
	Base
	Name       token.Token
	Doc        token.Token
	Attributes []Node
	Type       Node // TypeRef, may be nil if inferred from getter
	Getter     Node // *Function (its InnerScope is the getter body), nil if absent
	Setter     Node // *Function, nil if absent; gains an implicit "value" Parameter
	// if the source didn't declare one (symtabfiller pass).
	GetterIsExpr bool // true if the getter used "=>" single-expression form
}

// Import binds a module path to a name.
type Import struct {
	Base
	Path token.Token
	As   token.Token // zero value if no "as" alias
}

// Typedef introduces an alias name for its Target type. The semantic
// passes declare the name but never resolve Target, so a typedef name
// has no type attached.
type Typedef struct {
	Base
	Name   token.Token
	Target Node // TypeRef
}

// --- statements ---

// Return exits the enclosing function/lambda/getter with an optional
// value.
type Return struct {
	Base
	Value Node // expression, nil for a bare return
}

// Break exits the enclosing loop.
type Break struct {
	Base
}

// Goto jumps to a label.
type Goto struct {
	Base
	Label token.Token
}

// If is one link in a chain: Condition is nil only for the trailing
// unconditional "else" clause. ElseClause is nil, another *If (an
// "else if"), or a conditionless *If whose Condition is nil (the final
// "else").
type If struct {
	Base
	Condition  Node // expression, nil for the trailing else
	InnerScope Node // *Scope
	ElseClause Node // *If or nil
}

// While loops while Condition holds. "until" desugars into this with the
// condition wrapped in a synthesized logical-not.
type While struct {
	Base
	Condition  Node
	InnerScope Node // *Scope
}

// For covers both loop forms: "for x in expr {...}" and
// "for x from start to end [every step] {...}", plus an optional
// trailing "if cond" guard. Which fields are populated depends on
// IsRange.
type For struct {
	Base
	Variable   token.Token
	IsRange    bool
	Expression Node // the iterable, when !IsRange
	RangeStart Node // when IsRange
	RangeEnd   Node // when IsRange
	RangeStep  Node // when IsRange, nil if "every" omitted
	Guard      Node // optional trailing "if cond", nil if absent
	InnerScope Node // *Scope
}

// MetaBlock is parsed but deliberately not walked by the symbol-table
// filler or resolver passes — meta-programming evaluation is left to a
// separate stage.
type MetaBlock struct {
	Base
	InnerScope Node // *Scope
}

// Attribute is a "[...]" list preceding a declaration.
type Attribute struct {
	Base
	Entries []Node // expressions
}

// --- expressions ---

// BinaryOp is rewritten by the operator-lowering pass into a Call on the
// left operand's named operator method; after that pass only the
// assignment-family operators ("=", ":=", "+=", ...) remain BinaryOp.
type BinaryOp struct {
	Base
	Left      Node
	Right     Node
	Operation token.Token
}

// UnaryOp carries a prefix or postfix flag; like BinaryOp it is rewritten
// by operator lowering (to "@preIncrement"/"@negate"-style method calls).
type UnaryOp struct {
	Base
	Operation       token.Token
	Expression      Node
	IsPostExpression bool
}

// AbsoluteValue is the |expr| form.
type AbsoluteValue struct {
	Base
	Expression Node
}

// Literal is a scalar literal token (int/uint/float/string/char/regex/
// bool/null); its resulting type is determined by the token's kind.
type Literal struct {
	Base
	Value token.Token
}

// TupleLiteral is a parenthesized comma list.
type TupleLiteral struct {
	Base
	Values []Node
}

// DictLiteral is a "{k: v, ...}" table literal; Keys[i] pairs with
// Values[i].
type DictLiteral struct {
	Base
	Keys   []Node
	Values []Node
}

// Lambda is an anonymous function expression; its getter-style
// single-expression body is rewritten into a Return by the
// function-return-rewrite pass just like a named Function.
type Lambda struct {
	Base
	Parameters []Node // Parameter entries
	ReturnType Node   // TypeRef, nil if inferred
	InnerScope Node   // *Scope
}

// NameReference is a bare identifier use, resolved against the scope
// stack.
type NameReference struct {
	Base
	Name token.Token
}

// MemberAccess is "expr.ident".
type MemberAccess struct {
	Base
	Expression Node
	Member     token.Token
	// Synthetic holds the member name directly when this node was
	// manufactured by a semantic pass rather than parsed (operator
	// lowering's "@add"-style method names), since Member's Start/Length
	// in that case only marks a source span for diagnostics and does not
	// point at bytes spelling the name itself.
	Synthetic string
}

// Call is "expr(args...)"; after operator lowering it is also how every
// binary/unary operator use is represented.
type Call struct {
	Base
	Expression Node
	Arguments  []Node
}

// Cast is "expr as type".
type Cast struct {
	Base
	Expression Node
	CastTo     Node // TypeRef
}

// Index is "expr[index]"; resolved to an @index member call.
type Index struct {
	Base
	Expression Node
	IndexExpr  Node
}
