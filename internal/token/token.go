// Package token defines the immutable token model shared by the lexer,
// parser, and semantic passes.
package token

import "hash/fnv"

// Kind identifies the lexical family of a token. Kinds are partitioned
// into contiguous ranges so family membership is a range test rather than
// a lookup table.
type Kind int

const (
	Invalid Kind = iota
	EOF

	// --- literals ---
	literalStart
	IntLit
	UIntLit
	FloatLit
	StringLit
	CharLit
	RegexLit
	BoolLit
	literalEnd

	// --- keywords ---
	keywordStart
	KwVar
	KwFunc
	KwClass
	KwProperty
	KwGet
	KwSet
	KwReturn
	KwBreak
	KwGoto
	KwIf
	KwElse
	KwUnless
	KwWhile
	KwUntil
	KwFor
	KwIn
	KwFrom
	KwTo
	KwEvery
	KwImport
	KwMeta
	KwTypedef
	KwLabel
	KwAs
	KwAnd
	KwOr
	KwNot
	KwSizeof
	KwAlignof
	KwNull
	keywordEnd

	// --- operators ---
	operatorStart
	Plus
	Minus
	Star
	Slash
	Percent
	DoublePercent
	Caret // exponent
	Increment
	Decrement
	Assign
	AssignCreate
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	DoublePercentAssign
	CaretAssign
	ShiftLeftAssign
	ShiftRightAssign
	LogicalShiftLeftAssign
	LogicalShiftRightAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	LogicalAndAssign
	LogicalOrAssign
	Equal
	NotEqual
	ApproxEqual
	ApproxNotEqual
	Less
	Greater
	LessEqual
	GreaterEqual
	ApproxLess
	ApproxGreater
	ApproxLessEqual
	ApproxGreaterEqual
	LogicalAnd
	LogicalOr
	LogicalNot
	BitAnd
	BitOr
	BitXor
	BitNot
	ShiftLeft
	ShiftRight
	LogicalShiftLeft
	LogicalShiftRight
	DoubleQuestion // null coalesce
	DoubleDot      // range
	TripleDot      // range inclusive / variadic
	ArrowRight
	ArrowLeft
	ArrowRightLong
	ArrowLeftLong
	ArrowBidirectional
	ArrowRightFat
	ArrowRightLongFat
	ArrowLeftLongFat
	ArrowBidirectionalFat
	PipeRight
	PipeLeft
	PipeDoubleRight
	PipeDoubleLeft
	PipeTripleRight
	PipeTripleLeft
	operatorEnd

	// --- punctuation ---
	punctuationStart
	Dot
	Colon
	Comma
	Semicolon
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	punctuationEnd

	// --- identifiers ---
	Identifier

	// --- trivia ---
	triviaStart
	Whitespace
	Newline
	LineComment
	BlockComment
	DocComment
	Shebang
	triviaEnd
)

// IsLiteral reports whether kind is one of the literal families.
func (k Kind) IsLiteral() bool { return k > literalStart && k < literalEnd }

// IsKeyword reports whether kind is one of the reserved words.
func (k Kind) IsKeyword() bool { return k > keywordStart && k < keywordEnd }

// IsOperator reports whether kind is one of the operator families.
func (k Kind) IsOperator() bool { return k > operatorStart && k < operatorEnd }

// IsPunctuation reports whether kind is a structural punctuation token.
func (k Kind) IsPunctuation() bool { return k > punctuationStart && k < punctuationEnd }

// IsTrivia reports whether kind is whitespace, a newline, a comment, or a shebang.
func (k Kind) IsTrivia() bool { return k > triviaStart && k < triviaEnd }

// Token is an immutable value carrying a span over the source buffer, a
// kind, and a 1-based source line number. Tokens are never mutated after
// emission.
type Token struct {
	Start  int
	Length int
	Kind   Kind
	Line   int
}

// Text recovers the token's text from the owning source buffer.
func (t Token) Text(src []byte) []byte {
	return src[t.Start : t.Start+t.Length]
}

// HashCode returns a content hash suitable for using token text as a
// symbol-table key, mirroring the original compiler's token hashing.
func (t Token) HashCode(src []byte) uint32 {
	h := fnv.New32a()
	h.Write(t.Text(src))
	return h.Sum32()
}

// End returns the offset one past the token's last byte.
func (t Token) End() int { return t.Start + t.Length }
