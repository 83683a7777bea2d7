package lexer

import (
	"fmt"
	"sync"

	"github.com/ImOnALampshade/brandy/internal/token"
)

// builder holds the mutable state used only during table construction;
// none of it survives past BuildTable.
type builder struct {
	t          *Table
	root       int
	identifier int
}

// BuildTable synthesizes the DFA transition table from the declarative
// keyword and operator lists below. It panics on a duplicate operator or
// keyword installation — a programming error in the declarations, not a
// runtime condition — exactly as the original compiler asserts at
// construction time.
func BuildTable() *Table {
	t := &Table{}
	t.newState(token.Invalid) // root, index 0

	b := &builder{t: t, root: 0}
	b.identifier = t.newState(token.Identifier)
	t.addLetterEdge(b.identifier, b.identifier)
	t.addDigitEdge(b.identifier, b.identifier)
	t.addEdge(b.identifier, b.identifier, '_')
	t.addEdge(b.identifier, b.identifier, '$')
	t.addEdge(b.identifier, b.identifier, '@')
	t.addLetterEdge(b.root, b.identifier)
	t.addEdge(b.root, b.identifier, '_')
	t.addEdge(b.root, b.identifier, '$')
	t.addEdge(b.root, b.identifier, '@')

	for word, kind := range token.Keywords {
		b.installKeyword(word, kind)
	}

	b.installWhitespace()
	b.installNewline()
	b.installNumbers()
	b.installStrings()
	b.installComments()
	b.installOperatorsAndPunctuation()

	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide lexer table, building it on first use.
// Subsequent calls are lock-free reads of the cached pointer.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = BuildTable()
	})
	return defaultTable
}

// installKeyword walks word's bytes from root, reusing any state already
// created for a shared prefix with another keyword, and attaching an
// identifier-style fall-through at every state along the path so that a
// keyword spelling followed by more identifier characters (e.g. "foreach"
// when "for" is a keyword) tokenizes as a single identifier rather than a
// keyword-prefix match.
func (b *builder) installKeyword(word string, kind token.Kind) {
	from := b.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		last := i == len(word)-1
		next := b.t.getEdge(from, c)
		if next == noEdge {
			accept := token.Identifier
			if last {
				accept = kind
			}
			next = b.t.newState(accept)
			b.t.addEdge(from, next, c)
			b.t.addLetterEdge(next, b.identifier)
			b.t.addDigitEdge(next, b.identifier)
			b.t.addEdge(next, b.identifier, '_')
			b.t.addEdge(next, b.identifier, '$')
			b.t.addEdge(next, b.identifier, '@')
		} else if last {
			cur := b.t.states[next].accept
			if cur != token.Identifier && cur != kind {
				panic(fmt.Sprintf("lexer: duplicate keyword installation for %q", word))
			}
			b.t.states[next].accept = kind
		}
		from = next
	}
}

// installOperator walks text's bytes from root creating a linear chain of
// states (reusing any shared-prefix state already installed), and panics
// if the exact same spelling was already installed with a different
// terminal kind.
func (b *builder) installOperator(text string, kind token.Kind) {
	from := b.root
	for i := 0; i < len(text); i++ {
		c := text[i]
		last := i == len(text)-1
		next := b.t.getEdge(from, c)
		if next == noEdge {
			accept := token.Invalid
			if last {
				accept = kind
			}
			next = b.t.newState(accept)
			b.t.addEdge(from, next, c)
		} else if last {
			cur := b.t.states[next].accept
			if cur != token.Invalid && cur != kind {
				panic(fmt.Sprintf("lexer: duplicate operator installation for %q", text))
			}
			b.t.states[next].accept = kind
		}
		from = next
	}
}

func (b *builder) installWhitespace() {
	ws := b.t.newState(token.Whitespace)
	b.t.addEdge(b.root, ws, ' ')
	b.t.addEdge(b.root, ws, '\t')
	b.t.addEdge(ws, ws, ' ')
	b.t.addEdge(ws, ws, '\t')

	shebangBang := b.t.newState(token.Invalid)
	b.t.addEdge(b.root, shebangBang, '#')
	shebangBody := b.t.newState(token.Shebang)
	b.t.addEdge(shebangBang, shebangBody, '!')
	b.t.addDefaultEdge(shebangBody, shebangBody)
	// A bare '#' not followed by '!' is not part of this language's
	// surface; leave shebangBang's accept invalid so isolated '#' lexes
	// as an error rather than silently being swallowed.
}

func (b *builder) installNewline() {
	nl := b.t.newState(token.Newline)
	b.t.addEdge(b.root, nl, '\n')
}

// installNumbers installs integer and float literal states, including the
// optional type suffixes (b/s/l/f, or u followed by b/s/l) and decimal
// point + exponent handling.
func (b *builder) installNumbers() {
	digit := b.t.newState(token.IntLit)
	b.t.addDigitEdge(b.root, digit)
	b.t.addDigitEdge(digit, digit)

	// Integer suffixes: b (byte/i8), s (short/i16), l (long/i64); bare
	// accept is i32.
	for _, suf := range []byte{'b', 's', 'l'} {
		st := b.t.newState(token.IntLit)
		b.t.addEdge(digit, st, suf)
	}

	// Unsigned prefix suffix: u, optionally followed by b/s/l.
	uState := b.t.newState(token.UIntLit)
	b.t.addEdge(digit, uState, 'u')
	for _, suf := range []byte{'b', 's', 'l'} {
		st := b.t.newState(token.UIntLit)
		b.t.addEdge(uState, st, suf)
	}

	// Float: digit+ '.' digit+ with optional exponent and 'f' suffix.
	dot := b.t.newState(token.Invalid)
	b.t.addEdge(digit, dot, '.')
	floatBody := b.t.newState(token.FloatLit)
	b.t.addDigitEdge(dot, floatBody)
	b.t.addDigitEdge(floatBody, floatBody)
	floatSuffix := b.t.newState(token.FloatLit)
	b.t.addEdge(floatBody, floatSuffix, 'f')

	// Exponent: [eE][+-]?digit+, attachable after an integer or float body.
	for _, from := range []int{digit, floatBody} {
		expMarker := b.t.newState(token.Invalid)
		b.t.addEdge(from, expMarker, 'e')
		b.t.addEdge(from, expMarker, 'E')
		expSignPlus := b.t.newState(token.Invalid)
		expSignMinus := b.t.newState(token.Invalid)
		b.t.addEdge(expMarker, expSignPlus, '+')
		b.t.addEdge(expMarker, expSignMinus, '-')
		expBody := b.t.newState(token.FloatLit)
		b.t.addDigitEdge(expMarker, expBody)
		b.t.addDigitEdge(expSignPlus, expBody)
		b.t.addDigitEdge(expSignMinus, expBody)
		b.t.addDigitEdge(expBody, expBody)
	}
}

// installStrings installs string and char literal bodies, each with a
// dedicated escape state that returns to the body state on any byte.
func (b *builder) installStrings() {
	strBody := b.t.newState(token.Invalid) // not yet terminated
	b.t.addEdge(b.root, strBody, '"')
	strEscape := b.t.newState(token.Invalid)
	b.t.addEdge(strBody, strEscape, '\\')
	b.t.addDefaultEdge(strEscape, strBody)
	strDone := b.t.newState(token.StringLit)
	b.t.addEdge(strBody, strDone, '"')
	b.t.addDefaultEdge(strBody, strBody)

	charBody := b.t.newState(token.Invalid)
	b.t.addEdge(b.root, charBody, '\'')
	charEscape := b.t.newState(token.Invalid)
	b.t.addEdge(charBody, charEscape, '\\')
	b.t.addDefaultEdge(charEscape, charBody)
	charDone := b.t.newState(token.CharLit)
	b.t.addEdge(charBody, charDone, '\'')
	b.t.addDefaultEdge(charBody, charBody)

	// Regex literal: r/pattern/ — backslash-escaped, no bare newline. The
	// 'r' prefix shares its root edge with the "return" keyword's first
	// letter (installKeyword runs before installStrings), so reuse that
	// state rather than shadowing it.
	rState := b.t.getEdge(b.root, 'r')
	if rState == noEdge {
		rState = b.t.newState(token.Identifier)
		b.t.addEdge(b.root, rState, 'r')
		b.t.addLetterEdge(rState, b.identifier)
		b.t.addDigitEdge(rState, b.identifier)
		b.t.addEdge(rState, b.identifier, '_')
		b.t.addEdge(rState, b.identifier, '$')
		b.t.addEdge(rState, b.identifier, '@')
	}
	regexBody := b.t.newState(token.Invalid)
	b.t.addEdge(rState, regexBody, '/')
	regexEscape := b.t.newState(token.Invalid)
	b.t.addEdge(regexBody, regexEscape, '\\')
	b.t.addDefaultEdge(regexEscape, regexBody)
	regexDone := b.t.newState(token.RegexLit)
	b.t.addEdge(regexBody, regexDone, '/')
	regexNewline := b.t.newState(token.Invalid) // dead end: no edges out
	b.t.addEdge(regexBody, regexNewline, '\n')
	b.t.addDefaultEdge(regexBody, regexBody)
}

// installComments installs line comments, block comments, and
// backtick-delimited doc blocks.
func (b *builder) installComments() {
	slash1 := b.t.newState(token.Invalid)
	b.t.addEdge(b.root, slash1, '/')

	lineStart := b.t.newState(token.LineComment)
	b.t.addEdge(slash1, lineStart, '/')
	b.t.addDefaultEdge(lineStart, lineStart)
	// A newline ends a line comment and is the last byte of the comment
	// token: lineEnd has no outgoing edges, so the default-edge loop above
	// never runs past it.
	lineEnd := b.t.newState(token.LineComment)
	b.t.addEdge(lineStart, lineEnd, '\n')

	// Block comment: /* ... */ via a three-state loop recognizing the
	// closing "*/" with arbitrary content (including newlines) between.
	blockBody := b.t.newState(token.Invalid)
	b.t.addEdge(slash1, blockBody, '*')
	b.t.addDefaultEdge(blockBody, blockBody)
	blockStar := b.t.newState(token.Invalid)
	b.t.addEdge(blockBody, blockStar, '*')
	blockDone := b.t.newState(token.BlockComment)
	b.t.addEdge(blockStar, blockDone, '/')
	// Seeing another '*' after a '*' just stays in blockStar (handles
	// "**/"); anything else drops back into the body loop.
	b.t.addEdge(blockStar, blockStar, '*')
	b.t.addDefaultEdge(blockStar, blockBody)

	// Doc comment: `` `...` `` backtick-delimited, attachable to a
	// following declaration by the parser.
	docBody := b.t.newState(token.Invalid)
	b.t.addEdge(b.root, docBody, '`')
	docDone := b.t.newState(token.DocComment)
	b.t.addEdge(docBody, docDone, '`')
	b.t.addDefaultEdge(docBody, docBody)
}

// operatorSpec is one entry in the operator declaration table: the exact
// spelling and the kind it accepts to. Longer spellings that share a
// prefix with a shorter one (e.g. ">>=" and ">>" and ">") are all safe to
// declare in any order — installOperator reuses shared prefix states and
// only the state at the end of each spelling's path gets that spelling's
// accept kind, so maximal munch naturally prefers the longest.
var operatorSpecs = []struct {
	text string
	kind token.Kind
}{
	{"+", token.Plus}, {"-", token.Minus}, {"*", token.Star}, {"/", token.Slash},
	{"%", token.Percent}, {"%%", token.DoublePercent}, {"**", token.Caret},
	{"++", token.Increment}, {"--", token.Decrement},
	{"=", token.Assign}, {":=", token.AssignCreate},
	{"+=", token.PlusAssign}, {"-=", token.MinusAssign}, {"*=", token.StarAssign},
	{"/=", token.SlashAssign}, {"%=", token.PercentAssign}, {"%%=", token.DoublePercentAssign},
	{"**=", token.CaretAssign},
	{"<<=", token.ShiftLeftAssign}, {">>=", token.ShiftRightAssign},
	{"<<<=", token.LogicalShiftLeftAssign}, {">>>=", token.LogicalShiftRightAssign},
	{"&=", token.BitAndAssign}, {"|=", token.BitOrAssign}, {"^=", token.BitXorAssign},
	{"&&=", token.LogicalAndAssign}, {"||=", token.LogicalOrAssign},
	{"==", token.Equal}, {"!=", token.NotEqual}, {"~=", token.ApproxEqual}, {"~!=", token.ApproxNotEqual},
	{"<", token.Less}, {">", token.Greater}, {"<=", token.LessEqual}, {">=", token.GreaterEqual},
	{"~<", token.ApproxLess}, {"~>", token.ApproxGreater}, {"~<=", token.ApproxLessEqual}, {"~>=", token.ApproxGreaterEqual},
	{"&&", token.LogicalAnd}, {"||", token.LogicalOr}, {"!", token.LogicalNot},
	{"&", token.BitAnd}, {"|", token.BitOr}, {"^", token.BitXor}, {"~", token.BitNot},
	{"<<", token.ShiftLeft}, {">>", token.ShiftRight},
	{"<<<", token.LogicalShiftLeft}, {">>>", token.LogicalShiftRight},
	{"??", token.DoubleQuestion}, {"..", token.DoubleDot}, {"...", token.TripleDot},
	{"->", token.ArrowRight}, {"<-", token.ArrowLeft},
	{"-->", token.ArrowRightLong}, {"<--", token.ArrowLeftLong},
	{"<->", token.ArrowBidirectional},
	{"=>", token.ArrowRightFat}, {"==>", token.ArrowRightLongFat}, {"<==", token.ArrowLeftLongFat},
	{"<=>", token.ArrowBidirectionalFat},
	{"|>", token.PipeRight}, {"<|", token.PipeLeft},
	{"||>", token.PipeDoubleRight}, {"<||", token.PipeDoubleLeft},
	{"|||>", token.PipeTripleRight}, {"<|||", token.PipeTripleLeft},

	{".", token.Dot}, {":", token.Colon}, {",", token.Comma}, {";", token.Semicolon},
	{"(", token.LParen}, {")", token.RParen}, {"{", token.LBrace}, {"}", token.RBrace},
	{"[", token.LBracket}, {"]", token.RBracket},
}

func (b *builder) installOperatorsAndPunctuation() {
	for _, spec := range operatorSpecs {
		b.installOperator(spec.text, spec.kind)
	}
}
