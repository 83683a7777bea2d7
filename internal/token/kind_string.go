package token

var kindNames = map[Kind]string{
	Invalid: "INVALID",
	EOF:     "EOF",

	IntLit:    "INT_LIT",
	UIntLit:   "UINT_LIT",
	FloatLit:  "FLOAT_LIT",
	StringLit: "STRING_LIT",
	CharLit:   "CHAR_LIT",
	RegexLit:  "REGEX_LIT",
	BoolLit:   "BOOL_LIT",

	KwVar:      "var",
	KwFunc:     "func",
	KwClass:    "class",
	KwProperty: "property",
	KwGet:      "get",
	KwSet:      "set",
	KwReturn:   "return",
	KwBreak:    "break",
	KwGoto:     "goto",
	KwIf:       "if",
	KwElse:     "else",
	KwUnless:   "unless",
	KwWhile:    "while",
	KwUntil:    "until",
	KwFor:      "for",
	KwIn:       "in",
	KwFrom:     "from",
	KwTo:       "to",
	KwEvery:    "every",
	KwImport:   "import",
	KwMeta:     "meta",
	KwTypedef:  "typedef",
	KwLabel:    "label",
	KwAs:       "as",
	KwAnd:      "and",
	KwOr:       "or",
	KwNot:      "not",
	KwSizeof:   "sizeof",
	KwAlignof:  "alignof",
	KwNull:     "null",

	Plus:                    "+",
	Minus:                   "-",
	Star:                    "*",
	Slash:                   "/",
	Percent:                 "%",
	DoublePercent:           "%%",
	Caret:                   "**",
	Increment:               "++",
	Decrement:               "--",
	Assign:                  "=",
	AssignCreate:            ":=",
	PlusAssign:              "+=",
	MinusAssign:             "-=",
	StarAssign:              "*=",
	SlashAssign:             "/=",
	PercentAssign:           "%=",
	DoublePercentAssign:     "%%=",
	CaretAssign:             "**=",
	ShiftLeftAssign:         "<<=",
	ShiftRightAssign:        ">>=",
	LogicalShiftLeftAssign:  "<<<=",
	LogicalShiftRightAssign: ">>>=",
	BitAndAssign:            "&=",
	BitOrAssign:             "|=",
	BitXorAssign:            "^=",
	LogicalAndAssign:        "&&=",
	LogicalOrAssign:         "||=",
	Equal:                   "==",
	NotEqual:                "!=",
	ApproxEqual:             "~=",
	ApproxNotEqual:          "~!=",
	Less:                    "<",
	Greater:                 ">",
	LessEqual:               "<=",
	GreaterEqual:            ">=",
	ApproxLess:              "~<",
	ApproxGreater:           "~>",
	ApproxLessEqual:         "~<=",
	ApproxGreaterEqual:      "~>=",
	LogicalAnd:              "&&",
	LogicalOr:               "||",
	LogicalNot:              "!",
	BitAnd:                  "&",
	BitOr:                   "|",
	BitXor:                  "^",
	BitNot:                  "~",
	ShiftLeft:               "<<",
	ShiftRight:              ">>",
	LogicalShiftLeft:        "<<<",
	LogicalShiftRight:       ">>>",
	DoubleQuestion:          "??",
	DoubleDot:               "..",
	TripleDot:               "...",
	ArrowRight:              "->",
	ArrowLeft:               "<-",
	ArrowRightLong:          "-->",
	ArrowLeftLong:           "<--",
	ArrowBidirectional:      "<->",
	ArrowRightFat:           "=>",
	ArrowRightLongFat:       "==>",
	ArrowLeftLongFat:        "<==",
	ArrowBidirectionalFat:   "<=>",
	PipeRight:               "|>",
	PipeLeft:                "<|",
	PipeDoubleRight:         "||>",
	PipeDoubleLeft:          "<||",
	PipeTripleRight:         "|||>",
	PipeTripleLeft:          "<|||",

	Dot:       ".",
	Colon:     ":",
	Comma:     ",",
	Semicolon: ";",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",

	Identifier: "IDENTIFIER",

	Whitespace:   "WHITESPACE",
	Newline:      "NEWLINE",
	LineComment:  "LINE_COMMENT",
	BlockComment: "BLOCK_COMMENT",
	DocComment:   "DOC_COMMENT",
	Shebang:      "SHEBANG",
}

// String returns a human-readable name for the kind, used in diagnostics
// and test failure output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps reserved-word spellings to their token kind. Built once
// and consulted by the lexer table builder when installing keyword
// states.
var Keywords = map[string]Kind{
	"var":      KwVar,
	"func":     KwFunc,
	"class":    KwClass,
	"property": KwProperty,
	"get":      KwGet,
	"set":      KwSet,
	"return":   KwReturn,
	"break":    KwBreak,
	"goto":     KwGoto,
	"if":       KwIf,
	"else":     KwElse,
	"unless":   KwUnless,
	"while":    KwWhile,
	"until":    KwUntil,
	"for":      KwFor,
	"in":       KwIn,
	"from":     KwFrom,
	"to":       KwTo,
	"every":    KwEvery,
	"import":   KwImport,
	"meta":     KwMeta,
	"typedef":  KwTypedef,
	"label":    KwLabel,
	"as":       KwAs,
	"and":      KwAnd,
	"or":       KwOr,
	"not":      KwNot,
	"sizeof":   KwSizeof,
	"alignof":  KwAlignof,
	"true":     BoolLit,
	"false":    BoolLit,
	"null":     KwNull,
}
