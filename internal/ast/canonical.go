package ast

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/ImOnALampshade/brandy/internal/token"
)

// CanonicalNode is a flattened, CBOR-serializable mirror of every AST
// node variant, discriminated by Kind. It exists so a parsed module can
// be cached to disk between compiler invocations (spec.md §6's "re-
// parsing every dependency on every invocation is wasteful" concern)
// without hand-writing a MarshalCBOR method per node type: one struct
// with every variant's fields present-but-optional serializes to a
// compact canonical CBOR map, the same shape the teacher's
// core/planfmt package uses for its plan nodes.
type CanonicalNode struct {
	Kind string `cbor:"kind"`

	// span, shared by every variant
	FirstToken int `cbor:"first,omitempty"`
	LastToken  int `cbor:"last,omitempty"`

	// scalar payload
	Token   *CanonicalToken `cbor:"token,omitempty"`
	Name    *CanonicalToken `cbor:"name,omitempty"`
	Doc     *CanonicalToken `cbor:"doc,omitempty"`
	Member  *CanonicalToken `cbor:"member,omitempty"`
	Label   *CanonicalToken `cbor:"label,omitempty"`
	As      *CanonicalToken `cbor:"as,omitempty"`
	Path    *CanonicalToken `cbor:"path,omitempty"`
	Op      *CanonicalToken `cbor:"op,omitempty"`
	Bool      bool   `cbor:"bool,omitempty"`
	IsRange   bool   `cbor:"isRange,omitempty"`
	Synthetic string `cbor:"synthetic,omitempty"`

	Components []CanonicalToken `cbor:"components,omitempty"`

	// single-child slots
	Type         *CanonicalNode `cbor:"type,omitempty"`
	InitialValue *CanonicalNode `cbor:"initial,omitempty"`
	ReturnType   *CanonicalNode `cbor:"returnType,omitempty"`
	InnerScope   *CanonicalNode `cbor:"scope,omitempty"`
	Getter       *CanonicalNode `cbor:"getter,omitempty"`
	Setter       *CanonicalNode `cbor:"setter,omitempty"`
	Condition    *CanonicalNode `cbor:"cond,omitempty"`
	ElseClause   *CanonicalNode `cbor:"else,omitempty"`
	Expression   *CanonicalNode `cbor:"expr,omitempty"`
	RangeStart   *CanonicalNode `cbor:"rangeStart,omitempty"`
	RangeEnd     *CanonicalNode `cbor:"rangeEnd,omitempty"`
	RangeStep    *CanonicalNode `cbor:"rangeStep,omitempty"`
	Guard        *CanonicalNode `cbor:"guard,omitempty"`
	Left         *CanonicalNode `cbor:"left,omitempty"`
	Right        *CanonicalNode `cbor:"right,omitempty"`
	Value        *CanonicalNode `cbor:"value,omitempty"`
	CastTo       *CanonicalNode `cbor:"castTo,omitempty"`
	IndexExpr    *CanonicalNode `cbor:"index,omitempty"`
	Target       *CanonicalNode `cbor:"target,omitempty"`

	// slice slots
	Symbols     []CanonicalNode `cbor:"symbols,omitempty"`
	Statements  []CanonicalNode `cbor:"statements,omitempty"`
	Attributes  []CanonicalNode `cbor:"attrs,omitempty"`
	BaseClasses []CanonicalNode `cbor:"bases,omitempty"`
	Members     []CanonicalNode `cbor:"members,omitempty"`
	Parameters  []CanonicalNode `cbor:"params,omitempty"`
	Entries     []CanonicalNode `cbor:"entries,omitempty"`
	Values      []CanonicalNode `cbor:"values,omitempty"`
	Keys        []CanonicalNode `cbor:"keys,omitempty"`
	Arguments   []CanonicalNode `cbor:"args,omitempty"`
}

// CanonicalToken mirrors token.Token field-for-field.
type CanonicalToken struct {
	Start  int        `cbor:"start"`
	Length int        `cbor:"len"`
	Kind   token.Kind `cbor:"kind"`
	Line   int        `cbor:"line"`
}

func canonToken(t token.Token) *CanonicalToken {
	return &CanonicalToken{Start: t.Start, Length: t.Length, Kind: t.Kind, Line: t.Line}
}

func (t *CanonicalToken) restore() token.Token {
	if t == nil {
		return token.Token{}
	}
	return token.Token{Start: t.Start, Length: t.Length, Kind: t.Kind, Line: t.Line}
}

// EncodeModule serializes mod to canonical CBOR for on-disk caching.
func EncodeModule(mod *Module) ([]byte, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, errors.Wrap(err, "building canonical CBOR encoder")
	}
	cn := toCanonical(mod)
	out, err := enc.Marshal(cn)
	if err != nil {
		return nil, errors.Wrap(err, "encoding module to CBOR")
	}
	return out, nil
}

// DecodeModule parses previously cached canonical CBOR back into a
// *Module. The resulting tree has no Base.Parent links yet; the
// parenthookup semantic pass must still run before resolving anything
// against it, same as a freshly parsed tree.
func DecodeModule(data []byte) (*Module, error) {
	var cn CanonicalNode
	if err := cbor.Unmarshal(data, &cn); err != nil {
		return nil, errors.Wrap(err, "decoding module from CBOR")
	}
	n := fromCanonical(&cn)
	mod, ok := n.(*Module)
	if !ok {
		return nil, errors.Errorf("decoded CBOR root was %q, expected module", cn.Kind)
	}
	return mod, nil
}

func toCanonicalSlice(nodes []Node) []CanonicalNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]CanonicalNode, len(nodes))
	for i, n := range nodes {
		out[i] = *toCanonical(n)
	}
	return out
}

func fromCanonicalSlice(nodes []CanonicalNode) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	for i := range nodes {
		out[i] = fromCanonical(&nodes[i])
	}
	return out
}

func toCanonicalOpt(n Node) *CanonicalNode {
	if n == nil {
		return nil
	}
	return toCanonical(n)
}

func fromCanonicalOpt(cn *CanonicalNode) Node {
	if cn == nil {
		return nil
	}
	return fromCanonical(cn)
}

func baseOf(n Node) (int, int) { return n.NodeBase().Span() }

func toCanonical(n Node) *CanonicalNode {
	first, last := baseOf(n)
	cn := &CanonicalNode{FirstToken: first, LastToken: last}

	switch x := n.(type) {
	case *Module:
		cn.Kind = "module"
		cn.Symbols = toCanonicalSlice(x.Symbols)
		cn.Statements = toCanonicalSlice(x.Statements)
	case *Scope:
		cn.Kind = "scope"
		cn.Statements = toCanonicalSlice(x.Statements)
	case *TypeRef:
		cn.Kind = "typeref"
		for _, c := range x.Components {
			cn.Components = append(cn.Components, *canonToken(c))
		}
	case *Label:
		cn.Kind = "label"
		cn.Name = canonToken(x.Name)
		cn.Doc = canonToken(x.Doc)
		cn.Attributes = toCanonicalSlice(x.Attributes)
	case *Class:
		cn.Kind = "class"
		cn.Name = canonToken(x.Name)
		cn.Doc = canonToken(x.Doc)
		cn.Attributes = toCanonicalSlice(x.Attributes)
		cn.BaseClasses = toCanonicalSlice(x.BaseClasses)
		cn.Members = toCanonicalSlice(x.Members)
	case *Function:
		cn.Kind = "function"
		cn.Name = canonToken(x.Name)
		cn.Doc = canonToken(x.Doc)
		cn.Attributes = toCanonicalSlice(x.Attributes)
		cn.Parameters = toCanonicalSlice(x.Parameters)
		cn.ReturnType = toCanonicalOpt(x.ReturnType)
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
	case *Var:
		cn.Kind = "var"
		cn.Name = canonToken(x.Name)
		cn.Doc = canonToken(x.Doc)
		cn.Attributes = toCanonicalSlice(x.Attributes)
		cn.Type = toCanonicalOpt(x.Type)
		cn.InitialValue = toCanonicalOpt(x.InitialValue)
	case *Parameter:
		cn.Kind = "parameter"
		cn.Name = canonToken(x.Name)
		cn.Attributes = toCanonicalSlice(x.Attributes)
		cn.Type = toCanonicalOpt(x.Type)
		cn.InitialValue = toCanonicalOpt(x.InitialValue)
	case *Property:
		cn.Kind = "property"
		cn.Name = canonToken(x.Name)
		cn.Doc = canonToken(x.Doc)
		cn.Attributes = toCanonicalSlice(x.Attributes)
		cn.Type = toCanonicalOpt(x.Type)
		cn.Getter = toCanonicalOpt(x.Getter)
		cn.Setter = toCanonicalOpt(x.Setter)
		cn.Bool = x.GetterIsExpr
	case *Import:
		cn.Kind = "import"
		cn.Path = canonToken(x.Path)
		cn.As = canonToken(x.As)
	case *Typedef:
		cn.Kind = "typedef"
		cn.Name = canonToken(x.Name)
		cn.Target = toCanonicalOpt(x.Target)
	case *Return:
		cn.Kind = "return"
		cn.Value = toCanonicalOpt(x.Value)
	case *Break:
		cn.Kind = "break"
	case *Goto:
		cn.Kind = "goto"
		cn.Label = canonToken(x.Label)
	case *If:
		cn.Kind = "if"
		cn.Condition = toCanonicalOpt(x.Condition)
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
		cn.ElseClause = toCanonicalOpt(x.ElseClause)
	case *While:
		cn.Kind = "while"
		cn.Condition = toCanonicalOpt(x.Condition)
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
	case *For:
		cn.Kind = "for"
		cn.Name = canonToken(x.Variable)
		cn.IsRange = x.IsRange
		cn.Expression = toCanonicalOpt(x.Expression)
		cn.RangeStart = toCanonicalOpt(x.RangeStart)
		cn.RangeEnd = toCanonicalOpt(x.RangeEnd)
		cn.RangeStep = toCanonicalOpt(x.RangeStep)
		cn.Guard = toCanonicalOpt(x.Guard)
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
	case *MetaBlock:
		cn.Kind = "metablock"
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
	case *Attribute:
		cn.Kind = "attribute"
		cn.Entries = toCanonicalSlice(x.Entries)
	case *BinaryOp:
		cn.Kind = "binop"
		cn.Op = canonToken(x.Operation)
		cn.Left = toCanonicalOpt(x.Left)
		cn.Right = toCanonicalOpt(x.Right)
	case *UnaryOp:
		cn.Kind = "unop"
		cn.Op = canonToken(x.Operation)
		cn.Bool = x.IsPostExpression
		cn.Expression = toCanonicalOpt(x.Expression)
	case *AbsoluteValue:
		cn.Kind = "absval"
		cn.Expression = toCanonicalOpt(x.Expression)
	case *Literal:
		cn.Kind = "literal"
		cn.Token = canonToken(x.Value)
	case *TupleLiteral:
		cn.Kind = "tuple"
		cn.Values = toCanonicalSlice(x.Values)
	case *DictLiteral:
		cn.Kind = "dict"
		cn.Keys = toCanonicalSlice(x.Keys)
		cn.Values = toCanonicalSlice(x.Values)
	case *Lambda:
		cn.Kind = "lambda"
		cn.Parameters = toCanonicalSlice(x.Parameters)
		cn.ReturnType = toCanonicalOpt(x.ReturnType)
		cn.InnerScope = toCanonicalOpt(x.InnerScope)
	case *NameReference:
		cn.Kind = "nameref"
		cn.Name = canonToken(x.Name)
	case *MemberAccess:
		cn.Kind = "member"
		cn.Expression = toCanonicalOpt(x.Expression)
		cn.Member = canonToken(x.Member)
		cn.Synthetic = x.Synthetic
	case *Call:
		cn.Kind = "call"
		cn.Expression = toCanonicalOpt(x.Expression)
		cn.Arguments = toCanonicalSlice(x.Arguments)
	case *Cast:
		cn.Kind = "cast"
		cn.Expression = toCanonicalOpt(x.Expression)
		cn.CastTo = toCanonicalOpt(x.CastTo)
	case *Index:
		cn.Kind = "index"
		cn.Expression = toCanonicalOpt(x.Expression)
		cn.IndexExpr = toCanonicalOpt(x.IndexExpr)
	default:
		panic(errors.Errorf("ast: canonical encoding has no case for %T", n))
	}
	return cn
}

func fromCanonical(cn *CanonicalNode) Node {
	base := Base{FirstToken: cn.FirstToken, LastToken: cn.LastToken}

	switch cn.Kind {
	case "module":
		return &Module{Base: base, Symbols: fromCanonicalSlice(cn.Symbols), Statements: fromCanonicalSlice(cn.Statements)}
	case "scope":
		return &Scope{Base: base, Statements: fromCanonicalSlice(cn.Statements)}
	case "typeref":
		tr := &TypeRef{Base: base}
		for _, c := range cn.Components {
			tr.Components = append(tr.Components, c.restore())
		}
		return tr
	case "label":
		return &Label{Base: base, Name: cn.Name.restore(), Doc: cn.Doc.restore(), Attributes: fromCanonicalSlice(cn.Attributes)}
	case "class":
		return &Class{
			Base: base, Name: cn.Name.restore(), Doc: cn.Doc.restore(),
			Attributes: fromCanonicalSlice(cn.Attributes), BaseClasses: fromCanonicalSlice(cn.BaseClasses),
			Members: fromCanonicalSlice(cn.Members),
		}
	case "function":
		return &Function{
			Base: base, Name: cn.Name.restore(), Doc: cn.Doc.restore(),
			Attributes: fromCanonicalSlice(cn.Attributes), Parameters: fromCanonicalSlice(cn.Parameters),
			ReturnType: fromCanonicalOpt(cn.ReturnType), InnerScope: fromCanonicalOpt(cn.InnerScope),
		}
	case "var":
		return &Var{
			Base: base, Name: cn.Name.restore(), Doc: cn.Doc.restore(),
			Attributes: fromCanonicalSlice(cn.Attributes), Type: fromCanonicalOpt(cn.Type),
			InitialValue: fromCanonicalOpt(cn.InitialValue),
		}
	case "parameter":
		return &Parameter{Var: Var{
			Base: base, Name: cn.Name.restore(), Attributes: fromCanonicalSlice(cn.Attributes),
			Type: fromCanonicalOpt(cn.Type), InitialValue: fromCanonicalOpt(cn.InitialValue),
		}}
	case "property":
		return &Property{
			Base: base, Name: cn.Name.restore(), Doc: cn.Doc.restore(),
			Attributes: fromCanonicalSlice(cn.Attributes), Type: fromCanonicalOpt(cn.Type),
			Getter: fromCanonicalOpt(cn.Getter), Setter: fromCanonicalOpt(cn.Setter), GetterIsExpr: cn.Bool,
		}
	case "import":
		return &Import{Base: base, Path: cn.Path.restore(), As: cn.As.restore()}
	case "typedef":
		return &Typedef{Base: base, Name: cn.Name.restore(), Target: fromCanonicalOpt(cn.Target)}
	case "return":
		return &Return{Base: base, Value: fromCanonicalOpt(cn.Value)}
	case "break":
		return &Break{Base: base}
	case "goto":
		return &Goto{Base: base, Label: cn.Label.restore()}
	case "if":
		return &If{Base: base, Condition: fromCanonicalOpt(cn.Condition), InnerScope: fromCanonicalOpt(cn.InnerScope), ElseClause: fromCanonicalOpt(cn.ElseClause)}
	case "while":
		return &While{Base: base, Condition: fromCanonicalOpt(cn.Condition), InnerScope: fromCanonicalOpt(cn.InnerScope)}
	case "for":
		return &For{
			Base: base, Variable: cn.Name.restore(), IsRange: cn.IsRange,
			Expression: fromCanonicalOpt(cn.Expression), RangeStart: fromCanonicalOpt(cn.RangeStart),
			RangeEnd: fromCanonicalOpt(cn.RangeEnd), RangeStep: fromCanonicalOpt(cn.RangeStep),
			Guard: fromCanonicalOpt(cn.Guard), InnerScope: fromCanonicalOpt(cn.InnerScope),
		}
	case "metablock":
		return &MetaBlock{Base: base, InnerScope: fromCanonicalOpt(cn.InnerScope)}
	case "attribute":
		return &Attribute{Base: base, Entries: fromCanonicalSlice(cn.Entries)}
	case "binop":
		return &BinaryOp{Base: base, Operation: cn.Op.restore(), Left: fromCanonicalOpt(cn.Left), Right: fromCanonicalOpt(cn.Right)}
	case "unop":
		return &UnaryOp{Base: base, Operation: cn.Op.restore(), IsPostExpression: cn.Bool, Expression: fromCanonicalOpt(cn.Expression)}
	case "absval":
		return &AbsoluteValue{Base: base, Expression: fromCanonicalOpt(cn.Expression)}
	case "literal":
		return &Literal{Base: base, Value: cn.Token.restore()}
	case "tuple":
		return &TupleLiteral{Base: base, Values: fromCanonicalSlice(cn.Values)}
	case "dict":
		return &DictLiteral{Base: base, Keys: fromCanonicalSlice(cn.Keys), Values: fromCanonicalSlice(cn.Values)}
	case "lambda":
		return &Lambda{Base: base, Parameters: fromCanonicalSlice(cn.Parameters), ReturnType: fromCanonicalOpt(cn.ReturnType), InnerScope: fromCanonicalOpt(cn.InnerScope)}
	case "nameref":
		return &NameReference{Base: base, Name: cn.Name.restore()}
	case "member":
		return &MemberAccess{Base: base, Expression: fromCanonicalOpt(cn.Expression), Member: cn.Member.restore(), Synthetic: cn.Synthetic}
	case "call":
		return &Call{Base: base, Expression: fromCanonicalOpt(cn.Expression), Arguments: fromCanonicalSlice(cn.Arguments)}
	case "cast":
		return &Cast{Base: base, Expression: fromCanonicalOpt(cn.Expression), CastTo: fromCanonicalOpt(cn.CastTo)}
	case "index":
		return &Index{Base: base, Expression: fromCanonicalOpt(cn.Expression), IndexExpr: fromCanonicalOpt(cn.IndexExpr)}
	default:
		panic(errors.Errorf("ast: canonical decoding has no case for kind %q", cn.Kind))
	}
}
