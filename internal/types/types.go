// Package types implements Brandy's type lattice: the built-in
// primitive types, numeric widening, and the common_type computation
// used to unify branches of control flow and to type-check assignment.
package types

import "fmt"

// Type is satisfied by every type in the lattice: Brandy's built-in
// primitives, user-declared classes, function types, and the
// meta-circular "type" type itself.
type Type interface {
	Name() string
	// CommonType returns the narrowest type both t and other can be
	// treated as, and false if no common type exists. For two classes
	// with no shared ancestor it returns Object rather than false.
	CommonType(other Type) (Type, bool)
	// GetMember looks up a member by name, returning (nil, false) if
	// this type (and, for classes, none of its base classes) declares
	// one.
	GetMember(name string) (Symbol, bool)
}

// Symbol is the minimal surface types.go needs from internal/symtab
// without importing it (symtab imports types, not the reverse — see
// the sema package doc on the ast/types/symtab layering).
type Symbol interface {
	SymbolName() string
}

// Primitive is a built-in scalar type: an integer/float width, the
// boolean, string, regex, char, void, or null type.
type Primitive struct {
	name       string
	flags      Flags
	bits       int // 0 for non-numeric primitives
	rank       int // widening rank among same-signedness numeric types; -1 if not numeric
	membersFn  func(name string) (Symbol, bool)
}

// Flags mirrors original_source/src/type.h's bitset: a type can be
// simultaneously class/struct/interface flavored, abstract,
// inheritable, and (for primitives) further classified as numeric,
// unsigned, or floating point.
type Flags uint16

const (
	FlagClass Flags = 1 << iota
	FlagStruct
	FlagInterface
	FlagAbstract
	FlagInheritable
	FlagPrimitive
	FlagInt
	FlagUnsigned
	FlagFloat
)

func (p *Primitive) Name() string { return p.name }

func (p *Primitive) GetMember(name string) (Symbol, bool) {
	if p.membersFn == nil {
		return nil, false
	}
	return p.membersFn(name)
}

// CommonType implements spec.md §3's numeric widening table: between
// two numeric primitives of like signedness, the wider of the two bit
// widths wins; a signed/unsigned mix or a mix with a float widens to
// the float; any two identical primitives are themselves their own
// common type; anything else has no common primitive type.
func (p *Primitive) CommonType(other Type) (Type, bool) {
	if p == other {
		return p, true
	}
	o, ok := other.(*Primitive)
	if !ok {
		return nil, false
	}
	if p.rank < 0 || o.rank < 0 {
		return nil, false
	}

	switch {
	case p.flags&FlagFloat != 0 || o.flags&FlagFloat != 0:
		if p.flags&FlagFloat != 0 && o.flags&FlagFloat != 0 {
			if p.bits >= o.bits {
				return p, true
			}
			return o, true
		}
		if p.flags&FlagFloat != 0 {
			return p, true
		}
		return o, true
	case (p.flags&FlagUnsigned != 0) != (o.flags&FlagUnsigned != 0):
		// signed/unsigned mix widens to the first float wide enough;
		// Brandy keeps this simple and widens straight to f64, matching
		// the original compiler's conservative mixed-sign rule.
		return F64, true
	default:
		if p.bits >= o.bits {
			return p, true
		}
		return o, true
	}
}

func newIntType(name string, bits int, unsigned bool, rank int) *Primitive {
	flags := FlagPrimitive | FlagInt
	if unsigned {
		flags |= FlagUnsigned
	}
	return &Primitive{name: name, flags: flags, bits: bits, rank: rank, membersFn: numericOperatorMember}
}

func newFloatType(name string, bits int, rank int) *Primitive {
	return &Primitive{name: name, flags: FlagPrimitive | FlagFloat, bits: bits, rank: rank, membersFn: numericOperatorMember}
}

// OperatorSymbol is the Symbol a builtin numeric type's arithmetic,
// comparison, and bitwise operator methods (binoplowering's "@add"-style
// names) resolve to. Numeric operators have no user-visible declaration
// site and no signature recorded in any symbol table, so unlike every
// other Symbol kind its resulting_type isn't carried on the symbol
// itself — ResultType computes it on demand from the operand types the
// resolver has on hand at the call site.
type OperatorSymbol struct {
	name       string
	comparison bool
}

func (o *OperatorSymbol) SymbolName() string { return o.name }

// ResultType is base for a unary operator (and for a binary operator
// applied with no known argument type), the common_type of base and
// args[0] for a binary arithmetic/bitwise operator, and always Bool for
// a comparison operator, per spec.md §3.
func (o *OperatorSymbol) ResultType(base Type, args []Type) Type {
	if o.comparison {
		return Bool
	}
	if len(args) == 0 || args[0] == nil {
		return base
	}
	if ct, ok := base.CommonType(args[0]); ok {
		return ct
	}
	return base
}

var comparisonOperatorNames = map[string]bool{
	"@equals": true, "@notEquals": true, "@approxEquals": true, "@approxNotEquals": true,
	"@lessThan": true, "@greaterThan": true, "@lessThanOrEqual": true, "@greaterThanOrEqual": true,
	"@approxLessThan": true, "@approxGreaterThan": true,
	"@approxLessThanOrEqual": true, "@approxGreaterThanOrEqual": true,
}

var numericOperatorNames = map[string]bool{
	"@add": true, "@subtract": true, "@multiply": true, "@divide": true,
	"@modulo": true, "@floorModulo": true, "@exponent": true,
	"@equals": true, "@notEquals": true, "@approxEquals": true, "@approxNotEquals": true,
	"@lessThan": true, "@greaterThan": true, "@lessThanOrEqual": true, "@greaterThanOrEqual": true,
	"@approxLessThan": true, "@approxGreaterThan": true,
	"@approxLessThanOrEqual": true, "@approxGreaterThanOrEqual": true,
	"@bitAnd": true, "@bitOr": true, "@bitXor": true, "@bitNot": true,
	"@shiftLeft": true, "@shiftRight": true, "@logicalShiftLeft": true, "@logicalShiftRight": true,
	"@negate": true, "@unaryPlus": true,
	"@preIncrement": true, "@preDecrement": true, "@postIncrement": true, "@postDecrement": true,
}

// numericOperatorMember is the membersFn every numeric Primitive shares,
// so operator-lowered calls on a builtin numeric operand resolve to a
// member instead of reporting "type iN has no member @add".
func numericOperatorMember(name string) (Symbol, bool) {
	if numericOperatorNames[name] {
		return &OperatorSymbol{name: name, comparison: comparisonOperatorNames[name]}, true
	}
	return nil, false
}

// Built-in type singletons, grounded on original_source/src/type.h's
// externs (boolean, i8..i64, ui8..ui64, f32, f64, string, object,
// type_type, void_type) plus char/regex/null which the AST's literal
// kinds (token.CharLit, token.RegexLit) require a target type for.
var (
	Void   = &Primitive{name: "void", flags: 0, rank: -1}
	Null   = &Primitive{name: "null", flags: 0, rank: -1}
	Bool   = &Primitive{name: "bool", flags: FlagPrimitive, rank: -1}
	Char   = &Primitive{name: "char", flags: FlagPrimitive | FlagInt, bits: 8, rank: 0, membersFn: numericOperatorMember}
	String = &Primitive{name: "string", flags: FlagPrimitive, rank: -1}
	Regex  = &Primitive{name: "regex", flags: FlagPrimitive, rank: -1}

	I8  = newIntType("i8", 8, false, 0)
	I16 = newIntType("i16", 16, false, 1)
	I32 = newIntType("i32", 32, false, 2)
	I64 = newIntType("i64", 64, false, 3)

	U8  = newIntType("u8", 8, true, 0)
	U16 = newIntType("u16", 16, true, 1)
	U32 = newIntType("u32", 32, true, 2)
	U64 = newIntType("u64", 64, true, 3)

	F32 = newFloatType("f32", 32, 0)
	F64 = newFloatType("f64", 64, 1)

	// Object is the universal common ancestor every user class chain
	// eventually reaches.
	Object = &ClassType{name: "object", flags: FlagClass | FlagInheritable}

	// TypeType is the type of a type-valued expression (e.g. the operand
	// of "sizeof"/"alignof" or a typedef's target), object's meta-level
	// sibling.
	TypeType = &Primitive{name: "type", flags: FlagPrimitive, rank: -1}

	// ImportType is the type of a resolved "import" binding, whose only
	// legal use is as the left operand of a MemberAccess.
	ImportType = &Primitive{name: "import", flags: 0, rank: -1}
)

// ClassType is a user-declared class or interface. BaseClasses are
// walked by CommonType to find the first shared ancestor, defaulting to
// Object when the two classes share nothing more specific.
type ClassType struct {
	name        string
	flags       Flags
	BaseClasses []*ClassType
	Members     map[string]Symbol
}

func NewClassType(name string, flags Flags) *ClassType {
	return &ClassType{name: name, flags: flags, Members: map[string]Symbol{}}
}

func (c *ClassType) Name() string { return c.name }

func (c *ClassType) GetMember(name string) (Symbol, bool) {
	if s, ok := c.Members[name]; ok {
		return s, true
	}
	for _, base := range c.BaseClasses {
		if s, ok := base.GetMember(name); ok {
			return s, true
		}
	}
	return nil, false
}

// ancestors returns c's base-class chain from c itself up to Object,
// used by CommonType's shared-ancestor walk.
func (c *ClassType) ancestors() []*ClassType {
	var chain []*ClassType
	cur := c
	for cur != nil {
		chain = append(chain, cur)
		if len(cur.BaseClasses) == 0 {
			if cur != Object {
				chain = append(chain, Object)
			}
			break
		}
		cur = cur.BaseClasses[0] // single-inheritance walk; multiple bases share Object regardless
	}
	return chain
}

func (c *ClassType) CommonType(other Type) (Type, bool) {
	if c == other {
		return c, true
	}
	o, ok := other.(*ClassType)
	if !ok {
		return nil, false
	}

	mine := c.ancestors()
	theirs := make(map[*ClassType]bool, len(o.ancestors()))
	for _, a := range o.ancestors() {
		theirs[a] = true
	}
	for _, a := range mine {
		if theirs[a] {
			return a, true
		}
	}
	return Object, true
}

// FunctionType represents a callable's signature for overload
// resolution purposes (spec.md §4.5).
type FunctionType struct {
	Params  []Type
	Returns Type
}

func (f *FunctionType) Name() string {
	return fmt.Sprintf("func(%d params) -> %s", len(f.Params), f.Returns.Name())
}

func (f *FunctionType) GetMember(string) (Symbol, bool) { return nil, false }

func (f *FunctionType) CommonType(other Type) (Type, bool) {
	if f == other {
		return f, true
	}
	return nil, false
}

// Builtins is every built-in type singleton, keyed by its Brandy source
// name, used to resolve a TypeRef's leading component before falling
// back to the user-declared symbol table.
var Builtins = map[string]Type{
	"void": Void, "null": Null, "bool": Bool, "char": Char, "string": String,
	"regex": Regex, "i8": I8, "i16": I16, "i32": I32, "i64": I64,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
	"f32": F32, "f64": F64, "object": Object, "type": TypeType,
}
