// Package symtab implements Brandy's symbol model: the closed set of
// symbol kinds a declaration can introduce, and the lexical scope stack
// the symbol-table-filler semantic pass builds while walking a module.
package symtab

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/types"
)

// Symbol is the closed family of things a name can resolve to, mirrored
// from original_source/src/symbols/symbol.h's is_label()/is_variable()/
// etc. predicate family, expressed as a Go type switch target instead
// of a virtual predicate per subtype.
type Symbol interface {
	SymbolName() string
	// Decl is the declaring AST node, nil for built-in symbols that were
	// never written in source (a built-in type has none; an injected
	// setter "value" parameter or an implicitly declared variable does).
	Decl() ast.Node
}

type base struct {
	name string
	decl ast.Node
}

func (b *base) SymbolName() string { return b.name }
func (b *base) Decl() ast.Node     { return b.decl }

// Label names a goto target within its enclosing function body.
type Label struct {
	base
}

func NewLabel(name string, decl ast.Node) *Label { return &Label{base{name, decl}} }

// Variable is a var declaration (including an implicitly-created one:
// an assignment to a bare name that no enclosing scope binds declares
// it in the innermost scope, module level included).
type Variable struct {
	base
	Type    types.Type // nil until the resolver pass assigns it
	Implicit bool
}

func NewVariable(name string, decl ast.Node) *Variable { return &Variable{base: base{name, decl}} }

// Property is a get/set pair bound to a name.
type Property struct {
	base
	Type          types.Type
	Getter, Setter *ConcreteFunction
}

func NewProperty(name string, decl ast.Node) *Property { return &Property{base: base{name, decl}} }

// ConcreteFunction is one overload: a fixed parameter list and resolved
// (or still-inferring) return type.
type ConcreteFunction struct {
	base
	Params  []*Variable
	Returns types.Type
	// Resolving is set while the resolver pass is inferring this
	// function's own return type and recurses into a call of it before
	// finishing — used to detect unsupported recursive return-type
	// inference rather than looping forever.
	Resolving bool
}

func NewConcreteFunction(name string, decl ast.Node) *ConcreteFunction {
	return &ConcreteFunction{base: base{name, decl}}
}

// Function is the overload set a name resolves to before the call's
// argument count narrows it to one ConcreteFunction (spec.md §4.5
// overload resolution).
type Function struct {
	base
	Overloads []*ConcreteFunction
}

func NewFunction(name string) *Function { return &Function{base: base{name: name}} }

// ClassType wraps a types.ClassType as a Symbol so a class declaration
// can be entered into the surrounding scope under its own name.
type ClassType struct {
	base
	Type *types.ClassType
}

func NewClassType(name string, decl ast.Node, t *types.ClassType) *ClassType {
	return &ClassType{base: base{name, decl}, Type: t}
}

// BuiltinType wraps one of the types.Builtins singletons as a Symbol so
// it can live in the root scope alongside user declarations.
type BuiltinType struct {
	base
	Type types.Type
}

func NewBuiltinType(name string, t types.Type) *BuiltinType {
	return &BuiltinType{base: base{name: name}, Type: t}
}

// Import binds a module path to a name. It records only the path and
// holds no reference to the imported module's scope, so member access
// through an import name does not resolve.
type Import struct {
	base
	Path string
}

func NewImport(name, path string, decl ast.Node) *Import {
	return &Import{base: base{name, decl}, Path: path}
}

// Typedef is an alias name — per the Open Question decision in
// SPEC_FULL.md §3.6, it is kept as its own distinct symbol kind rather
// than folded into ClassType. The symtabfiller pass creates it with a
// nil Target and no pass fills Target in, so a typedef name resolves
// to no type.
type Typedef struct {
	base
	Target types.Type
}

func NewTypedef(name string, decl ast.Node, target types.Type) *Typedef {
	return &Typedef{base: base{name, decl}, Target: target}
}

// Scope is one lexical level: module, class body, function body, or
// nested block. Parent is nil only for the module-root scope.
type Scope struct {
	Parent  *Scope
	Table   map[string]Symbol
	IsClass bool // marks a class body; Lookup still searches enclosing scopes
}

func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, Table: map[string]Symbol{}}
}

// Declare inserts sym under its own name, reporting ok=false without
// modifying the scope if the name is already bound in this exact scope
// (shadowing an outer scope's binding is allowed; redeclaring within
// the same scope is the duplicate-symbol error spec.md §4.5 names).
func (s *Scope) Declare(sym Symbol) (ok bool) {
	if _, exists := s.Table[sym.SymbolName()]; exists {
		return false
	}
	s.Table[sym.SymbolName()] = sym
	return true
}

// Lookup searches s and its ancestor chain, innermost first.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.Table[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Names returns every name bound directly in s (not ancestors), used by
// the diagnostics package's fuzzy-suggestion search.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.Table))
	for n := range s.Table {
		names = append(names, n)
	}
	return names
}
