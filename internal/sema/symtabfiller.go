package sema

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/diag"
	"github.com/ImOnALampshade/brandy/internal/symtab"
	"github.com/ImOnALampshade/brandy/internal/token"
	"github.com/ImOnALampshade/brandy/internal/visitor"
)

// filler builds the scope tree and declares every symbol it finds, pre-
// order, one *filler per lexical level (same child-visitor-plus-Stop
// technique as parentSetter — scope push/pop needs a stack discipline
// the single-pass Resume auto-recursion can't express on its own).
//
// It deliberately does not walk into MetaBlock's body at all (the Open
// Question resolution recorded in SPEC_FULL.md §3.6: meta-programming
// evaluation is a separate, out-of-scope stage), and it does not
// resolve any reference — that is the resolver pass's job. The one
// exception is assignment: spec.md §4.5 has a bare-name assignment
// target that resolves to nothing in any enclosing scope implicitly
// declare a Variable, which has to happen here (symbol declaration),
// not in the resolver (symbol lookup).
type filler struct {
	ast.BaseVisitor
	src   []byte
	scope *symtab.Scope
	info  *Info
	diags *diag.Collector
}

func fillSymbolTable(mod *ast.Module, src []byte, info *Info, coll *diag.Collector) {
	v := &filler{src: src, info: info, diags: coll}
	v.Self = v
	v.VisitModule(mod)
}

func (f *filler) name(t token.Token) string { return string(t.Text(f.src)) }

func (f *filler) child(scope *symtab.Scope) *filler {
	c := &filler{src: f.src, scope: scope, info: f.info, diags: f.diags}
	c.Self = c
	return c
}

func (f *filler) declare(sym symtab.Symbol, tokenIdxNode ast.Node) {
	if !f.scope.Declare(sym) {
		f.diags.Report(diag.Diagnostic{
			Message:  "redeclaration of \"" + sym.SymbolName() + "\"",
			Severity: diag.Error,
		})
		return
	}
	f.info.Symbols[tokenIdxNode] = sym
}

func (f *filler) VisitModule(n *ast.Module) visitor.Result {
	sc := symtab.NewScope(nil)
	f.info.Scopes[n] = sc
	child := f.child(sc)
	for i := range n.Symbols {
		ast.Walk(&n.Symbols[i], child)
	}
	for i := range n.Statements {
		ast.Walk(&n.Statements[i], child)
	}
	return visitor.Stop
}

// VisitScope introduces one new lexical block per brace pair. Brandy
// mixes declarations and statements freely inside a block (trySymbol is
// tried before acceptStatement at every position, see
// parser.acceptScope), so both lists funnel through the same child
// filler.
func (f *filler) VisitScope(n *ast.Scope) visitor.Result {
	sc := symtab.NewScope(f.scope)
	f.info.Scopes[n] = sc
	child := f.child(sc)
	for i := range n.Statements {
		ast.Walk(&n.Statements[i], child)
	}
	return visitor.Stop
}

func (f *filler) VisitClass(n *ast.Class) visitor.Result {
	sym := symtab.NewClassType(f.name(n.Name), n, nil)
	f.declare(sym, n)

	for i := range n.Attributes {
		ast.Walk(&n.Attributes[i], f)
	}
	for i := range n.BaseClasses {
		ast.Walk(&n.BaseClasses[i], f)
	}

	classScope := symtab.NewScope(f.scope)
	classScope.IsClass = true
	f.info.Scopes[n] = classScope
	child := f.child(classScope)
	for i := range n.Members {
		ast.Walk(&n.Members[i], child)
	}
	return visitor.Stop
}

func (f *filler) VisitFunction(n *ast.Function) visitor.Result {
	fn := symtab.NewConcreteFunction(f.name(n.Name), n)
	f.declare(fn, n)

	for i := range n.Attributes {
		ast.Walk(&n.Attributes[i], f)
	}

	paramScope := symtab.NewScope(f.scope)
	child := f.child(paramScope)
	for i := range n.Parameters {
		ast.Walk(&n.Parameters[i], child)
	}
	if n.ReturnType != nil {
		ast.Walk(&n.ReturnType, child)
	}
	f.info.Scopes[n] = paramScope
	ast.Walk(&n.InnerScope, child)
	return visitor.Stop
}

func (f *filler) VisitLambda(n *ast.Lambda) visitor.Result {
	paramScope := symtab.NewScope(f.scope)
	child := f.child(paramScope)
	for i := range n.Parameters {
		ast.Walk(&n.Parameters[i], child)
	}
	if n.ReturnType != nil {
		ast.Walk(&n.ReturnType, child)
	}
	f.info.Scopes[n] = paramScope
	ast.Walk(&n.InnerScope, child)
	return visitor.Stop
}

func (f *filler) VisitParameter(n *ast.Parameter) visitor.Result {
	sym := symtab.NewVariable(f.name(n.Name), n)
	f.declare(sym, n)
	if n.Type != nil {
		ast.Walk(&n.Type, f)
	}
	if n.InitialValue != nil {
		ast.Walk(&n.InitialValue, f)
	}
	return visitor.Stop
}

func (f *filler) VisitVar(n *ast.Var) visitor.Result {
	sym := symtab.NewVariable(f.name(n.Name), n)
	f.declare(sym, n)
	for i := range n.Attributes {
		ast.Walk(&n.Attributes[i], f)
	}
	if n.Type != nil {
		ast.Walk(&n.Type, f)
	}
	if n.InitialValue != nil {
		ast.Walk(&n.InitialValue, f)
	}
	return visitor.Stop
}

func (f *filler) VisitProperty(n *ast.Property) visitor.Result {
	sym := symtab.NewProperty(f.name(n.Name), n)
	f.declare(sym, n)

	for i := range n.Attributes {
		ast.Walk(&n.Attributes[i], f)
	}
	if n.Type != nil {
		ast.Walk(&n.Type, f)
	}

	if fn, ok := n.Getter.(*ast.Function); ok && fn != nil {
		scope := symtab.NewScope(f.scope)
		child := f.child(scope)
		f.info.Scopes[fn] = scope
		ast.Walk(&fn.InnerScope, child)
	}
	if fn, ok := n.Setter.(*ast.Function); ok && fn != nil {
		scope := symtab.NewScope(f.scope)
		child := f.child(scope)
		if len(fn.Parameters) == 0 {
			// no explicit setter parameter was written: inject the
			// implicit "value" parameter, per spec.md §4.5.
			implicit := &ast.Parameter{Var: ast.Var{
				Base: ast.Base{FirstToken: fn.FirstToken, LastToken: fn.FirstToken},
				Name: token.Token{Kind: token.Identifier, Start: fn.FirstToken, Length: 5, Line: 0},
			}}
			fn.Parameters = []ast.Node{implicit}
			// Name's span marks the setter keyword rather than bytes
			// spelling "value", so the symbol is declared under that
			// fixed name here instead of via VisitParameter's text lookup.
			child.declare(symtab.NewVariable("value", implicit), implicit)
		} else {
			for i := range fn.Parameters {
				ast.Walk(&fn.Parameters[i], child)
			}
		}
		f.info.Scopes[fn] = scope
		ast.Walk(&fn.InnerScope, child)
	}
	return visitor.Stop
}

func (f *filler) VisitLabel(n *ast.Label) visitor.Result {
	f.declare(symtab.NewLabel(f.name(n.Name), n), n)
	for i := range n.Attributes {
		ast.Walk(&n.Attributes[i], f)
	}
	return visitor.Stop
}

func (f *filler) VisitImport(n *ast.Import) visitor.Result {
	alias := f.name(n.Path)
	if n.As.Kind == token.Identifier {
		alias = f.name(n.As)
	}
	f.declare(symtab.NewImport(alias, f.name(n.Path), n), n)
	return visitor.Stop
}

func (f *filler) VisitTypedef(n *ast.Typedef) visitor.Result {
	f.declare(symtab.NewTypedef(f.name(n.Name), n, nil), n)
	ast.Walk(&n.Target, f)
	return visitor.Stop
}

// VisitMetaBlock intentionally does not recurse: meta-block contents
// are never entered into the symbol table.
func (f *filler) VisitMetaBlock(n *ast.MetaBlock) visitor.Result {
	return visitor.Stop
}

// VisitBinaryOp catches plain "=" assignment to a bare, not-yet-
// declared name and implicitly declares it as a Variable in the current
// scope, per spec.md §4.5. Every other binary operator was already
// lowered to a Call by the previous pass, so only assignment forms ever
// reach here.
func (f *filler) VisitBinaryOp(n *ast.BinaryOp) visitor.Result {
	if n.Operation.Kind == token.Assign || n.Operation.Kind == token.AssignCreate {
		if ref, ok := n.Left.(*ast.NameReference); ok {
			name := f.name(ref.Name)
			if _, found := f.scope.Lookup(name); !found {
				v := symtab.NewVariable(name, ref)
				v.Implicit = true
				f.scope.Declare(v)
				f.info.Symbols[ref] = v
			}
		}
	}
	return visitor.Resume
}
