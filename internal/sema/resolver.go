package sema

import (
	"strconv"

	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/diag"
	"github.com/ImOnALampshade/brandy/internal/symtab"
	"github.com/ImOnALampshade/brandy/internal/token"
	"github.com/ImOnALampshade/brandy/internal/types"
	"github.com/ImOnALampshade/brandy/internal/visitor"
)

// resolver is a plain forwarding ast.Visitor (no scope stack of its
// own): the scope a given node resolves names against is recovered on
// demand by walking Base.Parent (set by the earlier parenthookup pass)
// up to the nearest ancestor the symtabfiller pass recorded a
// symtab.Scope for. This lets resolver ride the ordinary
// Resume-then-auto-recurse path every other pass but parenthookup and
// symtabfiller uses, instead of needing its own push/pop plumbing.
type resolver struct {
	ast.BaseVisitor
	src   []byte
	info  *Info
	diags *diag.Collector
	// pendingOps holds the OperatorSymbol an operator-lowered
	// MemberAccess resolved to, for VisitCall to read back once the
	// argument types are known (see VisitMemberAccess).
	pendingOps map[*ast.MemberAccess]*types.OperatorSymbol
	// resolvedFns guards a function's body against being walked twice:
	// once when the resolver's ordinary top-down walk reaches its
	// declaration, and once more if a call earlier in the walk already
	// forced its return type on demand (VisitCall).
	resolvedFns map[*symtab.ConcreteFunction]bool
}

func resolveNames(mod *ast.Module, src []byte, info *Info, coll *diag.Collector) {
	v := &resolver{
		src:         src,
		info:        info,
		diags:       coll,
		pendingOps:  map[*ast.MemberAccess]*types.OperatorSymbol{},
		resolvedFns: map[*symtab.ConcreteFunction]bool{},
	}
	v.Self = v
	var slot ast.Node = mod
	ast.Walk(&slot, v)
}

// VisitMetaBlock does not recurse: symtabfiller builds no scopes inside a
// meta block, so its names are left unresolved here too.
func (r *resolver) VisitMetaBlock(*ast.MetaBlock) visitor.Result { return visitor.Stop }

func scopeFor(info *Info, n ast.Node) *symtab.Scope {
	for cur := n; cur != nil; cur = cur.NodeBase().Parent {
		if sc, ok := info.Scopes[cur]; ok {
			return sc
		}
	}
	return nil
}

// visibleNames collects every name visible from sc outward, for fuzzy
// "did you mean" suggestions on a failed lookup.
func visibleNames(sc *symtab.Scope) []string {
	var names []string
	for cur := sc; cur != nil; cur = cur.Parent {
		names = append(names, cur.Names()...)
	}
	return names
}

func symbolType(sym symtab.Symbol) types.Type {
	switch s := sym.(type) {
	case *symtab.Variable:
		return s.Type
	case *symtab.Property:
		return s.Type
	case *symtab.ClassType:
		return s.Type
	case *symtab.BuiltinType:
		return s.Type
	case *symtab.Typedef:
		return s.Target
	case *symtab.ConcreteFunction:
		params := make([]types.Type, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Type
		}
		return &types.FunctionType{Params: params, Returns: s.Returns}
	default:
		return nil
	}
}

// literalType maps a literal token's kind to its builtin type, per
// spec.md §3's literal-to-type table.
var literalType = map[token.Kind]types.Type{
	token.IntLit:    types.I32,
	token.UIntLit:   types.U32,
	token.FloatLit:  types.F64,
	token.StringLit: types.String,
	token.CharLit:   types.Char,
	token.RegexLit:  types.Regex,
	token.BoolLit:   types.Bool,
	token.KwNull:    types.Null,
}

func (r *resolver) VisitLiteral(n *ast.Literal) visitor.Result {
	if t, ok := literalType[n.Value.Kind]; ok {
		r.info.Types[n] = t
	}
	return visitor.Resume
}

// resolveVarLike resolves a Var/Parameter's declared type (or, absent
// one, infers it from InitialValue) and back-fills the symtab.Variable
// the filler pass already declared for it — without this, every
// NameReference to the variable resolves to a Variable whose Type is
// permanently nil, per symbolType (resolver.go). key is the node the
// filler pass used as the Info.Symbols/Scopes lookup key (a *ast.Var or
// *ast.Parameter); v is its embedded/own Var fields.
func (r *resolver) resolveVarLike(key ast.Node, v *ast.Var) {
	for i := range v.Attributes {
		ast.WalkRO(v.Attributes[i], r)
	}

	var declared types.Type
	if v.Type != nil {
		if t, ok := r.resolveTypeRef(v.Type, key); ok {
			declared = t
			r.info.Types[v.Type] = t
		}
	}
	if v.InitialValue != nil {
		ast.WalkRO(v.InitialValue, r)
	}

	t := declared
	if t == nil && v.InitialValue != nil {
		t = r.info.Types[v.InitialValue]
	}
	if t == nil {
		return
	}
	r.info.Types[key] = t
	if sym, ok := r.info.Symbols[key]; ok {
		if vv, ok := sym.(*symtab.Variable); ok {
			vv.Type = t
		}
	}
}

func (r *resolver) VisitVar(n *ast.Var) visitor.Result {
	r.resolveVarLike(n, n)
	return visitor.Stop
}

func (r *resolver) VisitParameter(n *ast.Parameter) visitor.Result {
	r.resolveVarLike(n, &n.Var)
	return visitor.Stop
}

func (r *resolver) VisitNameReference(n *ast.NameReference) visitor.Result {
	name := string(n.Name.Text(r.src))
	sc := scopeFor(r.info, n)
	if sc == nil {
		return visitor.Resume
	}
	sym, ok := sc.Lookup(name)
	if !ok {
		if bt, builtin := types.Builtins[name]; builtin {
			sym = symtab.NewBuiltinType(name, bt)
			ok = true
		}
	}
	if !ok {
		d := diag.Diagnostic{Message: "undeclared name \"" + name + "\"", Severity: diag.Error}
		d.Suggestion = diag.SuggestName(name, visibleNames(sc))
		r.diags.Report(d)
		return visitor.Resume
	}
	r.info.Symbols[n] = sym
	if t := symbolType(sym); t != nil {
		r.info.Types[n] = t
	}
	return visitor.Resume
}

func (r *resolver) VisitMemberAccess(n *ast.MemberAccess) visitor.Result {
	ast.WalkRO(n.Expression, r)

	baseType, ok := r.info.Types[n.Expression]
	if !ok {
		return visitor.Resume // base didn't resolve; already diagnosed
	}

	name := n.Synthetic
	if name == "" {
		name = string(n.Member.Text(r.src))
	}
	sym, found := baseType.GetMember(name)
	if !found {
		r.diags.Report(diag.Diagnostic{
			Message:  "type " + baseType.Name() + " has no member \"" + name + "\"",
			Severity: diag.Error,
		})
		return visitor.Stop
	}
	if op, ok := sym.(*types.OperatorSymbol); ok {
		// Operator members have no declaration site and no fixed
		// signature, so there's nothing to record in Info.Symbols;
		// stash the symbol itself for VisitCall to compute a
		// resulting_type from once it has the argument types too.
		r.pendingOps[n] = op
		return visitor.Stop
	}
	if ss, ok := sym.(symtab.Symbol); ok {
		r.info.Symbols[n] = ss
		if t := symbolType(ss); t != nil {
			r.info.Types[n] = t
		}
	}
	return visitor.Stop
}

func (r *resolver) VisitCall(n *ast.Call) visitor.Result {
	ast.WalkRO(n.Expression, r)
	for _, arg := range n.Arguments {
		ast.WalkRO(arg, r)
	}

	if ma, isMember := n.Expression.(*ast.MemberAccess); isMember {
		if op, ok := r.pendingOps[ma]; ok {
			if base, ok := r.info.Types[ma.Expression]; ok {
				argTypes := make([]types.Type, len(n.Arguments))
				for i, arg := range n.Arguments {
					argTypes[i] = r.info.Types[arg]
				}
				r.info.Types[n] = op.ResultType(base, argTypes)
			}
			return visitor.Stop
		}
	}

	callee, ok := r.info.Symbols[n.Expression]
	if !ok {
		return visitor.Stop
	}

	switch c := callee.(type) {
	case *symtab.ConcreteFunction:
		r.resolveFunctionBody(c)
		r.checkArity(n, c.Params, c.Returns)
	case *symtab.Function:
		match := selectOverload(c.Overloads, len(n.Arguments))
		if match == nil {
			r.diags.Report(diag.Diagnostic{
				Message:  "no overload of \"" + c.SymbolName() + "\" takes " + strconv.Itoa(len(n.Arguments)) + " argument(s)",
				Severity: diag.Error,
			})
			return visitor.Stop
		}
		r.info.Symbols[n] = match
		r.resolveFunctionBody(match)
		r.checkArity(n, match.Params, match.Returns)
	}
	return visitor.Stop
}

func (r *resolver) checkArity(n *ast.Call, params []*symtab.Variable, returns types.Type) {
	if len(params) != len(n.Arguments) {
		r.diags.Report(diag.Diagnostic{
			Message:  "expected " + strconv.Itoa(len(params)) + " argument(s), got " + strconv.Itoa(len(n.Arguments)),
			Severity: diag.Error,
		})
	}
	if returns != nil {
		r.info.Types[n] = returns
	}
}

func selectOverload(overloads []*symtab.ConcreteFunction, argc int) *symtab.ConcreteFunction {
	for _, o := range overloads {
		if len(o.Params) == argc {
			return o
		}
	}
	return nil
}

// resolveTypeRef resolves a TypeRef's leading component to a
// types.Type: the builtins table first, then a lookup in the scope
// enclosing scopeNode. It reports an "undeclared type" diagnostic when
// neither finds it, whether ref is a cast target or a declared return
// type.
func (r *resolver) resolveTypeRef(ref ast.Node, scopeNode ast.Node) (types.Type, bool) {
	tr, ok := ref.(*ast.TypeRef)
	if !ok || len(tr.Components) == 0 {
		return nil, false
	}
	name := string(tr.Components[0].Text(r.src))
	if bt, ok := types.Builtins[name]; ok {
		return bt, true
	}

	sc := scopeFor(r.info, scopeNode)
	if sc == nil {
		return nil, false
	}
	sym, ok := sc.Lookup(name)
	if !ok {
		r.diags.Report(diag.Diagnostic{Message: "undeclared type \"" + name + "\"", Severity: diag.Error})
		return nil, false
	}
	t := symbolType(sym)
	return t, t != nil
}

func (r *resolver) VisitCast(n *ast.Cast) visitor.Result {
	ast.WalkRO(n.Expression, r)
	if t, ok := r.resolveTypeRef(n.CastTo, n); ok {
		r.info.Types[n] = t
		r.info.Types[n.CastTo] = t
	}
	return visitor.Stop
}

func (r *resolver) VisitIndex(n *ast.Index) visitor.Result {
	ast.WalkRO(n.Expression, r)
	ast.WalkRO(n.IndexExpr, r)

	baseType, ok := r.info.Types[n.Expression]
	if !ok {
		return visitor.Stop
	}
	sym, found := baseType.GetMember("@index")
	if !found {
		r.diags.Report(diag.Diagnostic{
			Message:  "type " + baseType.Name() + " does not support indexing",
			Severity: diag.Error,
		})
		return visitor.Stop
	}
	if fn, ok := sym.(*symtab.ConcreteFunction); ok && fn.Returns != nil {
		r.info.Types[n] = fn.Returns
	}
	return visitor.Stop
}

// VisitFunction drives return-type resolution for a named function
// declaration: resolveFunctionBody both resolves a declared return type
// and, when one is absent, infers it (spec.md §4.5). A Function node
// with no declared symbol (a property getter/setter, which symtabfiller
// never enters into the symbol table under its own name) falls through
// to the ordinary auto-recursing walk instead.
func (r *resolver) VisitFunction(n *ast.Function) visitor.Result {
	sym, ok := r.info.Symbols[n]
	if !ok {
		return visitor.Resume
	}
	fn, ok := sym.(*symtab.ConcreteFunction)
	if !ok {
		return visitor.Resume
	}
	r.resolveFunctionBody(fn)
	return visitor.Stop
}

// resolveFunctionBody resolves fn's declared return type, or infers it
// from every "return" expression in its body when one was omitted, per
// spec.md §4.5. It is called both from VisitFunction, in declaration
// order, and on demand from VisitCall when a call is reached before the
// resolver's ordinary walk would otherwise get to the callee's own
// declaration (a forward reference) — resolvedFns makes either call
// order walk the body exactly once.
func (r *resolver) resolveFunctionBody(fn *symtab.ConcreteFunction) {
	if r.resolvedFns[fn] {
		return
	}
	decl, ok := fn.Decl().(*ast.Function)
	if !ok {
		r.resolvedFns[fn] = true
		return
	}

	for i := range decl.Attributes {
		ast.WalkRO(decl.Attributes[i], r)
	}
	for i := range decl.Parameters {
		ast.WalkRO(decl.Parameters[i], r)
	}

	if decl.ReturnType != nil {
		if t, ok := r.resolveTypeRef(decl.ReturnType, decl); ok {
			fn.Returns = t
		}
		ast.WalkRO(decl.InnerScope, r)
		r.resolvedFns[fn] = true
		return
	}

	if fn.Resolving {
		r.diags.Report(diag.Diagnostic{
			Message:  "cannot infer return type of \"" + fn.SymbolName() + "\": it depends on its own return type through a call cycle",
			Severity: diag.Error,
		})
		r.resolvedFns[fn] = true
		return
	}
	fn.Resolving = true
	ast.WalkRO(decl.InnerScope, r)
	fn.Resolving = false

	var result types.Type
	mismatched := false
	for _, ret := range collectReturns(decl.InnerScope) {
		var rt types.Type
		if ret.Value != nil {
			rt = r.info.Types[ret.Value]
		} else {
			rt = types.Void
		}
		if rt == nil {
			continue // operand didn't resolve; already diagnosed
		}
		if result == nil {
			result = rt
			continue
		}
		ct, ok := result.CommonType(rt)
		if !ok {
			mismatched = true
			continue
		}
		result = ct
	}
	if mismatched {
		r.diags.Report(diag.Diagnostic{
			Message:  "no common return type for \"" + fn.SymbolName() + "\"'s return statements",
			Severity: diag.Error,
		})
		r.resolvedFns[fn] = true
		return
	}
	fn.Returns = result
	r.resolvedFns[fn] = true
}

// returnCollector gathers every "return" reachable from a function body
// without descending into a nested Function or Lambda, each of which
// infers its own return type independently.
type returnCollector struct {
	ast.BaseVisitor
	returns []*ast.Return
}

func (c *returnCollector) VisitReturn(n *ast.Return) visitor.Result {
	c.returns = append(c.returns, n)
	return visitor.Resume
}

func (c *returnCollector) VisitFunction(*ast.Function) visitor.Result { return visitor.Stop }
func (c *returnCollector) VisitLambda(*ast.Lambda) visitor.Result     { return visitor.Stop }

func collectReturns(body ast.Node) []*ast.Return {
	c := &returnCollector{}
	c.Self = c
	ast.WalkRO(body, c)
	return c.returns
}

