package sema

import (
	"testing"

	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/diag"
	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/parser"
	"github.com/ImOnALampshade/brandy/internal/source"
	"github.com/ImOnALampshade/brandy/internal/symtab"
	"github.com/ImOnALampshade/brandy/internal/types"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) (*ast.Module, []byte, *Info, *diag.Collector) {
	t.Helper()
	tu := &source.TranslationUnit{Path: "t.bd", Bytes: []byte(src)}
	toks, err := source.Tokenize(tu, lexer.Default())
	require.NoError(t, err)
	mod, err := parser.Parse(tu.Bytes, toks)
	require.NoError(t, err)
	info, coll := Run(mod, tu.Bytes)
	return mod, tu.Bytes, info, coll
}

func TestRunResolvesLocalVariableReference(t *testing.T) {
	mod, _, info, coll := compile(t, "var x = 1\nvar y = x\n")
	require.Empty(t, coll.Diagnostics)

	yDecl := mod.Symbols[1].(*ast.Var)
	ref := yDecl.InitialValue.(*ast.NameReference)

	sym, ok := info.Symbols[ref]
	require.True(t, ok, "reference to x was not resolved")
	_, isVariable := sym.(*symtab.Variable)
	require.True(t, isVariable, "expected x to resolve to a *symtab.Variable, got %T", sym)
}

func TestRunReportsUndeclaredName(t *testing.T) {
	_, _, _, coll := compile(t, "var y = nonexistent\n")
	require.NotEmpty(t, coll.Diagnostics)
	require.True(t, coll.HasErrors())
}

func TestRunLowersBinaryOperatorToCall(t *testing.T) {
	mod, _, _, coll := compile(t, "var x = 1 + 2\n")
	require.Empty(t, coll.Diagnostics)

	v := mod.Symbols[0].(*ast.Var)
	call, ok := v.InitialValue.(*ast.Call)
	require.True(t, ok, "expected '+' to be lowered to a Call, got %T", v.InitialValue)
	member, ok := call.Expression.(*ast.MemberAccess)
	require.True(t, ok)
	require.Equal(t, "@add", member.Synthetic)
}

func TestRunNormalizesArrowBodyToReturn(t *testing.T) {
	mod, _, _, coll := compile(t, "func id(a) => a\n")
	require.Empty(t, coll.Diagnostics)

	fn := mod.Symbols[0].(*ast.Function)
	body := fn.InnerScope.(*ast.Scope)
	require.Len(t, body.Statements, 1)
	_, isReturn := body.Statements[0].(*ast.Return)
	require.True(t, isReturn)
}

func TestRunResolvesOperatorCallResultingType(t *testing.T) {
	mod, _, info, coll := compile(t, "var x = 1 + 2 * 3\n")
	require.Empty(t, coll.Diagnostics)

	v := mod.Symbols[0].(*ast.Var)
	root, ok := v.InitialValue.(*ast.Call)
	require.True(t, ok, "expected the lowered '+' to be the root Call, got %T", v.InitialValue)

	rt, ok := info.Types[root]
	require.True(t, ok, "root operator call has no resulting_type")
	require.Equal(t, types.I32, rt)
}

func TestRunInfersFunctionReturnTypeFromBody(t *testing.T) {
	mod, _, info, coll := compile(t, "func f(a: i32, b: i32) => a + b\n")
	require.Empty(t, coll.Diagnostics)

	fn := mod.Symbols[0].(*ast.Function)
	sym, ok := info.Symbols[fn]
	require.True(t, ok)
	cf, ok := sym.(*symtab.ConcreteFunction)
	require.True(t, ok)
	require.Equal(t, types.I32, cf.Returns)
}

func TestRunInfersFunctionReturnTypeAcrossBranches(t *testing.T) {
	mod, _, info, coll := compile(t, "func f(x: i32) { if x > 0 { return 1 } else { return 2.0 } }\n")
	require.Empty(t, coll.Diagnostics)

	fn := mod.Symbols[0].(*ast.Function)
	sym, ok := info.Symbols[fn]
	require.True(t, ok)
	cf, ok := sym.(*symtab.ConcreteFunction)
	require.True(t, ok)
	require.Equal(t, types.F64, cf.Returns)
}

func TestRunImplicitlyDeclaresAssignedName(t *testing.T) {
	mod, _, info, coll := compile(t, "total = 1\n")
	require.Empty(t, coll.Diagnostics)

	assign := mod.Statements[0].(*ast.BinaryOp)
	ref := assign.Left.(*ast.NameReference)
	sym, ok := info.Symbols[ref]
	require.True(t, ok, "implicitly assigned name was not declared")
	v, ok := sym.(*symtab.Variable)
	require.True(t, ok)
	require.True(t, v.Implicit)
}
