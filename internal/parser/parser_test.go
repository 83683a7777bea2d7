package parser

import (
	"testing"

	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/source"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	tu := &source.TranslationUnit{Path: "t.bd", Bytes: []byte(src)}
	toks, err := source.Tokenize(tu, lexer.Default())
	require.NoError(t, err)
	mod, err := Parse(tu.Bytes, toks)
	require.NoError(t, err)
	return mod
}

func TestParseFunctionDeclaration(t *testing.T) {
	mod := mustParse(t, "func add(a, b) => a + b\n")

	require.Len(t, mod.Symbols, 1)
	fn, ok := mod.Symbols[0].(*ast.Function)
	require.True(t, ok, "expected *ast.Function, got %T", mod.Symbols[0])
	require.Len(t, fn.Parameters, 2)

	body, ok := fn.InnerScope.(*ast.Scope)
	require.True(t, ok)
	require.Len(t, body.Statements, 1)
}

func TestParseVarDeclaration(t *testing.T) {
	mod := mustParse(t, "var x = 1\n")

	require.Len(t, mod.Symbols, 1)
	v, ok := mod.Symbols[0].(*ast.Var)
	require.True(t, ok, "expected *ast.Var, got %T", mod.Symbols[0])
	require.NotNil(t, v.InitialValue)
}

func TestParseIfElseChain(t *testing.T) {
	mod := mustParse(t, "if x { y() } else if z { w() } else { q() }\n")

	require.Len(t, mod.Statements, 1)
	ifStmt, ok := mod.Statements[0].(*ast.If)
	require.True(t, ok, "expected *ast.If, got %T", mod.Statements[0])
	elseIf, ok := ifStmt.ElseClause.(*ast.If)
	require.True(t, ok, "expected else clause to be another *ast.If")
	require.NotNil(t, elseIf.ElseClause)
}

func TestParseUnlessDesugarsToNegatedIf(t *testing.T) {
	mod := mustParse(t, "unless ready { wait() }\n")

	require.Len(t, mod.Statements, 1)
	ifStmt, ok := mod.Statements[0].(*ast.If)
	require.True(t, ok, "expected unless to desugar to *ast.If, got %T", mod.Statements[0])
	_, negated := ifStmt.Condition.(*ast.UnaryOp)
	require.True(t, negated, "expected unless's condition to be wrapped in a negating UnaryOp")
}

func TestParseBinaryPrecedence(t *testing.T) {
	mod := mustParse(t, "var x = 1 + 2 * 3\n")

	v := mod.Symbols[0].(*ast.Var)
	top, ok := v.InitialValue.(*ast.BinaryOp)
	require.True(t, ok, "expected top-level BinaryOp, got %T", v.InitialValue)

	// multiplication binds tighter, so it must be the right operand of "+"
	_, rightIsMul := top.Right.(*ast.BinaryOp)
	require.True(t, rightIsMul, "expected '2 * 3' to be the right operand of '+'")
}

func TestParseForRange(t *testing.T) {
	mod := mustParse(t, "for i from 0 to 10 every 2 { print(i) }\n")

	require.Len(t, mod.Statements, 1)
	forStmt, ok := mod.Statements[0].(*ast.For)
	require.True(t, ok, "expected *ast.For, got %T", mod.Statements[0])
	require.NotNil(t, forStmt.RangeStart)
	require.NotNil(t, forStmt.RangeEnd)
	require.NotNil(t, forStmt.RangeStep)
}

func TestParseNoNewlineBeforeCallParen(t *testing.T) {
	// per spec.md §4.4, a newline before "(" ends the statement instead
	// of starting a call.
	mod := mustParse(t, "x\n(y)\n")
	require.Len(t, mod.Statements, 2)
}
