package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeDeclareRejectsDuplicateInSameScope(t *testing.T) {
	sc := NewScope(nil)
	require.True(t, sc.Declare(NewVariable("x", nil)))
	require.False(t, sc.Declare(NewVariable("x", nil)), "redeclaring x in the same scope should fail")
}

func TestScopeDeclareAllowsShadowingInChildScope(t *testing.T) {
	parent := NewScope(nil)
	require.True(t, parent.Declare(NewVariable("x", nil)))

	child := NewScope(parent)
	require.True(t, child.Declare(NewVariable("x", nil)), "shadowing x in a child scope should succeed")
}

func TestScopeLookupWalksAncestorChain(t *testing.T) {
	parent := NewScope(nil)
	sym := NewVariable("x", nil)
	parent.Declare(sym)

	child := NewScope(parent)
	grandchild := NewScope(child)

	got, ok := grandchild.Lookup("x")
	require.True(t, ok)
	require.Same(t, sym, got)

	_, ok = grandchild.Lookup("nope")
	require.False(t, ok)
}

func TestScopeNamesReturnsOwnTableOnly(t *testing.T) {
	parent := NewScope(nil)
	parent.Declare(NewVariable("outer", nil))

	child := NewScope(parent)
	child.Declare(NewVariable("inner", nil))

	names := child.Names()
	require.ElementsMatch(t, []string{"inner"}, names)
}

func TestConcreteFunctionSymbolName(t *testing.T) {
	fn := NewConcreteFunction("add", nil)
	require.Equal(t, "add", fn.SymbolName())
	require.Nil(t, fn.Decl())
}
