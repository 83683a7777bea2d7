package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonTypeSameSignednessWidensToWiderBits(t *testing.T) {
	got, ok := I32.CommonType(I64)
	require.True(t, ok)
	require.Same(t, I64, got)
}

func TestCommonTypeMixedSignednessWidensToFloat(t *testing.T) {
	got, ok := I32.CommonType(U32)
	require.True(t, ok)
	require.Same(t, F64, got)
}

func TestCommonTypeFloatMixWidensToWiderFloat(t *testing.T) {
	got, ok := F32.CommonType(F64)
	require.True(t, ok)
	require.Same(t, F64, got)
}

func TestCommonTypeIdenticalPrimitivesAreThemselves(t *testing.T) {
	got, ok := I32.CommonType(I32)
	require.True(t, ok)
	require.Same(t, I32, got)
}

func TestCommonTypeNonNumericPrimitivesHaveNone(t *testing.T) {
	_, ok := Bool.CommonType(String)
	require.False(t, ok)
}

func TestClassTypeCommonTypeSharedAncestor(t *testing.T) {
	base := NewClassType("Animal", FlagClass|FlagInheritable)
	dog := NewClassType("Dog", FlagClass)
	dog.BaseClasses = []*ClassType{base}
	cat := NewClassType("Cat", FlagClass)
	cat.BaseClasses = []*ClassType{base}

	got, ok := dog.CommonType(cat)
	require.True(t, ok)
	require.Same(t, base, got)
}

func TestClassTypeCommonTypeDefaultsToObject(t *testing.T) {
	a := NewClassType("A", FlagClass)
	b := NewClassType("B", FlagClass)

	got, ok := a.CommonType(b)
	require.True(t, ok)
	require.Same(t, Object, got)
}

func TestClassTypeGetMemberWalksBaseClasses(t *testing.T) {
	base := NewClassType("Base", FlagClass|FlagInheritable)
	base.Members["greet"] = stubSymbol{"greet"}

	derived := NewClassType("Derived", FlagClass)
	derived.BaseClasses = []*ClassType{base}

	sym, ok := derived.GetMember("greet")
	require.True(t, ok)
	require.Equal(t, "greet", sym.SymbolName())

	_, ok = derived.GetMember("missing")
	require.False(t, ok)
}

type stubSymbol struct{ name string }

func (s stubSymbol) SymbolName() string { return s.name }

func TestNumericOperatorMemberArithmeticResultIsCommonType(t *testing.T) {
	sym, ok := I32.GetMember("@add")
	require.True(t, ok)
	op, ok := sym.(*OperatorSymbol)
	require.True(t, ok)
	require.Same(t, F64, op.ResultType(I32, []Type{U32}))
}

func TestNumericOperatorMemberComparisonResultIsBool(t *testing.T) {
	sym, ok := I32.GetMember("@lessThan")
	require.True(t, ok)
	op, ok := sym.(*OperatorSymbol)
	require.True(t, ok)
	require.Same(t, Bool, op.ResultType(I32, []Type{I32}))
}

func TestNumericOperatorMemberUnaryResultIsBase(t *testing.T) {
	sym, ok := F32.GetMember("@negate")
	require.True(t, ok)
	op, ok := sym.(*OperatorSymbol)
	require.True(t, ok)
	require.Same(t, F32, op.ResultType(F32, nil))
}

func TestCharSharesNumericOperatorMembers(t *testing.T) {
	_, ok := Char.GetMember("@add")
	require.True(t, ok)
}

func TestBuiltinsNullMapsToNullNotVoid(t *testing.T) {
	require.Same(t, Null, Builtins["null"])
}
