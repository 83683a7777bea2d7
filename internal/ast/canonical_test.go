package ast

import (
	"testing"

	"github.com/ImOnALampshade/brandy/internal/token"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeModuleRoundTrip(t *testing.T) {
	mod := &Module{
		Base: Base{FirstToken: 0, LastToken: 10},
		Symbols: []Node{
			&Var{
				Base:         Base{FirstToken: 0, LastToken: 4},
				Name:         token.Token{Kind: token.Identifier, Start: 1, Length: 1, Line: 1},
				InitialValue: &Literal{Base: Base{FirstToken: 3, LastToken: 4}, Value: token.Token{Kind: token.IntLit, Start: 3, Length: 1, Line: 1}},
			},
		},
		Statements: []Node{
			&Call{
				Base: Base{FirstToken: 5, LastToken: 10},
				Expression: &MemberAccess{
					Base:       Base{FirstToken: 5, LastToken: 6},
					Expression: &NameReference{Base: Base{FirstToken: 5, LastToken: 6}, Name: token.Token{Kind: token.Identifier, Start: 5, Length: 1, Line: 2}},
					Member:     token.Token{Kind: token.Identifier, Start: 6, Length: 1, Line: 2},
					Synthetic:  "@add",
				},
				Arguments: []Node{&Literal{Base: Base{FirstToken: 7, LastToken: 8}, Value: token.Token{Kind: token.IntLit, Start: 7, Length: 1, Line: 2}}},
			},
		},
	}

	data, err := EncodeModule(mod)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	got, err := DecodeModule(data)
	require.NoError(t, err)

	require.Len(t, got.Symbols, 1)
	require.Len(t, got.Statements, 1)

	gotVar, ok := got.Symbols[0].(*Var)
	require.True(t, ok)
	require.Equal(t, mod.Symbols[0].(*Var).Name, gotVar.Name)

	gotCall, ok := got.Statements[0].(*Call)
	require.True(t, ok)
	gotMember, ok := gotCall.Expression.(*MemberAccess)
	require.True(t, ok)
	require.Equal(t, "@add", gotMember.Synthetic)
}

func TestEncodeModuleIsDeterministic(t *testing.T) {
	mod := &Module{
		Symbols: []Node{&Label{Name: token.Token{Kind: token.Identifier, Start: 0, Length: 3}}},
	}
	a, err := EncodeModule(mod)
	require.NoError(t, err)
	b, err := EncodeModule(mod)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
