// Package sema implements Brandy's semantic analysis pipeline: five
// passes run in a fixed order over a parsed *ast.Module, each an
// ast.Visitor driven by ast.Walk. Results that would otherwise force
// internal/ast to import internal/types and internal/symtab (and create
// an import cycle, since both of those already need to reference
// ast.Node) are instead recorded in Info, a side table keyed by
// ast.Node — the same shape go/types.Info uses to keep go/ast free of
// any dependency on go/types.
package sema

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/diag"
	"github.com/ImOnALampshade/brandy/internal/symtab"
	"github.com/ImOnALampshade/brandy/internal/types"
)

// Info accumulates every semantic fact the passes attach to nodes.
type Info struct {
	// Scopes maps a scope-introducing node (Module, Scope, Class,
	// Function, Lambda) to the symtab.Scope the symtabfiller pass built
	// for it.
	Scopes map[ast.Node]*symtab.Scope
	// Symbols maps a declaring node (Var, Parameter, Function, Class,
	// Property, Label, Import, Typedef) to the symbol the symtabfiller
	// pass created for it, and a referencing node (NameReference,
	// MemberAccess, Call) to the symbol the resolver pass resolved it
	// to.
	Symbols map[ast.Node]symtab.Symbol
	// Types maps an expression node to its resolved types.Type.
	Types map[ast.Node]types.Type
}

func NewInfo() *Info {
	return &Info{
		Scopes:  map[ast.Node]*symtab.Scope{},
		Symbols: map[ast.Node]symtab.Symbol{},
		Types:   map[ast.Node]types.Type{},
	}
}

// Run executes all five passes, in order, over mod. src is the
// translation unit's byte buffer, needed to recover identifier text
// from tokens. It stops (without panicking) at the first pass that
// reports a Terminal diagnostic, returning the partially-populated Info
// and collector so the CLI layer can still print whatever was found.
func Run(mod *ast.Module, src []byte) (*Info, *diag.Collector) {
	info := NewInfo()
	coll := &diag.Collector{}

	diag.RunPass(func() { hookupParents(mod) })
	diag.RunPass(func() { rewriteReturns(mod) })
	diag.RunPass(func() { lowerBinaryOps(mod) })
	if hasTerminal(coll) {
		return info, coll
	}
	diag.RunPass(func() { fillSymbolTable(mod, src, info, coll) })
	if hasTerminal(coll) {
		return info, coll
	}
	diag.RunPass(func() { resolveNames(mod, src, info, coll) })

	return info, coll
}

func hasTerminal(coll *diag.Collector) bool {
	for _, d := range coll.Diagnostics {
		if d.Severity == diag.Terminal {
			return true
		}
	}
	return false
}
