// Package ast defines the closed family of Brandy syntax tree node
// variants, their ownership structure, and the generic pre-order visitor
// framework that walks them.
//
// Every node exclusively owns its children as interface-typed fields;
// the only sanctioned way to swap one out is the visitor's Replace
// outcome acting through an owning slot (see Walk). Parent back-
// references are weak — set once by the parent-hookup semantic pass,
// consulted read-only afterward, never used to free anything.
package ast

import "github.com/ImOnALampshade/brandy/internal/visitor"

// Node is satisfied by every concrete AST variant.
type Node interface {
	// NodeBase returns the embedded Base, giving callers access to the
	// node's span and (once the parent-hookup pass has run) its parent.
	NodeBase() *Base
	// Accept dispatches to the visitor method appropriate for this
	// node's concrete variant.
	Accept(v Visitor) visitor.Result
	// WalkChildren recurses into this node's children in the node's
	// fixed structural order. Only called by Walk/WalkRO after a Resume
	// result; never called directly by semantic passes.
	WalkChildren(v Visitor)
}

// Base is embedded in every concrete node and carries the span over the
// token vector (first/last token indices, inclusive) plus a weak parent
// reference. Base satisfies part of Node by itself, which every
// embedding struct picks up through promotion.
type Base struct {
	FirstToken int
	LastToken  int
	Parent     Node
}

// NodeBase implements Node.NodeBase by returning the receiver itself;
// every concrete node embeds Base and so has this promoted.
func (b *Base) NodeBase() *Base { return b }

// Span reports the inclusive [first, last] token index range this node
// covers.
func (b *Base) Span() (first, last int) { return b.FirstToken, b.LastToken }
