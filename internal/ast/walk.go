package ast

import "github.com/ImOnALampshade/brandy/internal/visitor"

type replacementTaker interface {
	takeReplacement() Node
}

// Walk drives a pre-order traversal rooted at *slot, which must be an
// owning field (a struct field or slice element) so that a Replace
// result can swap a new node into it. v is re-invoked on the
// replacement, and on the same node again for Rewalk, so either result
// can loop if a visitor keeps requesting it.
func Walk(slot *Node, v Visitor) {
	for {
		n := *slot
		if n == nil {
			return
		}

		switch n.Accept(v) {
		case visitor.Resume:
			n.WalkChildren(v)
			return
		case visitor.Stop:
			return
		case visitor.Rewalk:
			continue
		case visitor.Replace:
			taker, ok := v.(replacementTaker)
			if !ok {
				panic("ast: visitor requested Replace but does not embed BaseVisitor")
			}
			repl := taker.takeReplacement()
			*slot = repl
			continue
		default:
			return
		}
	}
}

// WalkSlice drives Walk over every element of an owning slice, in order.
func WalkSlice(slots []Node, v Visitor) {
	for i := range slots {
		Walk(&slots[i], v)
	}
}

// WalkRO drives a read-only pre-order traversal of a borrowed (not
// separately addressable) node, such as one reached only through a
// value receiver. It panics if the visitor requests Replace, since there
// is no slot to swap into.
func WalkRO(n Node, v Visitor) {
	if n == nil {
		return
	}
	slot := n
	for {
		switch slot.Accept(v) {
		case visitor.Resume:
			slot.WalkChildren(v)
			return
		case visitor.Stop:
			return
		case visitor.Rewalk:
			continue
		case visitor.Replace:
			panic("ast: Replace is not valid from a read-only walk")
		default:
			return
		}
	}
}
