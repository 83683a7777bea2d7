// Package visitor defines the outcomes a tree-rewriting visitor may
// return from visiting a node. The walk driver itself lives alongside
// the AST (package ast) because it must reference every concrete node
// variant; this package holds only the variant-independent vocabulary so
// ast and any future visitor implementation share one definition of it.
package visitor

// Result is the outcome of visiting one node.
type Result int

const (
	// Resume recurses into the node's children in their fixed structural
	// order.
	Resume Result = iota
	// Stop does not recurse into children and does not continue to
	// siblings at the walk root.
	Stop
	// Rewalk re-invokes the visit on the same node, used after the
	// visitor has mutated it in place.
	Rewalk
	// Replace indicates the visitor has populated a replacement node;
	// the walk driver swaps it into the owning slot and re-visits the
	// replacement. Requesting Replace through a borrowed (non-owning)
	// walk is a programming error.
	Replace
)

func (r Result) String() string {
	switch r {
	case Resume:
		return "resume"
	case Stop:
		return "stop"
	case Rewalk:
		return "rewalk"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}
