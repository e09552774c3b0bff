// Package follower defines the event-sink contract shared by the reader,
// graph builder, walker, and writer: a blocking, synchronous callback
// interface through which a SMILES is produced or consumed one atom at a
// time.
package follower

import "github.com/cx-luo/go-smiles/feature"

// Follower receives a stream of parse/traversal events in source order.
// Implementations own their state exclusively; no event is cancellable or
// retried.
type Follower interface {
	// Root starts a new connected component: the very first atom, or the
	// first atom after a "." disconnection.
	Root(kind feature.AtomKind)

	// Extend appends an atom to the current chain, bonded to whatever is
	// on top of that chain.
	Extend(bondKind feature.BondKind, kind feature.AtomKind)

	// Join records a ring-closure token at the current chain top. The
	// first Join for a given Rnum opens it; the second closes it.
	Join(bondKind feature.BondKind, rnum feature.Rnum)

	// Pop signals that the next event rejoins an ancestor depth levels up
	// the branch stack.
	Pop(depth int)
}
