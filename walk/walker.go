package walk

import (
	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/follower"
	"github.com/cx-luo/go-smiles/graph"
)

type stackItem struct {
	sid  int
	bond graph.Bond
}

// walker holds the state shared across every connected component visited
// during a traversal: the atoms still waiting to be visited (nil once
// consumed) and the ring-label pool.
type walker struct {
	atoms []*graph.Atom
	pool  *graph.JoinPool
	sink  follower.Follower
}

// Walk performs a full depth-first traversal of atoms, emitting Root,
// Extend, Join, and Pop events to sink in an order that regenerates valid
// SMILES text. Each connected component is visited once, in atom-index
// order of its lowest-index member.
func Walk(atoms []graph.Atom, sink follower.Follower) error {
	w := &walker{
		atoms: make([]*graph.Atom, len(atoms)),
		pool:  graph.NewJoinPool(),
		sink:  sink,
	}
	for i := range atoms {
		a := atoms[i]
		w.atoms[i] = &a
	}

	for id := range atoms {
		if w.atoms[id] == nil {
			continue
		}
		root := *w.atoms[id]
		w.atoms[id] = nil
		if err := w.dfsFromRoot(id, root); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) dfsFromRoot(rootID int, root graph.Atom) error {
	var stack []stackItem
	chain := []int{rootID}

	for i := len(root.Bonds) - 1; i >= 0; i-- {
		stack = append(stack, stackItem{sid: rootID, bond: root.Bonds[i]})
	}
	w.sink.Root(root.Kind)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sid, bond := top.sid, top.bond

		if bond.Tid < 0 || bond.Tid >= len(w.atoms) {
			return &Error{Kind: UnknownTarget, S: sid, T: bond.Tid}
		}
		if bond.Tid == sid {
			return &Error{Kind: Loop, S: sid}
		}

		toPop := 0
		for chain[len(chain)-1] != sid {
			chain = chain[:len(chain)-1]
			toPop++
		}
		if toPop > 0 {
			w.sink.Pop(toPop)
		}

		if w.atoms[bond.Tid] != nil {
			child := *w.atoms[bond.Tid]
			w.atoms[bond.Tid] = nil
			if err := w.processTreeEdge(sid, bond, child, &stack, &chain); err != nil {
				return err
			}
		} else {
			w.processRingEdge(sid, bond)
		}
	}
	return nil
}

// processTreeEdge consumes a not-yet-visited child atom: it locates the
// child's back-edge to sid (inverting the child's configuration when that
// back-edge's index among the child's bonds is even, compensating for the
// implicit-hydrogen position flip introduced when the graph was built),
// pushes the child's remaining bonds for later visitation, and emits the
// child atom. A forward single bond is always elided on emission; every
// other kind is re-emitted as written.
func (w *walker) processTreeEdge(sid int, bond graph.Bond, child graph.Atom, stack *[]stackItem, chain *[]int) error {
	var back *graph.Bond
	for idx := len(child.Bonds) - 1; idx >= 0; idx-- {
		out := child.Bonds[idx]
		if out.Tid == sid {
			if idx%2 == 0 {
				child.Kind.InvertConfiguration()
			}
			found := out
			back = &found
		} else {
			*stack = append(*stack, stackItem{sid: bond.Tid, bond: out})
		}
	}
	if back == nil {
		return &Error{Kind: HalfBond, S: sid, T: bond.Tid}
	}

	if err := checkBondCompatibility(bond, *back); err != nil {
		return err
	}

	*chain = append(*chain, bond.Tid)

	emitKind := bond.Kind
	if emitKind == feature.Single {
		emitKind = feature.Elided
	}
	w.sink.Extend(emitKind, child.Kind)
	return nil
}

func checkBondCompatibility(fwd, back graph.Bond) error {
	if fwd.IsDirectional() {
		if fwd.Kind == back.Kind.Reverse() {
			return nil
		}
		return &Error{Kind: IncompatibleBond, S: fwd.Tid, T: back.Tid}
	}
	if fwd.Kind != back.Kind {
		return &Error{Kind: IncompatibleBond, S: fwd.Tid, T: back.Tid}
	}
	return nil
}

// processRingEdge consumes a bond whose target was already visited: it
// allocates (or retrieves) a stable ring label for the pair and emits a
// Join, eliding a single bond exactly as processTreeEdge does.
func (w *walker) processRingEdge(sid int, bond graph.Bond) {
	label := w.pool.Hit(sid, bond.Tid)
	rnum, err := feature.NewRnum(uint16(label))
	if err != nil {
		panic(err)
	}

	emitKind := bond.Kind
	if emitKind == feature.Single {
		emitKind = feature.Elided
	}
	w.sink.Join(emitKind, rnum)
}
