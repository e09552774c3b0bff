package graph

import "github.com/cx-luo/go-smiles/feature"

type targetKind uint8

const (
	targetID targetKind = iota
	targetRnum
)

// edgeTarget is either a resolved atom index or a still-open ring-closure
// placeholder tagged with the Rnum it is waiting to pair with.
type edgeTarget struct {
	kind targetKind
	id   int
	rnum feature.Rnum
}

type edge struct {
	kind   feature.BondKind
	target edgeTarget
}

type node struct {
	kind  feature.AtomKind
	edges []edge
}

// Builder is a Follower that materialises an adjacency-list graph,
// pairing ring-closure placeholders and reconciling bond directionality
// as events arrive. It accumulates errors during consumption and
// surfaces only the first on Build.
type Builder struct {
	stack  []int
	g      []node
	opens  map[feature.Rnum]int
	errors []*Error
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder {
	return &Builder{opens: make(map[feature.Rnum]int)}
}

// Root pushes a new parentless node and sets it as the chain top.
func (b *Builder) Root(kind feature.AtomKind) {
	id := len(b.g)
	b.g = append(b.g, node{kind: kind})
	b.stack = append(b.stack, id)
}

// Extend creates a new node as a child of the chain top: a forward edge
// of kind bondKind from parent to child, and a reciprocal back-edge of
// kind bondKind.Reverse() from child to parent. kind's configuration is
// inverted before the child node is created, compensating for the
// implicit hydrogen's position flipping between the on-wire order and
// the adjacency-list order.
func (b *Builder) Extend(bondKind feature.BondKind, kind feature.AtomKind) {
	sid := b.stack[len(b.stack)-1]
	tid := len(b.g)

	kind.InvertConfiguration()

	back := edge{kind: bondKind.Reverse(), target: edgeTarget{kind: targetID, id: sid}}
	forward := edge{kind: bondKind, target: edgeTarget{kind: targetID, id: tid}}

	b.g = append(b.g, node{kind: kind, edges: []edge{back}})
	b.g[sid].edges = append(b.g[sid].edges, forward)
	b.stack = append(b.stack, tid)
}

// Join opens a ring-closure placeholder on its first call for a given
// rnum, and closes it on the second: the placeholder's declared bond kind
// and the closing bondKind are reconciled, and on success rewritten into
// a resolved forward/back edge pair. A reconciliation failure is recorded
// as a JoinError rather than raised immediately.
func (b *Builder) Join(bondKind feature.BondKind, rnum feature.Rnum) {
	sid := b.stack[len(b.stack)-1]

	tid, open := b.opens[rnum]
	if !open {
		b.opens[rnum] = sid
		b.g[sid].edges = append(b.g[sid].edges, edge{
			kind:   bondKind,
			target: edgeTarget{kind: targetRnum, id: sid, rnum: rnum},
		})
		return
	}
	delete(b.opens, rnum)

	idx := -1
	for i, e := range b.g[tid].edges {
		if e.target.kind == targetRnum && e.target.rnum == rnum {
			idx = i
			break
		}
	}
	if idx == -1 {
		b.errors = append(b.errors, joinError(sid, tid))
		return
	}

	left := b.g[tid].edges[idx].kind
	l, r, ok := reconcile(left, bondKind)
	if !ok {
		b.errors = append(b.errors, joinError(sid, tid))
		return
	}

	b.g[tid].edges[idx] = edge{kind: l, target: edgeTarget{kind: targetID, id: sid}}
	b.g[sid].edges = append(b.g[sid].edges, edge{kind: r, target: edgeTarget{kind: targetID, id: tid}})
}

// Pop pops depth entries off the chain stack.
func (b *Builder) Pop(depth int) {
	b.stack = b.stack[:len(b.stack)-depth]
}

// Build converts the accumulated node graph into atoms. It returns the
// first recorded error, if any; otherwise it checks that every edge
// resolved (an edge still tagged with an open ring number fails as
// RnumError) and that no atom carries more than one outgoing Up or more
// than one outgoing Down bond (a conflict that can only arise from
// misuse of the sink interface, not from valid input).
func (b *Builder) Build() ([]Atom, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	atoms := make([]Atom, len(b.g))
	for i, n := range b.g {
		bonds := make([]Bond, len(n.edges))
		var ups, downs int
		for j, e := range n.edges {
			if e.target.kind == targetRnum {
				return nil, rnumError(int(e.target.rnum))
			}
			bonds[j] = NewBond(e.kind, e.target.id)
			switch e.kind {
			case feature.Up:
				ups++
			case feature.Down:
				downs++
			}
		}
		if ups > 1 || downs > 1 {
			return nil, &Error{Kind: DirectionalConflictError, S: i, T: i}
		}
		atoms[i] = Atom{Kind: n.kind, Bonds: bonds}
	}
	return atoms, nil
}
