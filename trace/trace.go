// Package trace records source-span provenance for atoms and bonds
// recovered from a SMILES parse, as an optional decorator alongside the
// reader's event stream.
package trace

import "github.com/cx-luo/go-smiles/feature"

// Span is a half-open character range [Start, End) into the original
// input string.
type Span struct {
	Start int
	End   int
}

type ringOpen struct {
	atomID     int
	bondCursor int
}

// Trace maps parsed atoms and bonds back to the input spans that produced
// them. It mirrors just enough of the reader's chain bookkeeping (a stack
// of "current atom" ids) to attribute each bond to the two atoms it joins.
type Trace struct {
	atoms []Span
	bonds map[[2]int]int
	chain []int
	opens map[feature.Rnum]ringOpen
}

// New constructs an empty Trace.
func New() *Trace {
	return &Trace{
		bonds: make(map[[2]int]int),
		opens: make(map[feature.Rnum]ringOpen),
	}
}

// Root records a new connected component's root atom span. Like Extend,
// it pushes onto the chain stack rather than replacing it, so that a "."
// disconnection nested inside a branch still pops back to the branch's
// own chain top afterwards; unlike Extend, it records no bond, since a
// root atom is never attached to whatever came before it.
func (t *Trace) Root(span Span) int {
	id := len(t.atoms)
	t.atoms = append(t.atoms, span)
	t.chain = append(t.chain, id)
	return id
}

// Extend records a new atom bonded to the current chain top, attributing
// bondCursor to the edge between them.
func (t *Trace) Extend(bondCursor int, span Span) int {
	id := len(t.atoms)
	t.atoms = append(t.atoms, span)
	if len(t.chain) > 0 {
		parent := t.chain[len(t.chain)-1]
		t.setBond(parent, id, bondCursor)
	}
	t.chain = append(t.chain, id)
	return id
}

// Join records a ring-closure token at the current chain top. The first
// call for a given rnum opens it; the second pairs it with the first and
// records the (symmetric) bond cursor, using the closing call's cursor.
func (t *Trace) Join(bondCursor int, rnum feature.Rnum) {
	if len(t.chain) == 0 {
		return
	}
	current := t.chain[len(t.chain)-1]

	if open, ok := t.opens[rnum]; ok {
		delete(t.opens, rnum)
		t.setBond(open.atomID, current, bondCursor)
		return
	}
	t.opens[rnum] = ringOpen{atomID: current, bondCursor: bondCursor}
}

// Pop rejoins an ancestor depth levels up the chain.
func (t *Trace) Pop(depth int) {
	if depth <= 0 || depth > len(t.chain) {
		return
	}
	t.chain = t.chain[:len(t.chain)-depth]
}

// Atom returns the span attributed to atom index id.
func (t *Trace) Atom(id int) (Span, bool) {
	if id < 0 || id >= len(t.atoms) {
		return Span{}, false
	}
	return t.atoms[id], true
}

// Bond returns the cursor attributed to the edge between atoms a and b,
// regardless of argument order.
func (t *Trace) Bond(a, b int) (int, bool) {
	cursor, ok := t.bonds[[2]int{a, b}]
	return cursor, ok
}

func (t *Trace) setBond(a, b, cursor int) {
	t.bonds[[2]int{a, b}] = cursor
	t.bonds[[2]int{b, a}] = cursor
}
