// Package write implements a follower.Follower that renders the events it
// receives directly back into SMILES text, one string fragment per open
// branch on a stack.
package write

import (
	"strings"

	"github.com/cx-luo/go-smiles/feature"
)

// Writer accumulates SMILES text as a stack of fragments: every Root and
// Extend pushes one entry, Pop folds the top entries into the one beneath
// them, and Write concatenates whatever remains.
type Writer struct {
	stack []string
}

// New constructs an empty Writer.
func New() *Writer {
	return &Writer{}
}

// Write returns the accumulated SMILES text. The Writer may continue to be
// used afterwards.
func (w *Writer) Write() string {
	return strings.Join(w.stack, "")
}

// Root starts a new fragment, joining it to any prior fragment with "."
// when this is not the first root seen.
func (w *Writer) Root(kind feature.AtomKind) {
	if len(w.stack) == 0 {
		w.stack = append(w.stack, kind.String())
		return
	}
	w.stack = append(w.stack, "."+kind.String())
}

// Extend pushes a new fragment for a bonded atom.
func (w *Writer) Extend(bondKind feature.BondKind, kind feature.AtomKind) {
	w.stack = append(w.stack, bondKind.String()+kind.String())
}

// Join appends a ring-closure token to the top fragment.
func (w *Writer) Join(bondKind feature.BondKind, rnum feature.Rnum) {
	last := len(w.stack) - 1
	w.stack[last] += bondKind.String() + rnum.String()
}

// Pop folds the top depth fragments into a parenthesised group appended to
// the fragment beneath them.
func (w *Writer) Pop(depth int) {
	if depth >= len(w.stack) {
		panic("write: pop depth out of range")
	}
	split := len(w.stack) - depth
	chain := strings.Join(w.stack[split:], "")
	w.stack = w.stack[:split]
	w.stack[len(w.stack)-1] += "(" + chain + ")"
}
