// Package graph implements the adjacency-list molecular graph: the
// Atom/Bond data model, ring-closure reconciliation, and the Builder sink
// that materialises a graph from a reader's event stream.
package graph

import "github.com/cx-luo/go-smiles/feature"

// Bond is a directed edge from its owning atom to atom Tid.
type Bond struct {
	Kind feature.BondKind
	Tid  int
}

// NewBond constructs a Bond.
func NewBond(kind feature.BondKind, tid int) Bond {
	return Bond{Kind: kind, Tid: tid}
}

// Order returns the bond's valence contribution.
func (b Bond) Order() uint8 {
	return b.Kind.Order()
}

// IsAromatic reports whether the bond is the aromatic kind.
func (b Bond) IsAromatic() bool {
	return b.Kind == feature.Aromatic
}

// IsDirectional reports whether the bond is Up or Down.
func (b Bond) IsDirectional() bool {
	return b.Kind.IsDirectional()
}
