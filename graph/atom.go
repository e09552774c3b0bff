package graph

import "github.com/cx-luo/go-smiles/feature"

// Atom is a node in the adjacency-list graph: an atom kind plus its
// ordered bonds. Bond order in the slice is emission order in SMILES and
// determines stereochemical orientation.
type Atom struct {
	Kind  feature.AtomKind
	Bonds []Bond
}

// NewAtom constructs an atom with no bonds.
func NewAtom(kind feature.AtomKind) Atom {
	return Atom{Kind: kind}
}

// IsAromatic reports whether the atom's kind is aromatic.
func (a Atom) IsAromatic() bool {
	return a.Kind.IsAromatic()
}

// Subvalence returns target - (sum of bond orders + virtual hydrogens),
// clamped to the first target greater than or equal to the current sum,
// or 0 if no target qualifies.
func (a Atom) Subvalence() uint8 {
	var hcount uint8
	if h := a.Kind.HCount(); h != nil {
		hcount = h.Count()
	}

	sum := hcount
	for _, bond := range a.Bonds {
		sum += bond.Order()
	}

	for _, target := range a.Kind.Targets() {
		if target >= sum {
			return target - sum
		}
	}
	return 0
}

// SuppressedHydrogens returns the number of implicit hydrogens this atom
// carries: the explicit hcount for bracket atoms, subvalence for
// unbracketed aliphatic atoms, subvalence-1 (floored at 0) for unbracketed
// aromatic atoms, and 0 for the wildcard.
func (a Atom) SuppressedHydrogens() uint8 {
	if a.Kind.IsBracket() {
		if h := a.Kind.HCount(); h != nil {
			return h.Count()
		}
		return 0
	}

	if a.Kind.Symbol().IsStar() {
		return 0
	}

	sub := a.Subvalence()
	if a.Kind.IsAromatic() {
		if sub == 0 {
			return 0
		}
		return sub - 1
	}
	return sub
}
