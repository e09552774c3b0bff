package graph_test

import (
	"testing"

	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/graph"
)

func TestSubvalenceUnbonded(t *testing.T) {
	a := graph.NewAtom(feature.NewSimple(feature.AliphaticSymbol("C")))
	if got := a.Subvalence(); got != 4 {
		t.Errorf("Subvalence() = %d, want 4", got)
	}
}

func TestSuppressedHydrogensAliphatic(t *testing.T) {
	a := graph.NewAtom(feature.NewSimple(feature.AliphaticSymbol("C")))
	a.Bonds = []graph.Bond{graph.NewBond(feature.Single, 1)}
	if got := a.SuppressedHydrogens(); got != 3 {
		t.Errorf("SuppressedHydrogens() = %d, want 3", got)
	}
}

func TestSuppressedHydrogensAromatic(t *testing.T) {
	a := graph.NewAtom(feature.NewSimple(feature.AromaticSymbol("C")))
	a.Bonds = []graph.Bond{
		graph.NewBond(feature.Aromatic, 1),
		graph.NewBond(feature.Aromatic, 2),
	}
	if got := a.SuppressedHydrogens(); got != 1 {
		t.Errorf("SuppressedHydrogens() = %d, want 1", got)
	}
}

func TestSuppressedHydrogensBracketExplicit(t *testing.T) {
	h, _ := feature.NewVirtualHydrogen(3)
	kind := feature.NewBracket(nil, feature.AliphaticSymbol("C"), nil, &h, nil, nil)
	a := graph.NewAtom(kind)
	if got := a.SuppressedHydrogens(); got != 3 {
		t.Errorf("SuppressedHydrogens() = %d, want 3", got)
	}
}

func TestSuppressedHydrogensStar(t *testing.T) {
	a := graph.NewAtom(feature.NewSimple(feature.Star))
	if got := a.SuppressedHydrogens(); got != 0 {
		t.Errorf("SuppressedHydrogens() = %d, want 0", got)
	}
}
