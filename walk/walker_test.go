package walk_test

import (
	"testing"

	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/graph"
	"github.com/cx-luo/go-smiles/walk"
	"github.com/cx-luo/go-smiles/write"
)

func carbon() feature.AtomKind {
	return feature.NewSimple(feature.AliphaticSymbol("C"))
}

func TestWalkSimpleLinear(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Elided, 1)}},
		{Kind: feature.NewSimple(feature.AliphaticSymbol("O")), Bonds: []graph.Bond{graph.NewBond(feature.Elided, 0)}},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err != nil {
		t.Fatalf("Walk() = %v, want nil", err)
	}
	if got := w.Write(); got != "CO" {
		t.Errorf("Write() = %q, want %q", got, "CO")
	}
}

func TestWalkDisconnectedComponents(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon()},
		{Kind: feature.NewSimple(feature.AliphaticSymbol("O"))},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err != nil {
		t.Fatalf("Walk() = %v, want nil", err)
	}
	if got := w.Write(); got != "C.O" {
		t.Errorf("Write() = %q, want %q", got, "C.O")
	}
}

func TestWalkFourMemberRing(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Single, 1), graph.NewBond(feature.Single, 3)}},
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Single, 0), graph.NewBond(feature.Single, 2)}},
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Single, 1), graph.NewBond(feature.Single, 3)}},
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Single, 0), graph.NewBond(feature.Single, 2)}},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err != nil {
		t.Fatalf("Walk() = %v, want nil", err)
	}
	if got := w.Write(); got != "C(CCC1)1" {
		t.Errorf("Write() = %q, want %q", got, "C(CCC1)1")
	}
}

func TestWalkUnknownTargetIsError(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Elided, 5)}},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err == nil {
		t.Fatal("expected an error for a bond to an out-of-range atom index")
	}
}

func TestWalkLoopIsError(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Elided, 0)}},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err == nil {
		t.Fatal("expected an error for a bond to its own source atom")
	}
}

func TestWalkHalfBondIsError(t *testing.T) {
	atoms := []graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{graph.NewBond(feature.Elided, 1)}},
		{Kind: carbon()},
	}
	w := write.New()
	if err := walk.Walk(atoms, w); err == nil {
		t.Fatal("expected an error for a bond whose reciprocal is missing")
	}
}
