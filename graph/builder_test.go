package graph_test

import (
	"testing"

	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/graph"
)

func TestBuilderSimpleChain(t *testing.T) {
	b := graph.NewBuilder()
	b.Root(feature.NewSimple(feature.AliphaticSymbol("C")))
	b.Extend(feature.Elided, feature.NewSimple(feature.AliphaticSymbol("O")))

	atoms, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms) != 2 {
		t.Fatalf("len(atoms) = %d, want 2", len(atoms))
	}
	if atoms[0].Bonds[0].Tid != 1 || atoms[1].Bonds[0].Tid != 0 {
		t.Errorf("expected reciprocal bonds between atom 0 and 1, got %+v", atoms)
	}
}

func TestBuilderRingClosure(t *testing.T) {
	b := graph.NewBuilder()
	b.Root(feature.NewSimple(feature.AliphaticSymbol("C")))
	rnum, _ := feature.NewRnum(1)
	b.Join(feature.Elided, rnum)
	b.Extend(feature.Elided, feature.NewSimple(feature.AliphaticSymbol("C")))
	b.Extend(feature.Elided, feature.NewSimple(feature.AliphaticSymbol("C")))
	b.Join(feature.Elided, rnum)

	atoms, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms[0].Bonds) != 2 {
		t.Fatalf("root atom bonds = %+v, want 2 (chain + ring closure)", atoms[0].Bonds)
	}
}

func TestBuilderUnclosedRingIsError(t *testing.T) {
	b := graph.NewBuilder()
	b.Root(feature.NewSimple(feature.AliphaticSymbol("C")))
	rnum, _ := feature.NewRnum(1)
	b.Join(feature.Elided, rnum)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected an error for an unclosed ring number")
	}
}

func TestBuilderIncompatibleRingBondIsError(t *testing.T) {
	b := graph.NewBuilder()
	b.Root(feature.NewSimple(feature.AliphaticSymbol("C")))
	rnum, _ := feature.NewRnum(1)
	b.Join(feature.Up, rnum)
	b.Extend(feature.Elided, feature.NewSimple(feature.AliphaticSymbol("C")))
	b.Join(feature.Up, rnum)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected an error reconciling two Up ring bonds")
	}
}
