package read_test

import (
	"testing"

	"github.com/cx-luo/go-smiles/graph"
	"github.com/cx-luo/go-smiles/read"
	"github.com/cx-luo/go-smiles/write"
)

func roundtrip(t *testing.T, smiles string) {
	t.Helper()
	w := write.New()
	if err := read.Read(smiles, w, nil); err != nil {
		t.Fatalf("Read(%q) = %v, want nil", smiles, err)
	}
	if got := w.Write(); got != smiles {
		t.Errorf("Read(%q) roundtrip = %q, want %q", smiles, got, smiles)
	}
}

func TestRoundtrippingSmilesStrings(t *testing.T) {
	cases := []string{
		"CO",
		"C1=CC=CC=C1",
		"C1CC1C(=O)O",
		"[Db][Sg][Bh][Hs][Mt][Ds][Rg][Cn][Nh][Fl][Mc][Lv][Ts][Og]",
		"[as]",
		"c1ccc[se]1",
		"c1ccc[te]1",
		"[si]1cccc[si]1",
		"[Uun][Uuu][Uub][Uut][Uuq][Uup][Uuh][Uus][Uuo]",
		"*.*",
		"*(.*)*",
		"CC(CC)O",
		"C(CC)C",
	}
	for _, c := range cases {
		roundtrip(t, c)
	}
}

func TestSimpleMoleculeBuildsExpectedGraph(t *testing.T) {
	builder := graph.NewBuilder()
	if err := read.Read("CO", builder, nil); err != nil {
		t.Fatalf("Read(\"CO\") = %v, want nil", err)
	}

	atoms, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms) != 2 {
		t.Fatalf("len(atoms) = %d, want 2", len(atoms))
	}
	if len(atoms[0].Bonds) != 1 || atoms[0].Bonds[0].Tid != 1 {
		t.Errorf("atom 0 bonds = %+v, want one bond to atom 1", atoms[0].Bonds)
	}
	if len(atoms[1].Bonds) != 1 || atoms[1].Bonds[0].Tid != 0 {
		t.Errorf("atom 1 bonds = %+v, want one bond to atom 0", atoms[1].Bonds)
	}
}

func TestMultiAtomBranchPopsToBranchPoint(t *testing.T) {
	builder := graph.NewBuilder()
	if err := read.Read("CC(CC)O", builder, nil); err != nil {
		t.Fatalf("Read(\"CC(CC)O\") = %v, want nil", err)
	}

	atoms, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms) != 5 {
		t.Fatalf("len(atoms) = %d, want 5", len(atoms))
	}

	targets := func(bonds []graph.Bond) []int {
		ids := make([]int, len(bonds))
		for i, b := range bonds {
			ids[i] = b.Tid
		}
		return ids
	}

	// Atom 1 (the second C) is the branch point: it must bond to atom 0,
	// the branch's first atom (2), and the trailing O (4) - not to atom 3,
	// the branch's last atom.
	want := []int{0, 2, 4}
	got := targets(atoms[1].Bonds)
	if len(got) != len(want) {
		t.Fatalf("atom 1 bonds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("atom 1 bonds = %v, want %v", got, want)
		}
	}
}

func TestDotDisconnectionProducesTwoComponents(t *testing.T) {
	builder := graph.NewBuilder()
	if err := read.Read("*.*", builder, nil); err != nil {
		t.Fatalf("Read(\"*.*\") = %v, want nil", err)
	}

	atoms, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms) != 2 {
		t.Fatalf("len(atoms) = %d, want 2", len(atoms))
	}
	if len(atoms[0].Bonds) != 0 || len(atoms[1].Bonds) != 0 {
		t.Errorf("atoms = %+v, want both atoms bondless", atoms)
	}
}

func TestBranchDotDisconnectionParses(t *testing.T) {
	builder := graph.NewBuilder()
	if err := read.Read("*(.*)*", builder, nil); err != nil {
		t.Fatalf("Read(\"*(.*)*\") = %v, want nil", err)
	}

	atoms, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(atoms) != 3 {
		t.Fatalf("len(atoms) = %d, want 3", len(atoms))
	}
	// Atom 1, read inside the "." branch, is disconnected from both others.
	if len(atoms[1].Bonds) != 0 {
		t.Errorf("atom 1 bonds = %+v, want none", atoms[1].Bonds)
	}
	// Atom 2, read after the branch closes, bonds back to atom 0, not atom 1.
	if len(atoms[0].Bonds) != 1 || atoms[0].Bonds[0].Tid != 2 {
		t.Errorf("atom 0 bonds = %+v, want one bond to atom 2", atoms[0].Bonds)
	}
}

func TestEmptyInputIsEndOfLine(t *testing.T) {
	builder := graph.NewBuilder()
	err := read.Read("", builder, nil)
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	rerr, ok := err.(*read.Error)
	if !ok {
		t.Fatalf("error type = %T, want *read.Error", err)
	}
	if rerr.Kind != read.EndOfLine {
		t.Errorf("Kind = %v, want EndOfLine", rerr.Kind)
	}
}

func TestTrailingGarbageIsCharacterError(t *testing.T) {
	builder := graph.NewBuilder()
	err := read.Read("C)", builder, nil)
	if err == nil {
		t.Fatal("expected an error for unmatched closing paren")
	}
	rerr, ok := err.(*read.Error)
	if !ok {
		t.Fatalf("error type = %T, want *read.Error", err)
	}
	if rerr.Kind != read.CharacterError {
		t.Errorf("Kind = %v, want CharacterError", rerr.Kind)
	}
	if rerr.Pos != 1 {
		t.Errorf("Pos = %d, want 1", rerr.Pos)
	}
}

func TestUnknownElementSymbolFails(t *testing.T) {
	builder := graph.NewBuilder()
	if err := read.Read("[Qq]", builder, nil); err == nil {
		t.Fatal("expected an error for an unknown bracket symbol")
	}
}
