package write_test

import (
	"testing"

	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/write"
)

func star() feature.AtomKind {
	return feature.NewSimple(feature.Star)
}

func elem(e feature.Element) feature.AtomKind {
	return feature.NewSimple(feature.AliphaticSymbol(e))
}

func TestWriterSingleAtom(t *testing.T) {
	w := write.New()
	w.Root(star())
	if got := w.Write(); got != "*" {
		t.Errorf("Write() = %q, want %q", got, "*")
	}
}

func TestWriterExtend(t *testing.T) {
	w := write.New()
	w.Root(star())
	w.Extend(feature.Single, star())
	if got := w.Write(); got != "*-*" {
		t.Errorf("Write() = %q, want %q", got, "*-*")
	}
}

func TestWriterDisconnectedComponents(t *testing.T) {
	w := write.New()
	w.Root(star())
	w.Root(star())
	if got := w.Write(); got != "*.*" {
		t.Errorf("Write() = %q, want %q", got, "*.*")
	}
}

func TestWriterBranching(t *testing.T) {
	w := write.New()
	w.Root(star())
	w.Extend(feature.Elided, elem("F"))
	w.Pop(1)
	w.Extend(feature.Elided, elem("Cl"))
	if got := w.Write(); got != "*(F)Cl" {
		t.Errorf("Write() = %q, want %q", got, "*(F)Cl")
	}
}

func TestWriterRingClosure(t *testing.T) {
	w := write.New()
	rnum, _ := feature.NewRnum(1)
	w.Root(star())
	w.Join(feature.Single, rnum)
	w.Extend(feature.Single, star())
	w.Extend(feature.Double, star())
	w.Join(feature.Single, rnum)
	if got := w.Write(); got != "*-1-*=*-1" {
		t.Errorf("Write() = %q, want %q", got, "*-1-*=*-1")
	}
}

func TestWriterNestedBranches(t *testing.T) {
	w := write.New()
	w.Root(star())
	w.Extend(feature.Elided, star())
	w.Extend(feature.Single, star())
	w.Pop(1)
	w.Extend(feature.Elided, star())
	w.Pop(2)
	w.Extend(feature.Double, star())
	if got := w.Write(); got != "*(*(-*)*)=*" {
		t.Errorf("Write() = %q, want %q", got, "*(*(-*)*)=*")
	}
}
