package read

import (
	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/scan"
)

var organicAromatic = map[byte]feature.Element{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// readOrganic reads an unbracketed atom from the organic subset: a bare
// aromatic lowercase letter, or an aliphatic element spelled with one or
// two letters (Cl, Br, At, Ts require their second letter; every other
// aliphatic symbol in the subset is a single bare uppercase letter).
func readOrganic(s *scan.Scanner) (feature.AtomKind, bool, error) {
	c, ok := s.Peek()
	if !ok {
		return feature.AtomKind{}, false, nil
	}

	if elem, ok := organicAromatic[c]; ok {
		s.Pop()
		return feature.NewSimple(feature.AromaticSymbol(elem)), true, nil
	}

	switch c {
	case 'B':
		s.Pop()
		if c2, ok2 := s.Peek(); ok2 && c2 == 'r' {
			s.Pop()
			return feature.NewSimple(feature.AliphaticSymbol("Br")), true, nil
		}
		return feature.NewSimple(feature.AliphaticSymbol("B")), true, nil
	case 'C':
		s.Pop()
		if c2, ok2 := s.Peek(); ok2 && c2 == 'l' {
			s.Pop()
			return feature.NewSimple(feature.AliphaticSymbol("Cl")), true, nil
		}
		return feature.NewSimple(feature.AliphaticSymbol("C")), true, nil
	case 'N', 'O', 'P', 'S', 'F', 'I':
		s.Pop()
		return feature.NewSimple(feature.AliphaticSymbol(feature.Element(string(c)))), true, nil
	case 'A':
		start := s.Cursor()
		s.Pop()
		c2, ok2 := s.Peek()
		if !ok2 || c2 != 't' {
			return feature.AtomKind{}, false, characterAt(start)
		}
		s.Pop()
		return feature.NewSimple(feature.AliphaticSymbol("At")), true, nil
	case 'T':
		start := s.Cursor()
		s.Pop()
		c2, ok2 := s.Peek()
		if !ok2 || c2 != 's' {
			return feature.AtomKind{}, false, characterAt(start)
		}
		s.Pop()
		return feature.NewSimple(feature.AliphaticSymbol("Ts")), true, nil
	default:
		return feature.AtomKind{}, false, nil
	}
}
