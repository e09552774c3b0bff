package read

import (
	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/scan"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLowerAlpha(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func parseDigits(digits []byte) uint16 {
	var n uint16
	for _, d := range digits {
		n = n*10 + uint16(d-'0')
	}
	return n
}

// readBracket parses the full "[...]" bracket-atom form: isotope?, symbol,
// config?, hcount?, charge?, map?, then the closing bracket - in that
// fixed order.
func readBracket(s *scan.Scanner) (feature.AtomKind, bool, error) {
	c, ok := s.Peek()
	if !ok || c != '[' {
		return feature.AtomKind{}, false, nil
	}
	s.Pop()

	isotope, err := readIsotope(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	symbol, err := readBracketSymbol(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	configuration, err := readConfiguration(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	hcount, err := readHCount(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	charge, err := readCharge(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	atomMap, err := readMap(s)
	if err != nil {
		return feature.AtomKind{}, false, err
	}

	c2, ok2 := s.Peek()
	if !ok2 || c2 != ']' {
		return feature.AtomKind{}, false, missingCharacter(s)
	}
	s.Pop()

	return feature.NewBracket(isotope, symbol, configuration, hcount, charge, atomMap), true, nil
}

// readIsotope reads up to three leading decimal digits. More than three
// leading digits are not an isotope-overflow error here: the reader simply
// stops after three, and whatever digit follows falls to the symbol
// sub-parser, which rejects it there (matching the source's behaviour,
// which has no separate isotope bounds check).
func readIsotope(s *scan.Scanner) (*feature.Isotope, error) {
	var digits []byte
	for len(digits) < 3 {
		c, ok := s.Peek()
		if !ok || !isDigit(c) {
			break
		}
		s.Pop()
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		return nil, nil
	}
	iso, err := feature.NewIsotope(parseDigits(digits))
	if err != nil {
		return nil, err
	}
	return &iso, nil
}

var twoLetterAromatic = map[string]feature.Element{
	"se": "Se", "as": "As", "si": "Si", "te": "Te",
}

var oneLetterAromatic = map[byte]feature.Element{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// readBracketSymbol reads the required atomic symbol inside a bracket:
// "*", an extended aromatic symbol, or any known element symbol.
func readBracketSymbol(s *scan.Scanner) (feature.Symbol, error) {
	c, ok := s.Peek()
	if !ok {
		return feature.Symbol{}, missingCharacter(s)
	}
	if c == '*' {
		s.Pop()
		return feature.Star, nil
	}

	start := s.Cursor()

	if isLowerAlpha(c) {
		two := s.PeekN(2)
		if len(two) == 2 {
			if elem, ok := twoLetterAromatic[string(two)]; ok {
				s.PopN(2)
				return feature.AromaticSymbol(elem), nil
			}
		}
		if elem, ok := oneLetterAromatic[c]; ok {
			s.Pop()
			return feature.AromaticSymbol(elem), nil
		}
		return feature.Symbol{}, characterAt(start)
	}

	if isUpperAlpha(c) {
		three := s.PeekN(3)
		if len(three) == 3 && isLowerAlpha(three[1]) && isLowerAlpha(three[2]) {
			if feature.IsElementSymbol(string(three)) {
				s.PopN(3)
				return feature.AliphaticSymbol(feature.Element(three)), nil
			}
		}
		if len(three) >= 2 && isLowerAlpha(three[1]) {
			two := string(three[:2])
			if feature.IsElementSymbol(two) {
				s.PopN(2)
				return feature.AliphaticSymbol(feature.Element(two)), nil
			}
		}
		one := string(c)
		if feature.IsElementSymbol(one) {
			s.Pop()
			return feature.AliphaticSymbol(feature.Element(one)), nil
		}
		return feature.Symbol{}, characterAt(start)
	}

	return feature.Symbol{}, characterAt(start)
}

// readHCount reads an optional "H" or "H<digit>" token.
func readHCount(s *scan.Scanner) (*feature.VirtualHydrogen, error) {
	c, ok := s.Peek()
	if !ok || c != 'H' {
		return nil, nil
	}
	s.Pop()

	n := uint8(1)
	if d, ok := s.Peek(); ok && isDigit(d) {
		s.Pop()
		n = d - '0'
	}
	h, err := feature.NewVirtualHydrogen(n)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// readCharge reads an optional "+"/"-" charge token: a bare sign is ±1,
// a doubled sign ("++"/"--") is ±2, and a sign followed by 1-15 is that
// signed value (two digits only when the first is '1').
func readCharge(s *scan.Scanner) (*feature.Charge, error) {
	c, ok := s.Peek()
	if !ok || (c != '+' && c != '-') {
		return nil, nil
	}
	s.Pop()
	sign := 1
	if c == '-' {
		sign = -1
	}

	if d, ok := s.Peek(); ok && isDigit(d) && d != '0' {
		s.Pop()
		value := int(d - '0')
		if d == '1' {
			if d2, ok2 := s.Peek(); ok2 && d2 >= '0' && d2 <= '5' {
				s.Pop()
				value = 10 + int(d2-'0')
			}
		}
		charge, err := feature.NewCharge(sign * value)
		if err != nil {
			return nil, err
		}
		return &charge, nil
	}

	if c2, ok2 := s.Peek(); ok2 && c2 == c {
		s.Pop()
		charge, err := feature.NewCharge(sign * 2)
		if err != nil {
			return nil, err
		}
		return &charge, nil
	}

	charge, err := feature.NewCharge(sign)
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

// readMap reads an optional ":" followed by 1-3 decimal digits.
func readMap(s *scan.Scanner) (*uint16, error) {
	c, ok := s.Peek()
	if !ok || c != ':' {
		return nil, nil
	}
	s.Pop()

	first, ok := s.Peek()
	if !ok {
		return nil, missingCharacter(s)
	}
	if !isDigit(first) {
		return nil, characterAt(s.Cursor())
	}
	s.Pop()
	digits := []byte{first}
	for len(digits) < 3 {
		c2, ok2 := s.Peek()
		if !ok2 || !isDigit(c2) {
			break
		}
		s.Pop()
		digits = append(digits, c2)
	}

	n := parseDigits(digits)
	v := n
	return &v, nil
}

// readConfiguration reads an optional "@"-prefixed stereodescriptor.
func readConfiguration(s *scan.Scanner) (*feature.Configuration, error) {
	c, ok := s.Peek()
	if !ok || c != '@' {
		return nil, nil
	}
	s.Pop()

	c2, ok2 := s.Peek()
	if !ok2 {
		cfg := feature.TH1
		return &cfg, nil
	}

	switch c2 {
	case '@':
		s.Pop()
		cfg := feature.TH2
		return &cfg, nil
	case 'A':
		s.Pop()
		if err := expect(s, 'L'); err != nil {
			return nil, err
		}
		cfg := readAllene(s)
		return &cfg, nil
	case 'O':
		s.Pop()
		if err := expect(s, 'H'); err != nil {
			return nil, err
		}
		cfg, err := readOctahedral(s)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	case 'S':
		s.Pop()
		if err := expect(s, 'P'); err != nil {
			return nil, err
		}
		cfg := readSquarePlanar(s)
		return &cfg, nil
	case 'T':
		s.Pop()
		c3, ok3 := s.Peek()
		if !ok3 {
			return nil, missingCharacter(s)
		}
		switch c3 {
		case 'B':
			s.Pop()
			cfg, err := readTrigonalBipyramidal(s)
			if err != nil {
				return nil, err
			}
			return &cfg, nil
		case 'H':
			s.Pop()
			cfg := readTetrahedral(s)
			return &cfg, nil
		default:
			return nil, characterAt(s.Cursor())
		}
	default:
		cfg := feature.TH1
		return &cfg, nil
	}
}

func expect(s *scan.Scanner, want byte) error {
	c, ok := s.Peek()
	if !ok {
		return missingCharacter(s)
	}
	if c != want {
		return characterAt(s.Cursor())
	}
	s.Pop()
	return nil
}

func readTetrahedral(s *scan.Scanner) feature.Configuration {
	c, ok := s.Peek()
	if !ok {
		return feature.UnspecifiedTH
	}
	switch c {
	case '1':
		s.Pop()
		return feature.TH1
	case '2':
		s.Pop()
		return feature.TH2
	default:
		return feature.UnspecifiedTH
	}
}

func readAllene(s *scan.Scanner) feature.Configuration {
	c, ok := s.Peek()
	if !ok {
		return feature.UnspecifiedAL
	}
	switch c {
	case '1':
		s.Pop()
		return feature.AL1
	case '2':
		s.Pop()
		return feature.AL2
	default:
		return feature.UnspecifiedAL
	}
}

func readSquarePlanar(s *scan.Scanner) feature.Configuration {
	c, ok := s.Peek()
	if !ok {
		return feature.UnspecifiedSP
	}
	switch c {
	case '1':
		s.Pop()
		return feature.SP1
	case '2':
		s.Pop()
		return feature.SP2
	case '3':
		s.Pop()
		return feature.SP3
	default:
		return feature.UnspecifiedSP
	}
}

func readTrigonalBipyramidal(s *scan.Scanner) (feature.Configuration, error) {
	c, ok := s.Peek()
	if !ok {
		return feature.UnspecifiedTB, nil
	}
	switch c {
	case '1':
		s.Pop()
		if d, ok := s.Peek(); ok && isDigit(d) {
			s.Pop()
			return feature.NewTB(10 + (d - '0'))
		}
		return feature.NewTB(1)
	case '2':
		s.Pop()
		if d, ok := s.Peek(); ok && d == '0' {
			s.Pop()
			return feature.NewTB(20)
		}
		return feature.NewTB(2)
	case '3', '4', '5', '6', '7', '8', '9':
		s.Pop()
		return feature.NewTB(c - '0')
	default:
		return feature.UnspecifiedTB, nil
	}
}

func readOctahedral(s *scan.Scanner) (feature.Configuration, error) {
	c, ok := s.Peek()
	if !ok {
		return feature.UnspecifiedOH, nil
	}
	switch c {
	case '1':
		s.Pop()
		if d, ok := s.Peek(); ok && isDigit(d) {
			s.Pop()
			return feature.NewOH(10 + (d - '0'))
		}
		return feature.NewOH(1)
	case '2':
		s.Pop()
		if d, ok := s.Peek(); ok && isDigit(d) {
			s.Pop()
			return feature.NewOH(20 + (d - '0'))
		}
		return feature.NewOH(2)
	case '3':
		s.Pop()
		if d, ok := s.Peek(); ok && d == '0' {
			s.Pop()
			return feature.NewOH(30)
		}
		return feature.NewOH(3)
	case '4', '5', '6', '7', '8', '9':
		s.Pop()
		return feature.NewOH(c - '0')
	default:
		return feature.UnspecifiedOH, nil
	}
}
