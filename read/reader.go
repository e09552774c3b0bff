package read

import (
	"github.com/cx-luo/go-smiles/feature"
	"github.com/cx-luo/go-smiles/follower"
	"github.com/cx-luo/go-smiles/scan"
	"github.com/cx-luo/go-smiles/trace"
)

// readSmiles reads one atom and its continuation body. input is nil for a
// root atom (the very first atom, or the atom introduced by a "."
// disconnection) and non-nil for an atom bonded to the current chain top.
// It reports the number of atoms read starting with this one, which the
// caller uses to know how far to pop the chain back afterwards.
func readSmiles(input *feature.BondKind, s *scan.Scanner, f follower.Follower, tr *trace.Trace) (int, bool, error) {
	start := s.Cursor()
	atom, ok, err := readAtom(s)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}

	if input != nil {
		bondKind := *input
		if bondKind == feature.Elided {
			tr.Extend(start, trace.Span{Start: start, End: s.Cursor()})
		} else {
			tr.Extend(start-1, trace.Span{Start: start, End: s.Cursor()})
		}
		f.Extend(bondKind, atom)
	} else {
		tr.Root(trace.Span{Start: start, End: s.Cursor()})
		f.Root(atom)
	}

	length := 1
	for {
		n, matched, err := readBody(s, f, tr)
		if err != nil {
			return 0, false, err
		}
		if !matched {
			return length, true, nil
		}
		length += n
	}
}

// readAtom reads one atom in any spelling: the bare wildcard, a bracket
// form, or an organic-subset symbol.
func readAtom(s *scan.Scanner) (feature.AtomKind, bool, error) {
	if c, ok := s.Peek(); ok && c == '*' {
		s.Pop()
		return feature.NewSimple(feature.Star), true, nil
	}

	atom, ok, err := readBracket(s)
	if err != nil || ok {
		return atom, ok, err
	}

	return readOrganic(s)
}

// readBody reads one branch, disconnection, or chain extension at the
// current depth. It reports matched=false (without consuming anything)
// once none of those three apply, which is how the caller knows it has
// reached a closing ')' or the end of input.
func readBody(s *scan.Scanner, f follower.Follower, tr *trace.Trace) (int, bool, error) {
	popped, err := readBranch(s, f, tr)
	if err != nil {
		return 0, false, err
	}
	if popped {
		return 0, true, nil
	}

	length, matched, err := readSplit(s, f, tr)
	if err != nil {
		return 0, false, err
	}
	if matched {
		return length, true, nil
	}

	return readUnion(s, f, tr)
}

// readBranch reads a parenthesised sub-chain: either a "." disconnection
// or a bond-prefixed continuation, followed by the closing paren. The
// chain is popped back by however many atoms the branch itself read, not
// by a fixed depth of one, since a branch flattens every atom it reads
// onto the shared chain stack.
func readBranch(s *scan.Scanner, f follower.Follower, tr *trace.Trace) (bool, error) {
	c, ok := s.Peek()
	if !ok || c != '(' {
		return false, nil
	}
	s.Pop()

	var length int
	if dot, ok := s.Peek(); ok && dot == '.' {
		s.Pop()
		n, matched, err := readSmiles(nil, s, f, tr)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, missingCharacter(s)
		}
		length = n
	} else {
		bondKind, _ := readBond(s)
		n, matched, err := readSmiles(&bondKind, s, f, tr)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, missingCharacter(s)
		}
		length = n
	}

	paren, ok := s.Peek()
	if !ok || paren != ')' {
		return false, missingCharacter(s)
	}
	s.Pop()
	f.Pop(length)
	tr.Pop(length)
	return true, nil
}

// readSplit reads a "." disconnection: a new root atom (and its own body)
// unrelated by any bond to whatever precedes it.
func readSplit(s *scan.Scanner, f follower.Follower, tr *trace.Trace) (int, bool, error) {
	c, ok := s.Peek()
	if !ok || c != '.' {
		return 0, false, nil
	}
	s.Pop()

	length, matched, err := readSmiles(nil, s, f, tr)
	if err != nil {
		return 0, false, err
	}
	if !matched {
		return 0, false, missingCharacter(s)
	}
	return length, true, nil
}

// readUnion reads an optional bond followed by either a chain extension or
// a ring-closure number. Reports matched=false when nothing at all was
// consumed, which is how the caller is done with the current depth.
func readUnion(s *scan.Scanner, f follower.Follower, tr *trace.Trace) (int, bool, error) {
	bondCursor := s.Cursor()
	bondKind, hasBond := readBond(s)

	if length, matched, err := readSmiles(&bondKind, s, f, tr); err != nil {
		return 0, false, err
	} else if matched {
		return length, true, nil
	}

	rnum, isRnum, err := readRnum(s)
	if err != nil {
		return 0, false, err
	}
	if isRnum {
		tr.Join(bondCursor, rnum)
		f.Join(bondKind, rnum)
		return 0, true, nil
	}

	if hasBond {
		return 0, false, missingCharacter(s)
	}
	return 0, false, nil
}

// readBond reads an optional explicit bond-symbol token, defaulting to
// Elided (and hasBond=false) when none is present.
func readBond(s *scan.Scanner) (feature.BondKind, bool) {
	c, ok := s.Peek()
	if !ok {
		return feature.Elided, false
	}
	switch c {
	case '-':
		s.Pop()
		return feature.Single, true
	case '=':
		s.Pop()
		return feature.Double, true
	case '#':
		s.Pop()
		return feature.Triple, true
	case '$':
		s.Pop()
		return feature.Quadruple, true
	case ':':
		s.Pop()
		return feature.Aromatic, true
	case '/':
		s.Pop()
		return feature.Up, true
	case '\\':
		s.Pop()
		return feature.Down, true
	default:
		return feature.Elided, false
	}
}

// readRnum reads a ring-closure number: a bare digit, or "%" followed by
// exactly two digits.
func readRnum(s *scan.Scanner) (feature.Rnum, bool, error) {
	c, ok := s.Peek()
	if !ok {
		return 0, false, nil
	}
	if isDigit(c) {
		s.Pop()
		rnum, err := feature.NewRnum(uint16(c - '0'))
		if err != nil {
			return 0, false, err
		}
		return rnum, true, nil
	}
	if c != '%' {
		return 0, false, nil
	}

	start := s.Cursor()
	s.Pop()
	two := s.PeekN(2)
	if len(two) != 2 || !isDigit(two[0]) || !isDigit(two[1]) {
		return 0, false, characterAt(start)
	}
	s.PopN(2)
	rnum, err := feature.NewRnum(parseDigits(two))
	if err != nil {
		return 0, false, err
	}
	return rnum, true, nil
}
