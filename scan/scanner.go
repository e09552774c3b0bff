// Package scan provides a byte-indexed cursor over an ASCII SMILES string.
package scan

import "fmt"

// Scanner is a byte cursor over an ASCII input string. It is consumed
// once: callers advance it with Pop and inspect it with Peek, Cursor, and
// IsDone. Single-quote bytes are transparently skipped by both Peek and
// Pop (quote transparency), letting callers quote element symbols
// (e.g. "['Og']") without changing token semantics, while error offsets
// still refer to the original, unskipped byte positions.
type Scanner struct {
	input []byte
	pos   int
}

// New constructs a Scanner over input. Panics if input contains a byte
// outside the ASCII range, mirroring the hard non-ASCII rejection the
// format requires.
func New(input string) *Scanner {
	for i := 0; i < len(input); i++ {
		if input[i] >= 128 {
			panic(fmt.Sprintf("non-ASCII byte at position %d", i))
		}
	}
	return &Scanner{input: []byte(input)}
}

// Cursor returns the current byte offset into the original input.
func (s *Scanner) Cursor() int {
	return s.pos
}

// IsDone reports whether the scanner has nothing left to read.
func (s *Scanner) IsDone() bool {
	_, _, ok := s.nextNonQuote(s.pos)
	return !ok
}

// Peek returns the next non-quote byte without consuming it. Any quote
// bytes in front of it are skipped, and the cursor advances past them.
func (s *Scanner) Peek() (byte, bool) {
	pos, c, ok := s.nextNonQuote(s.pos)
	s.pos = pos
	return c, ok
}

// Pop consumes and returns the next non-quote byte, skipping any
// intervening quote bytes and advancing the cursor past them too.
func (s *Scanner) Pop() (byte, bool) {
	pos, c, ok := s.nextNonQuote(s.pos)
	if !ok {
		s.pos = pos
		return 0, false
	}
	s.pos = pos + 1
	return c, true
}

// PeekN returns up to n upcoming non-quote bytes without consuming any of
// them. The result may be shorter than n at end of input.
func (s *Scanner) PeekN(n int) []byte {
	out := make([]byte, 0, n)
	pos := s.pos
	for len(out) < n {
		next, c, ok := s.nextNonQuote(pos)
		if !ok {
			break
		}
		out = append(out, c)
		pos = next + 1
	}
	return out
}

// PopN consumes n non-quote bytes (plus any interleaved quotes), intended
// to commit a match already inspected with PeekN.
func (s *Scanner) PopN(n int) {
	for i := 0; i < n; i++ {
		s.Pop()
	}
}

// nextNonQuote finds the next non-quote byte at or after from, returning
// its position and value.
func (s *Scanner) nextNonQuote(from int) (int, byte, bool) {
	i := from
	for i < len(s.input) && s.input[i] == '\'' {
		i++
	}
	if i >= len(s.input) {
		return i, 0, false
	}
	return i, s.input[i], true
}
