// Package read implements the recursive-descent SMILES parser: a
// character scanner drives a stream of atom/bond/ring-closure events into
// a follower.Follower sink, optionally recording span provenance in a
// trace.Trace.
package read

import (
	"fmt"

	"github.com/cx-luo/go-smiles/scan"
)

// ErrorKind distinguishes the two ways the reader can fail.
type ErrorKind int

const (
	// EndOfLine means the input ended before a required token appeared.
	EndOfLine ErrorKind = iota
	// CharacterError means a rule was violated at a specific position.
	CharacterError
)

// Error is a reader failure, carrying a character-indexed offset into the
// original input (quote bytes included in the count) when the kind is
// CharacterError.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	if e.Kind == EndOfLine {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected character at position %d", e.Pos)
}

// missingCharacter builds the appropriate error for a required token that
// was not found at the scanner's current position.
func missingCharacter(s *scan.Scanner) error {
	if s.IsDone() {
		return &Error{Kind: EndOfLine}
	}
	return &Error{Kind: CharacterError, Pos: s.Cursor()}
}

func characterAt(pos int) error {
	return &Error{Kind: CharacterError, Pos: pos}
}
