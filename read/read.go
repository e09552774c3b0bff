package read

import (
	"github.com/cx-luo/go-smiles/follower"
	"github.com/cx-luo/go-smiles/scan"
	"github.com/cx-luo/go-smiles/trace"
)

// Read parses input as a SMILES string, driving sink with Root/Extend/
// Join/Pop events as it goes. When tr is non-nil, source spans and bond
// cursors are recorded into it alongside the event stream. Returns an
// EndOfLine error for empty input, or a CharacterError pointing at the
// first byte that could not be accounted for.
func Read(input string, sink follower.Follower, tr *trace.Trace) error {
	if tr == nil {
		tr = trace.New()
	}
	s := scan.New(input)

	_, gotSomething, err := readSmiles(nil, s, sink, tr)
	if err != nil {
		return err
	}

	atEnd := s.IsDone()

	switch {
	case gotSomething && atEnd:
		return nil
	case !gotSomething && atEnd:
		return &Error{Kind: EndOfLine}
	default:
		return &Error{Kind: CharacterError, Pos: s.Cursor()}
	}
}
