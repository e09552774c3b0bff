package feature

// BondKind enumerates the bond symbols SMILES can spell, including the
// elided (unspecified) bond and the two directional single bonds used for
// cis/trans stereochemistry.
type BondKind uint8

const (
	Elided BondKind = iota
	Single
	Double
	Triple
	Quadruple
	Aromatic
	Up
	Down
)

// Reverse returns the bond kind seen from the other endpoint: Up and Down
// swap, everything else is its own reverse.
func (b BondKind) Reverse() BondKind {
	switch b {
	case Up:
		return Down
	case Down:
		return Up
	default:
		return b
	}
}

// Order returns the bond's contribution to valence arithmetic.
func (b BondKind) Order() uint8 {
	switch b {
	case Double:
		return 2
	case Triple:
		return 3
	case Quadruple:
		return 4
	default:
		return 1
	}
}

// IsDirectional reports whether b is Up or Down.
func (b BondKind) IsDirectional() bool {
	return b == Up || b == Down
}

// String renders the bond's SMILES token, "" for Elided.
func (b BondKind) String() string {
	switch b {
	case Single:
		return "-"
	case Double:
		return "="
	case Triple:
		return "#"
	case Quadruple:
		return "$"
	case Aromatic:
		return ":"
	case Up:
		return "/"
	case Down:
		return "\\"
	default:
		return ""
	}
}
