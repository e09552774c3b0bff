package feature

import "fmt"

// class identifies which stereodescriptor family a Configuration belongs
// to: tetrahedral, allenal, square-planar, trigonal-bipyramidal, or
// octahedral.
type class uint8

const (
	classTH class = iota
	classAL
	classSP
	classTB
	classOH
)

// Configuration is a stereodescriptor attached to a bracket atom: one of
// TH1/TH2, AL1/AL2, SP1..SP3, TB1..TB20, OH1..OH30, or an Unspecified
// variant per class (n == 0).
type Configuration struct {
	class class
	n     uint8
}

var (
	TH1           = Configuration{classTH, 1}
	TH2           = Configuration{classTH, 2}
	UnspecifiedTH = Configuration{classTH, 0}

	AL1           = Configuration{classAL, 1}
	AL2           = Configuration{classAL, 2}
	UnspecifiedAL = Configuration{classAL, 0}

	SP1           = Configuration{classSP, 1}
	SP2           = Configuration{classSP, 2}
	SP3           = Configuration{classSP, 3}
	UnspecifiedSP = Configuration{classSP, 0}

	UnspecifiedTB = Configuration{classTB, 0}
	UnspecifiedOH = Configuration{classOH, 0}
)

// NewTB constructs a trigonal-bipyramidal configuration TB1..TB20.
func NewTB(n uint8) (Configuration, error) {
	if n < 1 || n > 20 {
		return Configuration{}, fmt.Errorf("TB configuration out of range: %d", n)
	}
	return Configuration{classTB, n}, nil
}

// NewOH constructs an octahedral configuration OH1..OH30.
func NewOH(n uint8) (Configuration, error) {
	if n < 1 || n > 30 {
		return Configuration{}, fmt.Errorf("OH configuration out of range: %d", n)
	}
	return Configuration{classOH, n}, nil
}

// IsTetrahedral reports whether c is TH1 or TH2 - the only family
// invert_configuration acts on.
func (c Configuration) IsTetrahedral() bool {
	return c.class == classTH && c.n != 0
}

// InvertTetrahedral swaps TH1<->TH2. It must only be called when
// IsTetrahedral is true.
func (c Configuration) InvertTetrahedral() Configuration {
	if c == TH1 {
		return TH2
	}
	return TH1
}

// String renders the bracket-atom configuration token: "@" for TH1/AL1,
// "@@" for TH2/AL2, "@CLASSn" for everything else, "@CLASS" for the
// Unspecified variants.
func (c Configuration) String() string {
	switch c {
	case TH1, AL1:
		return "@"
	case TH2, AL2:
		return "@@"
	}

	name := ""
	switch c.class {
	case classTH:
		name = "TH"
	case classAL:
		name = "AL"
	case classSP:
		name = "SP"
	case classTB:
		name = "TB"
	case classOH:
		name = "OH"
	}

	if c.n == 0 {
		return "@" + name
	}
	return fmt.Sprintf("@%s%d", name, c.n)
}
