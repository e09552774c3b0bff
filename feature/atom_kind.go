package feature

import "strings"

type symbolKind uint8

const (
	starSymbol symbolKind = iota
	aliphaticSymbol
	aromaticSymbol
)

// Symbol is the atomic identity portion of an AtomKind: the wildcard, or
// an element in either its aliphatic (uppercase) or aromatic (lowercase)
// spelling.
type Symbol struct {
	kind    symbolKind
	element Element
}

// Star is the wildcard atom symbol, "*".
var Star = Symbol{kind: starSymbol}

// AliphaticSymbol builds an uppercase-spelled element symbol.
func AliphaticSymbol(e Element) Symbol {
	return Symbol{kind: aliphaticSymbol, element: e}
}

// AromaticSymbol builds a lowercase-spelled element symbol. Callers are
// responsible for checking IsAromaticSubset first; this constructor does
// not re-validate since bracket and organic contexts police membership
// differently (organic aromatics are the 6-element subset, bracket
// aromatics the extended 10-element subset).
func AromaticSymbol(e Element) Symbol {
	return Symbol{kind: aromaticSymbol, element: e}
}

// IsAromatic reports whether the symbol was spelled lowercase.
func (s Symbol) IsAromatic() bool {
	return s.kind == aromaticSymbol
}

// IsStar reports whether the symbol is the wildcard.
func (s Symbol) IsStar() bool {
	return s.kind == starSymbol
}

// Element returns the underlying element and true, or ("", false) for Star.
func (s Symbol) Element() (Element, bool) {
	if s.kind == starSymbol {
		return "", false
	}
	return s.element, true
}

func (s Symbol) String() string {
	switch s.kind {
	case starSymbol:
		return "*"
	case aromaticSymbol:
		return strings.ToLower(s.element.Symbol())
	default:
		return s.element.Symbol()
	}
}

// AtomKind is the minimal context-sensitive representation of an atom: a
// bare Symbol, or a bracket form carrying isotope, configuration, explicit
// hydrogen count, charge, and atom-map tag. Optional fields are nil when
// absent.
type AtomKind struct {
	bracket       bool
	symbol        Symbol
	isotope       *Isotope
	configuration *Configuration
	hcount        *VirtualHydrogen
	charge        *Charge
	atomMap       *uint16
}

// NewSimple builds an unbracketed atom kind.
func NewSimple(symbol Symbol) AtomKind {
	return AtomKind{symbol: symbol}
}

// NewBracket builds a bracket atom kind. Any of isotope, configuration,
// hcount, charge, or atomMap may be nil.
func NewBracket(isotope *Isotope, symbol Symbol, configuration *Configuration, hcount *VirtualHydrogen, charge *Charge, atomMap *uint16) AtomKind {
	return AtomKind{
		bracket:       true,
		symbol:        symbol,
		isotope:       isotope,
		configuration: configuration,
		hcount:        hcount,
		charge:        charge,
		atomMap:       atomMap,
	}
}

// IsBracket reports whether the kind was written in bracket form.
func (k AtomKind) IsBracket() bool {
	return k.bracket
}

// Symbol returns the underlying atomic symbol.
func (k AtomKind) Symbol() Symbol {
	return k.symbol
}

// Isotope, Configuration, HCount, Charge, and AtomMap expose the optional
// bracket fields; each returns nil for an unbracketed kind.
func (k AtomKind) Isotope() *Isotope             { return k.isotope }
func (k AtomKind) Configuration() *Configuration { return k.configuration }
func (k AtomKind) HCount() *VirtualHydrogen      { return k.hcount }
func (k AtomKind) Charge() *Charge               { return k.charge }
func (k AtomKind) AtomMap() *uint16              { return k.atomMap }

// IsAromatic reports whether the kind was defined as being aromatic.
func (k AtomKind) IsAromatic() bool {
	return k.symbol.IsAromatic()
}

// Targets returns the set of acceptable valence sums for this kind.
func (k AtomKind) Targets() []uint8 {
	if k.symbol.IsStar() {
		return nil
	}
	element, _ := k.symbol.Element()
	if k.bracket {
		return elementalTargets(element, k.charge)
	}
	return elementalTargets(element, nil)
}

// InvertConfiguration toggles TH1<->TH2 iff the kind is a bracket atom
// with a non-zero virtual-hydrogen count and a tetrahedral configuration.
// All other configurations (AL/SP/TB/OH) are left untouched: the source
// this is ported from only ever defines the inversion rule for TH1/TH2,
// and the non-TH behaviour is policy-deferred rather than specified.
func (k *AtomKind) InvertConfiguration() {
	if !k.bracket || k.configuration == nil || k.hcount == nil {
		return
	}
	if k.hcount.IsZero() {
		return
	}
	if !k.configuration.IsTetrahedral() {
		return
	}
	inverted := k.configuration.InvertTetrahedral()
	k.configuration = &inverted
}

// Debracket collapses a bracket atom with no isotope, configuration,
// charge, or map into its unbracketed Aliphatic/Aromatic form when the
// implicit hydrogen count plus bondOrderSum equals one of the element's
// valence targets. Aromatic symbols get a one-unit valence allowance when
// at least one virtual hydrogen is present. Returns the original kind
// unchanged when debracketing does not apply.
func (k AtomKind) Debracket(bondOrderSum uint8) AtomKind {
	if !k.bracket {
		return k
	}
	if k.isotope != nil || k.configuration != nil || k.charge != nil || k.atomMap != nil {
		return k
	}
	if k.symbol.IsStar() {
		return k
	}

	hcount := uint8(0)
	if k.hcount != nil {
		hcount = k.hcount.Count()
	}

	sum := bondOrderSum + hcount
	for _, target := range k.Targets() {
		want := target
		if k.symbol.IsAromatic() && hcount > 0 {
			want = target - 1
		}
		if sum == want {
			return NewSimple(k.symbol)
		}
	}
	return k
}

func (k AtomKind) String() string {
	if !k.bracket {
		return k.symbol.String()
	}

	var b strings.Builder
	b.WriteByte('[')
	if k.isotope != nil {
		b.WriteString(itoa(k.isotope.MassNumber()))
	}
	b.WriteString(k.symbol.String())
	if k.configuration != nil {
		b.WriteString(k.configuration.String())
	}
	if k.hcount != nil {
		b.WriteString(k.hcount.String())
	}
	if k.charge != nil {
		b.WriteString(k.charge.String())
	}
	if k.atomMap != nil {
		b.WriteByte(':')
		b.WriteString(itoa(*k.atomMap))
	}
	b.WriteByte(']')
	return b.String()
}

func itoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// elementalTargets returns the valence-target table for element, adjusted
// for charge. Uncharged elements use their own table; certain charges
// shift the lookup to an adjacent element's table (e.g. C+1 behaves like
// boron, N-1 behaves like sulfur).
func elementalTargets(element Element, charge *Charge) []uint8 {
	var c int8
	has := charge != nil
	if has {
		c = charge.Value()
	}

	switch element {
	case "B":
		switch {
		case has && c == -3:
			return oxygenTarget
		case has && c == -2:
			return nitrogenTarget
		case has && c == -1:
			return carbonTarget
		case !has:
			return boronTarget
		default:
			return emptyTarget
		}
	case "C", "Si":
		switch {
		case has && c == -2:
			return oxygenTarget
		case has && c == -1:
			return nitrogenTarget
		case has && c == 1:
			return boronTarget
		case !has:
			return carbonTarget
		default:
			return emptyTarget
		}
	case "N", "P", "As":
		switch {
		case has && c == 1:
			return carbonTarget
		case has && c == -1:
			return sulfurTarget
		case !has:
			return nitrogenTarget
		default:
			return emptyTarget
		}
	case "O":
		switch {
		case has && c == 1:
			return nitrogenTarget
		case !has:
			return oxygenTarget
		default:
			return emptyTarget
		}
	case "S", "Se", "Te":
		switch {
		case has && c == 1:
			return nitrogenTarget
		case !has:
			return sulfurTarget
		default:
			return emptyTarget
		}
	case "F", "Cl", "Br", "I", "At", "Ts":
		if !has {
			return halogenTarget
		}
		return emptyTarget
	default:
		return emptyTarget
	}
}

var (
	boronTarget    = []uint8{3}
	halogenTarget  = []uint8{1}
	carbonTarget   = []uint8{4}
	nitrogenTarget = []uint8{3, 5}
	oxygenTarget   = []uint8{2}
	sulfurTarget   = []uint8{2, 4, 6}
	emptyTarget    = []uint8{}
)
