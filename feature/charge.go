package feature

import "fmt"

// Charge is a signed formal charge in [-15, +15], as carried by a bracket
// atom.
type Charge int8

// NewCharge validates value is within the SMILES-legal range.
func NewCharge(value int) (Charge, error) {
	if value < -15 || value > 15 {
		return 0, fmt.Errorf("charge out of range: %d", value)
	}
	return Charge(value), nil
}

// Value returns the raw signed charge.
func (c Charge) Value() int8 {
	return int8(c)
}

// String renders "-", "+", or the sign followed by the decimal magnitude
// for |charge| > 1 (e.g. "+2", "-15"), matching the bracket-atom charge
// token grammar.
func (c Charge) String() string {
	switch {
	case c == -1:
		return "-"
	case c == 1:
		return "+"
	case c < 0:
		return fmt.Sprintf("-%d", -c)
	default:
		return fmt.Sprintf("+%d", c)
	}
}
