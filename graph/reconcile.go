package graph

import "github.com/cx-luo/go-smiles/feature"

// reconcile resolves the bond kinds declared on the two halves of a ring
// closure into the (forward, back) pair that will actually be stored.
// left is the kind declared at the placeholder (opening) side, right the
// kind declared at the closing side. Reports ok=false when the two kinds
// are irreconcilable (e.g. both Up, or two different non-elided kinds).
func reconcile(left, right feature.BondKind) (feature.BondKind, feature.BondKind, bool) {
	switch {
	case left == right && left != feature.Up && left != feature.Down:
		return left, right, true
	case left == feature.Up && right == feature.Up:
		return 0, 0, false
	case left == feature.Down && right == feature.Down:
		return 0, 0, false
	case left == feature.Up && right == feature.Down:
		return feature.Up, feature.Down, true
	case left == feature.Down && right == feature.Up:
		return feature.Down, feature.Up, true
	case left == feature.Elided && right == feature.Elided:
		return feature.Elided, feature.Elided, true
	case left == feature.Elided && right == feature.Up:
		return feature.Down, feature.Up, true
	case left == feature.Elided && right == feature.Down:
		return feature.Up, feature.Down, true
	case left == feature.Up && right == feature.Elided:
		return feature.Up, feature.Down, true
	case left == feature.Down && right == feature.Elided:
		return feature.Down, feature.Up, true
	case left == feature.Elided:
		return right, right, true
	case right == feature.Elided:
		return left, left, true
	default:
		return 0, 0, false
	}
}
