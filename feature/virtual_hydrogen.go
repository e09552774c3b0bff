package feature

import "fmt"

// VirtualHydrogen is the explicit implicit-hydrogen count carried by a
// bracket atom, 0..9.
type VirtualHydrogen uint8

// NewVirtualHydrogen validates n is within 0..9.
func NewVirtualHydrogen(n uint8) (VirtualHydrogen, error) {
	if n > 9 {
		return 0, fmt.Errorf("hydrogen count out of range: %d", n)
	}
	return VirtualHydrogen(n), nil
}

// IsZero reports whether the count is H0.
func (h VirtualHydrogen) IsZero() bool {
	return h == 0
}

// Count returns the raw count.
func (h VirtualHydrogen) Count() uint8 {
	return uint8(h)
}

// String renders "" for H0, "H" for H1, or "H<n>" otherwise.
func (h VirtualHydrogen) String() string {
	switch h {
	case 0:
		return ""
	case 1:
		return "H"
	default:
		return fmt.Sprintf("H%d", uint8(h))
	}
}
