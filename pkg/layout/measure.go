package layout

import "fmt"

// MeasureMode describes how strongly a parent constrains one axis.
type MeasureMode int

const (
	// MeasureUnconstrained lets the child pick its preferred extent.
	MeasureUnconstrained MeasureMode = iota
	// MeasureExactly forces the proposed extent.
	MeasureExactly
	// MeasureAtMost caps the child's preferred extent at the proposed one.
	MeasureAtMost
)

// String returns a human-readable representation of the mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureUnconstrained:
		return "unconstrained"
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at_most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// ResolveExtent picks the extent for one axis given the parent's proposal
// and the child's preferred extent.
func ResolveExtent(mode MeasureMode, proposed, preferred float64) float64 {
	switch mode {
	case MeasureExactly:
		return proposed
	case MeasureAtMost:
		return min(preferred, proposed)
	default:
		return preferred
	}
}
