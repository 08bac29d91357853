package graphics

// BoxShadow defines a shadow drawn around a shape.
//
// BlurRadius controls softness. Sigma is BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
}

// Sigma returns the blur sigma.
// Returns 0 if BlurRadius is negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Extent returns how far past the shape edge the shadow reaches, ignoring Offset.
func (s BoxShadow) Extent() float64 {
	return s.Spread + 3*s.Sigma()
}

// NewBoxShadow creates a centered shadow with the given color and blur radius.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		BlurRadius: blurRadius,
	}
}
