package domain

const (
	// DefaultMaxTransformDimension bounds the output width and height of a
	// transformed image.
	DefaultMaxTransformDimension = 4096
	// MaxSigma bounds blur and sharpen strength.
	MaxSigma = 20
)

// TransformRequest lists the optional operations applied to a stored image on
// read. Zero values mean the step is skipped.
type TransformRequest struct {
	Width     int
	Height    int
	Blur      float64
	Sharpen   float64
	Greyscale bool
	Flip      bool
	Flop      bool
}

// Resizes reports whether at least one target dimension was requested.
func (t TransformRequest) Resizes() bool {
	return t.Width > 0 || t.Height > 0
}

// IsNoop reports whether no transformation was requested at all.
func (t TransformRequest) IsNoop() bool {
	return !t.Resizes() && t.Blur <= 0 && t.Sharpen <= 0 && !t.Greyscale && !t.Flip && !t.Flop
}
