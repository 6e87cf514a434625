package domain

const (
	DefaultPlaceholderWidth     = 300
	DefaultPlaceholderHeight    = 200
	DefaultPlaceholderBorder    = 5
	DefaultPlaceholderTextSize  = 24
	DefaultPlaceholderBgColor   = "#fcfcfc"
	DefaultPlaceholderFgColor   = "#ddd"
	DefaultPlaceholderTextColor = "#aaa"

	// MaxPlaceholderTextSize bounds the label font size.
	MaxPlaceholderTextSize = 512
)

// PlaceholderSpec describes a generated "thumbnail" placeholder image.
type PlaceholderSpec struct {
	Width     int
	Height    int
	Border    int
	TextSize  int
	BgColor   string
	FgColor   string
	TextColor string
}

// DefaultPlaceholderSpec returns the spec used when no query parameters are given.
func DefaultPlaceholderSpec() PlaceholderSpec {
	return PlaceholderSpec{
		Width:     DefaultPlaceholderWidth,
		Height:    DefaultPlaceholderHeight,
		Border:    DefaultPlaceholderBorder,
		TextSize:  DefaultPlaceholderTextSize,
		BgColor:   DefaultPlaceholderBgColor,
		FgColor:   DefaultPlaceholderFgColor,
		TextColor: DefaultPlaceholderTextColor,
	}
}
