package application

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/dfryer1193/imgserve/images/domain"
)

// ParseTransformRequest builds a TransformRequest from query parameters.
// Absent, non-numeric and non-positive numbers leave the step disabled;
// booleans are true only for the exact string "true".
func ParseTransformRequest(q url.Values) domain.TransformRequest {
	return domain.TransformRequest{
		Width:     positiveInt(q.Get("width"), 0),
		Height:    positiveInt(q.Get("height"), 0),
		Blur:      positiveFloat(q.Get("blur"), 0),
		Sharpen:   positiveFloat(q.Get("sharpen"), 0),
		Greyscale: q.Get("greyscale") == "true",
		Flip:      q.Get("flip") == "true",
		Flop:      q.Get("flop") == "true",
	}
}

// ParsePlaceholderSpec builds a PlaceholderSpec from query parameters. Every
// numeric value that is absent, malformed or not positive falls back to its
// default. Width and height are clamped to maxDimension when it is positive;
// the text size is always clamped to domain.MaxPlaceholderTextSize.
func ParsePlaceholderSpec(q url.Values, maxDimension int) domain.PlaceholderSpec {
	spec := domain.PlaceholderSpec{
		Width:     positiveInt(q.Get("width"), domain.DefaultPlaceholderWidth),
		Height:    positiveInt(q.Get("height"), domain.DefaultPlaceholderHeight),
		Border:    positiveInt(q.Get("border"), domain.DefaultPlaceholderBorder),
		TextSize:  positiveInt(q.Get("textsize"), domain.DefaultPlaceholderTextSize),
		BgColor:   stringOr(q.Get("bgcolor"), domain.DefaultPlaceholderBgColor),
		FgColor:   stringOr(q.Get("fgcolor"), domain.DefaultPlaceholderFgColor),
		TextColor: stringOr(q.Get("textcolor"), domain.DefaultPlaceholderTextColor),
	}

	spec.TextSize = min(spec.TextSize, domain.MaxPlaceholderTextSize)

	if maxDimension > 0 {
		spec.Width = min(spec.Width, maxDimension)
		spec.Height = min(spec.Height, maxDimension)
	}

	return spec
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func positiveInt(raw string, fallback int) int {
	v, ok := parseNumber(raw)
	if !ok || v < 1 || v > math.MaxInt32 {
		return fallback
	}
	return int(v)
}

func positiveFloat(raw string, fallback float64) float64 {
	v, ok := parseNumber(raw)
	if !ok || v <= 0 {
		return fallback
	}
	return v
}

func stringOr(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}
